package trie

import "github.com/cespare/xxhash/v2"

// SubscriberID derives a stable numeric subscriber id from a human name,
// for callers (the CLI in particular) that would rather not mint their
// own ids. Pattern and subscriber ids are otherwise opaque uint64s as far
// as Trie itself is concerned.
func SubscriberID(name string) uint64 {
	return xxhash.Sum64String(name)
}
