// Package trie implements an AMQP-style pattern matching trie: `.`-
// segmented patterns with `*` (exactly one segment) and `#` (zero or
// more segments) wildcards, CRUD over per-pattern subscriber lists, and
// a binary persistence format.
package trie

import "strings"

// Trie is a pattern-matching routing table.
type Trie struct {
	root *Node
}

// New returns an empty Trie.
func New() *Trie {
	return &Trie{root: newNode("", SegmentLiteral)}
}

// Insert registers sub on pattern, creating any missing path nodes.
// Insert and Subscribe perform the same CRUD operation on the terminal
// subscriber list; both names are kept since callers reach for either.
func (t *Trie) Insert(pattern string, sub Subscriber) error {
	segments, err := splitSegments(pattern)
	if err != nil {
		return err
	}

	n := t.root
	for _, seg := range segments {
		n = n.childOrCreate(segmentKind(seg), seg)
	}
	n.addSubscriber(sub)

	return nil
}

// Subscribe is an alias for Insert.
func (t *Trie) Subscribe(pattern string, sub Subscriber) error {
	return t.Insert(pattern, sub)
}

// Remove unregisters the subscriber with id from pattern. Reports
// whether a matching pattern and subscriber were found; missing
// patterns/subscribers are a negative result, not an error.
func (t *Trie) Remove(pattern string, id uint64) (bool, error) {
	segments, err := splitSegments(pattern)
	if err != nil {
		return false, err
	}

	n := t.root
	for _, seg := range segments {
		n = n.childFor(segmentKind(seg), seg)
		if n == nil {
			return false, nil
		}
	}

	return n.removeSubscriber(id), nil
}

// Unsubscribe is an alias for Remove.
func (t *Trie) Unsubscribe(pattern string, id uint64) (bool, error) {
	return t.Remove(pattern, id)
}

// Match returns every subscriber whose pattern matches input, deduped by
// subscriber ID.
func (t *Trie) Match(input string) ([]Subscriber, error) {
	segments, err := splitSegments(input)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint64]bool)
	var out []Subscriber

	var walk func(n *Node, i int)
	walk = func(n *Node, i int) {
		if n.Terminal && i == len(segments) {
			for _, s := range n.Subscribers {
				if !seen[s.ID] {
					seen[s.ID] = true
					out = append(out, s)
				}
			}
		}

		for _, c := range n.Children {
			switch c.Kind {
			case SegmentLiteral:
				if i < len(segments) && c.Segment == segments[i] {
					walk(c, i+1)
				}
			case SegmentStar:
				if i < len(segments) {
					walk(c, i+1)
				}
			case SegmentHash:
				walk(c, i) // zero segments consumed
				for j := i; j < len(segments); j++ {
					walk(c, j+1)
				}
			}
		}
	}
	walk(t.root, 0)

	return out, nil
}

// List returns every pattern with at least one subscriber.
func (t *Trie) List() []string {
	var out []string
	var parts []string

	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Terminal {
			out = append(out, strings.Join(parts, "."))
		}
		for _, c := range n.Children {
			parts = append(parts, c.Segment)
			walk(c)
			parts = parts[:len(parts)-1]
		}
	}
	for _, c := range t.root.Children {
		parts = append(parts, c.Segment)
		walk(c)
		parts = parts[:len(parts)-1]
	}

	return out
}

// Stats summarizes trie size.
type Stats struct {
	NodeCount       int
	PatternCount    int
	SubscriberCount int
}

// Stats computes aggregate counts over the whole trie.
func (t *Trie) Stats() Stats {
	var s Stats

	var walk func(n *Node)
	walk = func(n *Node) {
		s.NodeCount++
		if n.Terminal {
			s.PatternCount++
			s.SubscriberCount += len(n.Subscribers)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(t.root)

	return s
}
