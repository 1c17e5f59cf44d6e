// Package rng provides the process-local PRNG contract consumed where
// the core needs randomness: an explicit init/stir/read lifecycle owned
// by the caller, rather than a package-level singleton with its own
// pid-check reseed policy.
package rng

// Source is a keystream generator with an explicit lifecycle: Init seeds
// it, Stir mixes in fresh entropy, Read drains keystream bytes.
type Source interface {
	Init(seed []byte)
	Stir()
	Read(p []byte) (int, error)
}

// RC4Source is a stirred RC4-style keystream generator. Callers own an
// instance and decide when to Stir; there is no global singleton and no
// process-id based reseed — the caller decides the reseed policy.
type RC4Source struct {
	s    [256]byte
	i, j byte
}

// NewRC4Source returns an RC4Source initialized with seed.
func NewRC4Source(seed []byte) *RC4Source {
	r := &RC4Source{}
	r.Init(seed)
	return r
}

// Init performs RC4's key-scheduling algorithm over seed.
func (r *RC4Source) Init(seed []byte) {
	for i := 0; i < 256; i++ {
		r.s[i] = byte(i)
	}
	if len(seed) == 0 {
		r.i, r.j = 0, 0
		return
	}

	var j byte
	for i := 0; i < 256; i++ {
		j += r.s[i] + seed[i%len(seed)]
		r.s[i], r.s[j] = r.s[j], r.s[i]
	}
	r.i, r.j = 0, 0
}

// Stir discards a block of keystream, mixing the internal state further
// without changing the seed. Callers call this on whatever cadence their
// reseed policy calls for.
func (r *RC4Source) Stir() {
	var discard [256]byte
	_, _ = r.Read(discard[:])
}

// Read fills p with keystream bytes. Always returns len(p), nil.
func (r *RC4Source) Read(p []byte) (int, error) {
	for k := range p {
		r.i++
		r.j += r.s[r.i]
		r.s[r.i], r.s[r.j] = r.s[r.j], r.s[r.i]
		p[k] = r.s[r.s[r.i]+r.s[r.j]]
	}
	return len(p), nil
}
