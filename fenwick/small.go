package fenwick

import "github.com/arloliu/varind/cell"

// smallBIT is the Small tier: a contiguous 1-indexed Fenwick array. It
// tracks the cap it was configured with so its own grow can promote
// itself to fullBIT once a new length would exceed it, without BIT
// needing to inspect which concrete tier is active.
type smallBIT[T cell.Numeric] struct {
	tree []T // tree[0] unused; tree[1..n] are BIT internal nodes
	cap  int
}

func newSmallBIT[T cell.Numeric](n, cap int) *smallBIT[T] {
	return &smallBIT[T]{tree: make([]T, n+1), cap: cap}
}

func (s *smallBIT[T]) len() int { return len(s.tree) - 1 }

func (s *smallBIT[T]) update(idx int, delta T) {
	for i := idx + 1; i < len(s.tree); i += i & -i {
		s.tree[i] += delta
	}
}

func (s *smallBIT[T]) query(idx int) T {
	var sum T
	for i := idx + 1; i > 0; i -= i & -i {
		sum += s.tree[i]
	}
	return sum
}

func (s *smallBIT[T]) get(idx int) T {
	if idx == 0 {
		return s.query(0)
	}
	return s.query(idx) - s.query(idx-1)
}

func (s *smallBIT[T]) set(idx int, v T) {
	s.update(idx, v-s.get(idx))
}

func (s *smallBIT[T]) clear() {
	var zero T
	for i := range s.tree {
		s.tree[i] = zero
	}
}

// grow materializes every logical value at the old length, then rebuilds
// either a bigger Small or, once newLen exceeds cap, a fullBIT seeded
// from the same values.
func (s *smallBIT[T]) grow(newLen int) tier[T] {
	if newLen <= s.len() {
		return s
	}

	old := s.len()
	vals := make([]T, old)
	for i := 0; i < old; i++ {
		vals[i] = s.get(i)
	}

	if newLen > s.cap {
		full := newFullBIT[T](newLen, s.cap)
		for i, v := range vals {
			full.update(i, v)
		}
		return full
	}

	rebuilt := newSmallBIT[T](newLen, s.cap)
	for i, v := range vals {
		rebuilt.update(i, v)
	}
	return rebuilt
}

// lowerBound is the classic BIT binary search, valid when all stored
// deltas are non-negative (the usual Fenwick lower_bound caveat).
func (s *smallBIT[T]) lowerBound(target T) (int, bool) {
	n := s.len()
	if n == 0 {
		return 0, false
	}

	pos := 0
	var acc T
	pw := 1
	for pw*2 <= n {
		pw *= 2
	}

	for ; pw > 0; pw /= 2 {
		next := pos + pw
		if next <= n && acc+s.tree[next] < target {
			pos = next
			acc += s.tree[next]
		}
	}

	if pos >= n {
		return 0, false
	}
	return pos, true
}
