package segtree

import "github.com/arloliu/varind/cell"

// smallTier is the Small tier: a contiguous array-based segment tree,
// leaves at [p, 2p). It tracks its own cap so grow can promote itself to
// fullTier once a new length would exceed it.
type smallTier[T cell.Numeric] struct {
	tree     []T
	p        int // leaf base; smallest power of two >= n (min 1)
	n        int // logical length
	identity T
	combine  combineFunc[T]
	kind     lazyKind
	cap      int
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

func newSmallTierKind[T cell.Numeric](n int, identity T, combine combineFunc[T], kind lazyKind, cap int) *smallTier[T] {
	p := nextPow2(n)
	if p == 0 {
		p = 1
	}
	tree := make([]T, 2*p)
	for i := range tree {
		tree[i] = identity
	}
	return &smallTier[T]{tree: tree, p: p, n: n, identity: identity, combine: combine, kind: kind, cap: cap}
}

func (s *smallTier[T]) len() int { return s.n }

func (s *smallTier[T]) get(idx int) T { return s.tree[s.p+idx] }

func (s *smallTier[T]) pointUpdate(idx int, v T) {
	leaf := s.p + idx
	s.tree[leaf] = v
	for leaf > 1 {
		leaf /= 2
		s.tree[leaf] = s.combine(s.tree[2*leaf], s.tree[2*leaf+1])
	}
}

func (s *smallTier[T]) applyDelta(cur, delta T) T {
	if s.kind == lazyAdditive {
		return cur + delta
	}
	return delta
}

// rangeApply is a plain per-element loop: Small has no lazy array, so a
// range update costs O(range) here rather than O(log n); the tradeoff is
// acceptable at Small's scale, matching the same locality-over-asymptote
// choice flex.Sequence makes for InsertSorted.
func (s *smallTier[T]) rangeApply(l, r int, delta T) {
	for i := l; i <= r; i++ {
		s.pointUpdate(i, s.applyDelta(s.get(i), delta))
	}
}

func (s *smallTier[T]) query(l, r int) T {
	res := s.identity
	lo, hi := l+s.p, r+s.p+1
	for lo < hi {
		if lo&1 == 1 {
			res = s.combine(res, s.tree[lo])
			lo++
		}
		if hi&1 == 1 {
			hi--
			res = s.combine(res, s.tree[hi])
		}
		lo /= 2
		hi /= 2
	}
	return res
}

func (s *smallTier[T]) clear() {
	for i := range s.tree {
		s.tree[i] = s.identity
	}
}

func (s *smallTier[T]) grow(newLen int) tier[T] {
	if newLen <= s.n {
		return s
	}

	vals := make([]T, s.n)
	for i := 0; i < s.n; i++ {
		vals[i] = s.get(i)
	}

	if newLen > s.cap {
		full := newFullTier[T](newLen, s.identity, s.combine, s.kind, s.cap)
		for i, v := range vals {
			full.pointUpdate(i, v)
		}
		return full
	}

	rebuilt := newSmallTierKind[T](newLen, s.identity, s.combine, s.kind, s.cap)
	for i, v := range vals {
		rebuilt.pointUpdate(i, v)
	}
	return rebuilt
}
