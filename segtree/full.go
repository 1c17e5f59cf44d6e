package segtree

import "github.com/arloliu/varind/cell"

// lazyCell is one pending range update. Its semantic (additive vs
// assigning) is not stored per-cell: the tree's Op fixes a single
// semantic for its whole lifetime (Sum is additive, Min/Max assigning),
// so fullTier.kind is the one source of truth and every lazyCell in the
// tree is interpreted the same way.
type lazyCell[T cell.Numeric] struct {
	HasPending bool
	Value      T
}

// fullTier is the Full tier: a node array with a parallel lazy array,
// flushed on every descent past a non-leaf.
type fullTier[T cell.Numeric] struct {
	nodes    []T
	lazy     []lazyCell[T]
	p        int
	n        int
	identity T
	combine  combineFunc[T]
	kind     lazyKind
	cap      int
}

func newFullTier[T cell.Numeric](n int, identity T, combine combineFunc[T], kind lazyKind, cap int) *fullTier[T] {
	p := nextPow2(n)
	if p == 0 {
		p = 1
	}
	nodes := make([]T, 2*p)
	for i := range nodes {
		nodes[i] = identity
	}
	return &fullTier[T]{
		nodes: nodes, lazy: make([]lazyCell[T], 2*p),
		p: p, n: n, identity: identity, combine: combine, kind: kind, cap: cap,
	}
}

func (f *fullTier[T]) len() int { return f.n }

// apply folds delta directly into node's aggregate (covering length
// elements) and queues it as that node's own pending lazy, composing
// with whatever was already pending for the additive case.
func (f *fullTier[T]) apply(node, length int, delta T) {
	if f.kind == lazyAdditive {
		f.nodes[node] += delta * T(length)
		if f.lazy[node].HasPending {
			f.lazy[node].Value += delta
		} else {
			f.lazy[node] = lazyCell[T]{HasPending: true, Value: delta}
		}
		return
	}

	f.nodes[node] = delta
	f.lazy[node] = lazyCell[T]{HasPending: true, Value: delta}
}

func (f *fullTier[T]) flush(node, nl, nr int) {
	lc := f.lazy[node]
	if !lc.HasPending {
		return
	}

	mid := (nl + nr) / 2
	f.apply(2*node, mid-nl+1, lc.Value)
	f.apply(2*node+1, nr-mid, lc.Value)
	f.lazy[node] = lazyCell[T]{}
}

func (f *fullTier[T]) get(idx int) T { return f.query(idx, idx) }

func (f *fullTier[T]) pointUpdate(idx int, v T) {
	f.setNode(1, 0, f.p-1, idx, v)
}

func (f *fullTier[T]) setNode(node, nl, nr, idx int, v T) {
	if nl == nr {
		f.nodes[node] = v
		f.lazy[node] = lazyCell[T]{}
		return
	}

	f.flush(node, nl, nr)
	mid := (nl + nr) / 2
	if idx <= mid {
		f.setNode(2*node, nl, mid, idx, v)
	} else {
		f.setNode(2*node+1, mid+1, nr, idx, v)
	}
	f.nodes[node] = f.combine(f.nodes[2*node], f.nodes[2*node+1])
}

func (f *fullTier[T]) rangeApply(ql, qr int, delta T) {
	f.updateNode(1, 0, f.p-1, ql, qr, delta)
}

func (f *fullTier[T]) updateNode(node, nl, nr, ql, qr int, delta T) {
	if qr < nl || nr < ql {
		return
	}
	if ql <= nl && nr <= qr {
		f.apply(node, nr-nl+1, delta)
		return
	}

	f.flush(node, nl, nr)
	mid := (nl + nr) / 2
	f.updateNode(2*node, nl, mid, ql, qr, delta)
	f.updateNode(2*node+1, mid+1, nr, ql, qr, delta)
	f.nodes[node] = f.combine(f.nodes[2*node], f.nodes[2*node+1])
}

func (f *fullTier[T]) query(ql, qr int) T {
	return f.queryNode(1, 0, f.p-1, ql, qr)
}

func (f *fullTier[T]) queryNode(node, nl, nr, ql, qr int) T {
	if qr < nl || nr < ql {
		return f.identity
	}
	if ql <= nl && nr <= qr {
		return f.nodes[node]
	}

	f.flush(node, nl, nr)
	mid := (nl + nr) / 2
	return f.combine(f.queryNode(2*node, nl, mid, ql, qr), f.queryNode(2*node+1, mid+1, nr, ql, qr))
}

func (f *fullTier[T]) clear() {
	for i := range f.nodes {
		f.nodes[i] = f.identity
		f.lazy[i] = lazyCell[T]{}
	}
}

func (f *fullTier[T]) grow(newLen int) tier[T] {
	if newLen <= f.n {
		return f
	}

	vals := make([]T, f.n)
	for i := 0; i < f.n; i++ {
		vals[i] = f.get(i)
	}

	next := newFullTier[T](newLen, f.identity, f.combine, f.kind, f.cap)
	for i, v := range vals {
		next.pointUpdate(i, v)
	}
	return next
}
