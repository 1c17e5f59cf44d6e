// Package segtree implements a tiered segment tree over the numeric cell
// types, parameterized at construction by a fixed fold operation (sum,
// min, or max). Like fenwick, a Small tier covers the common case and
// promotes to a Full tier, lazy-propagation-backed, past a per-type cap.
package segtree

import (
	"github.com/arloliu/varind/cell"
)

// Op selects the tree's fold operation, fixed for the tree's lifetime.
type Op int

const (
	OpSum Op = iota
	OpMin
	OpMax
)

// lazyKind is the single semantic each Op exposes for range updates, per
// a fixed sum-is-additive / min-max-is-assigning rule rather than a
// choice made ad hoc per call: Sum composes pending deltas additively
// (aggregate gains delta*range on flush); Min/Max assign a pending value
// to every descendant (aggregate becomes delta on flush).
type lazyKind int

const (
	lazyAdditive lazyKind = iota
	lazyAssigning
)

func (o Op) lazyKind() lazyKind {
	if o == OpSum {
		return lazyAdditive
	}
	return lazyAssigning
}

// combineFunc folds two adjacent node values into their parent's value.
type combineFunc[T cell.Numeric] func(a, b T) T

func combineFor[T cell.Numeric](op Op) combineFunc[T] {
	switch op {
	case OpSum:
		return func(a, b T) T { return a + b }
	case OpMin:
		return func(a, b T) T {
			if a < b {
				return a
			}
			return b
		}
	case OpMax:
		return func(a, b T) T {
			if a > b {
				return a
			}
			return b
		}
	default:
		return func(a, b T) T { return a }
	}
}

// tier is the tagged-sum interface Small and Full both satisfy.
type tier[T cell.Numeric] interface {
	get(idx int) T
	pointUpdate(idx int, v T)
	rangeApply(l, r int, delta T)
	query(l, r int) T
	len() int
	grow(newLen int) tier[T]
	clear()
}

// Config holds tunables set via functional options at construction.
type Config struct {
	smallCap int
}

// Option configures a Config at construction; like fenwick's, these never
// fail so there is no error path to thread through apply.
type Option func(*Config)

// WithSmallCap overrides the element count at which Small promotes to Full.
func WithSmallCap(n int) Option {
	return func(c *Config) { c.smallCap = n }
}

// Per-type Small caps: narrower element widths afford a larger Small
// tier for the same memory budget. Cell.Numeric only instantiates at
// 64-bit (int64/uint64/float64) and 32-bit (float32) widths, so two
// tiers of the spec's four named caps apply here; see DESIGN.md.
const (
	defaultSmallCap64 = 8192
	defaultSmallCap32 = 16384
)

// Tree is a tiered segment tree over T, folding under a fixed Op.
type Tree[T cell.Numeric] struct {
	t        tier[T]
	op       Op
	identity T
	combine  combineFunc[T]
	smallCap int
}

// New returns an empty Tree with logical length n, folding under op, with
// identity as the fold's neutral element (0 for Sum, +Inf-equivalent for
// Min, -Inf-equivalent for Max — the caller's choice of T's range).
func New[T cell.Numeric](n int, op Op, identity T, opts ...Option) *Tree[T] {
	cfg := &Config{smallCap: defaultCapFor[T]()}
	for _, opt := range opts {
		opt(cfg)
	}

	combine := combineFor[T](op)

	tr := &Tree[T]{op: op, identity: identity, combine: combine, smallCap: cfg.smallCap}
	if n <= cfg.smallCap {
		tr.t = newSmallTierKind[T](n, identity, combine, op.lazyKind(), cfg.smallCap)
	} else {
		tr.t = newFullTier[T](n, identity, combine, op.lazyKind(), cfg.smallCap)
	}

	return tr
}

func defaultCapFor[T cell.Numeric]() int {
	var zero T
	switch any(zero).(type) {
	case float32:
		return defaultSmallCap32
	default:
		return defaultSmallCap64
	}
}

// Len returns the tree's logical length.
func (t *Tree[T]) Len() int { return t.t.len() }

// Get returns the logical value at idx.
func (t *Tree[T]) Get(idx int) T { return t.t.get(idx) }

// Update overwrites the logical value at idx (a point update).
func (t *Tree[T]) Update(idx int, v T) {
	t.ensureLen(idx + 1)
	t.t.pointUpdate(idx, v)
}

// Query folds [l, r] under the tree's Op.
func (t *Tree[T]) Query(l, r int) T { return t.t.query(l, r) }

// RangeApply applies delta to every index in [l, r]: additively for Sum,
// by assignment for Min/Max, per the tree's fixed Op.
func (t *Tree[T]) RangeApply(l, r int, delta T) {
	t.ensureLen(r + 1)
	t.t.rangeApply(l, r, delta)
}

// Clear resets every logical value to the tree's identity.
func (t *Tree[T]) Clear() { t.t.clear() }

// Grow extends the tree's logical length to n, preserving existing
// values. Small promotes to Full only when n exceeds its cap; a jump to
// any length within the cap, however sparse, rebuilds Small with the new
// slots set to identity.
func (t *Tree[T]) Grow(n int) {
	if n <= t.t.len() {
		return
	}
	t.t = t.t.grow(n)
}

func (t *Tree[T]) ensureLen(n int) {
	if n > t.t.len() {
		t.Grow(n)
	}
}
