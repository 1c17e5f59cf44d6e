// Package fenwick implements a tiered Fenwick (Binary Indexed) tree over
// the numeric cell types: a contiguous "Small" tier for typical sizes,
// auto-promoting to a block-chunked "Full" tier once it outgrows a
// configured element cap.
package fenwick

import (
	"github.com/arloliu/varind/cell"
)

// tier is the tagged-sum interface both Small and Full implementations
// satisfy; BIT holds whichever is currently active. Go structs don't
// expose spare pointer bits the way a low-bit tag trick needs, so the
// tier switch here is a plain interface value rather than an in-place tag.
type tier[T cell.Numeric] interface {
	update(idx int, delta T)
	query(idx int) T
	get(idx int) T
	set(idx int, v T)
	clear()
	len() int
	grow(newLen int) tier[T]
	lowerBound(target T) (int, bool)
}

// Config holds the tunables set via functional options at construction,
// mirroring the teacher's config-object idiom for encoder construction.
type Config struct {
	smallCap int
}

// Option configures a Config at construction. Options here never fail, so
// unlike the teacher's general-purpose functional-options machinery this
// has no error to thread through apply.
type Option func(*Config)

// WithSmallCap overrides the element count at which Small promotes to Full.
func WithSmallCap(n int) Option {
	return func(c *Config) { c.smallCap = n }
}

const defaultSmallCap = 4096

// BIT is a tiered Fenwick tree over T.
type BIT[T cell.Numeric] struct {
	t        tier[T]
	smallCap int
}

// New returns an empty BIT with the given logical length.
func New[T cell.Numeric](n int, opts ...Option) *BIT[T] {
	cfg := &Config{smallCap: defaultSmallCap}
	for _, opt := range opts {
		opt(cfg)
	}

	b := &BIT[T]{smallCap: cfg.smallCap}
	if n <= cfg.smallCap {
		b.t = newSmallBIT[T](n, cfg.smallCap)
	} else {
		b.t = newFullBIT[T](n, cfg.smallCap)
	}

	return b
}

// Len returns the tree's logical length.
func (b *BIT[T]) Len() int { return b.t.len() }

// Update adds delta at idx, growing capacity first if idx is out of range.
func (b *BIT[T]) Update(idx int, delta T) {
	b.ensureLen(idx + 1)
	b.t.update(idx, delta)
}

// Query returns the prefix sum over [0, idx].
func (b *BIT[T]) Query(idx int) T { return b.t.query(idx) }

// Range returns the sum over [l, r].
func (b *BIT[T]) Range(l, r int) T {
	if l == 0 {
		return b.t.query(r)
	}

	hi := b.t.query(r)
	lo := b.t.query(l - 1)
	v, err := cell.Sub(asCell(hi), asCell(lo))
	if err != nil {
		return hi
	}

	return fromCell[T](v)
}

// Get returns the logical value at idx (not the prefix sum).
func (b *BIT[T]) Get(idx int) T { return b.t.get(idx) }

// Set overwrites the logical value at idx.
func (b *BIT[T]) Set(idx int, v T) {
	b.ensureLen(idx + 1)
	b.t.set(idx, v)
}

// LowerBound returns the smallest index whose prefix sum is >= target, or
// (0, false) if no prefix reaches target.
func (b *BIT[T]) LowerBound(target T) (int, bool) { return b.t.lowerBound(target) }

// Clear resets every logical value to zero.
func (b *BIT[T]) Clear() { b.t.clear() }

// Grow extends the tree's logical length to n, preserving existing values.
// Small's own grow promotes itself to Full once n exceeds its configured
// cap, so BIT never needs to inspect which concrete tier is active.
func (b *BIT[T]) Grow(n int) {
	if n <= b.t.len() {
		return
	}

	b.t = b.t.grow(n)
}

func (b *BIT[T]) ensureLen(n int) {
	if n > b.t.len() {
		b.Grow(n)
	}
}

// asCell/fromCell bridge the generic T and cell.Cell so Range can reuse
// cell.Sub's promotion-aware subtraction without duplicating it per type.
func asCell[T cell.Numeric](v T) cell.Cell {
	switch x := any(v).(type) {
	case int64:
		return cell.Int64(x)
	case uint64:
		return cell.Uint64(x)
	case float32:
		return cell.Float32(x)
	case float64:
		return cell.Float64(x)
	default:
		return cell.Void()
	}
}

func fromCell[T cell.Numeric](c cell.Cell) T {
	var zero T
	switch any(zero).(type) {
	case int64:
		return any(c.AsInt64()).(T)
	case uint64:
		return any(c.AsUint64()).(T)
	case float32:
		return any(c.AsFloat32()).(T)
	case float64:
		return any(c.AsFloat64()).(T)
	default:
		return zero
	}
}
