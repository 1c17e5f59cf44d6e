// Package cell implements the typed numeric cell shared by the codec,
// tree, and trie packages: a discriminated value carrying one variant tag
// plus a small payload.
//
// Cell is by-value; callers own it, and its lifetime ends at scope exit
// like any other Go value. Arithmetic and comparison are total functions
// with a fixed promotion rule (double > float > signed > unsigned; void
// is identity), replacing the inheritance-by-casting the source uses for
// its numeric variants with a tagged sum whose operations never need a
// type switch at the call site.
package cell

import (
	"math"

	"github.com/arloliu/varind/errs"
)

// Tag identifies which variant a Cell holds.
type Tag uint8

const (
	TagInt64 Tag = iota
	TagUint64
	TagFloat32
	TagFloat64
	TagTrue
	TagFalse
	TagNull
	TagVoid
	TagBytes
)

func (t Tag) String() string {
	switch t {
	case TagInt64:
		return "int64"
	case TagUint64:
		return "uint64"
	case TagFloat32:
		return "float32"
	case TagFloat64:
		return "float64"
	case TagTrue:
		return "true"
	case TagFalse:
		return "false"
	case TagNull:
		return "null"
	case TagVoid:
		return "void"
	case TagBytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// Cell is a discriminated numeric value. The zero Cell is Int64(0)
// (TagInt64 is the zero Tag); use Void() for the identity cell.
type Cell struct {
	tag Tag
	u64 uint64 // numeric payload, reinterpreted per tag
	b   []byte // only populated when tag == TagBytes
}

// Void returns the identity cell.
func Void() Cell { return Cell{tag: TagVoid} }

// Null returns the null cell.
func Null() Cell { return Cell{tag: TagNull} }

// Bool returns True or False.
func Bool(v bool) Cell {
	if v {
		return Cell{tag: TagTrue}
	}
	return Cell{tag: TagFalse}
}

// Int64 wraps a signed 64-bit integer.
func Int64(v int64) Cell { return Cell{tag: TagInt64, u64: uint64(v)} }

// Uint64 wraps an unsigned 64-bit integer.
func Uint64(v uint64) Cell { return Cell{tag: TagUint64, u64: v} }

// Float32 wraps a 32-bit float.
func Float32(v float32) Cell { return Cell{tag: TagFloat32, u64: uint64(math.Float32bits(v))} }

// Float64 wraps a 64-bit float.
func Float64(v float64) Cell { return Cell{tag: TagFloat64, u64: math.Float64bits(v)} }

// Bytes wraps an opaque byte payload.
func Bytes(b []byte) Cell { return Cell{tag: TagBytes, b: b} }

// Tag returns the cell's variant tag.
func (c Cell) Tag() Tag { return c.tag }

// IsNumeric reports whether the cell holds one of the four numeric variants.
func (c Cell) IsNumeric() bool {
	switch c.tag {
	case TagInt64, TagUint64, TagFloat32, TagFloat64:
		return true
	default:
		return false
	}
}

// AsInt64 returns the payload reinterpreted as int64, valid only when Tag() == TagInt64.
func (c Cell) AsInt64() int64 { return int64(c.u64) }

// AsUint64 returns the payload reinterpreted as uint64, valid only when Tag() == TagUint64.
func (c Cell) AsUint64() uint64 { return c.u64 }

// AsFloat32 returns the payload reinterpreted as float32, valid only when Tag() == TagFloat32.
func (c Cell) AsFloat32() float32 { return math.Float32frombits(uint32(c.u64)) }

// AsFloat64 returns the payload reinterpreted as float64, valid only when Tag() == TagFloat64.
func (c Cell) AsFloat64() float64 { return math.Float64frombits(c.u64) }

// AsBool returns true/false for TagTrue/TagFalse cells.
func (c Cell) AsBool() bool { return c.tag == TagTrue }

// AsBytes returns the byte payload, valid only when Tag() == TagBytes.
func (c Cell) AsBytes() []byte { return c.b }

// AsFloat64Value returns the cell's value widened to float64 regardless of
// which numeric variant it holds. Used by promotion-aware arithmetic.
func (c Cell) AsFloat64Value() float64 {
	switch c.tag {
	case TagInt64:
		return float64(c.AsInt64())
	case TagUint64:
		return float64(c.AsUint64())
	case TagFloat32:
		return float64(c.AsFloat32())
	case TagFloat64:
		return c.AsFloat64()
	case TagVoid:
		return 0
	default:
		return math.NaN()
	}
}

// rank orders numeric variants for promotion: unsigned < signed < float < double.
func (c Cell) rank() int {
	switch c.tag {
	case TagUint64:
		return 0
	case TagInt64:
		return 1
	case TagFloat32:
		return 2
	case TagFloat64:
		return 3
	case TagVoid:
		return -1
	default:
		return -2
	}
}

// promotedTag returns the variant two numeric (or void) cells promote to.
func promotedTag(a, b Cell) (Tag, error) {
	ra, rb := a.rank(), b.rank()
	if ra == -2 || rb == -2 {
		return 0, errs.ErrTypeMismatch
	}
	if ra == -1 {
		return b.tag, nil
	}
	if rb == -1 {
		return a.tag, nil
	}
	if ra >= rb {
		return a.tag, nil
	}
	return b.tag, nil
}

// ZeroLike returns a cell of the same variant holding the additive identity.
// ZeroLike of Void is Void.
func (c Cell) ZeroLike() Cell {
	switch c.tag {
	case TagInt64:
		return Int64(0)
	case TagUint64:
		return Uint64(0)
	case TagFloat32:
		return Float32(0)
	case TagFloat64:
		return Float64(0)
	default:
		return Cell{tag: c.tag}
	}
}

// IsZero reports whether the cell's numeric payload equals zero. Void is
// treated as zero for additive-identity purposes.
func (c Cell) IsZero() bool {
	switch c.tag {
	case TagInt64:
		return c.AsInt64() == 0
	case TagUint64:
		return c.AsUint64() == 0
	case TagFloat32:
		return c.AsFloat32() == 0
	case TagFloat64:
		return c.AsFloat64() == 0
	case TagVoid:
		return true
	default:
		return false
	}
}

func fromPromoted(tag Tag, v float64) Cell {
	switch tag {
	case TagInt64:
		return Int64(int64(v))
	case TagUint64:
		return Uint64(uint64(v))
	case TagFloat32:
		return Float32(float32(v))
	case TagFloat64:
		return Float64(v)
	default:
		return Void()
	}
}

// Add returns a+b under the mixed-type promotion rule. Void is identity.
// Returns errs.ErrTypeMismatch if either cell is non-numeric and non-void.
func Add(a, b Cell) (Cell, error) {
	tag, err := promotedTag(a, b)
	if err != nil {
		return Cell{}, err
	}
	if tag == TagInt64 || tag == TagUint64 {
		return Cell{tag: tag, u64: a.u64 + b.u64}, nil
	}

	return fromPromoted(tag, a.AsFloat64Value()+b.AsFloat64Value()), nil
}

// Sub returns a-b under the same promotion rule as Add.
func Sub(a, b Cell) (Cell, error) {
	tag, err := promotedTag(a, b)
	if err != nil {
		return Cell{}, err
	}
	if tag == TagInt64 || tag == TagUint64 {
		return Cell{tag: tag, u64: a.u64 - b.u64}, nil
	}

	return fromPromoted(tag, a.AsFloat64Value()-b.AsFloat64Value()), nil
}

// Compare returns -1, 0, or 1 comparing a and b numerically under
// promotion. Void is less than any value except void, for which it's
// equal. Returns errs.ErrTypeMismatch if either cell is non-numeric and
// non-void.
func Compare(a, b Cell) (int, error) {
	if a.tag == TagVoid && b.tag == TagVoid {
		return 0, nil
	}
	if a.tag == TagVoid {
		if !b.IsNumeric() {
			return 0, errs.ErrTypeMismatch
		}
		return -1, nil
	}
	if b.tag == TagVoid {
		if !a.IsNumeric() {
			return 0, errs.ErrTypeMismatch
		}
		return 1, nil
	}
	if !a.IsNumeric() || !b.IsNumeric() {
		return 0, errs.ErrTypeMismatch
	}

	av, bv := a.AsFloat64Value(), b.AsFloat64Value()
	switch {
	case av < bv:
		return -1, nil
	case av > bv:
		return 1, nil
	default:
		return 0, nil
	}
}

// Numeric is the generic constraint satisfied by the four numeric payload
// kinds the tree packages instantiate over.
type Numeric interface {
	~int64 | ~uint64 | ~float32 | ~float64
}
