// Package databox implements the linear databox: a one-byte type tag plus
// a payload of at most 8 bytes, the most compact on-disk form for a single
// typed cell.
package databox

import (
	"math"

	"github.com/arloliu/varind/cell"
	"github.com/arloliu/varind/endian"
	"github.com/arloliu/varind/varint"
)

// Tag identifies a databox's payload shape.
type Tag uint8

const (
	TagInvalid Tag = 0
	TagBytes   Tag = 1

	// neg-1B..neg-8B: negative integers stored as |v|-1 in the minimum width.
	tagNegBase Tag = 2
	// uint-1B..uint-8B: non-negative integers in the minimum width.
	tagUintBase Tag = 10

	TagReal16 Tag = 18
	TagReal32 Tag = 19
	TagReal64 Tag = 20
	TagTrue   Tag = 21
	TagFalse  Tag = 22
	TagNull   Tag = 23
)

var wireEngine = endian.GetLittleEndianEngine()

// Encode writes c's databox form: one tag byte followed by its payload.
func Encode(c cell.Cell) []byte {
	switch c.Tag() {
	case cell.TagBytes:
		return append([]byte{byte(TagBytes)}, c.AsBytes()...)

	case cell.TagUint64:
		return encodeUint(c.AsUint64())

	case cell.TagInt64:
		v := c.AsInt64()
		if v >= 0 {
			return encodeUint(uint64(v))
		}
		mag := uint64(^v) // two's complement: ^v == -v-1 == |v|-1 for v<0
		w := varint.MinExternalWidth(mag)
		out := make([]byte, 1+w)
		out[0] = byte(tagNegBase) + byte(w-1)
		varint.PutExternalFixed(out[1:], mag, w, wireEngine)
		return out

	case cell.TagFloat32:
		return encodeFloat32(c.AsFloat32())

	case cell.TagFloat64:
		d := c.AsFloat64()
		if float64(float32(d)) == d {
			return encodeFloat32(float32(d))
		}
		out := make([]byte, 9)
		out[0] = byte(TagReal64)
		wireEngine.PutUint64(out[1:], math.Float64bits(d))
		return out

	case cell.TagTrue:
		return []byte{byte(TagTrue)}
	case cell.TagFalse:
		return []byte{byte(TagFalse)}
	case cell.TagNull:
		return []byte{byte(TagNull)}
	default:
		return []byte{byte(TagInvalid)}
	}
}

func encodeUint(v uint64) []byte {
	w := varint.MinExternalWidth(v)
	out := make([]byte, 1+w)
	out[0] = byte(tagUintBase) + byte(w-1)
	varint.PutExternalFixed(out[1:], v, w, wireEngine)
	return out
}

func encodeFloat32(f float32) []byte {
	h := Float32ToFloat16(f)
	if Float16ToFloat32(h) == f {
		out := make([]byte, 3)
		out[0] = byte(TagReal16)
		out[1] = byte(h)
		out[2] = byte(h >> 8)
		return out
	}

	out := make([]byte, 5)
	out[0] = byte(TagReal32)
	bits := math.Float32bits(f)
	out[1] = byte(bits)
	out[2] = byte(bits >> 8)
	out[3] = byte(bits >> 16)
	out[4] = byte(bits >> 24)
	return out
}

// Decode reverses Encode. The restored variant follows the tag, not the
// cell that was encoded: uint tags decode to Uint64 (so a non-negative
// Int64 comes back as Uint64), neg tags to Int64, real-16 and real-32 to
// Float32 (so a Float64 downgraded at encode time comes back as Float32),
// and real-64 to Float64.
func Decode(b []byte) cell.Cell {
	tag := Tag(b[0])
	payload := b[1:]

	switch {
	case tag == TagBytes:
		return cell.Bytes(payload)

	case tag == TagTrue:
		return cell.Bool(true)
	case tag == TagFalse:
		return cell.Bool(false)
	case tag == TagNull:
		return cell.Null()

	case tag == TagReal16:
		h := uint16(payload[0]) | uint16(payload[1])<<8
		return cell.Float32(Float16ToFloat32(h))

	case tag == TagReal32:
		bits := uint32(payload[0]) | uint32(payload[1])<<8 | uint32(payload[2])<<16 | uint32(payload[3])<<24
		return cell.Float32(math.Float32frombits(bits))

	case tag == TagReal64:
		bits := wireEngine.Uint64(payload)
		return cell.Float64(math.Float64frombits(bits))

	case tag >= tagUintBase && tag < tagUintBase+8:
		w := int(tag-tagUintBase) + 1
		v := varint.GetExternal(payload, w, wireEngine)
		return cell.Uint64(v)

	case tag >= tagNegBase && tag < tagNegBase+8:
		w := int(tag-tagNegBase) + 1
		mag := varint.GetExternal(payload, w, wireEngine)
		return cell.Int64(^int64(mag))

	default:
		return cell.Void()
	}
}
