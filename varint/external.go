// Package varint provides the variable-width integer codec suite: external
// fixed-width encoding, sort-order-preserving tagged encoding, classic
// continuation-byte chained encoding, dense 1/2/4-bit packed arrays, a
// 2-bit-per-field grouped tuple encoding, and Frame-of-Reference block
// compression.
//
// PutExternal, PutTagged, PutChained, PutGroup and PutFOR return the number
// of bytes they wrote; GetTagged, GetChained and GetFOR also return the
// number of bytes they consumed. PutExternalFixed and the index-addressed
// PutPacked return nothing, and the Elias forms in elias.go write into an
// internal/bits Writer and return only an error. None
// of the codecs allocate their own output buffer — callers own dst and are
// responsible for sizing it, typically from a pooled accumulation buffer.
package varint

import (
	"github.com/arloliu/varind/endian"
)

// MinExternalWidth returns the minimum width in {1..8} such that v fits in
// width bytes unsigned.
func MinExternalWidth(v uint64) int {
	w := 1
	for v>>(uint(w)*8) != 0 {
		w++
	}

	return w
}

// PutExternal writes v in engine's byte order using the minimum width
// in {1..8} and returns that width. Width is not embedded in the stream;
// the reader must be told it out-of-band.
func PutExternal(dst []byte, v uint64, engine endian.EndianEngine) int {
	w := MinExternalWidth(v)
	putExternalFixed(dst, v, w, engine)

	return w
}

// PutExternalFixed writes v using exactly width bytes in engine's byte
// order, never shrinking even if v fits in fewer bytes. Used when
// persisting into an already-sized slot, e.g. in-place arithmetic update.
func PutExternalFixed(dst []byte, v uint64, width int, engine endian.EndianEngine) {
	putExternalFixed(dst, v, width, engine)
}

func putExternalFixed(dst []byte, v uint64, width int, engine endian.EndianEngine) {
	var tmp [8]byte
	engine.PutUint64(tmp[:], v)

	if engine == endian.GetBigEndianEngine() {
		// PutUint64 wrote MSB-first; the value's least-significant `width`
		// bytes are the *last* `width` bytes of tmp.
		copy(dst[:width], tmp[8-width:])
		return
	}

	copy(dst[:width], tmp[:width])
}

// GetExternal reads a width-byte (per engine's byte order) unsigned integer.
func GetExternal(src []byte, width int, engine endian.EndianEngine) uint64 {
	var tmp [8]byte

	if engine == endian.GetBigEndianEngine() {
		copy(tmp[8-width:], src[:width])
	} else {
		copy(tmp[:width], src[:width])
	}

	return engine.Uint64(tmp[:])
}
