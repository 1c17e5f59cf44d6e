// Package dimension implements the matrix/dimension codec: a one-byte
// descriptor plus either a dense row-major entry array or a Roaring-style
// chunked sparse representation.
package dimension

import (
	"github.com/arloliu/varind/endian"
	"github.com/arloliu/varind/varint"
)

// Descriptor packs a matrix's row width, column width, and density flag
// into a single byte: [row_w:4][col_w-1:3][sparse:1].
type Descriptor struct {
	RowWidth int
	ColWidth int
	Sparse   bool
}

// Pack encodes the descriptor to its one-byte wire form.
func (d Descriptor) Pack() byte {
	var b byte
	b |= byte(d.RowWidth&0xF) << 4
	b |= byte((d.ColWidth-1)&0x7) << 1
	if d.Sparse {
		b |= 1
	}
	return b
}

// UnpackDescriptor reverses Pack.
func UnpackDescriptor(b byte) Descriptor {
	return Descriptor{
		RowWidth: int(b>>4) & 0xF,
		ColWidth: int((b>>1)&0x7) + 1,
		Sparse:   b&1 != 0,
	}
}

// EntryOffset computes the flat row-major offset of (row, col) in a matrix
// with the given column count.
func EntryOffset(row, col, cols int) int { return row*cols + col }

// EntryGetUint reads the W-byte entry at offset from a dense buffer.
func EntryGetUint(buf []byte, offset, width int, engine endian.EndianEngine) uint64 {
	return varint.GetExternal(buf[offset*width:], width, engine)
}

// EntrySetUint writes v as the W-byte entry at offset into a dense buffer.
func EntrySetUint(buf []byte, offset, width int, v uint64, engine endian.EndianEngine) {
	varint.PutExternalFixed(buf[offset*width:], v, width, engine)
}

// EntryGetBit reads the boolean entry at offset from a dense bit buffer.
func EntryGetBit(buf []byte, offset int) bool {
	return buf[offset/8]&(1<<uint(7-offset%8)) != 0
}

// EntrySetBit sets or clears the boolean entry at offset in a dense bit buffer.
func EntrySetBit(buf []byte, offset int, v bool) {
	mask := byte(1) << uint(7-offset%8)
	if v {
		buf[offset/8] |= mask
	} else {
		buf[offset/8] &^= mask
	}
}

// EntryToggleBit flips the boolean entry at offset.
func EntryToggleBit(buf []byte, offset int) {
	buf[offset/8] ^= 1 << uint(7-offset%8)
}

// DenseBitLen returns the number of bytes a dense boolean buffer of n
// entries needs.
func DenseBitLen(n int) int { return (n + 7) / 8 }
