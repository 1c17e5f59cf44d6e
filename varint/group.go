package varint

import "github.com/arloliu/varind/endian"

// Group encodes a fixed-count tuple of unsigned integers sharing a
// 2-bit-per-field width bitmap: [N][bitmap][v_1..v_N]. Random field access
// needs only N and the bitmap to locate a field, without decoding earlier
// ones' values.

// groupWidthCode maps a byte width (1..8) to the 2-bit bitmap code of the
// smallest field width in {1, 2, 4, 8} that holds it.
func groupWidthCode(width int) byte {
	switch width {
	case 1:
		return 0
	case 2:
		return 1
	case 3, 4:
		return 2
	default:
		return 3
	}
}

// groupCodeWidth reverses groupWidthCode.
func groupCodeWidth(code byte) int {
	switch code {
	case 0:
		return 1
	case 1:
		return 2
	case 2:
		return 4
	default:
		return 8
	}
}

// GroupLen returns the total encoded size for field widths already chosen
// via MinExternalWidth per field; each width is rounded up to the 1, 2, 4
// or 8 bytes a bitmap code can express, as PutGroup does.
func GroupLen(widths []int) int {
	n := len(widths)
	size := 1 + (2*n+7)/8
	for _, w := range widths {
		size += groupCodeWidth(groupWidthCode(w))
	}
	return size
}

// PutGroup encodes values (each field stored at the smallest of 1, 2, 4 or
// 8 bytes that holds it) and returns the number of bytes written.
// len(values) must be <= 64.
func PutGroup(dst []byte, values []uint64, engine endian.EndianEngine) int {
	n := len(values)
	widths := make([]int, n)
	for i, v := range values {
		widths[i] = groupCodeWidth(groupWidthCode(MinExternalWidth(v)))
	}

	dst[0] = byte(n)
	bitmapLen := (2*n + 7) / 8
	bitmap := dst[1 : 1+bitmapLen]
	for i := range bitmap {
		bitmap[i] = 0
	}

	for i, w := range widths {
		PutPacked(bitmap, i, 2, uint64(groupWidthCode(w)))
	}

	off := 1 + bitmapLen
	for i, v := range values {
		w := widths[i]
		PutExternalFixed(dst[off:], v, w, engine)
		off += w
	}

	return off
}

// GetGroupCount reads N from the group's leading byte.
func GetGroupCount(src []byte) int { return int(src[0]) }

// GetGroupField decodes the field at idx without decoding any other field's
// value. n is the tuple's field count (from GetGroupCount).
func GetGroupField(src []byte, n, idx int, engine endian.EndianEngine) uint64 {
	bitmapLen := (2*n + 7) / 8
	bitmap := src[1 : 1+bitmapLen]

	off := 1 + bitmapLen
	for i := 0; i < idx; i++ {
		off += groupCodeWidth(byte(GetPacked(bitmap, i, 2)))
	}
	w := groupCodeWidth(byte(GetPacked(bitmap, idx, 2)))

	return GetExternal(src[off:], w, engine)
}

// GetGroup decodes every field of the tuple.
func GetGroup(src []byte, engine endian.EndianEngine) []uint64 {
	n := GetGroupCount(src)
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		out[i] = GetGroupField(src, n, i, engine)
	}
	return out
}
