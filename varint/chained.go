package varint

// Chained is the classic continuation-byte encoding: each byte carries 7
// value bits plus a high continuation bit, least-significant group first.
// Unlike Tagged it does not preserve sort order, but it is the densest
// encoding for small values and the cheapest to decode a stream of.

// ChainedLen returns the number of bytes PutChained(v) would write.
func ChainedLen(v uint64) int {
	n := 1
	for v >>= 7; v != 0; v >>= 7 {
		n++
	}
	return n
}

// PutChained writes v as a continuation-byte varint and returns the number
// of bytes written.
func PutChained(dst []byte, v uint64) int {
	i := 0
	for v >= 0x80 {
		dst[i] = byte(v) | 0x80
		v >>= 7
		i++
	}
	dst[i] = byte(v)
	return i + 1
}

// GetChained decodes a continuation-byte varint and returns the value and
// the number of bytes consumed.
func GetChained(src []byte) (uint64, int) {
	var v uint64
	var shift uint
	for i, b := range src {
		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, i + 1
		}
		shift += 7
	}
	return v, len(src)
}

// ZigZagEncode maps a signed integer to an unsigned one so that small
// magnitudes (positive or negative) encode to small Chained widths.
func ZigZagEncode(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

// ZigZagDecode reverses ZigZagEncode.
func ZigZagDecode(v uint64) int64 {
	return int64(v>>1) ^ -int64(v&1)
}

// PutChainedSigned zigzag-encodes v and writes it as a Chained varint.
func PutChainedSigned(dst []byte, v int64) int {
	return PutChained(dst, ZigZagEncode(v))
}

// GetChainedSigned decodes a Chained varint and reverses the zigzag mapping.
func GetChainedSigned(src []byte) (int64, int) {
	u, n := GetChained(src)
	return ZigZagDecode(u), n
}
