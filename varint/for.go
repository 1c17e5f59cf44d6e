package varint

import "github.com/arloliu/varind/endian"

// FOR is Frame-of-Reference block compression: a block stores one base
// (the minimum) plus fixed-width offsets, sized to the block's actual
// range rather than the domain's.

// FORStats is the result of analyzing a block before encoding.
type FORStats struct {
	Min, Max    uint64
	OffsetWidth int // bytes needed to hold Max-Min, minimum 1
}

// AnalyzeFOR computes the base and offset width a block would encode at.
func AnalyzeFOR(values []uint64) FORStats {
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	return FORStats{Min: min, Max: max, OffsetWidth: MinExternalWidth(max - min)}
}

// FORLen returns the encoded size for a block with the given stats and
// element count.
func FORLen(stats FORStats, count int) int {
	return TaggedWidth(stats.Min) + TaggedWidth(uint64(count)) + 1 + count*stats.OffsetWidth
}

// PutFOR encodes values as a FOR block: tagged(min), tagged(count), one
// byte of offset width, then count fixed-width offsets. Returns bytes
// written.
func PutFOR(dst []byte, values []uint64, engine endian.EndianEngine) int {
	stats := AnalyzeFOR(values)

	off := PutTagged(dst, stats.Min)
	off += PutTagged(dst[off:], uint64(len(values)))
	dst[off] = byte(stats.OffsetWidth)
	off++

	for _, v := range values {
		PutExternalFixed(dst[off:], v-stats.Min, stats.OffsetWidth, engine)
		off += stats.OffsetWidth
	}

	return off
}

// forHeader is the decoded shape of a FOR block's fixed header, used by
// both GetFOR and FORAt.
type forHeader struct {
	min         uint64
	count       int
	offsetWidth int
	dataOff     int
}

func getFORHeader(src []byte) forHeader {
	min, n1 := GetTagged(src)
	count, n2 := GetTagged(src[n1:])
	offsetWidth := int(src[n1+n2])

	return forHeader{min: min, count: int(count), offsetWidth: offsetWidth, dataOff: n1 + n2 + 1}
}

// GetFOR decodes an entire FOR block back into its logical values.
func GetFOR(src []byte, engine endian.EndianEngine) ([]uint64, int) {
	h := getFORHeader(src)
	out := make([]uint64, h.count)

	off := h.dataOff
	for i := 0; i < h.count; i++ {
		o := GetExternal(src[off:], h.offsetWidth, engine)
		out[i] = h.min + o
		off += h.offsetWidth
	}

	return out, off
}

// FORAt decodes only the i'th logical value of a FOR block, without
// decoding the others.
func FORAt(src []byte, i int, engine endian.EndianEngine) uint64 {
	h := getFORHeader(src)
	off := h.dataOff + i*h.offsetWidth
	o := GetExternal(src[off:], h.offsetWidth, engine)

	return h.min + o
}
