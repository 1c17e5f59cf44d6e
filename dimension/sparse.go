package dimension

import (
	ibits "github.com/arloliu/varind/internal/bits"

	"github.com/arloliu/varind/endian"
	"github.com/arloliu/varind/varint"
)

// ChunkSize is the number of logical entries addressed by one sparse
// chunk. The chunk index width (12 bits, ChunkIndexBits) only covers
// 0..4095, so chunks are sized to that range rather than the full 64K
// span the chunking scheme is modeled after — see DESIGN.md.
const ChunkSize = 1 << ChunkIndexBits

// ChunkIndexBits is the bit width of a packed in-chunk index.
const ChunkIndexBits = 12

// ChunkKind identifies how a sparse chunk's body is laid out.
type ChunkKind uint8

const (
	ChunkAllEmpty ChunkKind = iota
	ChunkAllFull
	ChunkSparseSet
	ChunkSparseClear
	ChunkDirect
)

// EncodeAllEmptyChunk / EncodeAllFullChunk are header-only: one kind byte.
func EncodeAllEmptyChunk(dst []byte) int { dst[0] = byte(ChunkAllEmpty); return 1 }
func EncodeAllFullChunk(dst []byte) int  { dst[0] = byte(ChunkAllFull); return 1 }

// EncodeSparseSetChunk writes a SPARSE-SET chunk: kind byte, tagged count,
// the set indices packed at ChunkIndexBits each, then count value blobs of
// width bytes each.
func EncodeSparseSetChunk(dst []byte, indices []int, values []uint64, width int, engine endian.EndianEngine) int {
	dst[0] = byte(ChunkSparseSet)
	off := 1
	off += varint.PutTagged(dst[off:], uint64(len(indices)))

	w := ibits.NewWriterSize(len(indices) * ChunkIndexBits / 8)
	for _, idx := range indices {
		w.PutBits(uint64(idx), ChunkIndexBits)
	}
	idxBytes := w.Bytes()
	copy(dst[off:], idxBytes)
	off += len(idxBytes)

	for _, v := range values {
		varint.PutExternalFixed(dst[off:], v, width, engine)
		off += width
	}

	return off
}

// EncodeSparseClearChunk writes a SPARSE-CLEAR chunk (boolean matrices
// only): kind byte, tagged count, the cleared indices packed at
// ChunkIndexBits each. No value blobs; clear implies false.
func EncodeSparseClearChunk(dst []byte, indices []int) int {
	dst[0] = byte(ChunkSparseClear)
	off := 1
	off += varint.PutTagged(dst[off:], uint64(len(indices)))

	w := ibits.NewWriterSize(len(indices) * ChunkIndexBits / 8)
	for _, idx := range indices {
		w.PutBits(uint64(idx), ChunkIndexBits)
	}
	idxBytes := w.Bytes()
	copy(dst[off:], idxBytes)
	off += len(idxBytes)

	return off
}

// EncodeDirectChunk writes a DIRECT chunk: kind byte followed by all
// ChunkSize values dense, width bytes each.
func EncodeDirectChunk(dst []byte, values []uint64, width int, engine endian.EndianEngine) int {
	dst[0] = byte(ChunkDirect)
	off := 1
	for _, v := range values {
		varint.PutExternalFixed(dst[off:], v, width, engine)
		off += width
	}
	return off
}

// DecodeChunkKind reads a chunk's kind byte without consuming the body.
func DecodeChunkKind(src []byte) ChunkKind { return ChunkKind(src[0]) }

// DecodeSparseIndices decodes a SPARSE-SET or SPARSE-CLEAR index list
// (the kind byte must already be consumed by the caller, i.e. src starts at
// the tagged count) and returns the indices plus bytes consumed.
func DecodeSparseIndices(src []byte) ([]int, int) {
	count, n := varint.GetTagged(src)
	off := n

	idxByteLen := (int(count)*ChunkIndexBits + 7) / 8
	r := ibits.NewReader(src[off : off+idxByteLen])
	off += idxByteLen

	indices := make([]int, count)
	for i := range indices {
		indices[i] = int(r.GetBits(ChunkIndexBits))
	}

	return indices, off
}
