package dimension

import (
	"testing"

	"github.com/arloliu/varind/endian"
	"github.com/stretchr/testify/require"
)

func TestDescriptor_PackRoundTrip(t *testing.T) {
	cases := []Descriptor{
		{RowWidth: 1, ColWidth: 1, Sparse: false},
		{RowWidth: 8, ColWidth: 8, Sparse: true},
		{RowWidth: 4, ColWidth: 2, Sparse: false},
	}

	for _, d := range cases {
		got := UnpackDescriptor(d.Pack())
		require.Equal(t, d, got)
	}
}

func TestDenseUintAccessors(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	rows, cols, width := 3, 4, 2
	buf := make([]byte, rows*cols*width)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			off := EntryOffset(r, c, cols)
			EntrySetUint(buf, off, width, uint64(r*10+c), engine)
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			off := EntryOffset(r, c, cols)
			require.Equal(t, uint64(r*10+c), EntryGetUint(buf, off, width, engine))
		}
	}
}

func TestDenseBitAccessors(t *testing.T) {
	n := 20
	buf := make([]byte, DenseBitLen(n))

	for i := 0; i < n; i++ {
		EntrySetBit(buf, i, i%3 == 0)
	}
	for i := 0; i < n; i++ {
		require.Equal(t, i%3 == 0, EntryGetBit(buf, i))
	}

	EntryToggleBit(buf, 1)
	require.True(t, EntryGetBit(buf, 1))
	EntryToggleBit(buf, 1)
	require.False(t, EntryGetBit(buf, 1))
}

func TestSparseSetChunk_RoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	indices := []int{0, 5, 100, 4095}
	values := []uint64{1, 2, 300, 4000}
	width := 2

	buf := make([]byte, 1+9+len(indices)*ChunkIndexBits/8+8+len(values)*width)
	n := EncodeSparseSetChunk(buf, indices, values, width, engine)
	require.Equal(t, ChunkSparseSet, DecodeChunkKind(buf))

	gotIdx, off := DecodeSparseIndices(buf[1:])
	require.Equal(t, indices, gotIdx)

	valOff := 1 + off
	for i, v := range values {
		require.Equal(t, v, EntryGetUint(buf[valOff:], i, width, engine))
	}
	require.Equal(t, n, valOff+len(values)*width)
}

func TestSparseClearChunk_RoundTrip(t *testing.T) {
	indices := []int{1, 2, 3, 4094}
	buf := make([]byte, 1+9+len(indices)*ChunkIndexBits/8+8)
	EncodeSparseClearChunk(buf, indices)

	require.Equal(t, ChunkSparseClear, DecodeChunkKind(buf))
	gotIdx, _ := DecodeSparseIndices(buf[1:])
	require.Equal(t, indices, gotIdx)
}

func TestDirectChunk_RoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	values := make([]uint64, ChunkSize)
	for i := range values {
		values[i] = uint64(i % 256)
	}

	buf := make([]byte, 1+ChunkSize*1)
	EncodeDirectChunk(buf, values, 1, engine)
	require.Equal(t, ChunkDirect, DecodeChunkKind(buf))

	for i, v := range values {
		require.Equal(t, v, EntryGetUint(buf[1:], i, 1, engine))
	}
}

func TestAllEmptyAllFullChunk(t *testing.T) {
	buf := make([]byte, 1)
	EncodeAllEmptyChunk(buf)
	require.Equal(t, ChunkAllEmpty, DecodeChunkKind(buf))

	EncodeAllFullChunk(buf)
	require.Equal(t, ChunkAllFull, DecodeChunkKind(buf))
}
