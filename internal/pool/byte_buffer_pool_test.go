package pool

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_BytesLenReset(t *testing.T) {
	bb := newBuffer(CodecBufferDefaultSize)
	require.Equal(t, 0, bb.Len())

	bb.MustWrite([]byte("hello"))
	assert.Equal(t, []byte("hello"), bb.Bytes())
	assert.Equal(t, 5, bb.Len())

	originalCap := cap(bb.B)
	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

func TestBuffer_MustWrite_Accumulates(t *testing.T) {
	bb := newBuffer(CodecBufferDefaultSize)
	bb.MustWrite([]byte("foo"))
	bb.MustWrite([]byte("bar"))
	assert.Equal(t, []byte("foobar"), bb.Bytes())
}

func TestBuffer_MustWrite_GrowsPastInitialCapacity(t *testing.T) {
	bb := newBuffer(4)
	data := bytes.Repeat([]byte{'x'}, 4096)
	bb.MustWrite(data)
	assert.Equal(t, data, bb.Bytes())
}

func TestBuffer_SetLength_TruncatesAndReextends(t *testing.T) {
	bb := newBuffer(CodecBufferDefaultSize)
	bb.MustWrite([]byte("abcdef"))

	bb.SetLength(3)
	assert.Equal(t, []byte("abc"), bb.Bytes())

	bb.SetLength(6)
	assert.Equal(t, 6, bb.Len())
}

func TestBuffer_SetLength_PanicsOnInvalidLength(t *testing.T) {
	bb := newBuffer(CodecBufferDefaultSize)
	bb.MustWrite([]byte("abc"))

	assert.Panics(t, func() { bb.SetLength(-1) })
	assert.Panics(t, func() { bb.SetLength(cap(bb.B) + 1) })
}

func TestBuffer_WriteTo(t *testing.T) {
	bb := newBuffer(CodecBufferDefaultSize)
	bb.MustWrite([]byte("payload"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, "payload", out.String())
}

type errWriter struct{}

func (errWriter) Write(p []byte) (int, error) { return 0, io.ErrClosedPipe }

func TestBuffer_WriteTo_PropagatesError(t *testing.T) {
	bb := newBuffer(CodecBufferDefaultSize)
	bb.MustWrite([]byte("x"))

	_, err := bb.WriteTo(errWriter{})
	require.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestCodecBufferPool_GetPutRoundTrip(t *testing.T) {
	bb := GetCodecBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())

	bb.MustWrite([]byte("accumulated field"))
	PutCodecBuffer(bb)

	reused := GetCodecBuffer()
	assert.Equal(t, 0, reused.Len(), "pooled buffers come back reset")
}

func TestPutCodecBuffer_Nil_NoPanic(t *testing.T) {
	assert.NotPanics(t, func() { PutCodecBuffer(nil) })
}

func TestCodecBufferPool_DiscardsOversizedBuffers(t *testing.T) {
	bb := newBuffer(CodecBufferDefaultSize)
	bb.MustWrite(bytes.Repeat([]byte{'x'}, CodecBufferMaxThresh+1))

	PutCodecBuffer(bb)

	// The oversized buffer was discarded, not pooled; draining the pool
	// should never surface it.
	for i := 0; i < 8; i++ {
		got := GetCodecBuffer()
		assert.LessOrEqual(t, cap(got.B), CodecBufferMaxThresh)
	}
}

func TestBlockBufferPool_GetPutRoundTrip(t *testing.T) {
	bb := GetBlockBuffer()
	require.NotNil(t, bb)

	bb.MustWrite(bytes.Repeat([]byte{'b'}, 1024))
	PutBlockBuffer(bb)

	reused := GetBlockBuffer()
	assert.Equal(t, 0, reused.Len())
}

func TestBlockBufferPool_DiscardsPastBlockThreshold(t *testing.T) {
	bb := newBuffer(BlockBufferDefaultSize)
	bb.MustWrite(bytes.Repeat([]byte{'y'}, BlockBufferMaxThresh+1))

	PutBlockBuffer(bb)

	got := GetBlockBuffer()
	assert.LessOrEqual(t, cap(got.B), BlockBufferMaxThresh)
}

func TestCodecAndBlockPools_AreIndependent(t *testing.T) {
	codec := GetCodecBuffer()
	block := GetBlockBuffer()

	assert.Less(t, cap(codec.B), cap(block.B)+1)
	assert.GreaterOrEqual(t, cap(block.B), BlockBufferDefaultSize)

	PutCodecBuffer(codec)
	PutBlockBuffer(block)
}

func TestBufferPool_ConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			bb := GetCodecBuffer()
			bb.MustWrite(bytes.Repeat([]byte{byte(n)}, 64))
			PutCodecBuffer(bb)
		}(i)
	}
	wg.Wait()
}
