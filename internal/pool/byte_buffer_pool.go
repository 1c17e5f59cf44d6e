package pool

import (
	"io"
	"sync"
)

// This package draws from two distinct buffer lifetimes:
//
//   - Codec buffers back a single encoder's accumulation (flex.Sequence,
//     trie persistence): filled incrementally via MustWrite,
//     occasionally truncated with SetLength for in-place splices, then either
//     read back with Bytes/Len or flushed to an io.Writer with WriteTo. Sized
//     for one encoded field or entry at a time, so a buffer that grew past
//     CodecBufferMaxThresh almost certainly saw a pathological single write
//     and is discarded rather than pooled.
//   - Block buffers back flex.Multilist's per-Handle decompression scratch:
//     reset and refilled wholesale once per cold-block read, never spliced.
//     Sized for a full block's worth of entries, so the discard threshold is
//     correspondingly larger.
//
// Both share the same growable-slice mechanics but are pooled separately so
// one lifetime's sizing never distorts the other's.
const (
	CodecBufferDefaultSize = 1024 * 16       // 16KiB
	CodecBufferMaxThresh   = 1024 * 128      // 128KiB
	BlockBufferDefaultSize = 1024 * 1024     // 1MiB
	BlockBufferMaxThresh   = 1024 * 1024 * 8 // 8MiB
)

// Buffer is a growable byte accumulator shared by the codec and block
// buffer pools.
type Buffer struct {
	B []byte
}

func newBuffer(defaultSize int) *Buffer {
	return &Buffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *Buffer) Bytes() []byte { return bb.B }

// Reset empties the buffer, retaining its allocated capacity.
func (bb *Buffer) Reset() { bb.B = bb.B[:0] }

// Len returns the number of bytes currently held.
func (bb *Buffer) Len() int { return len(bb.B) }

// MustWrite appends data, growing the buffer as needed.
func (bb *Buffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// SetLength truncates (or re-extends, if within capacity) the buffer to n
// bytes, for splicing a value back into an already-written region.
// Panics if n is negative or exceeds the buffer's capacity.
func (bb *Buffer) SetLength(n int) {
	if n < 0 || n > cap(bb.B) {
		panic("pool.Buffer.SetLength: invalid length")
	}
	bb.B = bb.B[:n]
}

// WriteTo writes the buffer's contents to w.
func (bb *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// bufferPool pools Buffers of a given default size, discarding any that
// grew past maxThreshold rather than returning them for reuse.
type bufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

func newBufferPool(defaultSize, maxThreshold int) *bufferPool {
	return &bufferPool{
		pool: sync.Pool{
			New: func() any { return newBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

func (p *bufferPool) get() *Buffer {
	bb, _ := p.pool.Get().(*Buffer)
	return bb
}

func (p *bufferPool) put(bb *Buffer) {
	if bb == nil {
		return
	}
	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}
	bb.Reset()
	p.pool.Put(bb)
}

var (
	codecPool = newBufferPool(CodecBufferDefaultSize, CodecBufferMaxThresh)
	blockPool = newBufferPool(BlockBufferDefaultSize, BlockBufferMaxThresh)
)

// GetCodecBuffer retrieves a Buffer from the codec accumulation pool.
func GetCodecBuffer() *Buffer { return codecPool.get() }

// PutCodecBuffer returns a Buffer to the codec accumulation pool.
func PutCodecBuffer(bb *Buffer) { codecPool.put(bb) }

// GetBlockBuffer retrieves a Buffer from the multilist block scratch pool.
func GetBlockBuffer() *Buffer { return blockPool.get() }

// PutBlockBuffer returns a Buffer to the multilist block scratch pool.
func PutBlockBuffer(bb *Buffer) { blockPool.put(bb) }
