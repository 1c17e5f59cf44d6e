package flex

import (
	"github.com/arloliu/varind/cell"
	"github.com/arloliu/varind/compress"
	"github.com/arloliu/varind/endian"
	"github.com/arloliu/varind/errs"
	"github.com/arloliu/varind/format"
	"github.com/arloliu/varind/internal/pool"
)

var blockEngine = endian.GetLittleEndianEngine()

// block is one multilist segment: either hot (its Sequence is live and
// uncompressed) or cold (compressed bytes only, Sequence nil).
type block struct {
	seq        *Sequence
	compressed []byte
	count      int // entries in this block, valid whether hot or cold
}

// Multilist is an ordered list of Sequence blocks, each up to
// BlockCapacity entries. Freeze compresses every block except the last;
// those cold blocks are then held compressed.
type Multilist struct {
	BlockCapacity int
	codec         compress.Codec
	algorithm     format.CompressionType
	blocks        []*block
	stats         compress.CompressionStats
}

// NewMultilist returns a Multilist using the given compression for cold
// blocks. The codec actually used may differ from compression: small
// BlockCapacity values route through compress.SelectCodec, which
// downgrades algorithms whose per-call overhead wouldn't pay off on a
// block that size.
func NewMultilist(blockCapacity int, compression format.CompressionType) (*Multilist, error) {
	codec, err := compress.SelectCodec(compression, blockCapacity)
	if err != nil {
		return nil, err
	}

	return &Multilist{BlockCapacity: blockCapacity, codec: codec, algorithm: compression}, nil
}

// Stats returns the cumulative compression statistics across every Freeze
// call made on this Multilist so far.
func (m *Multilist) Stats() compress.CompressionStats {
	return m.stats
}

// Len returns the total entry count across all blocks.
func (m *Multilist) Len() int {
	n := 0
	for _, b := range m.blocks {
		n += b.count
	}
	return n
}

// Append adds c to the list, opening a new hot block once the last one
// reaches BlockCapacity.
func (m *Multilist) Append(c cell.Cell) error {
	if len(m.blocks) == 0 || m.blocks[len(m.blocks)-1].count >= m.BlockCapacity {
		m.blocks = append(m.blocks, &block{seq: NewSequence()})
	}

	last := m.blocks[len(m.blocks)-1]
	if last.seq == nil {
		if err := m.thaw(last); err != nil {
			return err
		}
	}
	last.seq.Append(c)
	last.count++

	return nil
}

// serializeBlock produces the serialized form compressed blocks hold: the entry
// offset index followed by the packed entry bytes, so thawing never has
// to re-derive entry boundaries from the payload itself.
func serializeBlock(seq *Sequence) []byte {
	n := len(seq.offsets)
	out := make([]byte, 4+4*n+seq.buf.Len())

	blockEngine.PutUint32(out, uint32(n))
	for i, off := range seq.offsets {
		blockEngine.PutUint32(out[4+4*i:], off)
	}
	copy(out[4+4*n:], seq.buf.Bytes())

	return out
}

func deserializeBlock(raw []byte, into *pool.Buffer) (offsets []uint32) {
	n := int(blockEngine.Uint32(raw))
	offsets = make([]uint32, n)
	for i := range offsets {
		offsets[i] = blockEngine.Uint32(raw[4+4*i:])
	}

	into.Reset()
	into.MustWrite(raw[4+4*n:])

	return offsets
}

// Freeze compresses every block except the last (the list's current hot
// block), releasing their uncompressed buffers and accumulating Stats.
func (m *Multilist) Freeze() error {
	for i := 0; i < len(m.blocks)-1; i++ {
		b := m.blocks[i]
		if b.seq == nil {
			continue
		}

		serialized := serializeBlock(b.seq)
		compressed, err := m.codec.Compress(serialized)
		if err != nil {
			return err
		}

		m.stats.Algorithm = m.algorithm
		m.stats.OriginalSize += int64(len(serialized))
		m.stats.CompressedSize += int64(len(compressed))

		b.compressed = compressed
		b.seq.Release()
		b.seq = nil
	}

	return nil
}

func (m *Multilist) thaw(b *block) error {
	raw, err := m.codec.Decompress(b.compressed)
	if err != nil {
		return err
	}

	seq := NewSequence()
	seq.offsets = deserializeBlock(raw, seq.buf)

	b.seq = seq
	b.compressed = nil

	return nil
}

// Handle is a per-caller cursor into a Multilist, carrying scratch space
// for decompressing cold blocks. A cell returned by GetEntry is valid only
// until the next call on the same Handle, matching the teacher's
// documented scratch-reuse rule for block access.
type Handle struct {
	m       *Multilist
	scratch *pool.Buffer
}

// NewHandle returns a Handle over m.
func (m *Multilist) NewHandle() *Handle {
	return &Handle{m: m, scratch: pool.GetBlockBuffer()}
}

// Release returns the handle's scratch buffer to the pool.
func (h *Handle) Release() {
	pool.PutBlockBuffer(h.scratch)
	h.scratch = nil
}

// GetEntry decodes the i'th logical entry across the whole list, walking
// blocks and decompressing the owning one into the handle's scratch buffer
// if it is cold. The returned cell is valid only until the next call on h.
func (h *Handle) GetEntry(i int) (cell.Cell, error) {
	blockIdx, within, err := h.m.locate(i)
	if err != nil {
		return cell.Cell{}, err
	}

	b := h.m.blocks[blockIdx]
	if b.seq != nil {
		return b.seq.At(within), nil
	}

	raw, err := h.m.codec.Decompress(b.compressed)
	if err != nil {
		return cell.Cell{}, err
	}

	offsets := deserializeBlock(raw, h.scratch)

	tmp := &Sequence{buf: h.scratch, offsets: offsets, midHint: -1}

	return tmp.At(within), nil
}

func (m *Multilist) locate(i int) (blockIdx, within int, err error) {
	if i < 0 {
		return 0, 0, errs.ErrIndexOutOfRange
	}

	remaining := i
	for idx, b := range m.blocks {
		if remaining < b.count {
			return idx, remaining, nil
		}
		remaining -= b.count
	}

	return 0, 0, errs.ErrIndexOutOfRange
}
