package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances; the type carries
// internal window state that's worth reusing across block compresses.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor trades compression ratio for fast decompression, the
// better fit for multilist blocks that are read back far more often than
// they're frozen.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses a serialized block using a pooled lz4.Compressor.
// Returns nil for an empty block.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dstSize := lz4.CompressBlockBound(len(data))
	dst := make([]byte, dstSize)

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// blockSizeLimit bounds the adaptive decompress buffer: a multilist block
// never serializes past a few entries' worth of databox cells plus a
// 4-byte-per-entry offset index, so a compressed block expanding past 16MB
// on decode means corrupted input, not a legitimately large block.
const blockSizeLimit = 16 * 1024 * 1024

// Decompress reverses Compress. Since LZ4 block mode carries no
// decompressed-size header, this grows its scratch buffer geometrically
// (starting at 4x the compressed size, doubling on a too-small-buffer
// error) until it succeeds or exceeds blockSizeLimit.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bufSize := len(data) * 4

	for bufSize <= blockSizeLimit {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < blockSizeLimit {
				bufSize *= 2
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
