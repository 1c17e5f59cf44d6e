package compress

import (
	"fmt"

	"github.com/arloliu/varind/format"
)

// Compressor compresses one multilist cold-block payload (a serialized
// Sequence: its offset index followed by packed databox-encoded entries).
type Compressor interface {
	// Compress compresses data and returns the compressed result. The
	// returned slice is newly allocated; data is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor for the same block payload shape.
type Decompressor interface {
	// Decompress returns the original payload for data previously
	// produced by the matching Compressor.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines Compressor and Decompressor; every built-in algorithm in
// this package implements both, since a cold block is always written once
// and read back through the same algorithm. The zstd and LZ4 codecs reuse
// pooled encoder/decoder state; NoOp and S2 hold none.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats summarizes the cold-block compression done by a
// Multilist's Freeze calls (accumulated across calls), for callers that want to see what a compression choice is
// actually buying them on their own data.
type CompressionStats struct {
	Algorithm      format.CompressionType
	OriginalSize   int64
	CompressedSize int64
}

// CompressionRatio returns CompressedSize/OriginalSize; values below 1.0
// indicate the blocks shrank.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage (0-100; negative if
// compression added overhead).
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// smallBlockEntries is the block capacity at or below which a cold block's
// framing/dictionary overhead routinely outweighs what zstd or S2 can
// reclaim from it: a multilist block this small serializes to well under a
// kilobyte, where zstd's ~40-byte frame header plus its window setup cost
// more than the redundancy it finds. LZ4's leaner block format still pays
// off down to a handful of entries.
const smallBlockEntries = 64

// tinyBlockEntries is the point below which even LZ4's framing overhead
// exceeds the payload itself; blocks this small are stored uncompressed
// regardless of what the caller requested.
const tinyBlockEntries = 8

// SelectCodec returns the Codec flex.Multilist should use for cold blocks
// of up to blockCapacity entries. Multilist calls this instead of GetCodec
// directly so its codec choice actually reflects its own block size rather
// than blindly honoring whatever algorithm the caller named: requesting
// Zstd for a Multilist configured with a small BlockCapacity is downgraded
// to a cheaper algorithm (or skipped entirely) rather than spending zstd's
// setup cost on a payload too small to benefit from it.
func SelectCodec(compressionType format.CompressionType, blockCapacity int) (Codec, error) {
	effective := compressionType

	switch {
	case effective != format.CompressionNone && blockCapacity <= tinyBlockEntries:
		effective = format.CompressionNone
	case effective == format.CompressionZstd && blockCapacity <= smallBlockEntries:
		effective = format.CompressionLZ4
	}

	return GetCodec(effective)
}
