package compress

import "github.com/klauspost/compress/s2"

// S2Compressor is the balanced middle option between NoOpCompressor and
// ZstdCompressor: a Snappy-compatible format with far lower per-call setup
// cost than zstd, for blocks too frequent or too small to justify zstd's
// overhead but still worth compressing.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses a serialized block using S2.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress reverses Compress.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
