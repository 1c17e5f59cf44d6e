package compress

// NoOpCompressor bypasses compression entirely, for blocks small enough
// (or already-encoded well enough) that any algorithm's overhead would
// cost more than it saves, and for measuring the rest of the pipeline's
// overhead without a compression step in the way.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unchanged, without copying. Callers must not
// mutate data afterward if they still hold the returned slice.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged, without copying.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
