package compress

// ZstdCompressor provides Zstandard compression: the best ratio of the
// four algorithms, at the highest per-call setup cost. SelectCodec reaches
// for this only once a multilist's BlockCapacity is large enough to amortize
// that cost; below the threshold it falls back to ZstdCompressor's cheaper
// siblings regardless of what a caller requests.
//
// Compress/Decompress are implemented in zstd_pure.go (pure Go,
// klauspost/compress/zstd) or zstd_cgo.go (cgo, valyala/gozstd), selected
// by build tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
