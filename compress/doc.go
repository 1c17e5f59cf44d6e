// Package compress implements the cold-block compression stage for
// flex.Multilist: once a block stops being the list's hot (actively
// appended) tail, Multilist serializes it (offset index plus packed
// databox entries) and hands the bytes to a Codec before discarding the
// live Sequence.
//
// # Algorithms
//
//   - None (format.CompressionNone): copies through unchanged. Used for
//     blocks too small for any framing overhead to pay off, and as an
//     explicit opt-out.
//   - Zstd (format.CompressionZstd): best ratio, highest per-call setup
//     cost; reuses pooled encoders/decoders from klauspost/compress/zstd
//     (pure Go) or valyala/gozstd (cgo) depending on build tags.
//   - S2 (format.CompressionS2): klauspost/compress/s2, a Snappy-compatible
//     format trading some ratio for speed and a much smaller per-call
//     footprint than zstd.
//   - LZ4 (format.CompressionLZ4): pierrec/lz4/v4, optimized for fast
//     decompression over compression ratio — the better choice for blocks
//     read back often relative to how often they're frozen.
//
// # Block-size-aware selection
//
// A cold block's size is bounded by Multilist.BlockCapacity, which is
// often small (dozens to low hundreds of entries) rather than the
// megabyte-scale payloads these algorithms are usually tuned for. Calling
// GetCodec directly honors whatever algorithm a caller names regardless of
// block size; Multilist instead calls SelectCodec, which downgrades an
// algorithm whose fixed overhead would exceed a small block's payload (see
// SelectCodec's doc comment for the exact thresholds).
//
// # Build tags
//
// zstd_cgo.go (build tag nobuild, i.e. disabled by default) and
// zstd_pure.go (build tag !nobuild) provide ZstdCompressor's two
// implementations; exactly one is compiled: the pure-Go one unless the
// nobuild tag is set, whether or not cgo is available, matching how the
// rest of this module's dependencies are kept pure-Go by default.
package compress
