//go:build nobuild

package compress

import (
	"github.com/valyala/gozstd"
)

// Compress compresses a serialized block via cgo zstd at a moderate level;
// gated off (build tag nobuild) until this module's deployment targets
// need cgo's faster encode over the pure-Go path's.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
