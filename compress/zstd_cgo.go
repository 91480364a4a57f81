//go:build gozstd

package compress

import (
	"github.com/valyala/gozstd"
)

// Compress compresses src into dst using the cgo libzstd binding at
// the normalized level.
func (c ZstdCodec) Compress(level int, src, dst []byte) (int, error) {
	compressed := gozstd.CompressLevel(dst[:0:len(dst)], src, level)
	n := len(compressed)
	if n > len(dst) {
		return 0, ErrShortBuffer(n)
	}
	if n > 0 && &compressed[0] != &dst[0] {
		copy(dst, compressed)
	}

	return n, nil
}

// Decompress decompresses Zstd-compressed data from src into dst
// using the cgo libzstd binding.
func (c ZstdCodec) Decompress(src, dst []byte) (int, error) {
	decompressed, err := gozstd.Decompress(dst[:0:len(dst)], src)
	if err != nil {
		return 0, ErrInternal("zstd decompression failed", err)
	}

	n := len(decompressed)
	if n > len(dst) {
		return 0, ErrShortBuffer(n)
	}
	if n > 0 && &decompressed[0] != &dst[0] {
		copy(dst, decompressed)
	}

	return n, nil
}
