package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipCodec adapts gzip-wrapped DEFLATE compression (tag 4). Levels
// 1-9 follow the usual zlib convention.
type GzipCodec struct{}

var _ Codec = (*GzipCodec)(nil)

// Compress compresses src into dst as a gzip stream. The encoder
// writes through a bounded cursor over dst, so no staging buffer is
// needed and a capacity failure carries the exact stream size.
func (c GzipCodec) Compress(level int, src, dst []byte) (int, error) {
	cursor := &boundedWriter{dst: dst}
	gw, err := gzip.NewWriterLevel(cursor, level)
	if err != nil {
		return 0, ErrInternal("gzip: invalid compression level", err)
	}
	if _, err := gw.Write(src); err != nil {
		return 0, ErrInternal("gzip compression failed", err)
	}
	if err := gw.Close(); err != nil {
		return 0, ErrInternal("gzip compression failed", err)
	}

	return cursor.result()
}

// Decompress decompresses a gzip stream from src into dst. Corrupt
// input (bad header, CRC mismatch, truncated stream) is an internal
// error; only an intact stream that outgrows dst is a capacity
// failure.
func (c GzipCodec) Decompress(src, dst []byte) (int, error) {
	gr, err := gzip.NewReader(bytes.NewReader(src))
	if err != nil {
		return 0, ErrInternal("gzip: corrupt input", err)
	}

	cursor := &boundedWriter{dst: dst}
	if _, err := io.Copy(cursor, gr); err != nil {
		return 0, ErrInternal("gzip: corrupt input", err)
	}
	if err := gr.Close(); err != nil {
		return 0, ErrInternal("gzip: corrupt input", err)
	}

	return cursor.result()
}

// Bound returns the gzip worst case: DEFLATE stored-block overhead
// plus stream header and trailer.
func (c GzipCodec) Bound(n int) int {
	return n + n/8 + 32
}
