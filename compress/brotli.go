package compress

import (
	"bytes"
	"io"

	"github.com/andybalholm/brotli"
)

// BrotliCodec adapts Brotli compression (tag 5). Levels 1-11.
type BrotliCodec struct{}

var _ Codec = (*BrotliCodec)(nil)

// Compress compresses src into dst as a Brotli stream through a
// bounded cursor over dst.
func (c BrotliCodec) Compress(level int, src, dst []byte) (int, error) {
	cursor := &boundedWriter{dst: dst}
	bw := brotli.NewWriterLevel(cursor, level)
	if _, err := bw.Write(src); err != nil {
		return 0, ErrInternal("brotli compression failed", err)
	}
	if err := bw.Close(); err != nil {
		return 0, ErrInternal("brotli compression failed", err)
	}

	return cursor.result()
}

// Decompress decompresses a Brotli stream from src into dst.
func (c BrotliCodec) Decompress(src, dst []byte) (int, error) {
	cursor := &boundedWriter{dst: dst}
	if _, err := io.Copy(cursor, brotli.NewReader(bytes.NewReader(src))); err != nil {
		return 0, ErrInternal("brotli: corrupt input", err)
	}

	return cursor.result()
}

// Bound returns the generic heuristic bound; the library exports no
// worst-case formula.
func (c BrotliCodec) Bound(n int) int {
	return genericBound(n)
}
