package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
)

// DeflateCodec adapts raw DEFLATE compression (tag 9): the same
// stream as gzip without the gzip header and checksum. Levels 1-9.
type DeflateCodec struct{}

var _ Codec = (*DeflateCodec)(nil)

// Compress compresses src into dst as a raw DEFLATE stream through a
// bounded cursor over dst.
func (c DeflateCodec) Compress(level int, src, dst []byte) (int, error) {
	cursor := &boundedWriter{dst: dst}
	fw, err := flate.NewWriter(cursor, level)
	if err != nil {
		return 0, ErrInternal("deflate: invalid compression level", err)
	}
	if _, err := fw.Write(src); err != nil {
		return 0, ErrInternal("deflate compression failed", err)
	}
	if err := fw.Close(); err != nil {
		return 0, ErrInternal("deflate compression failed", err)
	}

	return cursor.result()
}

// Decompress decompresses a raw DEFLATE stream from src into dst.
// Raw DEFLATE has no checksum, so only structural corruption is
// detectable.
func (c DeflateCodec) Decompress(src, dst []byte) (int, error) {
	fr := flate.NewReader(bytes.NewReader(src))
	defer fr.Close()

	cursor := &boundedWriter{dst: dst}
	if _, err := io.Copy(cursor, fr); err != nil {
		return 0, ErrInternal("deflate: corrupt input", err)
	}

	return cursor.result()
}

// Bound returns the DEFLATE worst case: stored-block overhead plus a
// small constant.
func (c DeflateCodec) Bound(n int) int {
	return n + n/8 + 32
}
