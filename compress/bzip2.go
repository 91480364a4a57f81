package compress

import (
	"bytes"
	"io"

	"github.com/dsnet/compress/bzip2"
)

// Bzip2Codec adapts Bzip2 block-sorting compression (tag 7). Levels
// 1-9 select the block size (100KiB per level). The standard library
// only ships a bzip2 reader, so both directions go through
// dsnet/compress.
type Bzip2Codec struct{}

var _ Codec = (*Bzip2Codec)(nil)

// Compress compresses src into dst as a bzip2 stream through a
// bounded cursor over dst.
func (c Bzip2Codec) Compress(level int, src, dst []byte) (int, error) {
	cursor := &boundedWriter{dst: dst}
	bw, err := bzip2.NewWriter(cursor, &bzip2.WriterConfig{Level: level})
	if err != nil {
		return 0, ErrInternal("bzip2: invalid writer config", err)
	}
	if _, err := bw.Write(src); err != nil {
		return 0, ErrInternal("bzip2 compression failed", err)
	}
	if err := bw.Close(); err != nil {
		return 0, ErrInternal("bzip2 compression failed", err)
	}

	return cursor.result()
}

// Decompress decompresses a bzip2 stream from src into dst.
func (c Bzip2Codec) Decompress(src, dst []byte) (int, error) {
	br, err := bzip2.NewReader(bytes.NewReader(src), nil)
	if err != nil {
		return 0, ErrInternal("bzip2: corrupt input", err)
	}

	cursor := &boundedWriter{dst: dst}
	if _, err := io.Copy(cursor, br); err != nil {
		return 0, ErrInternal("bzip2: corrupt input", err)
	}
	if err := br.Close(); err != nil {
		return 0, ErrInternal("bzip2: corrupt input", err)
	}

	return cursor.result()
}

// Bound returns the generic heuristic bound; bzip2's worst case is a
// small fraction over the input but has no exported formula.
func (c Bzip2Codec) Bound(n int) int {
	return genericBound(n)
}
