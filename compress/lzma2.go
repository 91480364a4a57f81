package compress

import (
	"bytes"
	"io"

	"github.com/ulikunitz/xz"
)

// Lzma2Codec adapts LZMA2 compression in the xz container format
// (tag 6). Levels 1-9 select the dictionary capacity, doubling per
// level from 64KiB to 16MiB, mirroring the xz tool's presets.
type Lzma2Codec struct{}

var _ Codec = (*Lzma2Codec)(nil)

func lzmaDictCap(level int) int {
	return 1 << (15 + uint(level)) // level 1 -> 64KiB, level 9 -> 16MiB
}

// Compress compresses src into dst as an xz stream through a bounded
// cursor over dst.
func (c Lzma2Codec) Compress(level int, src, dst []byte) (int, error) {
	cursor := &boundedWriter{dst: dst}
	cfg := xz.WriterConfig{DictCap: lzmaDictCap(level)}
	xw, err := cfg.NewWriter(cursor)
	if err != nil {
		return 0, ErrInternal("lzma2: invalid writer config", err)
	}
	if _, err := xw.Write(src); err != nil {
		return 0, ErrInternal("lzma2 compression failed", err)
	}
	if err := xw.Close(); err != nil {
		return 0, ErrInternal("lzma2 compression failed", err)
	}

	return cursor.result()
}

// Decompress decompresses an xz stream from src into dst.
func (c Lzma2Codec) Decompress(src, dst []byte) (int, error) {
	xr, err := xz.NewReader(bytes.NewReader(src))
	if err != nil {
		return 0, ErrInternal("lzma2: corrupt input", err)
	}

	cursor := &boundedWriter{dst: dst}
	if _, err := io.Copy(cursor, xr); err != nil {
		return 0, ErrInternal("lzma2: corrupt input", err)
	}

	return cursor.result()
}

// Bound returns the generic heuristic bound; the xz container has no
// exported worst-case formula.
func (c Lzma2Codec) Bound(n int) int {
	return genericBound(n)
}
