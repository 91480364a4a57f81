package compress

import (
	"errors"
	"fmt"

	lzf "github.com/zhuyie/golzf"

	"github.com/arloliu/bytepress/internal/pool"
)

// LZF block discriminants. The first output byte records whether the
// payload is stored verbatim or LZF-compressed.
const (
	lzfBlockStored     byte = 0
	lzfBlockCompressed byte = 1
)

// LZFCodec adapts LZF compression (tag 8). LZF has no level knob; the
// level argument is ignored.
//
// LZF has no compressed representation for inputs it cannot shrink
// (including every zero- and one-byte input), so the adapter prefixes
// each block with a one-byte discriminant and stores the payload
// verbatim whenever LZF does not win. Every input round-trips.
type LZFCodec struct{}

var _ Codec = (*LZFCodec)(nil)

// Compress compresses src into dst as a discriminant-prefixed LZF
// block. The LZF attempt is staged in a pooled buffer capped at the
// input size; if LZF cannot beat that, the stored form is used.
func (c LZFCodec) Compress(_ int, src, dst []byte) (int, error) {
	if len(src) > 1 {
		staging, release := pool.GetByteSlice(len(src))
		defer release()

		if n, err := lzf.Compress(src, staging); err == nil && n > 0 && n < len(src) {
			if n+1 > len(dst) {
				return 0, ErrShortBuffer(n + 1)
			}
			dst[0] = lzfBlockCompressed
			copy(dst[1:], staging[:n])

			return n + 1, nil
		}
	}

	if len(src)+1 > len(dst) {
		return 0, ErrShortBuffer(len(src) + 1)
	}
	dst[0] = lzfBlockStored
	copy(dst[1:], src)

	return len(src) + 1, nil
}

// Decompress decompresses a discriminant-prefixed LZF block from src
// into dst.
//
// Like LZ4 blocks, the compressed form does not record the original
// size, so a destination overflow reports a geometrically growing
// hint rather than an exact requirement. A corrupt compressed block
// can be indistinguishable from a short destination; retry loops
// driven by the hint must carry a ceiling (128MiB is a sane cap for
// callers that do not know their data).
func (c LZFCodec) Decompress(src, dst []byte) (int, error) {
	if len(src) == 0 {
		return 0, ErrInternal("lzf: missing block header", nil)
	}

	payload := src[1:]
	switch src[0] {
	case lzfBlockStored:
		if len(payload) > len(dst) {
			return 0, ErrShortBuffer(len(payload))
		}

		return copy(dst, payload), nil
	case lzfBlockCompressed:
		n, err := lzf.Decompress(payload, dst)
		if err != nil {
			if errors.Is(err, lzf.ErrInsufficientBuffer) {
				return 0, ErrShortBuffer(max(len(dst)*2, len(payload)*4))
			}

			return 0, ErrInternal("lzf: corrupt input", err)
		}

		return n, nil
	default:
		return 0, ErrInternal(fmt.Sprintf("lzf: unknown block type %d", src[0]), nil)
	}
}

// Bound returns the generic heuristic bound. The stored fallback caps
// the true worst case at n+1 bytes, but the loose bound is kept so
// all heuristic codecs size buffers the same way.
func (c LZFCodec) Bound(n int) int {
	return genericBound(n)
}
