package compress

import (
	"github.com/golang/snappy"
)

// SnappyCodec adapts raw Snappy block compression (tag 2). Snappy has
// no level knob; the level argument is ignored.
type SnappyCodec struct{}

var _ Codec = (*SnappyCodec)(nil)

// Compress compresses src into dst as a raw Snappy block.
//
// Snappy's worst-case output size is known up front, so the capacity
// check happens before encoding and snappy.Encode writes directly into
// dst with no staging. A destination between the actual output size
// and the worst case is rejected anyway; the format cannot tell the
// two apart without encoding first.
func (c SnappyCodec) Compress(_ int, src, dst []byte) (int, error) {
	maxLen := snappy.MaxEncodedLen(len(src))
	if maxLen < 0 {
		return 0, ErrInternal("snappy: input too large", nil)
	}
	if len(dst) < maxLen {
		return 0, ErrShortBuffer(maxLen)
	}

	return len(snappy.Encode(dst, src)), nil
}

// Decompress decompresses a raw Snappy block from src into dst. The
// block header records the decompressed size, so capacity failures
// carry the exact requirement.
func (c SnappyCodec) Decompress(src, dst []byte) (int, error) {
	n, err := snappy.DecodedLen(src)
	if err != nil {
		return 0, ErrInternal("snappy: corrupt input", err)
	}
	if n > len(dst) {
		return 0, ErrShortBuffer(n)
	}

	decoded, err := snappy.Decode(dst, src)
	if err != nil {
		return 0, ErrInternal("snappy: corrupt input", err)
	}

	return len(decoded), nil
}

// Bound returns the exact Snappy worst-case encoded size for n input
// bytes.
func (c SnappyCodec) Bound(n int) int {
	if maxLen := snappy.MaxEncodedLen(n); maxLen >= 0 {
		return maxLen
	}

	return genericBound(n)
}
