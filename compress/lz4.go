package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/bytepress/internal/pool"
)

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor maintains internal state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Codec adapts LZ4 block compression (tag 1). LZ4 has no level
// knob; the level argument is ignored.
type LZ4Codec struct{}

var _ Codec = (*LZ4Codec)(nil)

// Compress compresses src into dst as a single LZ4 block.
//
// lz4.CompressBlock only guarantees a valid block (falling back to a
// literal run for incompressible data) when the destination is at
// least CompressBlockBound bytes. Smaller destinations are handled by
// compressing into a pooled staging buffer of bound size and copying
// the block back if it fits, which also yields the exact needed size
// on a capacity failure.
func (c LZ4Codec) Compress(_ int, src, dst []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}
	bound := lz4.CompressBlockBound(len(src))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	if len(dst) >= bound {
		n, err := lc.CompressBlock(src, dst)
		if err != nil {
			return 0, ErrInternal("lz4 compression failed", err)
		}

		return n, nil
	}

	staging, release := pool.GetByteSlice(bound)
	defer release()

	n, err := lc.CompressBlock(src, staging)
	if err != nil {
		return 0, ErrInternal("lz4 compression failed", err)
	}
	if n > len(dst) {
		return 0, ErrShortBuffer(n)
	}
	copy(dst, staging[:n])

	return n, nil
}

// Decompress decompresses a single LZ4 block from src into dst.
//
// The LZ4 block format does not record the decompressed size, so a
// destination overflow cannot report an exact requirement. The hint
// grows geometrically (at least 4x the compressed size), which bounds
// a caller's retry loop to a handful of attempts.
//
// A corrupt block can be indistinguishable from a short destination,
// so retry loops driven by this hint must carry a ceiling. LZ4 blocks
// expand at most 255x, so 255*len(src) is a hard upper bound; 128MiB
// is a sane absolute cap for callers that do not know their data.
func (c LZ4Codec) Decompress(src, dst []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return 0, ErrShortBuffer(max(len(dst)*2, len(src)*4))
		}

		return 0, ErrInternal("lz4 decompression failed", err)
	}

	return n, nil
}

// Bound returns the exact LZ4 worst-case block size for n input bytes.
func (c LZ4Codec) Bound(n int) int {
	return lz4.CompressBlockBound(n)
}
