//go:build !gozstd

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdDecoderPool pools zstd decoders for reuse to eliminate allocation overhead.
// The klauspost/compress/zstd library is explicitly designed for decoder reuse:
// "The decoder has been designed to operate without allocations after a warmup.
// This means that you should store the decoder for best performance."
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1), // Single-threaded for predictable performance
			zstd.WithDecoderLowmem(false),  // Use more memory for better performance
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}
		return decoder
	},
}

// zstdEncoderPools pools zstd encoders per speed preset. Zstd levels
// 1-22 collapse onto four encoder presets, so four pools cover every
// normalized level without creating an encoder per call.
var zstdEncoderPools [4]sync.Pool

func init() {
	for i := range zstdEncoderPools {
		level := zstd.EncoderLevel(i + 1) // SpeedFastest..SpeedBestCompression
		zstdEncoderPools[i].New = func() any {
			// WithZeroFrames(true) ensures empty input produces a valid
			// zstd frame instead of empty output, so the empty buffer
			// round-trips like every other input.
			encoder, err := zstd.NewWriter(nil,
				zstd.WithEncoderLevel(level),
				zstd.WithEncoderConcurrency(1),
				zstd.WithEncoderCRC(false), // Disable CRC for performance
				zstd.WithZeroFrames(true),
			)
			if err != nil {
				// This should never happen with valid options
				panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
			}
			return encoder
		}
	}
}

// Compress compresses src into dst using Zstandard at the normalized
// level. Uses a pooled encoder for better performance (eliminates
// allocation overhead).
//
// EncodeAll appends to the destination, so it encodes into dst's
// storage when the result fits and only falls back to an internal
// allocation when dst is too small; in that case the exact produced
// size becomes the needed hint.
func (c ZstdCodec) Compress(level int, src, dst []byte) (int, error) {
	p := &zstdEncoderPools[zstd.EncoderLevelFromZstd(level)-1]
	encoder := p.Get().(*zstd.Encoder)
	defer p.Put(encoder)

	// EncodeAll is stateless - safe to use with pooled encoder
	compressed := encoder.EncodeAll(src, dst[:0:len(dst)])
	n := len(compressed)
	if n > len(dst) {
		return 0, ErrShortBuffer(n)
	}
	if n > 0 && &compressed[0] != &dst[0] {
		copy(dst, compressed)
	}

	return n, nil
}

// Decompress decompresses Zstd-compressed data from src into dst.
// Uses a pooled decoder for better performance (eliminates allocation
// overhead).
func (c ZstdCodec) Decompress(src, dst []byte) (int, error) {
	// Get decoder from pool (reuses "warmed up" decoder)
	decoder := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	// DecodeAll is stateless - safe to use with pooled decoder
	// Even if this call fails, the decoder can be reused for next call
	decompressed, err := decoder.DecodeAll(src, dst[:0:len(dst)])
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
