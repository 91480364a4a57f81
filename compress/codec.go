package compress

import "github.com/arloliu/bytepress/format"

// Codec is the fixed-buffer contract every algorithm adapter satisfies.
//
// Both operations write directly into a caller-owned destination slice
// and never grow it: if the result does not fit, the operation fails
// with a capacity error carrying the required size instead of
// allocating a larger buffer. Any staging an adapter needs internally
// is transient and released before the call returns.
//
// Memory contract, on every path including failures:
//   - src is read within len(src) and never modified
//   - dst is written within len(dst) and never read past capacity
//
// All implementations are stateless values and safe for concurrent
// use; shared encoder/decoder state lives in sync.Pools.
type Codec interface {
	// Compress compresses src into dst at the given normalized level
	// and returns the number of bytes written.
	//
	// The level must already be normalized via NormalizeLevel;
	// algorithms without a tunable level ignore it.
	Compress(level int, src, dst []byte) (int, error)

	// Decompress decompresses src into dst and returns the number of
	// bytes written. Structurally invalid input is an internal error,
	// not a capacity error, because a larger buffer cannot fix it.
	Decompress(src, dst []byte) (int, error)

	// Bound returns a conservative upper bound on the compressed size
	// of n input bytes. It never allocates and never underestimates.
	Bound(n int) int
}

// GetCodec resolves an algorithm tag to its codec.
//
// Dispatch is a closed switch over the registered tags rather than a
// mutable lookup table: the tag space is a permanent contract and no
// codec can be registered or replaced at runtime. Unknown tags always
// fail with CodeAlgoNotFound.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionLZ4:
		return LZ4Codec{}, nil
	case format.CompressionSnappy:
		return SnappyCodec{}, nil
	case format.CompressionZstd:
		return ZstdCodec{}, nil
	case format.CompressionGzip:
		return GzipCodec{}, nil
	case format.CompressionBrotli:
		return BrotliCodec{}, nil
	case format.CompressionLzma2:
		return Lzma2Codec{}, nil
	case format.CompressionBzip2:
		return Bzip2Codec{}, nil
	case format.CompressionLZF:
		return LZFCodec{}, nil
	case format.CompressionDeflate:
		return DeflateCodec{}, nil
	default:
		return nil, errAlgoNotFound(uint8(compressionType))
	}
}

// MaxCompressedLen returns a conservative upper bound on the
// compressed size of inputLen bytes under the given algorithm.
//
// The bound is fast and allocation-free so callers can size output
// buffers before the first compression attempt. Algorithms with an
// exact worst-case formula use it; the rest use a deliberately loose
// heuristic, so a buffer of this size never produces a
// CodeBufferTooSmall failure.
func MaxCompressedLen(compressionType format.CompressionType, inputLen int) (int, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return 0, err
	}

	return codec.Bound(inputLen), nil
}

// genericBound is the loose heuristic bound used by codecs without a
// cheap closed-form worst case. Deliberately generous so an
// estimator-sized buffer never produces a capacity failure; callers
// needing a tight bound attempt the real operation and read the
// needed hint.
func genericBound(n int) int {
	return 2*n + 64
}
