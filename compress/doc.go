// Package compress provides the codec adapters, level normalization, and
// size estimation behind the bytepress gateway.
//
// Nine compression algorithms sit behind one fixed-buffer contract:
//
//	type Codec interface {
//	    Compress(level int, src, dst []byte) (int, error)
//	    Decompress(src, dst []byte) (int, error)
//	    Bound(n int) int
//	}
//
// Both operations write into a caller-owned destination of fixed
// capacity and never grow it. When the result does not fit, the
// operation fails with a *Error carrying CodeBufferTooSmall and the
// required size, so callers can retry with a larger buffer instead of
// relying on hidden allocation. For the LZ4 and LZF block formats the
// decompression hint is heuristic rather than exact, and corrupt input
// can be indistinguishable from a short destination, so retry loops
// there need a ceiling; see the adapter docs.
//
// # Supported Algorithms
//
// Algorithms are addressed by their permanent format.CompressionType
// tag:
//
//	Tag | Algorithm | Library                        | Levels
//	----|-----------|--------------------------------|---------------
//	 1  | LZ4       | pierrec/lz4/v4 (block)         | none
//	 2  | Snappy    | golang/snappy (raw block)      | none
//	 3  | Zstd      | klauspost/compress/zstd        | 1-22, default 3
//	 4  | Gzip      | klauspost/compress/gzip        | 1-9, default 6
//	 5  | Brotli    | andybalholm/brotli             | 1-11, default 6
//	 6  | LZMA2     | ulikunitz/xz                   | 1-9, default 6
//	 7  | Bzip2     | dsnet/compress/bzip2           | 1-9, default 6
//	 8  | LZF       | zhuyie/golzf (+stored fallback)| none
//	 9  | Deflate   | klauspost/compress/flate       | 1-9, default 6
//
// NormalizeLevel maps any requested level onto the algorithm's valid
// range: zero and negative values select the default, out-of-range
// values saturate. The mapping is pure and idempotent.
//
// # Buffer Sizing
//
// MaxCompressedLen returns a conservative upper bound on the
// compressed size before the first attempt. LZ4 and Snappy expose
// exact worst-case formulas; gzip and deflate use the stored-block
// worst case; the remaining codecs use a deliberately loose 2x+64
// heuristic. A buffer of the returned size never produces a capacity
// failure.
//
// # Adaptation Strategies
//
// The underlying libraries disagree about buffer ownership, and each
// adapter bridges its library to the fixed-buffer contract:
//
//   - Direct with an up-front capacity check (Snappy): the worst case
//     is known before encoding.
//   - Bounded cursor (Gzip, Deflate, Brotli, LZMA2, Bzip2): stream
//     writers run over a cursor that fills dst and keeps counting past
//     capacity, so an overflow reports the exact stream size with no
//     staging and no second pass.
//   - Pooled staging (LZ4, LZF): block encoders that need a full-bound
//     scratch area stage into a pooled buffer and copy back only when
//     the result fits.
//   - Append into dst (Zstd): EncodeAll/DecodeAll append into dst's
//     storage and only allocate internally when dst is too small.
//
// # Thread Safety
//
// All codecs are stateless values, safe for concurrent use. Shared
// encoder and decoder state lives in sync.Pools.
package compress
