// Package format defines the stable identifiers shared between the
// bytepress gateway and its codec implementations.
package format

// CompressionType identifies a compression algorithm at the gateway
// boundary.
//
// The numeric values are a permanent external contract: once a tag is
// assigned to an algorithm it is never reused, even if the algorithm
// is retired. Hosts on the other side of the boundary hard-code these
// values.
type CompressionType uint8

const (
	CompressionLZ4     CompressionType = 1 // CompressionLZ4 represents LZ4 block compression.
	CompressionSnappy  CompressionType = 2 // CompressionSnappy represents raw Snappy block compression.
	CompressionZstd    CompressionType = 3 // CompressionZstd represents Zstandard compression.
	CompressionGzip    CompressionType = 4 // CompressionGzip represents gzip-wrapped DEFLATE compression.
	CompressionBrotli  CompressionType = 5 // CompressionBrotli represents Brotli compression.
	CompressionLzma2   CompressionType = 6 // CompressionLzma2 represents LZMA2 in an xz container.
	CompressionBzip2   CompressionType = 7 // CompressionBzip2 represents Bzip2 block-sorting compression.
	CompressionLZF     CompressionType = 8 // CompressionLZF represents LZF with a stored-byte fallback.
	CompressionDeflate CompressionType = 9 // CompressionDeflate represents raw DEFLATE compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionLZ4:
		return "LZ4"
	case CompressionSnappy:
		return "Snappy"
	case CompressionZstd:
		return "Zstd"
	case CompressionGzip:
		return "Gzip"
	case CompressionBrotli:
		return "Brotli"
	case CompressionLzma2:
		return "Lzma2"
	case CompressionBzip2:
		return "Bzip2"
	case CompressionLZF:
		return "LZF"
	case CompressionDeflate:
		return "Deflate"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is one of the nine registered algorithm tags.
func (c CompressionType) Valid() bool {
	return c >= CompressionLZ4 && c <= CompressionDeflate
}
