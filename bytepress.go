// Package bytepress is a uniform compression/decompression gateway: one
// entry surface that accepts an algorithm tag, a compression level, and
// caller-owned byte buffers, and dispatches to one of nine codecs while
// containing every internal failure behind stable numeric result codes.
//
// The surface is designed for host processes on the far side of a
// foreign-call boundary: arguments and results are primitives only
// (integers, byte slices, lengths), output buffers are caller-sized
// with no hidden growth, and a panic anywhere inside a call is caught
// and converted to StatusFaultContained instead of unwinding into the
// caller.
//
// # Basic Usage
//
//	input := []byte("some payload")
//
//	// Size the output buffer before the first attempt.
//	bound := bytepress.EstimateMaxOutputSize(uint8(bytepress.Zstd), 3, len(input))
//	dst := make([]byte, bound)
//
//	var n int
//	status := bytepress.Compress(uint8(bytepress.Zstd), 3, input, dst, &n)
//	if status != bytepress.StatusOK {
//	    // status is a small closed code; StatusBufferTooSmall puts the
//	    // required capacity in n for a retry.
//	}
//	compressed := dst[:n]
//
// Round-tripping mirrors the call without a level:
//
//	out := make([]byte, len(input))
//	status = bytepress.Decompress(uint8(bytepress.Zstd), compressed, out, &n)
//
// # Result Codes
//
// Codes are permanent and never renumbered:
//
//	 0   StatusOK              success, n holds bytes written
//	-1   StatusBufferTooSmall  n holds the required capacity
//	-2   StatusAlgoNotFound    unknown algorithm tag
//	-3   StatusInvalidArgument nil buffer where one was required
//	-50  StatusInternal        corrupt input or codec failure
//	-99  StatusFaultContained  an internal panic was caught at the boundary
//
// Every operation is synchronous and stateless; concurrent callers
// need no coordination. For algorithm details and the fixed-buffer
// codec contract, see the compress package.
package bytepress

import (
	"github.com/arloliu/bytepress/compress"
	"github.com/arloliu/bytepress/format"
)

// Status is the stable numeric result code returned by every gateway
// operation.
type Status = compress.Code

const (
	StatusOK              = compress.CodeOK
	StatusBufferTooSmall  = compress.CodeBufferTooSmall
	StatusAlgoNotFound    = compress.CodeAlgoNotFound
	StatusInvalidArgument = compress.CodeInvalidArgument
	StatusInternal        = compress.CodeInternal
	StatusFaultContained  = compress.CodeFaultContained
)

// CompressionType re-exports the algorithm tag type for callers that
// do not import the format package directly.
type CompressionType = format.CompressionType

const (
	LZ4     = format.CompressionLZ4
	Snappy  = format.CompressionSnappy
	Zstd    = format.CompressionZstd
	Gzip    = format.CompressionGzip
	Brotli  = format.CompressionBrotli
	Lzma2   = format.CompressionLzma2
	Bzip2   = format.CompressionBzip2
	LZF     = format.CompressionLZF
	Deflate = format.CompressionDeflate
)
