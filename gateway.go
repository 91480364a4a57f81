package bytepress

import (
	"errors"

	"go.uber.org/zap"

	"github.com/arloliu/bytepress/compress"
	"github.com/arloliu/bytepress/format"
)

// Ping is a liveness and ABI sanity check. It always returns 1 and
// runs inside the same fault barrier as the real operations, so a
// host can verify both the call path and the containment machinery.
func Ping() (result int32) {
	defer func() {
		if r := recover(); r != nil {
			result = int32(StatusFaultContained)
		}
	}()

	return 1
}

// Compress compresses src into dst using the algorithm identified by
// tag at the requested level, and writes the produced byte count to
// *written.
//
// Validation order is fixed: nil buffers are rejected before the
// algorithm tag is resolved, and the tag is resolved before the level
// is normalized. Negative and zero levels select the algorithm's
// default; out-of-range levels saturate.
//
// On StatusBufferTooSmall, *written receives the capacity needed for
// a retry instead of a byte count. Any panic raised inside the call
// is caught and reported as StatusFaultContained.
func Compress(algo uint8, level int32, src, dst []byte, written *int) (status Status) {
	defer func() {
		if r := recover(); r != nil {
			status = StatusFaultContained
			logFault("compress", r)
		}
	}()

	if src == nil || dst == nil || written == nil {
		logger.Error("compress: nil buffer argument",
			zap.Bool("src", src != nil), zap.Bool("dst", dst != nil), zap.Bool("written", written != nil))
		return StatusInvalidArgument
	}
	*written = 0

	compressionType := format.CompressionType(algo)
	codec, err := compress.GetCodec(compressionType)
	if err != nil {
		logger.Error("compress: unknown algorithm", zap.Uint8("algo", algo))
		return StatusAlgoNotFound
	}

	effective := compress.NormalizeLevel(compressionType, int(level))
	n, err := codec.Compress(effective, src, dst)
	if err != nil {
		return failure("compress", compressionType, written, err)
	}
	*written = n
	logger.Debug("compress",
		zap.Stringer("algo", compressionType), zap.Int("level", effective),
		zap.Int("in", len(src)), zap.Int("out", n), zap.Float64("ratio", ratio(len(src), n)))

	return StatusOK
}

// Decompress decompresses src into dst using the algorithm identified
// by tag and writes the produced byte count to *written.
//
// Validation order, out-parameter semantics, and fault containment
// match Compress. Structurally invalid input yields StatusInternal,
// not StatusBufferTooSmall, because a larger buffer cannot fix it.
func Decompress(algo uint8, src, dst []byte, written *int) (status Status) {
	defer func() {
		if r := recover(); r != nil {
			status = StatusFaultContained
			logFault("decompress", r)
		}
	}()

	if src == nil || dst == nil || written == nil {
		logger.Error("decompress: nil buffer argument",
			zap.Bool("src", src != nil), zap.Bool("dst", dst != nil), zap.Bool("written", written != nil))
		return StatusInvalidArgument
	}
	*written = 0

	compressionType := format.CompressionType(algo)
	codec, err := compress.GetCodec(compressionType)
	if err != nil {
		logger.Error("decompress: unknown algorithm", zap.Uint8("algo", algo))
		return StatusAlgoNotFound
	}

	n, err := codec.Decompress(src, dst)
	if err != nil {
		return failure("decompress", compressionType, written, err)
	}
	*written = n
	logger.Debug("decompress",
		zap.Stringer("algo", compressionType), zap.Int("in", len(src)), zap.Int("out", n))

	return StatusOK
}

// EstimateMaxOutputSize returns a conservative upper bound on the
// compressed size of inputLen bytes under the given algorithm, for
// pre-sizing output buffers.
//
// The level is accepted for contract stability but no current bound
// depends on it. The result type has no error side channel, so any
// failure, including an unknown tag, a negative length, or a
// contained fault, returns 0.
func EstimateMaxOutputSize(algo uint8, level int32, inputLen int) (size int) {
	defer func() {
		if r := recover(); r != nil {
			size = 0
			logFault("estimate", r)
		}
	}()

	if inputLen < 0 {
		return 0
	}

	n, err := compress.MaxCompressedLen(format.CompressionType(algo), inputLen)
	if err != nil {
		return 0
	}

	return n
}

// logFault reports a contained panic. The result is already set when
// this runs, and the logger itself is untrusted inside the barrier, so
// a second panic raised while logging is swallowed instead of escaping
// the entry point.
func logFault(op string, r any) {
	defer func() {
		_ = recover()
	}()
	logger.Error(op+": fault contained", zap.Any("panic", r))
}

// failure converts a codec error into its boundary status and fills
// the needed-capacity hint for capacity failures.
func failure(op string, compressionType format.CompressionType, written *int, err error) Status {
	var cerr *compress.Error
	if errors.As(err, &cerr) {
		if cerr.Code == StatusBufferTooSmall {
			*written = cerr.Needed
			logger.Debug(op+": buffer too small",
				zap.Stringer("algo", compressionType), zap.Int("needed", cerr.Needed))
		} else {
			logger.Error(op+" failed", zap.Stringer("algo", compressionType), zap.Error(err))
		}

		return cerr.Code
	}

	logger.Error(op+" failed", zap.Stringer("algo", compressionType), zap.Error(err))

	return StatusInternal
}

func ratio(in, out int) float64 {
	if out == 0 {
		return 0
	}

	return float64(in) / float64(out)
}
