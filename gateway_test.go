package bytepress

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

var allTags = []CompressionType{LZ4, Snappy, Zstd, Gzip, Brotli, Lzma2, Bzip2, LZF, Deflate}

func TestPing(t *testing.T) {
	require.Equal(t, int32(1), Ping())
}

func TestCompress_NilArguments(t *testing.T) {
	input := []byte("hello")
	dst := make([]byte, 64)
	var n int

	tests := []struct {
		name   string
		status Status
	}{
		{name: "nil src", status: Compress(uint8(LZ4), -1, nil, dst, &n)},
		{name: "nil dst", status: Compress(uint8(LZ4), -1, input, nil, &n)},
		{name: "nil written", status: Compress(uint8(LZ4), -1, input, dst, nil)},
		{name: "nil src on decompress", status: Decompress(uint8(LZ4), nil, dst, &n)},
		{name: "nil dst on decompress", status: Decompress(uint8(LZ4), input, nil, &n)},
		{name: "nil written on decompress", status: Decompress(uint8(LZ4), input, dst, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, StatusInvalidArgument, tt.status)
		})
	}
}

// TestValidationOrder verifies a nil buffer is rejected before the
// algorithm tag is even looked at: an unknown tag combined with a nil
// buffer must yield StatusInvalidArgument, not StatusAlgoNotFound.
func TestValidationOrder(t *testing.T) {
	var n int
	dst := make([]byte, 64)

	require.Equal(t, StatusInvalidArgument, Compress(255, -1, nil, dst, &n))
	require.Equal(t, StatusInvalidArgument, Decompress(255, nil, dst, &n))
}

func TestUnknownAlgorithm(t *testing.T) {
	input := []byte("hello")
	dst := make([]byte, 64)
	var n int

	require.Equal(t, StatusAlgoNotFound, Compress(255, -1, input, dst, &n))
	require.Equal(t, StatusAlgoNotFound, Decompress(255, input, dst, &n))
	require.Equal(t, 0, EstimateMaxOutputSize(255, -1, 1000))
	require.Equal(t, 0, EstimateMaxOutputSize(0, -1, 1000))
}

func TestEstimate_NegativeLength(t *testing.T) {
	require.Equal(t, 0, EstimateMaxOutputSize(uint8(LZ4), -1, -1))
}

func TestCompress_ShortBuffer(t *testing.T) {
	input := bytes.Repeat([]byte("Hello world! "), 100)
	dst := make([]byte, 4)
	var n int

	status := Compress(uint8(LZ4), -1, input, dst, &n)
	require.Equal(t, StatusBufferTooSmall, status)
	require.Greater(t, n, len(dst))

	// The reported size must be enough for a retry.
	retry := make([]byte, n)
	status = Compress(uint8(LZ4), -1, input, retry, &n)
	require.Equal(t, StatusOK, status)
}

func TestRoundTrip_AllAlgorithms(t *testing.T) {
	SetLogger(zaptest.NewLogger(t))
	defer SetLogger(nil)

	input := bytes.Repeat([]byte("Hello world! "), 100)

	for _, tag := range allTags {
		t.Run(tag.String(), func(t *testing.T) {
			bound := EstimateMaxOutputSize(uint8(tag), -1, len(input))
			require.Positive(t, bound)

			dst := make([]byte, bound)
			var n int
			require.Equal(t, StatusOK, Compress(uint8(tag), -1, input, dst, &n))
			require.LessOrEqual(t, n, bound)

			out := make([]byte, len(input))
			var m int
			require.Equal(t, StatusOK, Decompress(uint8(tag), dst[:n], out, &m))
			require.Equal(t, input, out[:m])
		})
	}
}

// TestScenario_RepetitiveText follows the canonical usage sequence: a
// 1300-byte repetitive payload through the no-level byte-oriented
// codec, then through Zstd, with a corruption check at the end.
func TestScenario_RepetitiveText(t *testing.T) {
	input := bytes.Repeat([]byte("Hello world! "), 100)
	require.Len(t, input, 1300)

	// LZ4, sized via the estimator.
	bound := EstimateMaxOutputSize(uint8(LZ4), -1, len(input))
	lz4Dst := make([]byte, bound)
	var lz4N int
	require.Equal(t, StatusOK, Compress(uint8(LZ4), -1, input, lz4Dst, &lz4N))
	require.Less(t, lz4N, len(input))

	out := make([]byte, len(input))
	var m int
	require.Equal(t, StatusOK, Decompress(uint8(LZ4), lz4Dst[:lz4N], out, &m))
	require.Equal(t, input, out[:m])

	// Zstd at level 3 on a larger repetition of the same text, where
	// the ratio advantage over LZ4 is unambiguous.
	large := bytes.Repeat([]byte("Hello world! "), 10000)

	lz4Large := make([]byte, EstimateMaxOutputSize(uint8(LZ4), -1, len(large)))
	var lz4LargeN int
	require.Equal(t, StatusOK, Compress(uint8(LZ4), -1, large, lz4Large, &lz4LargeN))

	zstdLarge := make([]byte, EstimateMaxOutputSize(uint8(Zstd), 3, len(large)))
	var zstdLargeN int
	require.Equal(t, StatusOK, Compress(uint8(Zstd), 3, large, zstdLarge, &zstdLargeN))
	require.Less(t, zstdLargeN, lz4LargeN)

	// Corrupting one byte of a valid stream is an internal failure,
	// never a crash. Gzip carries a CRC, so any flip is caught.
	gzDst := make([]byte, EstimateMaxOutputSize(uint8(Gzip), -1, len(input)))
	var gzN int
	require.Equal(t, StatusOK, Compress(uint8(Gzip), -1, input, gzDst, &gzN))

	gzDst[gzN/2] ^= 0xFF
	require.Equal(t, StatusInternal, Decompress(uint8(Gzip), gzDst[:gzN], out, &m))
}

// TestConcurrentCalls exercises the no-coordination concurrency
// promise: parallel round trips across every algorithm.
func TestConcurrentCalls(t *testing.T) {
	input := bytes.Repeat([]byte("concurrent payload "), 64)

	var wg sync.WaitGroup
	for _, tag := range allTags {
		tag := tag
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				dst := make([]byte, EstimateMaxOutputSize(uint8(tag), -1, len(input)))
				var n int
				if status := Compress(uint8(tag), -1, input, dst, &n); status != StatusOK {
					t.Errorf("%s: compress status %d", tag, status)
					return
				}

				out := make([]byte, len(input))
				var m int
				if status := Decompress(uint8(tag), dst[:n], out, &m); status != StatusOK {
					t.Errorf("%s: decompress status %d", tag, status)
					return
				}
				if !bytes.Equal(input, out[:m]) {
					t.Errorf("%s: round trip mismatch", tag)
				}
			}()
		}
	}
	wg.Wait()
}

// panicCore is a zap core whose Write always panics, standing in for a
// misbehaving sink wired in via SetLogger.
type panicCore struct{}

func (panicCore) Enabled(zapcore.Level) bool          { return true }
func (c panicCore) With([]zapcore.Field) zapcore.Core { return c }
func (c panicCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	return ce.AddCore(ent, c)
}
func (panicCore) Write(zapcore.Entry, []zapcore.Field) error { panic("log sink failure") }
func (panicCore) Sync() error                                { return nil }

// TestFaultContainment verifies a panic raised inside an entry point
// surfaces as StatusFaultContained instead of crossing the boundary.
// The unknown-tag path is the first one that logs, so a panicking log
// sink fires the fault inside the barrier without any internal seam.
func TestFaultContainment(t *testing.T) {
	SetLogger(zap.New(panicCore{}))
	defer SetLogger(nil)

	input := []byte("hello")
	dst := make([]byte, 64)
	var n int

	require.NotPanics(t, func() {
		require.Equal(t, StatusFaultContained, Compress(255, -1, input, dst, &n))
	})
	require.NotPanics(t, func() {
		require.Equal(t, StatusFaultContained, Decompress(255, input, dst, &n))
	})

	// Ping never logs; it stays healthy even with the broken sink.
	require.Equal(t, int32(1), Ping())
}

func TestStatusString(t *testing.T) {
	require.Equal(t, "OK", StatusOK.String())
	require.Equal(t, "BufferTooSmall", StatusBufferTooSmall.String())
	require.Equal(t, "AlgoNotFound", StatusAlgoNotFound.String())
	require.Equal(t, "InvalidArgument", StatusInvalidArgument.String())
	require.Equal(t, "Internal", StatusInternal.String())
	require.Equal(t, "FaultContained", StatusFaultContained.String())
	require.Equal(t, "Unknown", Status(17).String())
}

func TestEstimate_CoversActualOutput(t *testing.T) {
	inputs := [][]byte{
		{},
		{0x01},
		bytes.Repeat([]byte("abc"), 1000),
	}

	for _, tag := range allTags {
		for _, input := range inputs {
			bound := EstimateMaxOutputSize(uint8(tag), -1, len(input))
			dst := make([]byte, bound)
			var n int
			require.Equal(t, StatusOK, Compress(uint8(tag), -1, input, dst, &n),
				"%s with %d input bytes", tag, len(input))
			require.LessOrEqual(t, n, bound)
		}
	}
}
