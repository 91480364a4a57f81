package compress

import "github.com/arloliu/bytepress/format"

// Per-algorithm level policy. Defaults and ranges follow each
// library's documented tuning range and are part of the external
// contract.
const (
	zstdDefaultLevel = 3
	zstdMinLevel     = 1
	zstdMaxLevel     = 22

	deflateDefaultLevel = 6
	deflateMinLevel     = 1
	deflateMaxLevel     = 9

	brotliDefaultLevel = 6
	brotliMinLevel     = 1
	brotliMaxLevel     = 11
)

// NormalizeLevel maps a caller-requested compression level to the
// effective level for the algorithm.
//
// The mapping is a pure function of (algorithm, level) and is
// idempotent: a normalized level normalizes to itself.
//
// Policy:
//   - level <= 0 selects the algorithm's default
//   - positive levels are clamped into the algorithm's inclusive range
//   - algorithms without a tunable level always normalize to 0
func NormalizeLevel(compressionType format.CompressionType, level int) int {
	switch compressionType {
	case format.CompressionLZ4, format.CompressionSnappy, format.CompressionLZF:
		// No level knob in these codecs.
		return 0
	case format.CompressionZstd:
		return normalizeRanged(level, zstdDefaultLevel, zstdMinLevel, zstdMaxLevel)
	case format.CompressionGzip, format.CompressionDeflate,
		format.CompressionLzma2, format.CompressionBzip2:
		return normalizeRanged(level, deflateDefaultLevel, deflateMinLevel, deflateMaxLevel)
	case format.CompressionBrotli:
		return normalizeRanged(level, brotliDefaultLevel, brotliMinLevel, brotliMaxLevel)
	default:
		return 0
	}
}

func normalizeRanged(level, def, minLevel, maxLevel int) int {
	if level <= 0 {
		return def
	}
	if level < minLevel {
		return minLevel
	}
	if level > maxLevel {
		return maxLevel
	}

	return level
}
