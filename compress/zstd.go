package compress

// ZstdCodec adapts Zstandard compression (tag 3).
//
// Zstd carries its own frame structure, so every input including the
// empty one round-trips without extra framing. Levels 1-22 map onto
// the encoder's speed presets.
//
// Two implementations exist behind build tags, mirroring the two zstd
// bindings in the ecosystem:
//   - zstd_pure.go: pure-Go klauspost/compress/zstd (default)
//   - zstd_cgo.go: valyala/gozstd, selected with -tags gozstd
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// Bound returns the generic heuristic bound; zstd has no exported
// closed-form worst case shared by both implementations.
func (c ZstdCodec) Bound(n int) int {
	return genericBound(n)
}
