package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetByteSlice(t *testing.T) {
	slice, release := GetByteSlice(128)
	require.Len(t, slice, 128)
	release()

	// A smaller request after release reuses the pooled capacity.
	slice, release = GetByteSlice(64)
	require.Len(t, slice, 64)
	require.GreaterOrEqual(t, cap(slice), 64)
	release()
}

func TestGetByteSlice_ZeroSize(t *testing.T) {
	slice, release := GetByteSlice(0)
	defer release()

	require.Len(t, slice, 0)
}

func TestGetByteSlice_GrowsBeyondPooled(t *testing.T) {
	slice, release := GetByteSlice(16)
	require.Len(t, slice, 16)
	release()

	slice, release = GetByteSlice(1 << 20)
	defer release()

	require.Len(t, slice, 1<<20)
}

func TestGetByteSlice_OversizedNotPooled(t *testing.T) {
	slice, release := GetByteSlice(maxPooledCap + 1)
	require.Len(t, slice, maxPooledCap+1)

	// Must not panic; the buffer is simply dropped.
	release()
}
