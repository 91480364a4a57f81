package pool

import "sync"

// byteSlicePool reuses staging buffers for codec adapters that must
// produce a dynamically-sized result before the final bounded copy
// into the caller's buffer.
var byteSlicePool = sync.Pool{
	New: func() any { return &[]byte{} },
}

// Buffers above this capacity are dropped instead of pooled so one
// oversized call cannot pin memory for the lifetime of the process.
const maxPooledCap = 8 * 1024 * 1024 // 8MiB

// GetByteSlice retrieves a byte slice of exactly the requested length
// from the pool, allocating when the pooled slice is too small.
//
// The caller must invoke the returned cleanup function (typically with
// defer) to return the slice to the pool. The slice contents are not
// zeroed between uses.
//
// Example:
//
//	staging, release := pool.GetByteSlice(bound)
//	defer release()
func GetByteSlice(size int) ([]byte, func()) {
	ptr, _ := byteSlicePool.Get().(*[]byte)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]byte, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() {
		if cap(*ptr) <= maxPooledCap {
			byteSlicePool.Put(ptr)
		}
	}
}
