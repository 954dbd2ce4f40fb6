package sync

import (
	"sync"
)

// ByteSliceSize is the length of the pooled byte slices.
const ByteSliceSize = 32 * 1024

var byteSlice = sync.Pool{
	New: func() interface{} {
		b := make([]byte, ByteSliceSize)
		return &b
	},
}

// GetByteSlice returns a *[]byte that is managed by a sync.Pool.
// The slice length is ByteSliceSize.
//
// After use, the *[]byte should be put back into the sync.Pool
// by calling PutByteSlice.
func GetByteSlice() *[]byte {
	return byteSlice.Get().(*[]byte)
}

// PutByteSlice puts buf back into its sync.Pool. Slices that were resliced
// below ByteSliceSize are restored to their full length.
func PutByteSlice(buf *[]byte) {
	if buf == nil || cap(*buf) < ByteSliceSize {
		return
	}

	b := (*buf)[:ByteSliceSize]
	byteSlice.Put(&b)
}
