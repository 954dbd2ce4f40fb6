package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAndPutByteSlice(t *testing.T) {
	slice := GetByteSlice()
	require.NotNil(t, slice)
	assert.Len(t, *slice, ByteSliceSize)

	truncated := (*slice)[:0]
	PutByteSlice(&truncated)

	slice = GetByteSlice()
	assert.Len(t, *slice, ByteSliceSize)
	PutByteSlice(slice)
}

func TestPutByteSliceIgnoresSmallSlices(t *testing.T) {
	PutByteSlice(nil)

	small := make([]byte, 16)
	PutByteSlice(&small)

	slice := GetByteSlice()
	assert.Len(t, *slice, ByteSliceSize)
	PutByteSlice(slice)
}
