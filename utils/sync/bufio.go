// Package sync holds sync.Pool managed buffers shared by the encoders and
// decoders.
package sync

import (
	"bufio"
	"io"
	"sync"
)

// BufferSize is the size of the pooled bufio readers and writers.
const BufferSize = 64 * 1024

var (
	bufioReader = sync.Pool{
		New: func() interface{} {
			return bufio.NewReaderSize(nil, BufferSize)
		},
	}
	bufioWriter = sync.Pool{
		New: func() interface{} {
			return bufio.NewWriterSize(nil, BufferSize)
		},
	}
)

// GetBufioReader returns a *bufio.Reader that is managed by a sync.Pool.
// Returns a bufio.Reader that is reset with reader and ready for use.
//
// After use, the *bufio.Reader should be put back into the sync.Pool
// by calling PutBufioReader.
func GetBufioReader(reader io.Reader) *bufio.Reader {
	r := bufioReader.Get().(*bufio.Reader)
	r.Reset(reader)
	return r
}

// PutBufioReader puts reader back into its sync.Pool.
func PutBufioReader(reader *bufio.Reader) {
	reader.Reset(nil)
	bufioReader.Put(reader)
}

// GetBufioWriter returns a *bufio.Writer that is managed by a sync.Pool.
// Returns a bufio.Writer that is reset with writer and ready for use.
//
// Any buffered data must be flushed before the writer is handed back with
// PutBufioWriter.
func GetBufioWriter(writer io.Writer) *bufio.Writer {
	w := bufioWriter.Get().(*bufio.Writer)
	w.Reset(writer)
	return w
}

// PutBufioWriter puts writer back into its sync.Pool. Unflushed data is
// discarded.
func PutBufioWriter(writer *bufio.Writer) {
	writer.Reset(nil)
	bufioWriter.Put(writer)
}
