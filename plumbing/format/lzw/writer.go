package lzw

import (
	"bufio"
	"io"

	"github.com/go-git/go-compressing/utils/sync"
)

// Writer is an io.WriteCloser that encodes the bytes written to it. The code
// stream it produces is identical to the one Encoder produces for the
// concatenation of all writes.
type Writer struct {
	bw    *bufio.Writer
	state *encoderState
	err   error
}

// NewWriter returns a new Writer writing codes to w. It is the caller's
// responsibility to call Close on the Writer when done: the last code is only
// emitted on Close. Close does not close w.
func NewWriter(w io.Writer) *Writer {
	bw := sync.GetBufioWriter(w)
	return &Writer{
		bw:    bw,
		state: &encoderState{dict: newEncodingDictionary(), w: bw},
	}
}

// Write implements io.Writer. It returns the number of bytes of p consumed
// before an error, if any.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}

	for i, b := range p {
		if err := w.state.write(b); err != nil {
			w.err = err
			return i, err
		}
	}

	return len(p), nil
}

// Flush writes any buffered codes to the underlying writer. The pending
// sequence is not emitted, as it may still be extended by later writes.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}

	if err := w.bw.Flush(); err != nil {
		w.err = err
		return err
	}

	return nil
}

// Close emits the pending code and flushes the Writer. Closing an already
// closed Writer is a no-op.
func (w *Writer) Close() error {
	if w.err == ErrClosed {
		return nil
	}

	if w.err != nil {
		return w.err
	}

	err := w.state.flush()
	if err == nil {
		err = w.bw.Flush()
	}

	if err != nil {
		w.err = err
		return err
	}

	sync.PutBufioWriter(w.bw)
	w.bw = nil
	w.err = ErrClosed
	return nil
}
