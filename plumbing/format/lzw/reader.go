package lzw

import (
	"bufio"
	"io"

	"github.com/go-git/go-compressing/utils/binary"
	"github.com/go-git/go-compressing/utils/sync"
)

// Reader is an io.ReadCloser that decodes a code stream on demand.
type Reader struct {
	br      *bufio.Reader
	state   *decoderState
	pending []byte
	err     error
}

// NewReader returns a new Reader decoding the code stream read from r. Close
// releases its buffer; it does not close r.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		br:    sync.GetBufioReader(r),
		state: &decoderState{},
	}
}

// Read implements io.Reader. Reading past the end of a code stream that ends
// in the middle of a code returns io.ErrUnexpectedEOF.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	for len(r.pending) == 0 {
		if r.err != nil {
			return 0, r.err
		}

		c, err := binary.ReadUint16(r.br)
		if err != nil {
			r.err = err
			continue
		}

		seq, err := r.state.next(Code(c))
		r.pending = seq
		if err != nil {
			r.err = err
		}
	}

	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

// Close implements io.Closer.
func (r *Reader) Close() error {
	if r.err == ErrClosed {
		return nil
	}

	sync.PutBufioReader(r.br)
	r.br = nil
	r.pending = nil
	r.err = ErrClosed
	return nil
}
