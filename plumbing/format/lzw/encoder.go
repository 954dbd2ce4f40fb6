package lzw

import (
	"io"

	"github.com/go-git/go-compressing/utils/binary"
	"github.com/go-git/go-compressing/utils/sync"
	"github.com/go-git/go-compressing/utils/trace"
)

// Encoder writes the code stream of its input to an output stream.
type Encoder struct {
	w    io.Writer
	dict *encodingDictionary
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode reads r until io.EOF and writes the codes for its content to the
// encoder's writer. Every call starts from a fresh dictionary.
//
// On error, the codes emitted before the failure have been written.
func (e *Encoder) Encode(r io.Reader) (err error) {
	if _, ok := r.(io.ByteReader); !ok {
		br := sync.GetBufioReader(r)
		defer sync.PutBufioReader(br)
		r = br
	}

	bw := sync.GetBufioWriter(e.w)
	defer sync.PutBufioWriter(bw)
	defer func() {
		if ferr := bw.Flush(); err == nil {
			err = ferr
		}
	}()

	e.dict = newEncodingDictionary()
	s := &encoderState{dict: e.dict, w: bw}
	for {
		b, rerr := binary.ReadUint8(r)
		if rerr == io.EOF {
			break
		}

		if rerr != nil {
			return rerr
		}

		if err := s.write(b); err != nil {
			return err
		}
	}

	if err := s.flush(); err != nil {
		return err
	}

	trace.General.Printf("lzw: encoded %d codes, dictionary size %d", s.emitted, e.dict.Len())
	return nil
}

// DictionaryLen returns the number of entries of the dictionary built by the
// last call to Encode, literal entries included.
func (e *Encoder) DictionaryLen() int {
	if e.dict == nil {
		return LiteralCodes
	}

	return e.dict.Len()
}

// encoderState is the greedy longest match loop shared by Encoder and Writer.
type encoderState struct {
	dict *encodingDictionary
	w    io.Writer

	// pending is the code of the longest known sequence seen so far; it is
	// meaningless until started is set.
	pending Code
	started bool
	emitted int64
}

func (s *encoderState) write(b byte) error {
	if !s.started {
		s.pending = Code(b)
		s.started = true
		return nil
	}

	if c, ok := s.dict.lookup(s.pending, b); ok {
		s.pending = c
		return nil
	}

	if err := s.emit(s.pending); err != nil {
		return err
	}

	c, err := s.dict.insert(s.pending, b)
	if err != nil {
		return err
	}

	if trace.Codes.Enabled() {
		trace.Codes.Printf("lzw: add %d = %d+%#02x", c, s.pending, b)
	}

	s.pending = Code(b)
	return nil
}

// flush emits the pending code, if any. It never inserts.
func (s *encoderState) flush() error {
	if !s.started {
		return nil
	}

	s.started = false
	return s.emit(s.pending)
}

func (s *encoderState) emit(c Code) error {
	if trace.Codes.Enabled() {
		trace.Codes.Printf("lzw: emit %d", c)
	}

	s.emitted++
	return binary.WriteUint16(s.w, uint16(c))
}
