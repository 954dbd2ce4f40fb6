package lzw

import (
	"io"

	"github.com/go-git/go-compressing/utils/binary"
	"github.com/go-git/go-compressing/utils/sync"
	"github.com/go-git/go-compressing/utils/trace"
)

// Decoder reads a code stream and writes the bytes it stands for.
type Decoder struct {
	r     io.Reader
	state *decoderState
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads codes until io.EOF and writes the decoded bytes to w. Every
// call starts from a fresh dictionary.
//
// A code stream ending in the middle of a code fails with
// io.ErrUnexpectedEOF; a code that cannot be resolved fails with an
// *InvalidCodeError. The bytes decoded before a failure have been written,
// including those of a code whose dictionary entry no longer fits.
func (d *Decoder) Decode(w io.Writer) (err error) {
	br := sync.GetBufioReader(d.r)
	defer sync.PutBufioReader(br)

	bw := sync.GetBufioWriter(w)
	defer sync.PutBufioWriter(bw)
	defer func() {
		if ferr := bw.Flush(); err == nil {
			err = ferr
		}
	}()

	d.state = &decoderState{}
	for {
		c, rerr := binary.ReadUint16(br)
		if rerr == io.EOF {
			break
		}

		if rerr != nil {
			return rerr
		}

		seq, err := d.state.next(Code(c))
		if len(seq) > 0 {
			if _, werr := bw.Write(seq); werr != nil {
				return werr
			}
		}

		if err != nil {
			return err
		}
	}

	trace.General.Printf("lzw: decoded %d codes, dictionary size %d", d.state.index, d.state.dict.Len())
	return nil
}

// DictionaryLen returns the number of entries of the dictionary built by the
// last call to Decode, literal entries included.
func (d *Decoder) DictionaryLen() int {
	if d.state == nil {
		return LiteralCodes
	}

	return d.state.dict.Len()
}

// decoderState resolves codes one at a time, mirroring every insertion of the
// encoder one code later. It is shared by Decoder and Reader.
type decoderState struct {
	dict decodingDictionary

	prev    Code
	started bool
	index   int64
	buf     []byte
}

// next resolves c and adds the entry it implies to the dictionary. The
// returned slice is only valid until the following call. On
// ErrDictionaryFull the sequence of c is still returned.
func (s *decoderState) next(c Code) ([]byte, error) {
	d := &s.dict

	var seq []byte
	switch {
	case d.contains(c):
		seq = s.scratch(d.length(c))
		d.expand(seq, c)
	case s.started && int(c) == d.Len():
		// The encoder emitted the code it added while emitting prev, so the
		// sequence is prev followed by its own first byte.
		n := d.length(s.prev)
		seq = s.scratch(n + 1)
		d.expand(seq[:n], s.prev)
		seq[n] = seq[0]
	default:
		return nil, &InvalidCodeError{Code: c, Next: d.Len(), Index: s.index}
	}

	if s.started {
		added, err := d.insert(s.prev, seq[0])
		if err != nil {
			return seq, err
		}

		if trace.Codes.Enabled() {
			trace.Codes.Printf("lzw: add %d = %d+%#02x", added, s.prev, seq[0])
		}
	}

	if trace.Codes.Enabled() {
		trace.Codes.Printf("lzw: decode %d, %d bytes", c, len(seq))
	}

	s.prev = c
	s.started = true
	s.index++
	return seq, nil
}

func (s *decoderState) scratch(n int) []byte {
	if cap(s.buf) < n {
		s.buf = make([]byte, n, 2*n)
	}

	return s.buf[:n]
}
