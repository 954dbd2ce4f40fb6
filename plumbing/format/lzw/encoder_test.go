package lzw_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	. "github.com/go-git/go-compressing/plumbing/format/lzw"
	"github.com/go-git/go-compressing/utils/ioutil"
)

type EncoderSuite struct {
	suite.Suite
}

func TestEncoderSuite(t *testing.T) {
	suite.Run(t, new(EncoderSuite))
}

func (s *EncoderSuite) encode(input []byte) ([]byte, *Encoder) {
	buf := bytes.NewBuffer(nil)
	e := NewEncoder(buf)
	s.NoError(e.Encode(bytes.NewReader(input)))
	return buf.Bytes(), e
}

func (s *EncoderSuite) TestEncode() {
	for _, v := range vectors(s.T()) {
		s.Run(v.name, func() {
			out, _ := s.encode(v.decoded)
			s.Equal(v.encoded, out)
		})
	}
}

func (s *EncoderSuite) TestEncodeEveryLiteral() {
	for i := 0; i < LiteralCodes; i++ {
		out, e := s.encode([]byte{byte(i)})
		s.Equal(coded(uint16(i)), out)
		s.Equal(LiteralCodes, e.DictionaryLen())
	}
}

func (s *EncoderSuite) TestEncodeWithoutByteReader() {
	buf := bytes.NewBuffer(nil)
	err := NewEncoder(buf).Encode(io.LimitReader(strings.NewReader("ABABABA"), 7))
	s.NoError(err)
	s.Equal(coded(65, 66, 256, 258), buf.Bytes())
}

func (s *EncoderSuite) TestEncodeIsDeterministic() {
	input := random(32 * 1024)

	first, _ := s.encode(input)
	second, _ := s.encode(input)
	s.Equal(first, second)
}

func (s *EncoderSuite) TestDictionaryLen() {
	e := NewEncoder(io.Discard)
	s.Equal(LiteralCodes, e.DictionaryLen())

	out, e := s.encode([]byte("ABBABBBABBA"))
	codes := len(out) / CodeSize
	s.Equal(7, codes)
	// one insertion per emitted code, except the final flush
	s.Equal(LiteralCodes+codes-1, e.DictionaryLen())
}

func (s *EncoderSuite) TestDictionaryIsFreshPerCall() {
	buf := bytes.NewBuffer(nil)
	e := NewEncoder(buf)

	s.NoError(e.Encode(strings.NewReader("ABABABA")))
	s.NoError(e.Encode(strings.NewReader("ABABABA")))

	s.Equal(append(coded(65, 66, 256, 258), coded(65, 66, 256, 258)...), buf.Bytes())
	s.Equal(259, e.DictionaryLen())
}

func (s *EncoderSuite) TestRepeatedByte() {
	input := bytes.Repeat([]byte{'x'}, 1000)

	out, e := s.encode(input)
	// runs of 1, 2, 3... bytes: 44 full runs cover 990 bytes, 10 are left
	s.Len(out, 45*CodeSize)
	s.Equal(LiteralCodes+44, e.DictionaryLen())
}

func (s *EncoderSuite) TestDictionaryFull() {
	input := random(1 << 20)

	buf := bytes.NewBuffer(nil)
	err := NewEncoder(buf).Encode(bytes.NewReader(input))
	s.ErrorIs(err, ErrDictionaryFull)

	// every successful insertion follows an emitted code, and so does the
	// one that failed
	s.Len(buf.Bytes(), (MaxCodes-LiteralCodes+1)*CodeSize)

	decoded := bytes.NewBuffer(nil)
	s.NoError(NewDecoder(bytes.NewReader(buf.Bytes())).Decode(decoded))
	s.True(bytes.HasPrefix(input, decoded.Bytes()))
}

func (s *EncoderSuite) TestReadError() {
	boom := errors.New("boom")
	sent := false
	r := ioutil.ReaderFunc(func(p []byte) (int, error) {
		if sent {
			return 0, boom
		}

		sent = true
		return copy(p, "AB"), nil
	})

	buf := bytes.NewBuffer(nil)
	err := NewEncoder(buf).Encode(r)
	s.ErrorIs(err, boom)
	s.Equal(coded(65), buf.Bytes())
}

func (s *EncoderSuite) TestWriteError() {
	boom := errors.New("boom")
	w := ioutil.WriterFunc(func([]byte) (int, error) { return 0, boom })

	err := NewEncoder(w).Encode(strings.NewReader("ABABABA"))
	s.ErrorIs(err, boom)
}
