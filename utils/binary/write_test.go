package binary

import (
	"bytes"
	"encoding/binary"
	"errors"

	"github.com/go-git/go-compressing/utils/ioutil"
)

func (s *BinarySuite) TestWriteUint16() {
	expected := bytes.NewBuffer(nil)
	err := binary.Write(expected, binary.BigEndian, int16(42))
	s.NoError(err)

	buf := bytes.NewBuffer(nil)
	err = WriteUint16(buf, 42)
	s.NoError(err)
	s.Equal(expected, buf)
}

func (s *BinarySuite) TestWriteUint16ByteOrder() {
	buf := bytes.NewBuffer(nil)

	s.NoError(WriteUint16(buf, 258))
	s.NoError(WriteUint16(buf, 65535))
	s.Equal([]byte{0x01, 0x02, 0xff, 0xff}, buf.Bytes())
}

func (s *BinarySuite) TestWriteUint16Error() {
	boom := errors.New("boom")
	w := ioutil.WriterFunc(func([]byte) (int, error) { return 0, boom })

	err := WriteUint16(w, 42)
	s.ErrorIs(err, boom)
}
