package compressing

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/suite"
)

type FileSuite struct {
	suite.Suite
	fs billy.Filesystem
}

func TestFileSuite(t *testing.T) {
	suite.Run(t, new(FileSuite))
}

func (s *FileSuite) SetupTest() {
	s.fs = memfs.New()
}

func (s *FileSuite) write(path string, content []byte) {
	s.Require().NoError(util.WriteFile(s.fs, path, content, 0644))
}

func (s *FileSuite) read(path string) []byte {
	content, err := util.ReadFile(s.fs, path)
	s.Require().NoError(err)
	return content
}

func (s *FileSuite) TestRoundTrip() {
	input := fixture(s.T())
	s.write("input", input)

	cs, err := CompressFile(context.Background(), s.fs, "input", "input.lzw", &FileOptions{Verify: true})
	s.Require().NoError(err)
	s.Equal(int64(len(input)), cs.Read)
	s.Equal(int64(len(s.read("input.lzw"))), cs.Written)

	ds, err := DecompressFile(context.Background(), s.fs, "input.lzw", "output", &FileOptions{Verify: true})
	s.Require().NoError(err)
	s.Equal(input, s.read("output"))
	s.Equal(cs.Written, ds.Read)
	s.Equal(cs.Read, ds.Written)
}

func (s *FileSuite) TestCompressFile() {
	s.write("input", []byte("ABABABA"))

	_, err := CompressFile(context.Background(), s.fs, "input", "output", nil)
	s.Require().NoError(err)
	s.Equal([]byte{0x00, 0x41, 0x00, 0x42, 0x01, 0x00, 0x01, 0x02}, s.read("output"))
}

func (s *FileSuite) TestMissingInput() {
	_, err := CompressFile(context.Background(), s.fs, "missing", "output", nil)
	s.ErrorIs(err, os.ErrNotExist)

	_, err = s.fs.Stat("output")
	s.ErrorIs(err, os.ErrNotExist)
}

func (s *FileSuite) TestOverwriteWithoutTruncate() {
	s.write("input", []byte("ABABABA"))
	s.write("output", bytes.Repeat([]byte{0xff}, 16))

	_, err := CompressFile(context.Background(), s.fs, "input", "output", nil)
	s.Require().NoError(err)

	expected := append([]byte{0x00, 0x41, 0x00, 0x42, 0x01, 0x00, 0x01, 0x02}, bytes.Repeat([]byte{0xff}, 8)...)
	s.Equal(expected, s.read("output"))
}

func (s *FileSuite) TestOverwriteWithTruncate() {
	s.write("input", []byte("ABABABA"))
	s.write("output", bytes.Repeat([]byte{0xff}, 16))

	_, err := CompressFile(context.Background(), s.fs, "input", "output", &FileOptions{Truncate: true})
	s.Require().NoError(err)
	s.Equal([]byte{0x00, 0x41, 0x00, 0x42, 0x01, 0x00, 0x01, 0x02}, s.read("output"))
}

func (s *FileSuite) TestVerifyStaleOutput() {
	s.write("input", []byte("ABABABA"))
	s.write("output", bytes.Repeat([]byte{0xff}, 16))

	_, err := CompressFile(context.Background(), s.fs, "input", "output", &FileOptions{Verify: true})
	s.ErrorIs(err, ErrVerificationFailed)
}

func (s *FileSuite) TestVerifyNonCanonicalInput() {
	// decodes to "AAA", which the encoder writes as 65, 256
	s.write("input", []byte{0x00, 0x41, 0x00, 0x41, 0x00, 0x41})

	_, err := DecompressFile(context.Background(), s.fs, "input", "output", nil)
	s.Require().NoError(err)
	s.Equal("AAA", string(s.read("output")))

	_, err = DecompressFile(context.Background(), s.fs, "input", "output", &FileOptions{Verify: true})
	s.ErrorIs(err, ErrVerificationFailed)
	s.ErrorContains(err, "output does not match input")
}

func (s *FileSuite) TestUnknownAlgorithm() {
	_, err := DecompressFile(context.Background(), s.fs, "input", "output", &FileOptions{Algorithm: "zip"})
	s.ErrorIs(err, ErrUnknownAlgorithm)
}
