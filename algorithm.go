package compressing

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/go-git/go-compressing/plumbing/format/lzw"
)

// Algorithm is the name of a compression algorithm.
type Algorithm string

const (
	// LZW is the LZW algorithm with fixed 16-bit big endian codes.
	LZW Algorithm = "lzw"

	// DefaultAlgorithm is used when none is set.
	DefaultAlgorithm = LZW
)

var (
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// transformFunc reads src until io.EOF and writes its transform to dst.
type transformFunc func(dst io.Writer, src io.Reader) error

type codec struct {
	compress   transformFunc
	decompress transformFunc
}

var codecs = map[Algorithm]codec{
	LZW: {
		compress: func(dst io.Writer, src io.Reader) error {
			return lzw.NewEncoder(dst).Encode(src)
		},
		decompress: func(dst io.Writer, src io.Reader) error {
			return lzw.NewDecoder(src).Decode(dst)
		},
	},
}

// ParseAlgorithm returns the Algorithm named s, case insensitive.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	if err := a.Validate(); err != nil {
		return "", err
	}

	return a, nil
}

// Algorithms returns the names of all the supported algorithms, sorted.
func Algorithms() []Algorithm {
	names := make([]Algorithm, 0, len(codecs))
	for a := range codecs {
		names = append(names, a)
	}

	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Validate returns ErrUnknownAlgorithm if a is not supported.
func (a Algorithm) Validate() error {
	if _, ok := codecs[a]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
	}

	return nil
}

func (a Algorithm) String() string {
	return string(a)
}
