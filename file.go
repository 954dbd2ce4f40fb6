package compressing

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/pjbgf/sha1cd"

	"github.com/go-git/go-compressing/utils/ioutil"
	"github.com/go-git/go-compressing/utils/trace"
)

var (
	// ErrVerificationFailed is returned when the inverse transform of an
	// output does not give back its input.
	ErrVerificationFailed = errors.New("verification failed")
)

// CompressFile compresses the file at input into the file at output, both
// resolved on fs. The output is created if needed.
func CompressFile(ctx context.Context, fs billy.Filesystem, input, output string, o *FileOptions) (*Stats, error) {
	if o == nil {
		o = &FileOptions{}
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}

	c := codecs[o.Algorithm]
	return transformFile(ctx, fs, input, output, o, c.compress, c.decompress)
}

// DecompressFile decompresses the file at input into the file at output, both
// resolved on fs. The output is created if needed.
//
// Verification compresses the output again and compares it with the input,
// so it only succeeds for inputs written by the same encoder.
func DecompressFile(ctx context.Context, fs billy.Filesystem, input, output string, o *FileOptions) (*Stats, error) {
	if o == nil {
		o = &FileOptions{}
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}

	c := codecs[o.Algorithm]
	return transformFile(ctx, fs, input, output, o, c.decompress, c.compress)
}

func transformFile(
	ctx context.Context, fs billy.Filesystem, input, output string, o *FileOptions,
	fn, inverse transformFunc,
) (*Stats, error) {
	trace.General.Printf("compressing: %s %s -> %s", o.Algorithm, input, output)

	s, err := transformFileOnce(ctx, fs, input, output, o.Truncate, fn)
	if err != nil {
		return nil, err
	}

	if o.Verify {
		if err := verify(ctx, fs, input, output, inverse); err != nil {
			return nil, err
		}

		trace.General.Printf("compressing: %s verified", output)
	}

	return s, nil
}

func transformFileOnce(
	ctx context.Context, fs billy.Filesystem, input, output string, truncate bool,
	fn transformFunc,
) (s *Stats, err error) {
	in, err := fs.Open(input)
	if err != nil {
		return nil, err
	}

	defer ioutil.CheckClose(in, &err)

	flag := os.O_CREATE | os.O_WRONLY
	if truncate {
		flag |= os.O_TRUNC
	}

	out, err := fs.OpenFile(output, flag, 0666)
	if err != nil {
		return nil, err
	}

	defer ioutil.CheckClose(out, &err)

	return transform(ctx, out, in, fn)
}

// verify checks that the inverse transform of output has the same digest as
// input.
func verify(ctx context.Context, fs billy.Filesystem, input, output string, inverse transformFunc) error {
	expected, err := digest(fs, input, func(dst io.Writer, src io.Reader) error {
		_, err := ioutil.Copy(dst, src)
		return err
	})
	if err != nil {
		return err
	}

	got, err := digest(fs, output, func(dst io.Writer, src io.Reader) error {
		_, err := transform(ctx, dst, src, inverse)
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}

	if !bytes.Equal(expected, got) {
		return fmt.Errorf("%w: %s does not match %s", ErrVerificationFailed, output, input)
	}

	return nil
}

// digest returns the SHA-1 of what fn writes when reading the file at path.
func digest(fs billy.Filesystem, path string, fn transformFunc) (sum []byte, err error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}

	defer ioutil.CheckClose(f, &err)

	h := sha1cd.New()
	if err := fn(h, f); err != nil {
		return nil, err
	}

	return h.Sum(nil), nil
}
