package compressing

import (
	"context"
	"io"
	"time"

	"github.com/go-git/go-compressing/utils/ioutil"
	"github.com/go-git/go-compressing/utils/trace"
)

// Compress reads src until io.EOF and writes its compressed form to dst.
// Cancelling ctx interrupts the transform at the next read or write.
func Compress(ctx context.Context, dst io.Writer, src io.Reader, o *CompressOptions) (*Stats, error) {
	if o == nil {
		o = &CompressOptions{}
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}

	return transform(ctx, dst, src, codecs[o.Algorithm].compress)
}

// Decompress reads the compressed src until io.EOF and writes the original
// bytes to dst. Cancelling ctx interrupts the transform at the next read or
// write.
func Decompress(ctx context.Context, dst io.Writer, src io.Reader, o *DecompressOptions) (*Stats, error) {
	if o == nil {
		o = &DecompressOptions{}
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}

	return transform(ctx, dst, src, codecs[o.Algorithm].decompress)
}

func transform(ctx context.Context, dst io.Writer, src io.Reader, fn transformFunc) (*Stats, error) {
	r := ioutil.NewCountingReader(ioutil.NewContextReader(ctx, src))
	w := ioutil.NewCountingWriter(ioutil.NewContextWriter(ctx, dst))

	start := time.Now()
	if err := fn(w, r); err != nil {
		return nil, err
	}

	s := &Stats{Read: r.Count(), Written: w.Count(), Elapsed: time.Since(start)}
	trace.General.Printf("compressing: %s", s)
	return s, nil
}
