// Package ioutil implements some I/O utility functions.
package ioutil

import (
	"context"
	"io"

	ctxio "github.com/jbenet/go-context/io"
)

type (
	WriterFunc func([]byte) (int, error)
	ReaderFunc func([]byte) (int, error)
)

func (f WriterFunc) Write(p []byte) (int, error) { return f(p) }
func (f ReaderFunc) Read(p []byte) (int, error)  { return f(p) }

var (
	_ io.Writer = WriterFunc(nil)
	_ io.Reader = ReaderFunc(nil)
)

// CheckClose calls Close on the given io.Closer. If the given *error points to
// nil, it will be assigned the error returned by Close. Otherwise, any error
// returned by Close will be ignored. CheckClose is usually called with defer.
func CheckClose(c io.Closer, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}

// NewContextWriter wraps a writer to make it respect given Context.
// If there is a blocking write, the returned Writer will return whenever the
// context is cancelled (the return values are n=0 and err=ctx.Err()).
//
// A context that can never be cancelled returns w unwrapped.
func NewContextWriter(ctx context.Context, w io.Writer) io.Writer {
	if ctx == nil || ctx.Done() == nil {
		return w
	}

	return ctxio.NewWriter(ctx, w)
}

// NewContextReader wraps a reader to make it respect given Context.
// If there is a blocking read, the returned Reader will return whenever the
// context is cancelled (the return values are n=0 and err=ctx.Err()).
//
// A context that can never be cancelled returns r unwrapped.
func NewContextReader(ctx context.Context, r io.Reader) io.Reader {
	if ctx == nil || ctx.Done() == nil {
		return r
	}

	return ctxio.NewReader(ctx, r)
}
