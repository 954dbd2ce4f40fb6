package ioutil

import "io"

// CountingReader is a transparent io.Reader decorator that accumulates the
// number of bytes read through it. The wrapped reader keeps its concrete type,
// so it can be recovered with Inner once reading is done.
type CountingReader[R io.Reader] struct {
	inner R
	n     int64
}

// NewCountingReader returns a CountingReader reading from r.
func NewCountingReader[R io.Reader](r R) *CountingReader[R] {
	return &CountingReader[R]{inner: r}
}

// Read implements io.Reader.
func (r *CountingReader[R]) Read(p []byte) (int, error) {
	n, err := r.inner.Read(p)
	r.n += int64(n)
	return n, err
}

// Count returns the number of bytes read so far.
func (r *CountingReader[R]) Count() int64 { return r.n }

// Inner returns the wrapped reader.
func (r *CountingReader[R]) Inner() R { return r.inner }

// CountingWriter is a transparent io.Writer decorator that accumulates the
// number of bytes written through it.
type CountingWriter[W io.Writer] struct {
	inner W
	n     int64
}

// NewCountingWriter returns a CountingWriter writing to w.
func NewCountingWriter[W io.Writer](w W) *CountingWriter[W] {
	return &CountingWriter[W]{inner: w}
}

// Write implements io.Writer.
func (w *CountingWriter[W]) Write(p []byte) (int, error) {
	n, err := w.inner.Write(p)
	w.n += int64(n)
	return n, err
}

// Count returns the number of bytes written so far.
func (w *CountingWriter[W]) Count() int64 { return w.n }

// Inner returns the wrapped writer.
func (w *CountingWriter[W]) Inner() W { return w.inner }
