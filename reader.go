package progbar

import "io"

// Reader is an io.Reader wrapper which advances the bar by the amount
// of bytes read through it.
type Reader struct {
	io.Reader
	bar *Bar
}

// ProxyReader wraps r so that io primitives like io.Copy drive the
// bar. Rendering stays with the caller.
func (b *Bar) ProxyReader(r io.Reader) *Reader {
	return &Reader{r, b}
}

func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.Reader.Read(p)
	r.bar.Advance(int64(n))
	return n, err
}

// Close the reader when it implements io.Closer.
func (r *Reader) Close() error {
	if closer, ok := r.Reader.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

type proxyWriter struct {
	io.WriteCloser
	bar *Bar
}

func (x proxyWriter) Write(p []byte) (int, error) {
	n, err := x.WriteCloser.Write(p)
	x.bar.Advance(int64(n))
	return n, err
}

// ProxyWriter wraps w so that bytes written through it advance the
// bar.
func (b *Bar) ProxyWriter(w io.Writer) io.WriteCloser {
	return proxyWriter{toWriteCloser(w), b}
}

func toWriteCloser(w io.Writer) io.WriteCloser {
	if wc, ok := w.(io.WriteCloser); ok {
		return wc
	}
	return nopWriteCloser{w}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
