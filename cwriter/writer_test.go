package cwriter

import (
	"bytes"
	"errors"
	"testing"
)

func TestWriterFlush(t *testing.T) {
	b := &bytes.Buffer{}
	w := New(b)

	w.CursorTo(3)
	w.SaveCursor()
	w.WriteString("foo")
	w.RestoreCursor()
	w.ClearToEOL()
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	want := "\x1b[3H\x1b[s" + "foo" + "\x1b[u\x1b[K"
	if b.String() != want {
		t.Fatalf("want %q, got %q", want, b.String())
	}
	if w.Len() != 0 {
		t.Fatalf("buffer not reset after flush, %d bytes left", w.Len())
	}

	// flushing an empty buffer writes nothing
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	if b.String() != want {
		t.Fatalf("empty flush wrote bytes: %q", b.String())
	}
}

func TestWriterSingleWrite(t *testing.T) {
	c := &countingWriter{}
	w := New(c)

	w.WriteString("foo")
	w.ClearToEOL()
	w.WriteString("bar")
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	if c.calls != 1 {
		t.Fatalf("want a single write per flush, got %d", c.calls)
	}
}

func TestWriterFlushError(t *testing.T) {
	errBroken := errors.New("broken pipe")
	w := New(writerFunc(func([]byte) (int, error) { return 0, errBroken }))

	w.WriteString("foo")
	if err := w.Flush(); !errors.Is(err, errBroken) {
		t.Fatalf("want %v, got %v", errBroken, err)
	}
}

type countingWriter struct {
	calls int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	c.calls++
	return len(p), nil
}

type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) {
	return f(p)
}
