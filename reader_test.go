package progbar_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/progbar/progbar"
)

const content = `Lorem ipsum dolor sit amet, consectetur adipisicing elit, sed do
		eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim
		veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea
		commodo consequat. Duis aute irure dolor in reprehenderit in voluptate velit
		esse cillum dolore eu fugiat nulla pariatur. Excepteur sint occaecat
		cupidatat non proident, sunt in culpa qui officia deserunt mollit anim id
		est laborum.`

type testReader struct {
	io.Reader
	called bool
}

func (r *testReader) Read(p []byte) (n int, err error) {
	r.called = true
	return r.Reader.Read(p)
}

func TestProxyReader(t *testing.T) {
	bar, err := progbar.New("download", 10, 0, int64(len(content)),
		progbar.WithOutput(io.Discard))
	if err != nil {
		t.Fatal(err)
	}

	reader := &testReader{strings.NewReader(content), false}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, bar.ProxyReader(reader)); err != nil {
		t.Errorf("Error copying from reader: %+v\n", err)
	}

	if !reader.called {
		t.Error("Read not called")
	}

	if got := buf.String(); got != content {
		t.Errorf("Expected content: %s, got: %s\n", content, got)
	}

	if got := bar.Current(); got != int64(len(content)) {
		t.Errorf("Expected value %d, got: %d\n", len(content), got)
	}
}

func TestProxyReaderClose(t *testing.T) {
	bar, err := progbar.New("download", 10, 0, 100, progbar.WithOutput(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	if err := bar.ProxyReader(strings.NewReader(content)).Close(); err != nil {
		t.Errorf("close of a plain reader: %v", err)
	}
}

func TestProxyWriter(t *testing.T) {
	bar, err := progbar.New("upload", 10, 0, int64(len(content)),
		progbar.WithOutput(io.Discard))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	w := bar.ProxyWriter(&buf)
	if _, err := io.Copy(w, strings.NewReader(content)); err != nil {
		t.Errorf("Error copying to writer: %+v\n", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("close: %v", err)
	}

	if got := buf.String(); got != content {
		t.Errorf("Expected content: %s, got: %s\n", content, got)
	}

	if got := bar.Current(); got != int64(len(content)) {
		t.Errorf("Expected value %d, got: %d\n", len(content), got)
	}
}
