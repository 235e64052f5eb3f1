package cwriter

import (
	"bytes"
	"io"
	"strconv"
)

// https://github.com/dylanaraps/pure-sh-bible#cursor-movement
const (
	escOpen          = "\x1b["
	escSaveCursor    = "\x1b[s"
	escRestoreCursor = "\x1b[u"
	escClearToEOL    = "\x1b[K"
)

// Writer is a buffered writer which accumulates text and cursor
// control sequences of a single line update. The contents of writer
// reach the underlying stream in one write when Flush is called.
type Writer struct {
	*bytes.Buffer
	out io.Writer
}

// New returns a new Writer with defaults.
func New(out io.Writer) *Writer {
	return &Writer{
		Buffer: new(bytes.Buffer),
		out:    out,
	}
}

// CursorTo buffers an absolute vertical cursor positioning sequence.
// The top line is row 0.
func (w *Writer) CursorTo(row int) {
	w.WriteString(escOpen)
	w.WriteString(strconv.Itoa(row))
	w.WriteByte('H')
}

// SaveCursor buffers a device level cursor save.
func (w *Writer) SaveCursor() {
	w.WriteString(escSaveCursor)
}

// RestoreCursor buffers a restore to the last saved cursor position.
func (w *Writer) RestoreCursor() {
	w.WriteString(escRestoreCursor)
}

// ClearToEOL buffers a clear from cursor to end of line.
func (w *Writer) ClearToEOL() {
	w.WriteString(escClearToEOL)
}

// Flush writes the buffered frame to the underlying stream and resets
// the buffer. The frame goes out as a single write.
func (w *Writer) Flush() error {
	if w.Len() == 0 {
		return nil
	}
	_, err := w.out.Write(w.Bytes())
	w.Reset()
	return err
}
