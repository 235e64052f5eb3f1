package progbar

import (
	"errors"
	"os"
	"sync"

	"github.com/progbar/progbar/cwriter"
)

// SGR sequences the bar paints with. Terminal compatibility depends
// on these byte for byte.
const (
	sgrTrack = "\x1b[31m"         // red
	sgrReset = "\x1b[37m\x1b[22m" // white, normal intensity
	sgrFill  = "\x1b[32m\x1b[1m"  // green, bold
)

// ErrInvalidConfiguration is returned by New when the end bound is
// zero.
var ErrInvalidConfiguration = errors.New("invalid configuration: zero end bound")

// Bar is a single line text progress bar. It tracks a value between
// start and end bounds and redraws itself in place on every Render
// call. A Bar owns no resources, the optional lock is borrowed.
type Bar struct {
	label    string
	start    int64
	end      int64
	width    int
	scale    float64
	value    int64
	complete bool
	style    Style
	fill     string
	track    string
	percent  bool
	suffix   string
	lock     sync.Locker
	rate     *rateMeter
	cw       *cwriter.Writer
}

// New creates a bar tracking a value from start to end, with a fill
// region width cells wide. The label is normalized to a fixed 40 cell
// field right away. Accepts progbar.Option funcs for customization.
func New(label string, width int, start, end int64, options ...Option) (*Bar, error) {
	if end == 0 {
		return nil, ErrInvalidConfiguration
	}
	b := &Bar{
		label: normalizeLabel(label),
		start: start,
		end:   end,
		width: width,
		scale: float64(width) / float64(end),
		value: start,
		cw:    cwriter.New(os.Stdout),
	}
	for _, opt := range options {
		if opt != nil {
			opt(b)
		}
	}
	b.fill, b.track = b.style.glyphs()
	return b, nil
}

// SetLabel replaces the displayed label, applying the same
// normalization as New. No other state is touched.
func (b *Bar) SetLabel(label string) {
	b.label = normalizeLabel(label)
}

// Advance adds delta to the current value, capping the result at the
// end bound. There is no lower cap. Nothing is drawn until Render.
func (b *Bar) Advance(delta int64) {
	b.value += delta
	if b.value > b.end {
		b.value = b.end
	}
	if b.rate != nil {
		b.rate.observe(delta)
	}
}

// Current returns the bar's current value.
func (b *Bar) Current() int64 {
	return b.value
}

// Total returns the bar's end bound.
func (b *Bar) Total() int64 {
	return b.end
}

// Completed reports whether the bar has reached its end bound. The
// flag is set during Render and never reverts.
func (b *Bar) Completed() bool {
	return b.complete
}

// Render redraws the bar in place on the current line and flushes the
// frame to the output stream in a single write. Once the end bound is
// reached a trailing newline follows the frame, on that render and
// every one after it.
func (b *Bar) Render() error {
	return b.render(-1)
}

// RenderAt moves the cursor to the given row before drawing. The top
// line is row 0.
func (b *Bar) RenderAt(row int) error {
	return b.render(row)
}

func (b *Bar) render(row int) error {
	if b.lock != nil {
		b.lock.Lock()
		defer b.lock.Unlock()
	}

	if b.value >= b.end {
		b.value = b.end
		b.complete = true
	}
	filled := int(float64(b.value) * b.scale)

	if row >= 0 {
		b.cw.CursorTo(row)
	}

	// first pass draws the full track and the trailing readout
	b.writeLead()
	b.cw.WriteString(sgrTrack)
	for i := 0; i < b.width; i++ {
		b.cw.WriteString(b.track)
	}
	b.cw.WriteString(sgrReset)
	b.cw.WriteString("| ")
	b.cw.WriteString(b.readout())

	// second pass overdraws the fill on top of the track, with the
	// cursor parked after the readout
	b.cw.SaveCursor()
	b.writeLead()
	b.cw.WriteString(sgrFill)
	for i := 0; i < filled; i++ {
		b.cw.WriteString(b.fill)
	}
	b.cw.WriteString(sgrReset)
	b.cw.RestoreCursor()
	b.cw.ClearToEOL()

	if err := b.cw.Flush(); err != nil {
		return err
	}
	if b.complete {
		b.cw.WriteByte('\n')
		return b.cw.Flush()
	}
	return nil
}

func (b *Bar) writeLead() {
	b.cw.WriteByte('\r')
	b.cw.WriteByte(' ')
	b.cw.WriteString(center(b.label, labelCenter))
	b.cw.WriteString(" |")
}
