package progbar

import (
	"io"
	"sync"

	"github.com/progbar/progbar/cwriter"
)

// Option is a function option which changes the default behavior of a
// bar, if passed to progbar.New(...Option).
type Option func(*Bar)

// WithStyle overrides default StyleHashes glyph pair. Values outside
// the implemented set silently resolve to the default pair.
func WithStyle(s Style) Option {
	return func(b *Bar) {
		b.style = s
	}
}

// WithPercent switches the trailing readout from "N of M" to a
// percentage.
func WithPercent() Option {
	return func(b *Bar) {
		b.percent = true
	}
}

// WithSuffix appends a unit string to the "N of M" readout, for
// example "bytes". Not shown in percent mode.
func WithSuffix(suffix string) Option {
	return func(b *Bar) {
		b.suffix = suffix
	}
}

// WithLock provides a lock shared by every writer targeting the same
// output stream. Render holds it for the duration of a frame.
func WithLock(l sync.Locker) Option {
	return func(b *Bar) {
		b.lock = l
	}
}

// WithOutput overrides default output os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(b *Bar) {
		if w == nil {
			w = io.Discard
		}
		b.cw = cwriter.New(w)
	}
}

// WithRate appends an items per second readout after the trailing
// text, smoothed by an exponentially weighted moving average of the
// given age. The figure only changes on Advance, so repeated renders
// of an unchanged bar stay byte identical.
func WithRate(age ...float64) Option {
	return func(b *Bar) {
		b.rate = newRateMeter(age...)
	}
}
