// Package progbar renders a single line, in place updating text
// progress bar over ANSI terminal escape sequences.
//
// A Bar maps a bounded numeric value onto a fixed width fill region
// and redraws the whole line on every Render call. Several bars (or
// any other writers) targeting one output stream can serialize their
// frames through a shared sync.Locker, see WithLock.
package progbar
