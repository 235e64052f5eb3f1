package progbar

import (
	"time"

	"github.com/VividCortex/ewma"
)

// rateMeter keeps an exponentially weighted moving average of progress
// units per second, fed by Advance.
type rateMeter struct {
	average  ewma.MovingAverage
	lastSeen time.Time
}

func newRateMeter(age ...float64) *rateMeter {
	return &rateMeter{average: ewma.NewMovingAverage(age...)}
}

// observe records delta units done since the previous observation.
// The first observation only arms the timer.
func (r *rateMeter) observe(delta int64) {
	now := time.Now()
	if !r.lastSeen.IsZero() {
		r.update(delta, now.Sub(r.lastSeen))
	}
	r.lastSeen = now
}

// update records delta units done over the given duration. Non
// positive samples are dropped.
func (r *rateMeter) update(delta int64, dur time.Duration) {
	if delta <= 0 || dur <= 0 {
		return
	}
	r.average.Add(float64(delta) / dur.Seconds())
}

func (r *rateMeter) value() float64 {
	return r.average.Value()
}
