package overlay

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// DefaultStep is the simulated time per animation tick.
const DefaultStep = time.Hour

// j2000 is the Julian date of 2000-01-01 12:00.
const j2000 = 2451545.0

// Clock maps animation ticks to simulated calendar time.
type Clock struct {
	Epoch time.Time
	Step  time.Duration
}

// NewClock returns a clock starting at epoch. A zero epoch means J2000.0
// and a non-positive step means DefaultStep.
func NewClock(epoch time.Time, step time.Duration) Clock {
	if epoch.IsZero() {
		epoch = julian.JDToTime(j2000)
	}
	if step <= 0 {
		step = DefaultStep
	}
	return Clock{Epoch: epoch, Step: step}
}

// At returns the simulated time after tick ticks.
func (c Clock) At(tick int) time.Time {
	return c.Epoch.Add(time.Duration(tick) * c.Step)
}

// JD returns the Julian date after tick ticks.
func (c Clock) JD(tick int) float64 {
	return julian.TimeToJD(c.At(tick))
}
