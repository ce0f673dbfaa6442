package host

import "time"

// Clock is where frame time comes from.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// StepClock only moves when stepped. Frames rendered off screen are timed
// with it.
type StepClock struct {
	now time.Time
}

// NewStepClock returns a clock stopped at start.
func NewStepClock(start time.Time) *StepClock {
	return &StepClock{now: start}
}

func (c *StepClock) Now() time.Time { return c.now }

// Step moves the clock forward by d. Negative steps are ignored.
func (c *StepClock) Step(d time.Duration) {
	if d > 0 {
		c.now = c.now.Add(d)
	}
}
