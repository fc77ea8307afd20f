package sim

import "time"

// Clock abstracts the time source feeding Tick so tests can drive the
// simulation deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real system time with monotonic readings.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a controllable time source for testing.
type ManualClock struct {
	current time.Time
}

// NewManualClock creates a manual clock starting at the given time.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{current: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time {
	return c.current
}

// Set jumps the clock to the given time.
func (c *ManualClock) Set(t time.Time) {
	c.current = t
}

// Advance moves the clock forward by the given duration.
func (c *ManualClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
