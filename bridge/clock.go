package bridge

import "time"

// Clock provides monotonic seconds for notify expiry and script time
type Clock interface {
	Now() float64
}

// monotonicClock counts seconds since construction
type monotonicClock struct {
	start time.Time
}

// NewClock creates a monotonic clock starting at zero
func NewClock() Clock {
	return &monotonicClock{start: time.Now()}
}

func (c *monotonicClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// ManualClock is a test clock advanced by hand
type ManualClock struct {
	Time float64
}

func (c *ManualClock) Now() float64 { return c.Time }

// Advance moves the clock forward by dt seconds
func (c *ManualClock) Advance(dt float64) { c.Time += dt }
