package tempuscache

import "time"

// Clock abstracts wall-clock acquisition so the Facade never calls
// time.Now() directly. Tests inject a ManualClock to express "advance now
// to T+N" literally instead of sleeping.
type Clock interface {
	// NowSeconds returns the current time as whole seconds, matching the
	// cache's expiry representation.
	NowSeconds() int64
}

// SystemClock is the production Clock, backed by the real wall clock.
type SystemClock struct{}

// NowSeconds returns time.Now().Unix().
func (SystemClock) NowSeconds() int64 {
	return time.Now().Unix()
}

// ManualClock is a Clock a test can advance explicitly. The zero value
// starts at second 0; use Set or Advance to move it forward.
type ManualClock struct {
	seconds int64
}

// NewManualClock returns a ManualClock starting at the given time.
func NewManualClock(startSeconds int64) *ManualClock {
	return &ManualClock{seconds: startSeconds}
}

// NowSeconds returns the clock's current value.
func (c *ManualClock) NowSeconds() int64 {
	return c.seconds
}

// Advance moves the clock forward by delta seconds (delta may be negative,
// though that is never a realistic scenario outside of adversarial tests).
func (c *ManualClock) Advance(delta int64) {
	c.seconds += delta
}

// Set pins the clock to an absolute second value.
func (c *ManualClock) Set(seconds int64) {
	c.seconds = seconds
}
