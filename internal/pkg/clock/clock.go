// Package clock abstracts wall-clock access so wait-time arithmetic and
// day bucketing are deterministic under test.
package clock

import "time"

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// Real reads the system clock
type Real struct{}

// Now returns the current system time
func (Real) Now() time.Time {
	return time.Now()
}

// Fixed is a Clock pinned to a settable instant, for tests
type Fixed struct {
	Time time.Time
}

// Now returns the pinned instant
func (f *Fixed) Now() time.Time {
	return f.Time
}

// Advance moves the pinned instant forward
func (f *Fixed) Advance(d time.Duration) {
	f.Time = f.Time.Add(d)
}
