package timing

import (
	"time"
)

// Clock describes the monotonic time source consumed by a Timer. Implementations must
// produce non-decreasing timestamps; the Timer defends against violations by clamping
// negative deltas to zero, but no meaningful statistics can be derived from a clock that
// runs backwards.
type Clock interface {
	// Now returns the current time, including a monotonic reading.
	Now() time.Time
}

// systemClock reads the standard library's clock, which carries a monotonic component.
type systemClock struct{}

// Now system clock implementation.
func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock returns the ambient system monotonic clock.
func SystemClock() Clock {
	return systemClock{}
}
