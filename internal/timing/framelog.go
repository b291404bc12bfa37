package timing

import (
	"time"
)

// FrameLog is an immutable snapshot of a closed accumulation window. It is produced by
// Timer.Log and carries no reference to the timer that produced it.
type FrameLog struct {
	deltaAvg time.Duration
	frames   int
}

// DeltaTimeAvg returns the average per-frame duration over the window.
func (l FrameLog) DeltaTimeAvg() time.Duration {
	return l.deltaAvg
}

// DeltaTimeAvgMillis returns the average per-frame duration over the window in
// fractional milliseconds.
func (l FrameLog) DeltaTimeAvgMillis() float64 {
	return float64(l.deltaAvg) / float64(time.Millisecond)
}

// FPSAverage returns the average framerate over the window, derived as the reciprocal of
// the average frame duration. A window whose average duration is zero yields zero rather
// than a division fault.
func (l FrameLog) FPSAverage() float64 {
	secs := l.deltaAvg.Seconds()
	if secs == 0 {
		return 0
	}

	return 1 / secs
}

// Frames returns the number of frames observed in the window. It is always at least 1 for
// snapshots produced by Timer.Log.
func (l FrameLog) Frames() int {
	return l.frames
}
