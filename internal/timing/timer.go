package timing

import (
	"time"
)

const (
	// DefaultLogInterval is the reporting interval applied when none is configured.
	DefaultLogInterval = 100 * time.Millisecond

	// MinLogInterval is the smallest permitted reporting interval. Zero or negative
	// configured intervals are clamped to this value rather than rejected.
	MinLogInterval = time.Millisecond
)

// Timer measures the wall-clock duration of successive frames and aggregates them into
// periodic averages. It maintains a single accumulation window: every Frame call adds the
// measured delta to the window, and Log drains the window into a FrameLog snapshot once
// the configured interval has elapsed.
//
// A Timer assumes exclusive, sequential access from a single loop. Concurrent use without
// external synchronization corrupts the accumulator; serializing access, if needed at all,
// is the caller's responsibility.
type Timer struct {
	clock Clock

	// Timestamp of the previous Frame call, or of construction before the first frame.
	last time.Time

	logInterval time.Duration
	targetFPS   float64

	// Current accumulation window.
	accumulated time.Duration
	frames      int
	sinceLog    time.Duration
}

// NewTimer creates a timer backed by the system monotonic clock, with the default
// reporting interval and no target framerate.
func NewTimer() *Timer {
	return NewTimerWithClock(SystemClock())
}

// NewTimerWithClock creates a timer that reads timestamps from the supplied clock. The
// first Frame call measures from the moment of construction.
func NewTimerWithClock(clock Clock) *Timer {
	return &Timer{
		clock:       clock,
		last:        clock.Now(),
		logInterval: DefaultLogInterval,
	}
}

// LogInterval sets the minimum duration between successive emitted frame logs and returns
// the timer for chaining. Intervals below MinLogInterval are clamped.
func (t *Timer) LogInterval(interval time.Duration) *Timer {
	if interval < MinLogInterval {
		interval = MinLogInterval
	}

	t.logInterval = interval

	return t
}

// TargetFPS records a target framerate hint and returns the timer for chaining. The hint
// only informs FrameBudget; it has no effect on measurement or reporting. Negative targets
// are treated as unset.
func (t *Timer) TargetFPS(fps float64) *Timer {
	if fps < 0 {
		fps = 0
	}

	t.targetFPS = fps

	return t
}

// FrameBudget returns the theoretical per-frame time budget implied by the configured
// target framerate, or zero when no target is set.
func (t *Timer) FrameBudget() time.Duration {
	if t.targetFPS == 0 {
		return 0
	}

	return time.Duration(float64(time.Second) / t.targetFPS)
}

// Frame registers the start of a new frame. It returns the duration elapsed since the
// previous Frame call (or since construction, for the first call) and folds that duration
// into the current accumulation window. Deltas from a backwards-stepping clock are clamped
// to zero.
func (t *Timer) Frame() time.Duration {
	now := t.clock.Now()

	dt := now.Sub(t.last)
	t.last = now

	if dt < 0 {
		dt = 0
	}

	t.accumulated += dt
	t.frames++
	t.sinceLog += dt

	return dt
}

// Log reports whether an aggregation window has closed. When at least the configured
// interval of frame time has accumulated since the previous emitted log and the window
// contains at least one frame, it returns a FrameLog summarizing the window and resets the
// accumulator. Otherwise it returns a zero FrameLog and false, leaving all state intact:
// an elapsed interval with an empty window (the caller polled Log without ever calling
// Frame) is treated as not ready rather than emitting a degenerate report.
func (t *Timer) Log() (FrameLog, bool) {
	if t.sinceLog < t.logInterval || t.frames == 0 {
		return FrameLog{}, false
	}

	frameLog := FrameLog{
		deltaAvg: t.accumulated / time.Duration(t.frames),
		frames:   t.frames,
	}

	t.accumulated = 0
	t.frames = 0
	t.sinceLog = 0

	return frameLog, true
}
