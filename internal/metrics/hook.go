package metrics

import (
	"math"
	"os"
	"time"

	"fpstimer/internal/timing"
)

// FrameHook is a metrics hook interface for reporting per-frame timings and periodically
// aggregated frame statistics produced by the timing core.
type FrameHook interface {
	// EmitFrameTime reports the measured duration of a single frame.
	EmitFrameTime(dt time.Duration)

	// EmitFrameLog reports the aggregated statistics of a closed accumulation window.
	EmitFrameLog(frameLog timing.FrameLog)

	// EmitError reports the occurrence of an error in the reporting loop.
	EmitError()
}

// AsyncStatsdFrameHook is an implementation of FrameHook that outputs metrics
// asynchronously to statsd.
type AsyncStatsdFrameHook struct {
	client *StatsdClient
}

// NoopFrameHook implements the FrameHook interface but noops on all emissions.
type NoopFrameHook struct{}

// NewAsyncStatsdFrameHook creates a new hook pointing at the specified statsd address with
// the specified sample rate. The version string is attached as a default tag on every
// emitted metric.
func NewAsyncStatsdFrameHook(addr string, sampleRate float32, version string) (FrameHook, error) {
	client, err := statsdClientFactory(addr, sampleRate, version)
	if err != nil {
		return nil, err
	}

	return &AsyncStatsdFrameHook{client}, nil
}

// EmitFrameTime statsd implementation.
func (h *AsyncStatsdFrameHook) EmitFrameTime(dt time.Duration) {
	go h.client.Timing("latency.frame.dt", dt, nil)
}

// EmitFrameLog statsd implementation. Each window produces an average frame time timing,
// an average framerate gauge, and a count of the frames observed in the window.
func (h *AsyncStatsdFrameHook) EmitFrameLog(frameLog timing.FrameLog) {
	go func() {
		h.client.Timing("latency.frame.avg", frameLog.DeltaTimeAvg(), nil)
		h.client.Gauge("gauge.frame.fps", int64(math.Round(frameLog.FPSAverage())), nil)
		h.client.Count("event.frame.window", int64(frameLog.Frames()), nil)
	}()
}

// EmitError statsd implementation.
func (h *AsyncStatsdFrameHook) EmitError() {
	go h.client.Count("event.loop.error", 1, nil)
}

// NewNoopFrameHook creates a noop implementation of FrameHook.
func NewNoopFrameHook() FrameHook {
	return &NoopFrameHook{}
}

// EmitFrameTime noops.
func (h *NoopFrameHook) EmitFrameTime(dt time.Duration) {}

// EmitFrameLog noops.
func (h *NoopFrameHook) EmitFrameLog(frameLog timing.FrameLog) {}

// EmitError noops.
func (h *NoopFrameHook) EmitError() {}

// statsdClientFactory creates a configured StatsdClient with reasonable defaults for the
// given statsd server address and sample rate.
func statsdClientFactory(addr string, sampleRate float32, version string) (*StatsdClient, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, err
	}

	defaultTags := map[string]string{
		"host": hostname,
	}

	if version != "" {
		defaultTags["version"] = version
	}

	return NewStatsdClient(addr, "fpstimer", defaultTags, sampleRate)
}
