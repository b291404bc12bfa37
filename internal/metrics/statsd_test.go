package metrics

import (
	"strings"
	"sync"
	"testing"
	"time"
)

// recordingStatter captures emitted stats in memory.
type recordingStatter struct {
	mutex   sync.Mutex
	counts  map[string]int64
	gauges  map[string]int64
	timings map[string]time.Duration
}

func newRecordingStatter() *recordingStatter {
	return &recordingStatter{
		counts:  make(map[string]int64),
		gauges:  make(map[string]int64),
		timings: make(map[string]time.Duration),
	}
}

func (r *recordingStatter) Inc(stat string, value int64, rate float32) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.counts[stat] += value
	return nil
}

func (r *recordingStatter) Gauge(stat string, value int64, rate float32) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.gauges[stat] = value
	return nil
}

func (r *recordingStatter) TimingDuration(stat string, delta time.Duration, rate float32) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.timings[stat] = delta
	return nil
}

func newTestClient(backend statter, defaultTags map[string]string) *StatsdClient {
	return &StatsdClient{
		backend:     backend,
		defaultTags: defaultTags,
		sampleRate:  1.0,
	}
}

func TestFormatMetricWithoutTags(t *testing.T) {
	client := newTestClient(newRecordingStatter(), nil)

	if formatted := client.formatMetric("latency.frame.dt", nil); formatted != "latency.frame.dt" {
		t.Fatalf("expected untagged metric to pass through, got %s", formatted)
	}
}

func TestFormatMetricMergesDefaultTags(t *testing.T) {
	client := newTestClient(newRecordingStatter(), map[string]string{"host": "render01"})

	formatted := client.formatMetric("event.frame.window", map[string]string{"loop": "main"})

	if !strings.HasPrefix(formatted, "event.frame.window,") {
		t.Fatalf("expected metric name prefix, got %s", formatted)
	}
	if !strings.Contains(formatted, "host=render01") {
		t.Fatalf("expected default tag in serialized metric, got %s", formatted)
	}
	if !strings.Contains(formatted, "loop=main") {
		t.Fatalf("expected caller tag in serialized metric, got %s", formatted)
	}
}

func TestFormatMetricEscapesIncompatibleCharacters(t *testing.T) {
	client := newTestClient(newRecordingStatter(), nil)

	formatted := client.formatMetric("latency:frame", map[string]string{"addr": "10.0.0.1:8125"})

	if strings.Contains(formatted, ":") {
		t.Fatalf("expected colons to be escaped, got %s", formatted)
	}
}

func TestClientEmissions(t *testing.T) {
	backend := newRecordingStatter()
	client := newTestClient(backend, nil)

	if err := client.Count("event.frame.window", 10, nil); err != nil {
		t.Fatalf("count emission failed: %v", err)
	}
	if err := client.Gauge("gauge.frame.fps", 60, nil); err != nil {
		t.Fatalf("gauge emission failed: %v", err)
	}
	if err := client.Timing("latency.frame.dt", 16*time.Millisecond, nil); err != nil {
		t.Fatalf("timing emission failed: %v", err)
	}

	if backend.counts["event.frame.window"] != 10 {
		t.Fatalf("expected count of 10, got %d", backend.counts["event.frame.window"])
	}
	if backend.gauges["gauge.frame.fps"] != 60 {
		t.Fatalf("expected gauge of 60, got %d", backend.gauges["gauge.frame.fps"])
	}
	if backend.timings["latency.frame.dt"] != 16*time.Millisecond {
		t.Fatalf("expected timing of 16ms, got %v", backend.timings["latency.frame.dt"])
	}
}
