package meta

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from human-readable YAML values such as
// "250ms" or "1s".
type Duration time.Duration

// UnmarshalYAML parses the YAML scalar with time.ParseDuration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("config: error decoding duration: err=%v", err)
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("config: error parsing duration: value=%s err=%v", raw, err)
	}

	*d = Duration(parsed)
	return nil
}

// Std returns the duration as a standard library time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// ApplicationConfig is a top-level block for application-level meta configuration.
type ApplicationConfig struct {
	SentryDSN string `yaml:"sentry_dsn"`
}

// MetricsConfig is a top-level block for metrics configuration.
type MetricsConfig struct {
	Statsd *struct {
		Address    string  `yaml:"addr"`
		SampleRate float64 `yaml:"sample_rate"`
	} `yaml:"statsd"`
}

// TimerConfig is a top-level block for frame timer configuration.
type TimerConfig struct {
	// LogInterval is the minimum duration between emitted frame statistics reports.
	// Non-positive values are clamped by the timing core rather than rejected here.
	LogInterval Duration `yaml:"log_interval"`
	// TargetFPS is an informational target framerate hint. The demo loop paces itself
	// at this rate; the timing core only derives a frame budget from it.
	TargetFPS float64 `yaml:"target_fps"`
}

// Config describes all application configuration options.
type Config struct {
	Application *ApplicationConfig `yaml:"application"`
	Metrics     *MetricsConfig     `yaml:"metrics"`
	Timer       *TimerConfig       `yaml:"timer"`
}

// DefaultConfig returns the configuration used when no config file is supplied: no error
// reporting, no metrics engine, and timer defaults chosen by the timing core.
func DefaultConfig() *Config {
	return &Config{}
}

// ParseConfig parses a Config struct instance from a file specified as a path on disk.
// An empty path yields the default configuration, so the application can run without any
// config file at all.
func ParseConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: error reading config: err=%v", err)
	}

	var cfg *Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: error parsing config: err=%v", err)
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate the contents of the configuration. Returns an error if validation failed; nil
// otherwise.
func (c *Config) validate() error {
	/* Metrics */

	// Users can omit the metrics block entirely to disable metrics reporting.
	if c.Metrics != nil && c.Metrics.Statsd != nil {
		if c.Metrics.Statsd.Address == "" {
			return fmt.Errorf("config: missing metrics statsd address")
		}

		if c.Metrics.Statsd.SampleRate < 0 || c.Metrics.Statsd.SampleRate > 1 {
			return fmt.Errorf("config: statsd sample rate must be in range [0.0, 1.0]")
		}
	}

	/* Timer */

	// The timer block is optional; the timing core supplies all defaults.
	if c.Timer != nil && c.Timer.TargetFPS < 0 {
		return fmt.Errorf(
			"config: target fps must be non-negative: target_fps=%f",
			c.Timer.TargetFPS,
		)
	}

	return nil
}
