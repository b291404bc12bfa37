package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"fpstimer/internal/log"
	"fpstimer/internal/meta"
	"fpstimer/internal/metrics"
	"fpstimer/internal/timing"

	"github.com/getsentry/raven-go"
	"lib.kevinlin.info/aperture/lib"
)

// defaultTargetFPS is the framerate the demo loop paces itself at when neither a command
// line argument nor the config file supplies a target.
const defaultTargetFPS = 60.0

func main() {
	configPath := flag.String(
		"config",
		os.Getenv("FPSTIMER_CONFIG"),
		"path to the configuration file on disk",
	)
	version := flag.Bool(
		"version",
		false,
		"print the compiled fpstimer version SHA",
	)
	verbosity := flag.String(
		"verbosity",
		"info",
		"desired logging verbosity: one of error, warn, info, debug",
	)
	flag.Parse()

	// Report the compiled version and exit
	if *version {
		fmt.Printf("fpstimer/%s\n", meta.VersionSHA)
		return
	}

	startupTimer := lib.NewStopwatch()

	// Logging configuration; default to log.Info verbosity
	level, _ := log.ParseLevel(*verbosity)
	logger := log.NewConsoleLogger(level)
	logger.Debug("main: initialized logger: level=%v", level)

	// Parse application configuration
	logger.Debug("main: reading and parsing config: path=%s", *configPath)
	config, err := meta.ParseConfig(*configPath)
	if err != nil {
		panic(err)
	}

	// Configure error reporting
	if config.Application != nil && config.Application.SentryDSN != "" {
		raven.SetDSN(config.Application.SentryDSN)
		raven.SetRelease(meta.VersionSHA)
	}

	// Configure metrics reporting
	frameHook := metrics.NewNoopFrameHook()

	if config.Metrics != nil && config.Metrics.Statsd != nil {
		logger.Info(
			"main: configuring statsd metrics reporting: addr=%s sample_rate=%f",
			config.Metrics.Statsd.Address,
			config.Metrics.Statsd.SampleRate,
		)

		if frameHook, err = metrics.NewAsyncStatsdFrameHook(
			config.Metrics.Statsd.Address,
			float32(config.Metrics.Statsd.SampleRate),
			meta.VersionSHA,
		); err != nil {
			panic(err)
		}
	} else {
		logger.Warn("main: no metrics output engine specified; disabling metrics")
	}

	// Configure the frame timer
	targetFPS := parseTargetFPS(flag.Args(), config)
	timer := timing.NewTimer().TargetFPS(targetFPS)

	logInterval := timing.DefaultLogInterval
	if config.Timer != nil && config.Timer.LogInterval != 0 {
		logInterval = config.Timer.LogInterval.Std()
		timer.LogInterval(logInterval)
	}

	logger.Info(
		"main: starting frame loop: target_fps=%.1f frame_budget=%v log_interval=%v",
		targetFPS,
		timer.FrameBudget(),
		logInterval,
	)
	logger.Debug("main: initialization complete: elapsed=%v", startupTimer.Elapsed())

	// Run indefinitely
	raven.CapturePanic(func() {
		runLoop(timer, frameHook)
	}, nil)
}

// parseTargetFPS resolves the demo's target framerate. A positional command line argument
// takes precedence, followed by the config file, followed by the built-in default. Absent,
// unparsable, or non-positive arguments fall through silently.
func parseTargetFPS(args []string, config *meta.Config) float64 {
	if len(args) > 0 {
		if fps, err := strconv.ParseFloat(args[0], 64); err == nil && fps > 0 {
			return fps
		}
	}

	if config != nil && config.Timer != nil && config.Timer.TargetFPS > 0 {
		return config.Timer.TargetFPS
	}

	return defaultTargetFPS
}

// runLoop drives the frame timer at the configured target framerate and prints a status
// line for every emitted frame statistics window. Pacing lives here, in the caller; the
// timer itself never sleeps.
func runLoop(timer *timing.Timer, frameHook metrics.FrameHook) {
	budget := timer.FrameBudget()
	if budget <= 0 {
		fps := float64(defaultTargetFPS)
		budget = time.Duration(float64(time.Second) / fps)
	}

	ticker := time.NewTicker(budget)
	defer ticker.Stop()

	for range ticker.C {
		dt := timer.Frame()
		frameHook.EmitFrameTime(dt)

		if frameLog, ok := timer.Log(); ok {
			frameHook.EmitFrameLog(frameLog)
			fmt.Printf(
				"frames: %4d | avg frame time: %7.3f ms | avg fps: %7.2f\n",
				frameLog.Frames(),
				frameLog.DeltaTimeAvgMillis(),
				frameLog.FPSAverage(),
			)
		}
	}
}
