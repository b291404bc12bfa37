// Package metrics contains abstractions for emission of frame timing statistics to an
// external metrics engine. Currently, the only supported output engine is statsd.
//
// The timing core itself performs no I/O; emissions are instead structured around a hook
// interface whose methods the reporting loop invokes as measurements become available.
// Implementations of the hook interface actually output the metrics to a backend engine,
// decoupling that responsibility from the loop producing the measurements. When no engine
// is configured, a noop implementation stands in.
package metrics
