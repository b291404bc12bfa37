// Package timing implements the frame timing core: per-frame delta time measurement and
// periodic emission of aggregated frame statistics.
//
// A Timer is owned by exactly one render or update loop. The loop calls Frame once per
// iteration to register the elapsed time since the previous iteration, and polls Log on its
// own cadence; Log yields an aggregated FrameLog snapshot once per configured interval and
// accumulates silently otherwise. The Timer never sleeps, blocks, or performs I/O: frame
// rate limiting and display of the produced statistics are the caller's concern.
package timing
