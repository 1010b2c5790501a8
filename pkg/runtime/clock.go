// Package runtime exposes the Go runtime's monotonic clock for timing hot
// query loops.
package runtime

import (
	"time"
	_ "unsafe" // for go:linkname
)

// NanoTime returns the current time in nanoseconds from a monotonic clock.
//
//go:linkname NanoTime runtime.nanotime
func NanoTime() int64

// Since returns the time elapsed since start, a value returned by NanoTime.
func Since(start int64) time.Duration {
	return time.Duration(NanoTime() - start)
}
