// Copyright (C) 2016  Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package monotime provides a monotonic clock source for measuring
// elapsed time, shielded from changes to the wall clock.
package monotime

import "time"

// epoch anchors Now's return values to process start, so they stay
// representable as an int64 count of nanoseconds for the life of the
// process.
var epoch = time.Now()

// Now returns the current time in nanoseconds from a monotonic clock.
// The absolute value is meaningless on its own; only differences
// between two calls to Now are meaningful.
func Now() int64 {
	return int64(time.Since(epoch))
}

// Since returns the time elapsed since t, which must have come from
// Now.
func Since(t int64) time.Duration {
	return time.Duration(Now() - t)
}
