// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package retry provides a bounded capacity-doubling search, used by
// hashmap.Table to grow its backing arrays without retrying forever
// against a pathological hash function or an allocator under
// sustained memory pressure.
package retry

import (
	"errors"

	"github.com/cenkalti/backoff/v4"
)

var errAttemptFailed = errors.New("retry: attempt failed")

// Doublings calls grow with size = initial, then with size doubled on
// each failed attempt, stopping as soon as grow returns true. It gives
// up and returns false after maxAttempts+1 failures: the first call plus
// maxAttempts retries, i.e. at most maxAttempts doublings. No attempt sleeps
// between tries — there's nothing here waiting on external state, only
// a decreasing probability of exhausting the probe sequence at the
// current size — so the retry is driven by backoff.ZeroBackOff bounded
// with WithMaxRetries rather than any of the library's timed policies.
func Doublings(initial uint64, maxAttempts uint64, grow func(size uint64) bool) bool {
	size := initial
	op := func() error {
		if grow(size) {
			return nil
		}
		size *= 2
		return errAttemptFailed
	}

	b := backoff.WithMaxRetries(&backoff.ZeroBackOff{}, maxAttempts)
	return backoff.Retry(op, b) == nil
}
