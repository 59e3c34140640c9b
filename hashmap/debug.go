// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashmap

import (
	"fmt"
	"strings"
)

// DebugString dumps every bucket's occupancy, home status, hash
// fragment and displacement link, one line per bucket. It is meant for
// test failure output, not for production logging.
func (t *Table[K, V]) DebugString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Table{size=%d, bucketCount=%d}\n", t.count, t.bucketCount)
	for i := uint64(0); i < t.bucketCount; i++ {
		m := t.metadata[i]
		if isEmpty(m) {
			fmt.Fprintf(&b, "  [%d] empty\n", i)
			continue
		}
		status := "foreign"
		if inHomeBucket(m) {
			status = "home"
		}
		homeBucket := t.Hash(t.buckets[i].key) & (t.bucketCount - 1)
		next := "end"
		if n, ok := chainNext(homeBucket, m, t.bucketCount); ok {
			next = fmt.Sprintf("%d", n)
		}
		fmt.Fprintf(&b, "  [%d] %s frag=%#x key=%v val=%v next=%s\n",
			i, status, hashFragOf(m)>>12, t.buckets[i].key, t.buckets[i].val, next)
	}
	return b.String()
}
