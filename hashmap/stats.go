// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashmap

// Displacements returns, for every key currently stored, the
// displacement used to reach its bucket from its home bucket (0 for a
// key sitting in its own home bucket). It walks every chain once and
// is intended for diagnostics and metrics export, not for any hot path.
func (t *Table[K, V]) Displacements() []int {
	out := make([]int, 0, t.count)
	for i := uint64(0); i < t.bucketCount; i++ {
		m := t.metadata[i]
		if isEmpty(m) || !inHomeBucket(m) {
			continue
		}
		home := i
		out = append(out, 0)
		for {
			d := displacementOf(m)
			if d == sentinelDisplace {
				break
			}
			out = append(out, int(d))
			next := bucketAt(home, d, t.bucketCount)
			m = t.metadata[next]
		}
	}
	return out
}
