// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashmap

import "github.com/aristanetworks/verset/retry"

// minBucketCountForSize returns the smallest power of two bucket
// count, at least minBucketCountPow, that can hold size elements
// without exceeding maxLoad.
func minBucketCountForSize(size int, maxLoad float64) uint64 {
	count := uint64(minBucketCountPow)
	for float64(size) > float64(count)*maxLoad {
		count *= 2
	}
	return count
}

// MinBucketCount returns the smallest bucket count that can hold size
// elements at the given load factor, the computation both Reserve and
// Shrink are built on.
func MinBucketCount(size int, maxLoad float64) uint64 {
	if maxLoad <= 0 {
		maxLoad = DefaultMaxLoad
	}
	return minBucketCountForSize(size, maxLoad)
}

// rehashTo attempts a single rehash to exactly size buckets, moving
// every existing key into a freshly allocated pair of arrays. It
// reports false, leaving t untouched, if the allocator refuses the new
// arrays or if size turns out too small for every element's probe
// sequence to land (the caller, rehash, is responsible for doubling
// and retrying).
func (t *Table[K, V]) rehashTo(size uint64) bool {
	nBytes := int(size)*bucketSize[K, V]() + int(size+4)*2
	if err := t.reserveBytes(nBytes); err != nil {
		return false
	}

	nt := &Table[K, V]{Hash: t.Hash, Equal: t.Equal, bucketCount: size}
	nt.buckets = make([]bucket[K, V], size)
	nt.metadata = make([]metadatum, size+4)
	for i := size; i < size+4; i++ {
		nt.metadata[i] = 0xFFFF
	}

	for it := t.First(); !it.IsEnd(); it = t.Next(it) {
		key := t.buckets[it.bucket].key
		val := t.buckets[it.bucket].val
		b, _, ok := nt.insertRaw(key, false)
		if !ok {
			return false
		}
		nt.buckets[b].val = val
	}

	t.bucketCount = nt.bucketCount
	t.buckets = nt.buckets
	t.metadata = nt.metadata
	return true
}

// rehash moves t to target buckets (larger or smaller), doubling further if
// an attempt's probe sequences don't all fit, up to maxRehashDoublings
// tries. It returns false only when every attempt up to that bound
// failed, which in practice means an injected Allocator refused every
// one of them.
func (t *Table[K, V]) rehash(target uint64) bool {
	if target < minBucketCountPow {
		target = minBucketCountPow
	}
	return retry.Doublings(target, maxRehashDoublings, t.rehashTo)
}

// Reserve grows t, if needed, so that it can hold n elements without
// triggering a further rehash, and reports whether it succeeded.
func (t *Table[K, V]) Reserve(n int) bool {
	t.ensurePlaceholder()
	need := minBucketCountForSize(n, t.maxLoad())
	if need <= t.bucketCount {
		return true
	}
	return t.rehash(need)
}

// Shrink reduces t's bucket count to the minimum that fits its current
// size, releasing unused capacity back to the (garbage-collected)
// allocator. An empty table is restored to the zero/placeholder state.
func (t *Table[K, V]) Shrink() bool {
	if t.count == 0 {
		t.Release()
		return true
	}
	target := minBucketCountForSize(t.count, t.maxLoad())
	if target >= t.bucketCount {
		return true
	}
	return t.rehash(target)
}
