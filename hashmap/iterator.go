// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashmap

// Iterator refers to a single occupied bucket. It is invalidated by
// any insert, erase, rehash, Reserve, Shrink, or Clear on the table it
// came from , except for the
// replacement iterator returned by EraseIterator itself.
type Iterator[K, V any] struct {
	bucket uint64
	end    bool
}

// IsEnd reports whether it refers to no element, i.e. iteration is
// finished.
func (it Iterator[K, V]) IsEnd() bool {
	return it.end
}

// Key returns the key at it's position. The caller must not pass an
// end iterator; unlike Get, there is no bounds check, mirroring the
// original's documented precondition that the caller only dereferences
// a non-end iterator.
func (t *Table[K, V]) Key(it Iterator[K, V]) K {
	return t.buckets[it.bucket].key
}

// Value returns the value at it's position.
func (t *Table[K, V]) Value(it Iterator[K, V]) V {
	return t.buckets[it.bucket].val
}

// SetValue overwrites the value at it's position in place, without
// otherwise disturbing the table.
func (t *Table[K, V]) SetValue(it Iterator[K, V], val V) {
	t.buckets[it.bucket].val = val
}

// scanFrom returns an iterator to the first occupied bucket at index
// >= start, scanning in groups of four metadata words at a time
// (fast-forwarding over whole empty groups via firstNonzeroLane) and
// masking off any lanes before start in the first group examined.
// bucketCount is always 0 or a power of two >= minBucketCountPow, so
// every group of four buckets starting at a multiple of four lies
// entirely within the table.
func (t *Table[K, V]) scanFrom(start uint64) Iterator[K, V] {
	if t.bucketCount == 0 || start >= t.bucketCount {
		return Iterator[K, V]{end: true}
	}

	block := start &^ 3
	for block < t.bucketCount {
		var lanes [4]metadatum
		for lane := uint64(0); lane < 4; lane++ {
			if block+lane >= start {
				lanes[lane] = t.metadata[block+lane]
			}
		}
		if lanes[0]|lanes[1]|lanes[2]|lanes[3] != 0 {
			off := firstNonzeroLane(lanes[0], lanes[1], lanes[2], lanes[3])
			return Iterator[K, V]{bucket: block + uint64(off)}
		}
		block += 4
	}
	return Iterator[K, V]{end: true}
}

// First returns an iterator to some occupied bucket, in no particular
// order, or an end iterator if the table is empty.
func (t *Table[K, V]) First() Iterator[K, V] {
	return t.scanFrom(0)
}

// Next returns an iterator to the next occupied bucket after it, or
// an end iterator once every element has been visited.
func (t *Table[K, V]) Next(it Iterator[K, V]) Iterator[K, V] {
	return t.next(it.bucket)
}

func (t *Table[K, V]) next(afterBucket uint64) Iterator[K, V] {
	return t.scanFrom(afterBucket + 1)
}

// Clear removes every key, invoking any configured destructors, while
// keeping the table's current bucket array for reuse.
func (t *Table[K, V]) Clear() {
	if t.bucketCount == 0 {
		return
	}
	if t.KeyDtor != nil || t.ValDtor != nil {
		for it := t.First(); !it.IsEnd(); it = t.Next(it) {
			t.destroy(it.bucket)
		}
	}
	for i := range t.buckets {
		t.buckets[i] = bucket[K, V]{}
	}
	for i := range t.metadata {
		t.metadata[i] = emptyMetadatum
	}
	t.count = 0
}

// Release drops the table's backing arrays back to the shared
// placeholder state, invoking destructors on any remaining elements
// first. Use it when a Table is embedded in a longer-lived struct and
// its capacity should be reclaimed deterministically rather than left
// to the garbage collector.
func (t *Table[K, V]) Release() {
	t.Clear()
	t.bucketCount = 0
	t.buckets = nil
	t.metadata = placeholderMetadata[:]
}
