// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashmap

// chainNext returns the bucket that m (the metadatum of some node
// already known to be reachable from home) links to next, and whether
// such a link exists. The sentinel displacement marks chain end.
func chainNext(home uint64, m metadatum, bucketCount uint64) (uint64, bool) {
	d := displacementOf(m)
	if d == sentinelDisplace {
		return 0, false
	}
	return bucketAt(home, d, bucketCount), true
}

// findFirstEmpty walks home's quadratic probe sequence, d = 1, 2, 3, …,
// and returns the first empty bucket it finds along with the
// displacement that reaches it. It fails once d would reach the
// sentinel value, which doubles as the displacement field's upper
// limit.
func (t *Table[K, V]) findFirstEmpty(home uint64) (b uint64, d metadatum, ok bool) {
	for d = 1; d < sentinelDisplace; d++ {
		cand := bucketAt(home, d, t.bucketCount)
		if isEmpty(t.metadata[cand]) {
			return cand, d, true
		}
	}
	return 0, 0, false
}

// findInsertLocationInChain walks home's chain and returns the bucket
// of the last node whose displacement is <= targetDisp, i.e. the node
// that a new member reached via targetDisp should be spliced in after.
// This keeps every chain ordered by ascending displacement.
func (t *Table[K, V]) findInsertLocationInChain(home uint64, targetDisp metadatum) uint64 {
	prev := home
	for {
		d := displacementOf(t.metadata[prev])
		if d == sentinelDisplace || d > targetDisp {
			return prev
		}
		next := bucketAt(home, d, t.bucketCount)
		if next == prev {
			return prev
		}
		prev = next
	}
}

// evict relocates the foreign occupant of bucket b (b != its own home
// bucket) to another free slot in its own chain, leaving b empty. It
// reports false if no free slot could be found, meaning the caller
// must grow the table and retry.
//
// The relocated key is not simply dropped into its old chain position:
// b is first spliced out of home's chain, and the insert location for
// the new slot is then re-derived by walking that shortened chain, the
// same way insertRaw splices in a brand new member. Skipping the
// re-derivation and reusing b's old predecessor/displacement
// unconditionally would silently break ascending chain order whenever
// the new slot sits closer to home than some other member that used to
// follow b.
func (t *Table[K, V]) evict(b uint64) bool {
	m := t.metadata[b]
	home := t.Hash(t.buckets[b].key) & (t.bucketCount - 1)

	pred := home
	for {
		next, ok := chainNext(home, t.metadata[pred], t.bucketCount)
		if ok && next == b {
			break
		}
		pred = next
	}

	newBucket, newDisp, ok := t.findFirstEmpty(home)
	if !ok {
		return false
	}

	t.metadata[pred] = withDisplacement(t.metadata[pred], displacementOf(m))

	insertAfter := t.findInsertLocationInChain(home, newDisp)
	afterMeta := t.metadata[insertAfter]

	t.buckets[newBucket] = t.buckets[b]
	t.metadata[newBucket] = withDisplacement(hashFragOf(m), displacementOf(afterMeta))
	t.metadata[insertAfter] = withDisplacement(afterMeta, newDisp)
	t.metadata[b] = emptyMetadatum
	return true
}
