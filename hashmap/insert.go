// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashmap

// insertRaw places key into a table that is already known to have
// room (the caller is responsible for growing beforehand). It never
// triggers a rehash itself.
//
// If checkDuplicates is false, the caller guarantees key isn't already
// present — used internally by rehash, which is reinserting a set of
// already-unique keys and can skip the comparator entirely.
//
// It returns the bucket the key ends up in, whether it was already
// present, and whether the operation succeeded. Failure means the
// probe sequence was exhausted and
// the caller must grow the table and retry.
func (t *Table[K, V]) insertRaw(key K, checkDuplicates bool) (bucket uint64, existed bool, ok bool) {
	hash := t.Hash(key)
	home := hash & (t.bucketCount - 1)
	hm := t.metadata[home]

	if isEmpty(hm) || !inHomeBucket(hm) {
		if !isEmpty(hm) {
			if !t.evict(home) {
				return 0, false, false
			}
		}
		t.buckets[home].key = key
		t.metadata[home] = hashFrag(hash) | inHomeBucketMask | sentinelDisplace
		return home, false, true
	}

	if checkDuplicates {
		frag := hashFrag(hash)
		cur := home
		for {
			cm := t.metadata[cur]
			if hashFragOf(cm) == frag && t.Equal(t.buckets[cur].key, key) {
				return cur, true, true
			}
			next, more := chainNext(home, cm, t.bucketCount)
			if !more {
				break
			}
			cur = next
		}
	}

	newBucket, newDisp, found := t.findFirstEmpty(home)
	if !found {
		return 0, false, false
	}
	insertAfter := t.findInsertLocationInChain(home, newDisp)
	afterMeta := t.metadata[insertAfter]

	t.buckets[newBucket].key = key
	t.metadata[newBucket] = withDisplacement(hashFrag(hash), displacementOf(afterMeta))
	t.metadata[insertAfter] = withDisplacement(afterMeta, newDisp)
	return newBucket, false, true
}

// growTarget returns the bucket count rehash should aim for next.
func (t *Table[K, V]) growTarget() uint64 {
	if t.bucketCount == 0 {
		return minBucketCountPow
	}
	return t.bucketCount * 2
}

// insertOrFind is the shared retry loop behind Insert and GetOrInsert:
// grow (via rehash) whenever the load factor would be exceeded or a
// probe sequence is exhausted, then retry insertRaw. It reports ok =
// false only if rehash itself fails, which in turn only happens if an
// injected Allocator refuses every doubling up to the bound in
// maxRehashDoublings.
func (t *Table[K, V]) insertOrFind(key K, checkDuplicates bool) (bucket uint64, existed bool, ok bool) {
	t.ensurePlaceholder()
	for {
		if t.bucketCount == 0 || float64(t.count+1) > float64(t.bucketCount)*t.maxLoad() {
			if !t.rehash(t.growTarget()) {
				return 0, false, false
			}
			continue
		}
		b, existed, inserted := t.insertRaw(key, checkDuplicates)
		if inserted {
			if !existed {
				t.count++
			}
			return b, existed, true
		}
		if !t.rehash(t.growTarget()) {
			return 0, false, false
		}
	}
}

// Insert stores val under key, overwriting any existing value. It
// returns the value that was previously stored (the zero value if
// key was new), whether key already existed, and whether the
// operation succeeded (ok is false only on allocator failure, see
// Allocator).
func (t *Table[K, V]) Insert(key K, val V) (previous V, existed bool, ok bool) {
	b, existed, ok := t.insertOrFind(key, true)
	if !ok {
		return previous, false, false
	}
	if existed {
		previous = t.buckets[b].val
		t.destroy(b)
		t.buckets[b].key = key
	}
	t.buckets[b].val = val
	return previous, existed, true
}

// GetOrInsert returns the value already stored under key, or inserts
// def and returns it if key was absent.
func (t *Table[K, V]) GetOrInsert(key K, def V) (val V, existed bool, ok bool) {
	b, existed, ok := t.insertOrFind(key, true)
	if !ok {
		return def, false, false
	}
	if !existed {
		t.buckets[b].val = def
	}
	return t.buckets[b].val, existed, true
}
