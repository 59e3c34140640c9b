// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashmap

// findBucket locates key's bucket, if present. Lookups never touch
// the bucket array or call Equal for a chain member whose stored hash
// fragment doesn't match.
func (t *Table[K, V]) findBucket(key K) (uint64, bool) {
	if t.bucketCount == 0 {
		return 0, false
	}
	hash := t.Hash(key)
	home := hash & (t.bucketCount - 1)
	hm := t.metadata[home]
	if isEmpty(hm) || !inHomeBucket(hm) {
		return 0, false
	}
	frag := hashFrag(hash)
	cur := home
	for {
		cm := t.metadata[cur]
		if hashFragOf(cm) == frag && t.Equal(t.buckets[cur].key, key) {
			return cur, true
		}
		next, ok := chainNext(home, cm, t.bucketCount)
		if !ok {
			return 0, false
		}
		cur = next
	}
}

// Get returns the value stored under key and reports whether key was
// present.
func (t *Table[K, V]) Get(key K) (val V, ok bool) {
	b, found := t.findBucket(key)
	if !found {
		return val, false
	}
	return t.buckets[b].val, true
}

// Contains reports whether key is present, without retrieving its value.
func (t *Table[K, V]) Contains(key K) bool {
	_, found := t.findBucket(key)
	return found
}
