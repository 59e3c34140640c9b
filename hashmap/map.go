// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashmap

// Map is a Table instantiated with both a key and a value.
type Map[K, V any] struct {
	t *Table[K, V]
}

// NewMap builds an empty Map using the given hash and equality
// functions over the key type.
func NewMap[K, V any](hash func(K) uint64, equal func(K, K) bool) *Map[K, V] {
	return &Map[K, V]{t: newTable[K, V](hash, equal)}
}

// Table exposes the Map's underlying Table.
func (m *Map[K, V]) Table() *Table[K, V] {
	return m.t
}

// Insert stores val under key, overwriting any existing value, and
// returns the value previously stored (if any).
func (m *Map[K, V]) Insert(key K, val V) (previous V, existed, ok bool) {
	return m.t.Insert(key, val)
}

// GetOrInsert returns the value under key, inserting def if absent.
func (m *Map[K, V]) GetOrInsert(key K, def V) (val V, existed, ok bool) {
	return m.t.GetOrInsert(key, def)
}

// Get returns the value stored under key and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.t.Get(key)
}

// Erase removes key, reporting whether it was present.
func (m *Map[K, V]) Erase(key K) bool {
	return m.t.Erase(key)
}

// Size returns the number of entries.
func (m *Map[K, V]) Size() int {
	return m.t.Size()
}

// Clear removes every entry, keeping the current capacity.
func (m *Map[K, V]) Clear() {
	m.t.Clear()
}
