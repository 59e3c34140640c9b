// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashmap_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/aristanetworks/verset/hashmap"
	"github.com/aristanetworks/verset/test"
)

func newIntStringMap() *hashmap.Map[int, string] {
	return hashmap.NewIntMap[int, string]()
}

// A value retrieved right after being inserted is the value that
// was inserted.
func TestInsertThenGetReturnsStoredValue(t *testing.T) {
	m := newIntStringMap()
	for i := 0; i < 200; i++ {
		if _, existed, ok := m.Insert(i, fmt.Sprintf("v%d", i)); existed || !ok {
			t.Fatalf("Insert(%d) existed=%v ok=%v, want false true", i, existed, ok)
		}
	}
	for i := 0; i < 200; i++ {
		got, found := m.Get(i)
		want := fmt.Sprintf("v%d", i)
		if !found || got != want {
			t.Fatalf("Get(%d) = (%q, %v), want (%q, true)", i, got, found, want)
		}
	}
}

// GetOrInsert leaves an existing value untouched.
func TestGetOrInsertDoesNotOverwrite(t *testing.T) {
	m := newIntStringMap()
	m.Insert(1, "original")

	val, existed, ok := m.GetOrInsert(1, "default")
	if !ok || !existed || val != "original" {
		t.Fatalf("GetOrInsert(1, ...) = (%q, %v, %v), want (\"original\", true, true)", val, existed, ok)
	}

	val, existed, ok = m.GetOrInsert(2, "default")
	if !ok || existed || val != "default" {
		t.Fatalf("GetOrInsert(2, ...) = (%q, %v, %v), want (\"default\", false, true)", val, existed, ok)
	}
}

// Erasing a key removes exactly that key, and re-inserting a
// still-present key does not create a duplicate.
func TestEraseRemovesKeyAndInsertStaysUnique(t *testing.T) {
	m := newIntStringMap()
	for i := 0; i < 10; i++ {
		m.Insert(i, "x")
	}
	if !m.Erase(5) {
		t.Fatal("Erase(5) = false, want true")
	}
	if _, found := m.Get(5); found {
		t.Fatal("key 5 still present after Erase")
	}
	if m.Erase(5) {
		t.Fatal("Erase(5) a second time reported success")
	}
	if m.Size() != 9 {
		t.Fatalf("Size() = %d, want 9", m.Size())
	}

	if _, existed, _ := m.Insert(3, "y"); !existed {
		t.Fatal("re-inserting key 3 should report it already existed")
	}
	if m.Size() != 9 {
		t.Fatalf("Size() after re-insert = %d, want 9", m.Size())
	}
}

// Iteration visits every stored key exactly once.
func TestIterationVisitsEveryKeyExactlyOnce(t *testing.T) {
	s := hashmap.NewIntSet[int]()
	want := map[int]bool{}
	for i := 0; i < 500; i++ {
		s.Insert(i)
		want[i] = true
	}

	tb := s.Table()
	seen := map[int]int{}
	for it := tb.First(); !it.IsEnd(); it = tb.Next(it) {
		seen[tb.Key(it)]++
	}

	if !test.DeepEqual(len(seen), len(want)) {
		t.Fatalf("iteration visited %d distinct keys, want %d", len(seen), len(want))
	}
	for k, n := range seen {
		if n != 1 {
			t.Fatalf("key %d visited %d times, want 1", k, n)
		}
		if !want[k] {
			t.Fatalf("iteration produced key %d, which was never inserted", k)
		}
	}
}

// Clear empties the table but keeps it usable.
func TestClearEmptiesTable(t *testing.T) {
	m := newIntStringMap()
	for i := 0; i < 50; i++ {
		m.Insert(i, "x")
	}
	m.Clear()
	if m.Size() != 0 {
		t.Fatalf("Size() after Clear = %d, want 0", m.Size())
	}
	if _, found := m.Get(0); found {
		t.Fatal("key 0 still retrievable after Clear")
	}
	if _, existed, ok := m.Insert(0, "fresh"); existed || !ok {
		t.Fatal("table unusable after Clear")
	}
}

// Clone produces a fully independent copy.
func TestCloneIsIndependent(t *testing.T) {
	tb := hashmap.NewIntMap[int, int]().Table()
	for i := 0; i < 100; i++ {
		tb.Insert(i, i*i)
	}

	clone, ok := tb.Clone()
	if !ok {
		t.Fatal("Clone reported failure with no allocator installed")
	}

	tb.Insert(1000, -1)
	tb.Erase(0)

	if clone.Size() != 100 {
		t.Fatalf("clone.Size() = %d, want 100 (unaffected by later mutation of the original)", clone.Size())
	}
	if _, found := clone.Get(1000); found {
		t.Fatal("clone observed a key inserted into the original after Clone")
	}
	if _, found := clone.Get(0); !found {
		t.Fatal("clone lost a key that was only erased from the original")
	}
}

// Reserve and Shrink track capacity without losing elements.
func TestReserveAndShrinkPreserveContents(t *testing.T) {
	tb := hashmap.NewIntMap[int, int]().Table()
	if !tb.Reserve(1000) {
		t.Fatal("Reserve(1000) failed")
	}
	for i := 0; i < 300; i++ {
		tb.Insert(i, i)
	}
	if tb.Size() != 300 {
		t.Fatalf("Size() = %d, want 300", tb.Size())
	}

	if !tb.Shrink() {
		t.Fatal("Shrink failed")
	}
	if tb.Size() != 300 {
		t.Fatalf("Size() after Shrink = %d, want 300", tb.Size())
	}
	for i := 0; i < 300; i++ {
		if _, found := tb.Get(i); !found {
			t.Fatalf("key %d lost during Shrink", i)
		}
	}
	minFit := hashmap.MinBucketCount(300, hashmap.DefaultMaxLoad)
	if tb.BucketCount() < minFit {
		t.Fatalf("BucketCount() = %d after Shrink, smaller than the minimum fit %d", tb.BucketCount(), minFit)
	}
}

// Size and membership stay consistent with a reference map
// across a long randomized sequence of inserts and erases.
func TestRandomizedOperationsMatchReferenceMap(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	m := newIntStringMap()
	ref := map[int]string{}

	for i := 0; i < 20000; i++ {
		k := rng.Intn(500)
		if rng.Intn(3) == 0 {
			found := m.Erase(k)
			_, refFound := ref[k]
			if found != refFound {
				t.Fatalf("iteration %d: Erase(%d) = %v, reference had %v", i, k, found, refFound)
			}
			delete(ref, k)
			continue
		}
		v := fmt.Sprintf("v%d-%d", k, i)
		_, existed, ok := m.Insert(k, v)
		if !ok {
			t.Fatalf("iteration %d: Insert(%d) failed", i, k)
		}
		_, refExisted := ref[k]
		if existed != refExisted {
			t.Fatalf("iteration %d: Insert(%d) existed=%v, reference had existed=%v", i, k, existed, refExisted)
		}
		ref[k] = v
	}

	if m.Size() != len(ref) {
		t.Fatalf("Size() = %d, want %d", m.Size(), len(ref))
	}
	for k, v := range ref {
		got, found := m.Get(k)
		if !found || got != v {
			t.Fatalf("Get(%d) = (%q, %v), want (%q, true)", k, got, found, v)
		}
	}
}
