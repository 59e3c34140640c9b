// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashmap

import "testing"

func TestDisplacementsCountsEveryKeyOnceAndReflectsCollisions(t *testing.T) {
	tb := newTable[int, int](func(int) uint64 { return 0 }, func(a, b int) bool { return a == b })
	for i := 0; i < 10; i++ {
		if _, _, ok := tb.Insert(i, i); !ok {
			t.Fatalf("Insert(%d) failed", i)
		}
	}

	d := tb.Displacements()
	if len(d) != 10 {
		t.Fatalf("Displacements() returned %d entries, want 10", len(d))
	}

	var zeros int
	for _, v := range d {
		if v == 0 {
			zeros++
		}
	}
	if zeros != 1 {
		t.Fatalf("with every key colliding on one home bucket, exactly one entry should have displacement 0, got %d", zeros)
	}
}

func TestDisplacementsOnEmptyTable(t *testing.T) {
	tb := newTable[int, int](func(k int) uint64 { return uint64(k) }, func(a, b int) bool { return a == b })
	if d := tb.Displacements(); len(d) != 0 {
		t.Fatalf("Displacements() on an empty table = %v, want empty", d)
	}
}
