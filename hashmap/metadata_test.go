// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashmap

import "testing"

func TestQuadraticIsTriangular(t *testing.T) {
	cases := map[metadatum]uint64{0: 0, 1: 1, 2: 3, 3: 6, 4: 10, 5: 15}
	for d, want := range cases {
		if got := quadratic(d); got != want {
			t.Errorf("quadratic(%d) = %d, want %d", d, got, want)
		}
	}
}

func TestBucketAtVisitsEveryBucketOnce(t *testing.T) {
	const bucketCount = 64
	seen := make([]bool, bucketCount)
	for d := metadatum(0); d < bucketCount; d++ {
		b := bucketAt(0, d, bucketCount)
		if seen[b] {
			t.Fatalf("bucket %d visited twice within the first %d displacements", b, bucketCount)
		}
		seen[b] = true
	}
}

func TestWithDisplacementPreservesOtherFields(t *testing.T) {
	m := hashFrag(0xABCD<<48) | inHomeBucketMask | 5
	m2 := withDisplacement(m, 17)
	if hashFragOf(m2) != hashFragOf(m) {
		t.Errorf("hash fragment changed: got %#x, want %#x", hashFragOf(m2), hashFragOf(m))
	}
	if !inHomeBucket(m2) {
		t.Error("in-home flag was cleared")
	}
	if displacementOf(m2) != 17 {
		t.Errorf("displacementOf(m2) = %d, want 17", displacementOf(m2))
	}
}

func TestFirstNonzeroLane(t *testing.T) {
	cases := []struct {
		lanes [4]metadatum
		want  int
	}{
		{[4]metadatum{1, 0, 0, 0}, 0},
		{[4]metadatum{0, 1, 0, 0}, 1},
		{[4]metadatum{0, 0, 1, 0}, 2},
		{[4]metadatum{0, 0, 0, 1}, 3},
		{[4]metadatum{0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF}, 0},
	}
	for _, c := range cases {
		got := firstNonzeroLane(c.lanes[0], c.lanes[1], c.lanes[2], c.lanes[3])
		if got != c.want {
			t.Errorf("firstNonzeroLane(%v) = %d, want %d", c.lanes, got, c.want)
		}
	}
}

func TestIsEmpty(t *testing.T) {
	if !isEmpty(emptyMetadatum) {
		t.Error("emptyMetadatum should be empty")
	}
	if isEmpty(inHomeBucketMask) {
		t.Error("a non-zero metadatum should not be empty")
	}
}
