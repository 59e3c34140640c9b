// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashmap

import "math/bits"

// metadatum is the 16-bit word stored alongside each bucket. Its three
// packed fields are, from high bit to low:
//
//	15..12  hash fragment    top 4 bits of the key's 64-bit hash
//	11      in-home flag     1 iff the occupant of this bucket hashes here
//	10..0   displacement     quadratic link to the next key in the chain,
//	                         or sentinelDisplace for "end of chain"
//
// A metadatum of 0 means the bucket is empty.
type metadatum uint16

const (
	hashFragMask      metadatum = 0xF000
	inHomeBucketMask  metadatum = 0x0800
	displacementMask  metadatum = 0x07FF
	emptyMetadatum    metadatum = 0x0000
	sentinelDisplace            = metadatum(displacementMask)
	minBucketCountPow           = 8 // VT_MIN_NONZERO_BUCKET_COUNT: must be a power of two.
)

// placeholderMetadata is the process-wide, read-only metadata buffer
// shared by every empty Table once ensurePlaceholder or Release has
// installed it, so such a table's metadata field is not nil even though
// bucketCount is 0 and nothing is ever read from it.
var placeholderMetadata = [4]metadatum{0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF}

func isEmpty(m metadatum) bool {
	return m == emptyMetadatum
}

func inHomeBucket(m metadatum) bool {
	return m&inHomeBucketMask != 0
}

func displacementOf(m metadatum) metadatum {
	return m & displacementMask
}

func hashFragOf(m metadatum) metadatum {
	return m & hashFragMask
}

// hashFrag extracts the stored hash fragment from a 64-bit hash code:
// the top four bits, chosen because bucket selection already consumes
// the low-order bits, so using the high bits maximizes the fragment's
// entropy relative to the bucket index.
func hashFrag(hash uint64) metadatum {
	return metadatum(hash>>48) & hashFragMask
}

// withDisplacement returns m with its displacement field replaced by d,
// preserving the hash fragment and in-home flag.
func withDisplacement(m metadatum, d metadatum) metadatum {
	return (m &^ displacementMask) | (d & displacementMask)
}

// quadratic converts a displacement d into the linear bucket offset
// from home: the triangular number d*(d+1)/2. With bucket_count a power
// of two, walking d = 0, 1, 2, … visits every bucket exactly once.
func quadratic(d metadatum) uint64 {
	u := uint64(d)
	return u * (u + 1) / 2
}

// bucketAt returns the bucket index at quadratic displacement d from
// home, modulo a power-of-two bucket count.
func bucketAt(home uint64, d metadatum, bucketCount uint64) uint64 {
	return (home + quadratic(d)) & (bucketCount - 1)
}

// firstNonzeroLane returns the index, in {0,1,2,3}, of the first
// (lowest-index) non-zero 16-bit lane among the four packed into word.
// It assumes at least one lane is non-zero; scanFrom only calls it
// after checking that the four lanes are not all zero.
//
// The four lanes are packed explicitly into a uint64 rather than read
// as a single unaligned 8-byte load, so the computation is endianness-
// independent; math/bits.TrailingZeros64 compiles to a single hardware
// instruction on every platform Go supports, which gives us the same
// "branchless on most platforms, branchy halving as fallback" behavior
// the scan depends on without resorting to unsafe memory reinterpretation.
func firstNonzeroLane(lane0, lane1, lane2, lane3 metadatum) int {
	word := uint64(lane0) | uint64(lane1)<<16 | uint64(lane2)<<32 | uint64(lane3)<<48
	return bits.TrailingZeros64(word) / 16
}
