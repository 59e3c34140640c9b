// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashmap

import (
	"errors"
	"unsafe"
)

// ErrAllocFailed is returned (surfaced as an end iterator or a false
// boolean to the caller, per the table's failure model) when a
// configured Allocator refuses a growth request.
var ErrAllocFailed = errors.New("hashmap: allocation refused")

// DefaultMaxLoad is the load-factor ceiling applied when a Table isn't
// built with an explicit one. The original C library's documentation
// deliberately permits setting this as high as 1.0 "to test correct
// handling of rehashing due to displacement-limit violation"; rehash's
// bounded doubling retry (see rehash.go) is what keeps that degenerate
// case from looping forever.
const DefaultMaxLoad = 0.9

// maxRehashDoublings caps how many times rehash may double its target
// bucket count in a single call before giving up, so that a
// pathological hasher (or MaxLoad == 1.0) can't make rehash retry
// indefinitely.
const maxRehashDoublings = 32

// Allocator gates growth of a Table's backing arrays. It exists purely
// to let tests (see the allocator-failure scenario in scenario_test.go)
// inject faults;
// real allocation is always done with Go's make/append, never manual
// memory management — there is no host-level MALLOC_FN/FREE_FN pair to
// wire up in a garbage-collected language. A Table with a nil
// Allocator never refuses growth.
type Allocator interface {
	// Reserve is consulted before growing a Table's bucket or metadata
	// arrays by roughly nBytes. Returning a non-nil error aborts the
	// growth attempt; the Table is left in its prior valid state and
	// the operation reports failure through its ok or bool result.
	Reserve(nBytes int) error
}

// bucket holds one entry's key (and, for a Map instantiation, value).
// Its contents are meaningful only while the parallel metadatum is
// non-empty.
type bucket[K any, V any] struct {
	key K
	val V
}

// Table is the shared engine behind Set and Map. The zero Table is a
// valid, empty table: its bucket slice is nil, and its metadata slice
// is nil until the first Insert, GetOrInsert, Reserve or Clone installs
// the shared placeholder buffer, so no construction step is required
// before use as long as Hash and Equal are set.
type Table[K any, V any] struct {
	count       int
	bucketCount uint64
	buckets     []bucket[K, V]
	metadata    []metadatum

	Hash  func(K) uint64
	Equal func(K, K) bool

	// MaxLoad is the load-factor ceiling. Zero means
	// DefaultMaxLoad.
	MaxLoad float64

	// KeyDtor and ValDtor, if set, are invoked exactly once per stored
	// element when that element is erased, replaced, cleared, or
	// dropped via Release. They are never invoked during a rehash,
	// since entries are moved rather than destroyed.
	KeyDtor func(K)
	ValDtor func(V)

	// Alloc, if set, gates growth; see Allocator. AllocCtx is an
	// opaque value threaded alongside it and preserved across rehash
	// and Clone, for callers who need to correlate allocator calls
	// with the table that triggered them.
	Alloc   Allocator
	AllocCtx any
}

func newTable[K, V any](hash func(K) uint64, equal func(K, K) bool) *Table[K, V] {
	return &Table[K, V]{Hash: hash, Equal: equal}
}

func (t *Table[K, V]) maxLoad() float64 {
	if t.MaxLoad <= 0 {
		return DefaultMaxLoad
	}
	return t.MaxLoad
}

// Size returns the number of keys currently stored.
func (t *Table[K, V]) Size() int {
	return t.count
}

// BucketCount returns the current length of the bucket array. It is 0
// or a power of two greater than or equal to minBucketCountPow.
func (t *Table[K, V]) BucketCount() uint64 {
	return t.bucketCount
}

// ensurePlaceholder installs the shared placeholder metadata buffer if
// the table hasn't allocated real arrays yet.
func (t *Table[K, V]) ensurePlaceholder() {
	if t.metadata == nil {
		t.metadata = placeholderMetadata[:]
	}
}

func (t *Table[K, V]) reserveBytes(nBytes int) error {
	if t.Alloc == nil {
		return nil
	}
	if err := t.Alloc.Reserve(nBytes); err != nil {
		return ErrAllocFailed
	}
	return nil
}

// Clone deep-copies t: the returned Table shares no memory with t, and
// mutating one never affects the other. It reports
// false iff the (optional) allocator refuses the copy.
func (t *Table[K, V]) Clone() (*Table[K, V], bool) {
	t.ensurePlaceholder()

	clone := &Table[K, V]{
		Hash:    t.Hash,
		Equal:   t.Equal,
		MaxLoad: t.MaxLoad,
		KeyDtor: t.KeyDtor,
		ValDtor: t.ValDtor,
		Alloc:   t.Alloc,
		AllocCtx: t.AllocCtx,
	}

	if t.bucketCount == 0 {
		clone.ensurePlaceholder()
		return clone, true
	}

	if err := clone.reserveBytes(len(t.buckets)*bucketSize[K, V]() + len(t.metadata)*2); err != nil {
		return nil, false
	}

	clone.bucketCount = t.bucketCount
	clone.count = t.count
	clone.buckets = append([]bucket[K, V](nil), t.buckets...)
	clone.metadata = append([]metadatum(nil), t.metadata...)
	return clone, true
}

// bucketSize is a rough per-bucket byte estimate used only to drive the
// optional Allocator's fault injection; it need not be exact.
func bucketSize[K, V any]() int {
	var b bucket[K, V]
	return int(unsafe.Sizeof(b))
}
