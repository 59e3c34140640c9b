// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashmap

import (
	"golang.org/x/exp/constraints"

	"github.com/aristanetworks/verset/hash"
)

// NewIntMap builds a Map keyed by an integer type, using the package's
// default integer hash and equality.
func NewIntMap[K constraints.Integer, V any]() *Map[K, V] {
	return NewMap[K, V](hash.Integer[K], hash.Equal[K])
}

// NewStringMap builds a Map keyed by string, using the package's
// default FNV-1a string hash.
func NewStringMap[V any]() *Map[string, V] {
	return NewMap[string, V](hash.String, hash.Equal[string])
}

// NewIntSet builds a Set keyed by an integer type.
func NewIntSet[K constraints.Integer]() *Set[K] {
	return NewSet[K](hash.Integer[K], hash.Equal[K])
}

// NewStringSet builds a Set keyed by string.
func NewStringSet() *Set[string] {
	return NewSet[string](hash.String, hash.Equal[string])
}
