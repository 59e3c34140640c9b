// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package hash provides the default hash functions that hashmap's
// NewIntMap, NewStringMap, NewIntSet and NewStringSet constructors wire
// in for integer and string keys. Any other key type must supply its own.
package hash

import "golang.org/x/exp/constraints"

// Integer mixes an integer key's bit pattern into a well-distributed
// 64-bit hash using the MurmurHash3 fmix64 finalizer. Zero maps to zero.
func Integer[T constraints.Integer](key T) uint64 {
	h := uint64(key)
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}

// String hashes key with FNV-1a.
func String(key string) uint64 {
	const offset uint64 = 0xcbf29ce484222325
	const prime uint64 = 0x100000001b3

	h := offset
	for i := 0; i < len(key); i++ {
		h ^= uint64(key[i])
		h *= prime
	}
	return h
}

// Equal is the trivial comparator for any comparable key type.
func Equal[T comparable](a, b T) bool {
	return a == b
}
