// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package hashmap implements a generic, single-owner, open-addressing
// hash table using quadratic probing.
//
// Every key that hashes to a given home bucket is linked into an
// explicit chain stored out-of-band, in a uint16 metadatum alongside
// each bucket: a 4-bit hash fragment, a 1-bit flag marking whether the
// bucket's occupant actually belongs there, and an 11-bit quadratic
// displacement to the next key in the chain (or a sentinel marking the
// chain's end). A chain always starts at its home bucket; inserting a
// key whose home bucket is occupied by a foreign key evicts that key
// to make room, relinking it elsewhere in its own chain.
//
// This scheme keeps lookups fast regardless of load factor (only the
// home bucket and buckets genuinely chained to it are ever probed, and
// most non-matching buckets are rejected via the hash fragment without
// touching the bucket array or calling the key comparison function),
// keeps insertions and deletions cheap (at most one existing key is
// ever moved), and needs no tombstones.
//
// Table is the shared engine; Set and Map are thin generic
// instantiations over it for the key-only and key/value cases.
package hashmap
