// Package conv provides zero-copy conversions between strings and byte
// slices for the search engine.
//
// The engine layers work on []byte while the public API works on string.
// Copying at every boundary would dominate the cost of short searches, so
// these helpers reinterpret the same memory instead. They are safe only
// under a strict read-only contract; both directions alias the input, and
// violating the contract corrupts string immutability guarantees.
package conv

import "unsafe"

// Bytes returns a []byte view of s without copying.
//
// The returned slice aliases the string data, which may live in read-only
// memory. Callers must never write through it and must not retain it past
// the lifetime of s.
//
//go:inline
func Bytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// String returns a string view of b without copying.
//
// The caller must guarantee that b is never modified afterwards; a string
// observed to change breaks every map, comparison and slice built from it.
//
//go:inline
func String(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
