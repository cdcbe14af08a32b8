// Package simd provides byte search primitives accelerated with the SWAR
// (SIMD Within A Register) technique: 8 bytes are examined per step using
// uint64 bitwise operations, with plain byte loops below that size.
//
// The primary use case is accelerating character searches over ASCII
// pattern data: an ASCII byte never occurs inside a multi-byte UTF-8
// sequence, so a raw byte hit from these functions always lands on a
// character boundary of well-formed UTF-8 text.
package simd

import (
	"encoding/binary"
	"math/bits"
)

// SWAR constants for zero-byte detection (Hacker's Delight technique).
// For v = chunk XOR broadcast(needle), (v - lo8) & ^v & hi8 is nonzero
// iff some byte of v is zero, and its lowest set high bit sits in the
// first zero byte of v. Higher marked bytes are not reliable: the
// subtraction borrows across bytes, which also marks a 0x01 byte
// sitting directly above a zero byte. Forward scans may therefore read
// the first position straight from the mask, while reverse scans treat
// it as a chunk filter only.
const (
	lo8 = uint64(0x0101010101010101)
	hi8 = uint64(0x8080808080808080)
)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// It is equivalent to bytes.IndexByte and exists so that all search
// primitives in this package share one implementation style and calling
// convention, including the reverse and table-driven variants that have
// no stdlib counterpart.
//
// Algorithm:
//  1. Broadcast needle to all 8 bytes of a uint64 mask
//  2. XOR each 8-byte chunk with the mask (matching bytes become 0x00)
//  3. Detect zero bytes with the SWAR formula
//  4. Convert the lowest set high bit to a byte position
//
// Example:
//
//	pos := simd.Memchr([]byte("hello world"), 'o')
//	// pos == 4
func Memchr(haystack []byte, needle byte) int {
	haystackLen := len(haystack)
	if haystackLen < 8 {
		for idx := 0; idx < haystackLen; idx++ {
			if haystack[idx] == needle {
				return idx
			}
		}
		return -1
	}

	needleMask := uint64(needle) * lo8

	idx := 0
	for idx+8 <= haystackLen {
		chunk := binary.LittleEndian.Uint64(haystack[idx:])
		xor := chunk ^ needleMask
		if hasZero := (xor - lo8) & ^xor & hi8; hasZero != 0 {
			return idx + bits.TrailingZeros64(hasZero)/8
		}
		idx += 8
	}

	for idx < haystackLen {
		if haystack[idx] == needle {
			return idx
		}
		idx++
	}
	return -1
}

// Memchr2 returns the index of the first instance of either needle1 or
// needle2 in haystack, or -1 if neither is present. Both needles are
// checked in parallel within each 8-byte chunk.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	haystackLen := len(haystack)
	if haystackLen < 8 {
		for idx := 0; idx < haystackLen; idx++ {
			b := haystack[idx]
			if b == needle1 || b == needle2 {
				return idx
			}
		}
		return -1
	}

	needleMask1 := uint64(needle1) * lo8
	needleMask2 := uint64(needle2) * lo8

	idx := 0
	for idx+8 <= haystackLen {
		chunk := binary.LittleEndian.Uint64(haystack[idx:])
		xor1 := chunk ^ needleMask1
		xor2 := chunk ^ needleMask2
		hasZero := ((xor1 - lo8) & ^xor1 & hi8) | ((xor2 - lo8) & ^xor2 & hi8)
		if hasZero != 0 {
			return idx + bits.TrailingZeros64(hasZero)/8
		}
		idx += 8
	}

	for idx < haystackLen {
		b := haystack[idx]
		if b == needle1 || b == needle2 {
			return idx
		}
		idx++
	}
	return -1
}

// Memchr3 returns the index of the first instance of needle1, needle2 or
// needle3 in haystack, or -1 if none are present.
func Memchr3(haystack []byte, needle1, needle2, needle3 byte) int {
	haystackLen := len(haystack)
	if haystackLen < 8 {
		for idx := 0; idx < haystackLen; idx++ {
			b := haystack[idx]
			if b == needle1 || b == needle2 || b == needle3 {
				return idx
			}
		}
		return -1
	}

	needleMask1 := uint64(needle1) * lo8
	needleMask2 := uint64(needle2) * lo8
	needleMask3 := uint64(needle3) * lo8

	idx := 0
	for idx+8 <= haystackLen {
		chunk := binary.LittleEndian.Uint64(haystack[idx:])
		xor1 := chunk ^ needleMask1
		xor2 := chunk ^ needleMask2
		xor3 := chunk ^ needleMask3
		hasZero := ((xor1 - lo8) & ^xor1 & hi8) |
			((xor2 - lo8) & ^xor2 & hi8) |
			((xor3 - lo8) & ^xor3 & hi8)
		if hasZero != 0 {
			return idx + bits.TrailingZeros64(hasZero)/8
		}
		idx += 8
	}

	for idx < haystackLen {
		b := haystack[idx]
		if b == needle1 || b == needle2 || b == needle3 {
			return idx
		}
		idx++
	}
	return -1
}
