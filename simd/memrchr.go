package simd

import "encoding/binary"

// Memrchr returns the index of the last instance of needle in haystack,
// or -1 if needle is not present in haystack. It is the right-to-left
// mirror of Memchr: 8-byte chunks are scanned from the tail, and a chunk
// flagged by the zero-byte filter is rescanned byte-wise for its last
// match.
//
// It is equivalent to bytes.LastIndexByte.
func Memrchr(haystack []byte, needle byte) int {
	haystackLen := len(haystack)
	if haystackLen < 8 {
		for idx := haystackLen - 1; idx >= 0; idx-- {
			if haystack[idx] == needle {
				return idx
			}
		}
		return -1
	}

	needleMask := uint64(needle) * lo8

	idx := haystackLen
	for idx >= 8 {
		chunk := binary.LittleEndian.Uint64(haystack[idx-8:])
		xor := chunk ^ needleMask
		if hasZero := (xor - lo8) & ^xor & hi8; hasZero != 0 {
			// Only the lowest marked byte of the filter is exact, so
			// the last match position comes from a byte scan.
			for j := idx - 1; j >= idx-8; j-- {
				if haystack[j] == needle {
					return j
				}
			}
		}
		idx -= 8
	}

	for idx--; idx >= 0; idx-- {
		if haystack[idx] == needle {
			return idx
		}
	}
	return -1
}

// Memrchr2 returns the index of the last instance of either needle1 or
// needle2 in haystack, or -1 if neither is present.
func Memrchr2(haystack []byte, needle1, needle2 byte) int {
	haystackLen := len(haystack)
	if haystackLen < 8 {
		for idx := haystackLen - 1; idx >= 0; idx-- {
			b := haystack[idx]
			if b == needle1 || b == needle2 {
				return idx
			}
		}
		return -1
	}

	needleMask1 := uint64(needle1) * lo8
	needleMask2 := uint64(needle2) * lo8

	idx := haystackLen
	for idx >= 8 {
		chunk := binary.LittleEndian.Uint64(haystack[idx-8:])
		xor1 := chunk ^ needleMask1
		xor2 := chunk ^ needleMask2
		hasZero := ((xor1 - lo8) & ^xor1 & hi8) | ((xor2 - lo8) & ^xor2 & hi8)
		if hasZero != 0 {
			for j := idx - 1; j >= idx-8; j-- {
				b := haystack[j]
				if b == needle1 || b == needle2 {
					return j
				}
			}
		}
		idx -= 8
	}

	for idx--; idx >= 0; idx-- {
		b := haystack[idx]
		if b == needle1 || b == needle2 {
			return idx
		}
	}
	return -1
}

// Memrchr3 returns the index of the last instance of needle1, needle2 or
// needle3 in haystack, or -1 if none are present.
func Memrchr3(haystack []byte, needle1, needle2, needle3 byte) int {
	haystackLen := len(haystack)
	if haystackLen < 8 {
		for idx := haystackLen - 1; idx >= 0; idx-- {
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

	idx := haystackLen
	for idx >= 8 {
		chunk := binary.LittleEndian.Uint64(haystack[idx-8:])
		xor1 := chunk ^ needleMask1
		xor2 := chunk ^ needleMask2
		xor3 := chunk ^ needleMask3
		hasZero := ((xor1 - lo8) & ^xor1 & hi8) |
			((xor2 - lo8) & ^xor2 & hi8) |
			((xor3 - lo8) & ^xor3 & hi8)
		if hasZero != 0 {
			for j := idx - 1; j >= idx-8; j-- {
				b := haystack[j]
				if b == needle1 || b == needle2 || b == needle3 {
					return j
				}
			}
		}
		idx -= 8
	}

	for idx--; idx >= 0; idx-- {
		b := haystack[idx]
		if b == needle1 || b == needle2 || b == needle3 {
			return idx
		}
	}
	return -1
}
