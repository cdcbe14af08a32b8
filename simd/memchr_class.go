package simd

// MemchrInTable returns the index of the first byte of haystack whose
// entry in table is true, or -1 if there is none.
//
// Table-driven search covers byte classes too wide for Memchr2/Memchr3.
// A 256-entry lookup per byte stays in L1 and beats a chain of compares
// from about four class members up.
func MemchrInTable(haystack []byte, table *[256]bool) int {
	for idx, b := range haystack {
		if table[b] {
			return idx
		}
	}
	return -1
}

// MemrchrInTable returns the index of the last byte of haystack whose
// entry in table is true, or -1 if there is none.
func MemrchrInTable(haystack []byte, table *[256]bool) int {
	for idx := len(haystack) - 1; idx >= 0; idx-- {
		if table[haystack[idx]] {
			return idx
		}
	}
	return -1
}
