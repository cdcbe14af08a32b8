package simd

import "encoding/binary"

// IsASCII reports whether every byte of data is ASCII (below 0x80).
//
// The check ANDs 8-byte chunks against the high-bit mask, so large inputs
// are validated at close to memory bandwidth. Callers use it to choose
// byte-indexed scanning over UTF-8 decoding: in all-ASCII text every byte
// is a whole character.
func IsASCII(data []byte) bool {
	dataLen := len(data)
	if dataLen < 8 {
		for idx := 0; idx < dataLen; idx++ {
			if data[idx] >= 0x80 {
				return false
			}
		}
		return true
	}

	idx := 0
	for idx+8 <= dataLen {
		if binary.LittleEndian.Uint64(data[idx:])&hi8 != 0 {
			return false
		}
		idx += 8
	}

	for idx < dataLen {
		if data[idx] >= 0x80 {
			return false
		}
		idx++
	}
	return true
}
