package object

import "unsafe"

// TestBit reports whether bit i of the packed little-endian bitmap rooted
// at base is set: bit i%8 of byte i/8 (§3 invariant 6). base may be nil, in
// which case every bit reads as clear (an all-zero reference bitmap).
func TestBit(base *uint8, i int) bool {
	if base == nil {
		return false
	}
	byteOff := uintptr(i / 8)
	bitOff := uint(i % 8)
	b := *(*uint8)(unsafe.Pointer(uintptr(unsafe.Pointer(base)) + byteOff))
	return b&(1<<bitOff) != 0
}
