package common

import (
	"encoding/binary"
	"unsafe"
)

// nativeLittleEndian is true when the host stores a uint32 low byte first.
var nativeLittleEndian = func() bool {
	x := uint32(1)
	return *(*byte)(unsafe.Pointer(&x)) == 1
}()

// Aligned reports whether b starts on a boundary suitable for U.
func Aligned[U Unit](b []byte) bool {
	if len(b) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&b[0]))%uintptr(UnitSize[U]()) == 0
}

// CodepointView interprets raw UTF-32LE storage as codepoints. When the host
// is little-endian and raw is aligned the result aliases raw; the caller must
// keep raw alive and unmodified for as long as the view is used. Otherwise
// the codepoints are decoded into a new slice.
func CodepointView(raw []byte) []uint32 {
	n := len(raw) / 4
	if n == 0 {
		return nil
	}
	if nativeLittleEndian && Aligned[uint32](raw) {
		return unsafe.Slice((*uint32)(unsafe.Pointer(&raw[0])), n)
	}
	out := make([]uint32, n)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(raw[i*4:])
	}
	return out
}
