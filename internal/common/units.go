package common

import "unsafe"

// Unit is a single code unit of an ordinal buffer: a byte for single-byte
// buffers, a codepoint for UTF-32 buffers.
type Unit interface {
	~uint8 | ~uint32
}

// Slots is a flat buffer of Count fixed-width slots of Stride units each.
// A slot's logical content ends at its first zero unit.
type Slots[U Unit] struct {
	Units  []U
	Count  int
	Stride int
}

// NewSlots wraps units as count slots of the given stride.
// It panics if the buffer does not hold exactly count*stride units.
func NewSlots[U Unit](units []U, count, stride int) Slots[U] {
	if count < 0 || stride < 0 || len(units) != count*stride {
		panic("common: buffer size does not match count*stride")
	}
	return Slots[U]{Units: units, Count: count, Stride: stride}
}

// Scalar wraps units as a single unpadded slot.
func Scalar[U Unit](units []U) Slots[U] {
	return Slots[U]{Units: units, Count: 1, Stride: len(units)}
}

// Slot returns the i-th slot. A single-slot buffer broadcasts, so every
// index resolves to its only slot.
func (s Slots[U]) Slot(i int) []U {
	if s.Count == 1 {
		return s.Units[:s.Stride:s.Stride]
	}
	o := i * s.Stride
	return s.Units[o : o+s.Stride : o+s.Stride]
}

// Broadcast returns the element count of a binary operation between
// operands of na and nb slots.
func Broadcast(na, nb int) (int, error) {
	switch {
	case na == nb:
		return na, nil
	case na == 1:
		return nb, nil
	case nb == 1:
		return na, nil
	}
	return 0, ErrShapeMismatch
}

// UnitSize returns the width in bytes of U.
func UnitSize[U Unit]() int {
	var u U
	return int(unsafe.Sizeof(u))
}
