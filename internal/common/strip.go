package common

// isStripSpace reports whether c is cleared by RStrip: NUL, \t, \n, \v, \f,
// \r or space.
func isStripSpace[U Unit](c U) bool {
	switch c {
	case 0, 9, 10, 11, 12, 13, 32:
		return true
	}
	return false
}

// RStrip returns a copy of s with trailing whitespace zeroed in every slot.
// The first unit of a slot is never cleared, and s itself is left intact.
// Strides of one are returned as is.
func RStrip[U Unit](s Slots[U], threshold int) Slots[U] {
	if s.Stride <= 1 {
		return s
	}
	units := make([]U, len(s.Units))
	copy(units, s.Units)
	out := Slots[U]{Units: units, Count: s.Count, Stride: s.Stride}
	for o := 0; o < len(units); o += s.Stride {
		slot := units[o : o+s.Stride]
		// Skip the padding run first; it is already zero.
		p := SlotLen(slot, threshold) - 1
		for p > 0 && isStripSpace(slot[p]) {
			slot[p] = 0
			p--
		}
	}
	return out
}
