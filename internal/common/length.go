package common

// DefaultBisectThreshold is the widest stride measured with a linear probe
// before SlotLen switches to bisection.
const DefaultBisectThreshold = 8

// SlotLen returns the logical length of slot: its width when the last unit
// is set, otherwise the offset of the zero padding run.
func SlotLen[U Unit](slot []U, threshold int) int {
	n := len(slot)
	if n == 0 || slot[n-1] != 0 {
		return n
	}
	if n <= threshold {
		for i, c := range slot {
			if c == 0 {
				return i
			}
		}
		return n
	}
	return bisectNull(slot, 0, n-1)
}

// bisectNull finds the first zero in slot[j:k+1] assuming every unit after
// it is zero as well. slot[k] must be zero.
func bisectNull[U Unit](slot []U, j, k int) int {
	for j < k {
		m := int(uint(j+k) >> 1)
		if slot[m] != 0 {
			j = m + 1
		} else {
			k = m
		}
	}
	return j
}

// StrLen returns the logical length of every slot in s.
func StrLen[U Unit](s Slots[U], threshold int) []int {
	out := make([]int, s.Count)
	for i := range out {
		out[i] = SlotLen(s.Slot(i), threshold)
	}
	return out
}
