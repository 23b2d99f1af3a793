// Package compare implements element-wise equality and ordering over
// fixed-width character slots with numpy-style broadcasting.
//
// Two slots compare by their logical content, the units before the first
// zero. A shorter string orders before any string it prefixes, so "ab" < "abc"
// regardless of the strides the two are stored at.
package compare

import "github.com/rawbytedev/charex/internal/common"

// Op is a comparison operator.
type Op uint8

const (
	OpEqual Op = iota
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
)

func (op Op) String() string {
	switch op {
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	case OpLess:
		return "<"
	case OpLessEqual:
		return "<="
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	}
	return "invalid"
}

// holds reports whether a three-way result c satisfies op.
func (op Op) holds(c int) bool {
	switch op {
	case OpEqual:
		return c == 0
	case OpNotEqual:
		return c != 0
	case OpLess:
		return c < 0
	case OpLessEqual:
		return c <= 0
	case OpGreater:
		return c > 0
	case OpGreaterEqual:
		return c >= 0
	}
	return false
}

// Apply evaluates op between every pair of slots of a and b. With inv set
// the operands swap roles, so Apply(op, a, b, true) equals Apply(op, b, a,
// false). The result has one entry per broadcast element.
func Apply[U common.Unit](op Op, a, b common.Slots[U], inv bool) ([]bool, error) {
	n, err := common.Broadcast(a.Count, b.Count)
	if err != nil {
		return nil, err
	}
	out := make([]bool, n)
	if n == 0 {
		return out, nil
	}

	if a.Stride == 1 && b.Stride == 1 {
		// Single-unit slots: padding is a zero unit, which already orders
		// before any character.
		for i := range out {
			out[i] = op.holds(orient(three(a.Slot(i)[0], b.Slot(i)[0]), inv))
		}
		return out, nil
	}

	if (op == OpEqual || op == OpNotEqual) && a.Stride == b.Stride {
		want := op == OpEqual
		for i := range out {
			out[i] = equalSlot(a.Slot(i), b.Slot(i)) == want
		}
		return out, nil
	}

	for i := range out {
		out[i] = op.holds(orient(Slot(a.Slot(i), b.Slot(i)), inv))
	}
	return out, nil
}

// Slot compares the logical contents of two slots, returning -1, 0 or +1.
func Slot[U common.Unit](x, y []U) int {
	m := min(len(x), len(y))
	for j := 0; j < m; j++ {
		cx, cy := x[j], y[j]
		if cx != cy {
			return three(cx, cy)
		}
		if cx == 0 {
			// Both ended together.
			return 0
		}
	}
	if len(x) > m && x[m] != 0 {
		return 1
	}
	if len(y) > m && y[m] != 0 {
		return -1
	}
	return 0
}

// equalSlot compares two slots of the same stride, stopping at the first
// difference or at shared padding.
func equalSlot[U common.Unit](x, y []U) bool {
	for j := range x {
		if x[j] != y[j] {
			return false
		}
		if x[j] == 0 {
			return true
		}
	}
	return true
}

func three[U common.Unit](x, y U) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func orient(c int, inv bool) int {
	if inv {
		return -c
	}
	return c
}

func Equal[U common.Unit](a, b common.Slots[U]) ([]bool, error) {
	return Apply(OpEqual, a, b, false)
}

func NotEqual[U common.Unit](a, b common.Slots[U]) ([]bool, error) {
	return Apply(OpNotEqual, a, b, false)
}

func Less[U common.Unit](a, b common.Slots[U], inv bool) ([]bool, error) {
	return Apply(OpLess, a, b, inv)
}

func LessEqual[U common.Unit](a, b common.Slots[U], inv bool) ([]bool, error) {
	return Apply(OpLessEqual, a, b, inv)
}

func Greater[U common.Unit](a, b common.Slots[U], inv bool) ([]bool, error) {
	return Apply(OpGreater, a, b, inv)
}

func GreaterEqual[U common.Unit](a, b common.Slots[U], inv bool) ([]bool, error) {
	return Apply(OpGreaterEqual, a, b, inv)
}
