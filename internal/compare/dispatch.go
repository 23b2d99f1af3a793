package compare

import "github.com/rawbytedev/charex/internal/common"

// ParseOp maps an operator token to its Op. Single-character tokens are the
// strict orderings; two-character tokens must end in '='.
func ParseOp(token string) (Op, error) {
	switch len(token) {
	case 1:
		switch token[0] {
		case '<':
			return OpLess, nil
		case '>':
			return OpGreater, nil
		}
	case 2:
		if token[1] != '=' {
			break
		}
		switch token[0] {
		case '<':
			return OpLessEqual, nil
		case '=':
			return OpEqual, nil
		case '>':
			return OpGreaterEqual, nil
		case '!':
			return OpNotEqual, nil
		}
	}
	return 0, common.ErrInvalidOperator
}

// CompareCharArrays applies the operator named by token to a and b.
func CompareCharArrays[U common.Unit](a, b common.Slots[U], inv bool, token string) ([]bool, error) {
	op, err := ParseOp(token)
	if err != nil {
		return nil, err
	}
	return Apply(op, a, b, inv)
}
