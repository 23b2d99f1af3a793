package charex

import "github.com/rawbytedev/charex/internal/compare"

func (e *Engine) apply(op compare.Op, a, b Buffer, inv bool) ([]bool, error) {
	if err := e.match(op.String(), a, b); err != nil {
		return nil, err
	}
	var (
		out []bool
		err error
	)
	if a.enc == Bytes {
		out, err = compare.Apply(op, a.b, b.b, inv)
	} else {
		out, err = compare.Apply(op, a.u, b.u, inv)
	}
	if err != nil {
		return nil, e.reject(op.String(), err, a, b)
	}
	return out, nil
}

// Equal reports, per element, whether a and b hold the same string.
// Strings of different lengths are never equal, whatever their strides.
func (e *Engine) Equal(a, b Buffer) ([]bool, error) {
	return e.apply(compare.OpEqual, a, b, false)
}

// NotEqual is the negation of Equal.
func (e *Engine) NotEqual(a, b Buffer) ([]bool, error) {
	return e.apply(compare.OpNotEqual, a, b, false)
}

// Greater reports, per element, whether a orders after b. Ordering is
// lexicographic by code unit, with a proper prefix ordering first.
func (e *Engine) Greater(a, b Buffer) ([]bool, error) {
	return e.apply(compare.OpGreater, a, b, false)
}

// GreaterEqual reports, per element, whether a orders after or equal to b.
func (e *Engine) GreaterEqual(a, b Buffer) ([]bool, error) {
	return e.apply(compare.OpGreaterEqual, a, b, false)
}

// Less reports, per element, whether a orders before b.
func (e *Engine) Less(a, b Buffer) ([]bool, error) {
	return e.apply(compare.OpLess, a, b, false)
}

// LessEqual reports, per element, whether a orders before or equal to b.
func (e *Engine) LessEqual(a, b Buffer) ([]bool, error) {
	return e.apply(compare.OpLessEqual, a, b, false)
}

// Compare applies the operator named by token ("==", "!=", "<", "<=", ">"
// or ">="). With inv set, a and b trade places, for callers that swapped
// their operands to put an array first.
func (e *Engine) Compare(a, b Buffer, token string, inv bool) ([]bool, error) {
	op, err := compare.ParseOp(token)
	if err != nil {
		return nil, e.reject("compare", err, a, b)
	}
	return e.apply(op, a, b, inv)
}

// CompareCharArrays mirrors numpy.char.compare_chararrays: when rstrip is
// set, trailing whitespace is ignored on both sides before comparing.
// Neither a nor b is modified. Operands are never swapped here; to combine
// stripping with swapped operands, pass a.RStrip() and b.RStrip() to Compare.
func (e *Engine) CompareCharArrays(a, b Buffer, token string, rstrip bool) ([]bool, error) {
	op, err := compare.ParseOp(token)
	if err != nil {
		return nil, e.reject("compare_chararrays", err, a, b)
	}
	if rstrip {
		a, b = e.RStrip(a), e.RStrip(b)
	}
	return e.apply(op, a, b, false)
}

// Package-level comparisons run on the Default engine.

func Equal(a, b Buffer) ([]bool, error)        { return defaultEngine.Equal(a, b) }
func NotEqual(a, b Buffer) ([]bool, error)     { return defaultEngine.NotEqual(a, b) }
func Greater(a, b Buffer) ([]bool, error)      { return defaultEngine.Greater(a, b) }
func GreaterEqual(a, b Buffer) ([]bool, error) { return defaultEngine.GreaterEqual(a, b) }
func Less(a, b Buffer) ([]bool, error)         { return defaultEngine.Less(a, b) }
func LessEqual(a, b Buffer) ([]bool, error)    { return defaultEngine.LessEqual(a, b) }

// Compare runs Engine.Compare on the Default engine.
func Compare(a, b Buffer, token string, inv bool) ([]bool, error) {
	return defaultEngine.Compare(a, b, token, inv)
}

// CompareCharArrays runs Engine.CompareCharArrays on the Default engine.
func CompareCharArrays(a, b Buffer, token string, rstrip bool) ([]bool, error) {
	return defaultEngine.CompareCharArrays(a, b, token, rstrip)
}
