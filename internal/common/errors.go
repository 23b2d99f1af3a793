package common

import "errors"

var (
	ErrShapeMismatch       = errors.New("shape mismatch: objects cannot be broadcast to a single shape.  Mismatch is between arg 0 and arg 1.")
	ErrSubstringNotFound   = errors.New("substring not found")
	ErrInvalidOperator     = errors.New("comparison must be '==', '!=', '<', '>', '<=', '>='")
	ErrUnsupportedCategory = errors.New("unsupported category")
)
