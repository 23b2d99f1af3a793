package charex

import "github.com/rawbytedev/charex/internal/common"

var (
	// ErrShapeMismatch is returned when two operands hold different numbers
	// of elements and neither is a single element. Its message matches
	// numpy's broadcast error.
	ErrShapeMismatch = common.ErrShapeMismatch
	// ErrSubstringNotFound is returned by Index and RIndex on a miss.
	ErrSubstringNotFound = common.ErrSubstringNotFound
	// ErrInvalidOperator is returned for an unrecognized comparison token.
	ErrInvalidOperator = common.ErrInvalidOperator
	// ErrUnsupportedCategory is returned for classifications undefined on
	// the operand's encoding and for operands of mixed encodings.
	ErrUnsupportedCategory = common.ErrUnsupportedCategory
)
