// Package classify implements per-element character class predicates over
// fixed-width character slots.
//
// Classes are looked up in fixed ordinal tables (see For). An empty element
// is never a member of any class.
package classify

import (
	"fmt"

	"github.com/rawbytedev/charex/internal/common"
)

// Category is a character class predicate.
type Category uint8

const (
	Alpha Category = iota
	Alnum
	Decimal
	Digit
	Numeric
	Space
	Upper
	Lower
	Title
)

func (c Category) String() string {
	switch c {
	case Alpha:
		return "isalpha"
	case Alnum:
		return "isalnum"
	case Decimal:
		return "isdecimal"
	case Digit:
		return "isdigit"
	case Numeric:
		return "isnumeric"
	case Space:
		return "isspace"
	case Upper:
		return "isupper"
	case Lower:
		return "islower"
	case Title:
		return "istitle"
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

func (c Category) mask() uint8 {
	switch c {
	case Alpha:
		return flagAlpha
	case Alnum:
		return flagAlnum
	case Decimal:
		return flagDecimal
	case Digit:
		return flagDigit
	case Numeric:
		return flagNumeric
	case Space:
		return flagSpace
	}
	return 0
}

// Classifier evaluates categories against one table.
type Classifier struct {
	Table     *Table
	AsBytes   bool
	Threshold int
}

// New returns a Classifier for byte buffers when asBytes is set, or for
// codepoint buffers restricted to r otherwise.
func New(asBytes bool, r Range, threshold int) Classifier {
	if threshold <= 0 {
		threshold = common.DefaultBisectThreshold
	}
	return Classifier{Table: For(asBytes, r), AsBytes: asBytes, Threshold: threshold}
}

// Is evaluates cat for every slot of s. Decimal and Numeric are only defined
// for codepoint buffers and fail with ErrUnsupportedCategory in byte mode.
func Is[U common.Unit](c Classifier, s common.Slots[U], cat Category) ([]bool, error) {
	if c.AsBytes && (cat == Decimal || cat == Numeric) {
		return nil, fmt.Errorf("%s on bytes: %w", cat, common.ErrUnsupportedCategory)
	}
	var pred func(t *Table, slot []U) bool
	switch cat {
	case Alpha, Alnum, Decimal, Digit, Numeric, Space:
		m := cat.mask()
		pred = func(t *Table, slot []U) bool { return all(t, slot, m) }
	case Upper:
		pred = isUpper[U]
	case Lower:
		pred = isLower[U]
	case Title:
		pred = isTitle[U]
	default:
		return nil, fmt.Errorf("%s: %w", cat, common.ErrUnsupportedCategory)
	}

	out := make([]bool, s.Count)
	for i := range out {
		slot := s.Slot(i)
		slot = slot[:common.SlotLen(slot, c.Threshold)]
		out[i] = len(slot) > 0 && pred(c.Table, slot)
	}
	return out, nil
}

func all[U common.Unit](t *Table, slot []U, m uint8) bool {
	for _, u := range slot {
		if t.flags(uint32(u))&m == 0 {
			return false
		}
	}
	return true
}

// isUpper requires a cased character and no lowercase one.
func isUpper[U common.Unit](t *Table, slot []U) bool {
	cased := false
	for _, u := range slot {
		f := t.flags(uint32(u))
		if f&flagLower != 0 {
			return false
		}
		if f&flagUpper != 0 {
			cased = true
		}
	}
	return cased
}

// isLower requires a cased character and no uppercase one.
func isLower[U common.Unit](t *Table, slot []U) bool {
	cased := false
	for _, u := range slot {
		f := t.flags(uint32(u))
		if f&flagUpper != 0 {
			return false
		}
		if f&flagLower != 0 {
			cased = true
		}
	}
	return cased
}

// isTitle requires every run of cased characters to open with an uppercase
// character followed only by lowercase ones.
func isTitle[U common.Unit](t *Table, slot []U) bool {
	cased, prev := false, false
	for _, u := range slot {
		f := t.flags(uint32(u))
		switch {
		case f&flagUpper != 0:
			if prev {
				return false
			}
			prev, cased = true, true
		case f&flagLower != 0:
			if !prev {
				return false
			}
			prev, cased = true, true
		default:
			prev = false
		}
	}
	return cased
}
