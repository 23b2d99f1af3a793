package classify

import "fmt"

// Character class flags stored per ordinal.
const (
	flagAlpha uint8 = 1 << iota
	flagDecimal
	flagDigit
	flagNumeric
	flagSpace
	flagUpper
	flagLower
)

const flagAlnum = flagAlpha | flagDecimal | flagDigit | flagNumeric

// Table maps each ordinal below 256 to its class flags. Ordinals past the end
// of the table belong to no class and are uncased.
type Table [256]uint8

func (t *Table) flags(c uint32) uint8 {
	if c < uint32(len(t)) {
		return t[c]
	}
	return 0
}

// Range selects the ordinal range covered by codepoint tables.
type Range uint8

const (
	// Latin1 covers U+0000 through U+00FF.
	Latin1 Range = iota
	// ASCII covers U+0000 through U+007F only.
	ASCII
)

func (r Range) String() string {
	switch r {
	case Latin1:
		return "latin1"
	case ASCII:
		return "ascii"
	}
	return fmt.Sprintf("Range(%d)", uint8(r))
}

// ParseRange maps a range name to its Range.
func ParseRange(name string) (Range, error) {
	switch name {
	case "latin1", "latin-1", "":
		return Latin1, nil
	case "ascii":
		return ASCII, nil
	}
	return 0, fmt.Errorf("classify: unknown range %q", name)
}

var (
	bytesTable  Table
	asciiTable  Table
	latin1Table Table
)

// For returns the table used for byte buffers when asBytes is set, and the
// codepoint table for r otherwise. Byte buffers are always ASCII-only.
func For(asBytes bool, r Range) *Table {
	switch {
	case asBytes:
		return &bytesTable
	case r == ASCII:
		return &asciiTable
	}
	return &latin1Table
}

func set(t *Table, lo, hi int, f uint8) {
	for c := lo; c <= hi; c++ {
		t[c] |= f
	}
}

func init() {
	for _, t := range []*Table{&bytesTable, &asciiTable, &latin1Table} {
		set(t, 'A', 'Z', flagAlpha|flagUpper)
		set(t, 'a', 'z', flagAlpha|flagLower)
		set(t, '0', '9', flagDecimal|flagDigit|flagNumeric)
		set(t, '\t', '\r', flagSpace)
		set(t, ' ', ' ', flagSpace)
	}
	// Codepoint mode also treats the file, group, record and unit
	// separators as whitespace.
	set(&asciiTable, 0x1c, 0x1f, flagSpace)

	latin1Table = asciiTable
	set(&latin1Table, 0x85, 0x85, flagSpace)
	set(&latin1Table, 0xa0, 0xa0, flagSpace)
	set(&latin1Table, 0xaa, 0xaa, flagAlpha|flagLower)
	set(&latin1Table, 0xb5, 0xb5, flagAlpha|flagLower)
	set(&latin1Table, 0xba, 0xba, flagAlpha|flagLower)
	set(&latin1Table, 0xb2, 0xb3, flagDigit|flagNumeric)
	set(&latin1Table, 0xb9, 0xb9, flagDigit|flagNumeric)
	set(&latin1Table, 0xbc, 0xbe, flagNumeric)
	set(&latin1Table, 0xc0, 0xd6, flagAlpha|flagUpper)
	set(&latin1Table, 0xd8, 0xde, flagAlpha|flagUpper)
	set(&latin1Table, 0xdf, 0xf6, flagAlpha|flagLower)
	set(&latin1Table, 0xf8, 0xff, flagAlpha|flagLower)
}

func (r Range) MarshalText() ([]byte, error) {
	if r != Latin1 && r != ASCII {
		return nil, fmt.Errorf("classify: unknown range %d", uint8(r))
	}
	return []byte(r.String()), nil
}

func (r *Range) UnmarshalText(text []byte) error {
	v, err := ParseRange(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
