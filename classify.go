package charex

import "github.com/rawbytedev/charex/internal/classify"

func (e *Engine) classify(cat classify.Category, b Buffer) ([]bool, error) {
	var (
		out []bool
		err error
	)
	if b.enc == Bytes {
		out, err = classify.Is(e.bytes, b.b, cat)
	} else {
		out, err = classify.Is(e.points, b.u, cat)
	}
	if err != nil {
		return nil, e.reject(cat.String(), err, b)
	}
	return out, nil
}

// IsAlpha reports whether every element is non-empty and made only of
// letters.
func (e *Engine) IsAlpha(b Buffer) ([]bool, error) { return e.classify(classify.Alpha, b) }

// IsAlnum reports whether every element is non-empty and made only of
// letters and numeric characters.
func (e *Engine) IsAlnum(b Buffer) ([]bool, error) { return e.classify(classify.Alnum, b) }

// IsDecimal is defined for codepoint buffers only; byte buffers yield
// ErrUnsupportedCategory.
func (e *Engine) IsDecimal(b Buffer) ([]bool, error) { return e.classify(classify.Decimal, b) }

func (e *Engine) IsDigit(b Buffer) ([]bool, error) { return e.classify(classify.Digit, b) }

// IsNumeric is defined for codepoint buffers only; byte buffers yield
// ErrUnsupportedCategory.
func (e *Engine) IsNumeric(b Buffer) ([]bool, error) { return e.classify(classify.Numeric, b) }

// IsSpace uses the ASCII whitespace set for byte buffers and the wider
// Latin-1 set, separators included, for codepoint buffers.
func (e *Engine) IsSpace(b Buffer) ([]bool, error) { return e.classify(classify.Space, b) }

// IsUpper reports whether every element has a cased character and no
// lowercase one.
func (e *Engine) IsUpper(b Buffer) ([]bool, error) { return e.classify(classify.Upper, b) }

// IsLower reports whether every element has a cased character and no
// uppercase one.
func (e *Engine) IsLower(b Buffer) ([]bool, error) { return e.classify(classify.Lower, b) }

// IsTitle reports whether every element is titlecased: each run of cased
// characters opens with an uppercase one and continues in lowercase.
func (e *Engine) IsTitle(b Buffer) ([]bool, error) { return e.classify(classify.Title, b) }

func IsAlpha(b Buffer) ([]bool, error)   { return defaultEngine.IsAlpha(b) }
func IsAlnum(b Buffer) ([]bool, error)   { return defaultEngine.IsAlnum(b) }
func IsDecimal(b Buffer) ([]bool, error) { return defaultEngine.IsDecimal(b) }
func IsDigit(b Buffer) ([]bool, error)   { return defaultEngine.IsDigit(b) }
func IsNumeric(b Buffer) ([]bool, error) { return defaultEngine.IsNumeric(b) }
func IsSpace(b Buffer) ([]bool, error)   { return defaultEngine.IsSpace(b) }
func IsUpper(b Buffer) ([]bool, error)   { return defaultEngine.IsUpper(b) }
func IsLower(b Buffer) ([]bool, error)   { return defaultEngine.IsLower(b) }
func IsTitle(b Buffer) ([]bool, error)   { return defaultEngine.IsTitle(b) }
