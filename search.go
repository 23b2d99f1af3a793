package charex

import (
	"github.com/rawbytedev/charex/internal/common"
	"github.com/rawbytedev/charex/internal/search"
)

// searchRun dispatches a search routine on the shared encoding of hay and sub.
func searchRun[R any](e *Engine, op string, hay, sub Buffer, start, end int,
	fb func(search.Options, common.Slots[uint8], common.Slots[uint8], int, int) ([]R, error),
	fu func(search.Options, common.Slots[uint32], common.Slots[uint32], int, int) ([]R, error),
) ([]R, error) {
	if err := e.match(op, hay, sub); err != nil {
		return nil, err
	}
	var (
		out []R
		err error
	)
	if hay.enc == Bytes {
		out, err = fb(e.search, hay.b, sub.b, start, end)
	} else {
		out, err = fu(e.search, hay.u, sub.u, start, end)
	}
	if err != nil {
		return nil, e.reject(op, err, hay, sub)
	}
	return out, nil
}

// Count returns the number of non-overlapping occurrences of sub within
// [start, end) of every element. Bounds follow Python slice rules against
// each element's logical length; pass End for no upper bound.
func (e *Engine) Count(hay, sub Buffer, start, end int) ([]int, error) {
	return searchRun(e, "count", hay, sub, start, end, search.Count[uint8], search.Count[uint32])
}

// Find returns the lowest offset of sub within [start, end) of every
// element, or -1.
func (e *Engine) Find(hay, sub Buffer, start, end int) ([]int, error) {
	return searchRun(e, "find", hay, sub, start, end, search.Find[uint8], search.Find[uint32])
}

// Index is like Find but returns ErrSubstringNotFound if any element misses.
func (e *Engine) Index(hay, sub Buffer, start, end int) ([]int, error) {
	return searchRun(e, "index", hay, sub, start, end, search.Index[uint8], search.Index[uint32])
}

// RFind returns the highest offset of sub within [start, end) of every
// element, or -1.
func (e *Engine) RFind(hay, sub Buffer, start, end int) ([]int, error) {
	return searchRun(e, "rfind", hay, sub, start, end, search.RFind[uint8], search.RFind[uint32])
}

// RIndex is like RFind but returns ErrSubstringNotFound if any element misses.
func (e *Engine) RIndex(hay, sub Buffer, start, end int) ([]int, error) {
	return searchRun(e, "rindex", hay, sub, start, end, search.RIndex[uint8], search.RIndex[uint32])
}

func (e *Engine) StartsWith(hay, prefix Buffer, start, end int) ([]bool, error) {
	return searchRun(e, "startswith", hay, prefix, start, end, search.StartsWith[uint8], search.StartsWith[uint32])
}

func (e *Engine) EndsWith(hay, suffix Buffer, start, end int) ([]bool, error) {
	return searchRun(e, "endswith", hay, suffix, start, end, search.EndsWith[uint8], search.EndsWith[uint32])
}

func Count(hay, sub Buffer, start, end int) ([]int, error) {
	return defaultEngine.Count(hay, sub, start, end)
}

func Find(hay, sub Buffer, start, end int) ([]int, error) {
	return defaultEngine.Find(hay, sub, start, end)
}

func Index(hay, sub Buffer, start, end int) ([]int, error) {
	return defaultEngine.Index(hay, sub, start, end)
}

func RFind(hay, sub Buffer, start, end int) ([]int, error) {
	return defaultEngine.RFind(hay, sub, start, end)
}

func RIndex(hay, sub Buffer, start, end int) ([]int, error) {
	return defaultEngine.RIndex(hay, sub, start, end)
}

func StartsWith(hay, prefix Buffer, start, end int) ([]bool, error) {
	return defaultEngine.StartsWith(hay, prefix, start, end)
}

func EndsWith(hay, suffix Buffer, start, end int) ([]bool, error) {
	return defaultEngine.EndsWith(hay, suffix, start, end)
}
