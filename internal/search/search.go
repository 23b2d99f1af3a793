// Package search implements per-element substring search over fixed-width
// character slots.
//
// Every routine takes a haystack and a needle buffer, either of which may be
// a single slot broadcast against the other, and a [start, end) window that
// is normalized against each element's logical length the way Python slices
// are: negative bounds count from the end and end is clamped to the length.
// Pass End to search to the end of every element.
package search

import (
	"bytes"
	"math"

	"github.com/rawbytedev/charex/internal/common"
)

// End selects the logical end of each element as the window end.
const End = math.MaxInt

// Options carries the slot-length threshold shared by all search routines.
// The zero value uses common.DefaultBisectThreshold.
type Options struct {
	Threshold int
}

func (s Options) threshold() int {
	if s.Threshold <= 0 {
		return common.DefaultBisectThreshold
	}
	return s.Threshold
}

// window normalizes start and end against a logical length n. A start past
// n becomes n+1, so the window is empty and o+len(sub) cannot overflow.
func window(start, end, n int) (int, int) {
	if end > n {
		end = n
	} else if end < 0 {
		end += n
		if end < 0 {
			end = 0
		}
	}
	if start < 0 {
		start += n
		if start < 0 {
			start = 0
		}
	} else if start > n {
		start = n + 1
	}
	return start, end
}

// pair is one broadcast element: the logical haystack, the logical needle and
// the normalized window [o, e).
type pair[U common.Unit] struct {
	hay, sub []U
	o, e     int
}

// elements iterates the broadcast elements of hay and sub.
type elements[U common.Unit] struct {
	hay, sub   common.Slots[U]
	start, end int
	threshold  int
	n          int
}

func newElements[U common.Unit](s Options, hay, sub common.Slots[U], start, end int) (elements[U], error) {
	n, err := common.Broadcast(hay.Count, sub.Count)
	if err != nil {
		return elements[U]{}, err
	}
	return elements[U]{hay: hay, sub: sub, start: start, end: end, threshold: s.threshold(), n: n}, nil
}

func (el elements[U]) at(i int) pair[U] {
	h := el.hay.Slot(i)
	h = h[:common.SlotLen(h, el.threshold)]
	nd := el.sub.Slot(i)
	nd = nd[:common.SlotLen(nd, el.threshold)]
	o, e := window(el.start, el.end, len(h))
	return pair[U]{hay: h, sub: nd, o: o, e: e}
}

func hasAt[U common.Unit](h, sub []U, p int) bool {
	for k, c := range sub {
		if h[p+k] != c {
			return false
		}
	}
	return true
}

func indexIn[U common.Unit](p pair[U]) int {
	ls := len(p.sub)
	if ls == 0 {
		if p.o <= p.e {
			return p.o
		}
		return -1
	}
	if p.o > p.e-ls {
		return -1
	}
	if hb, ok := any(p.hay).([]byte); ok {
		if k := bytes.Index(hb[p.o:p.e], any(p.sub).([]byte)); k >= 0 {
			return p.o + k
		}
		return -1
	}
	for q := p.o; q+ls <= p.e; q++ {
		if hasAt(p.hay, p.sub, q) {
			return q
		}
	}
	return -1
}

func lastIndexIn[U common.Unit](p pair[U]) int {
	ls := len(p.sub)
	if ls == 0 {
		if p.o <= p.e {
			return p.e
		}
		return -1
	}
	if p.o > p.e-ls {
		return -1
	}
	if hb, ok := any(p.hay).([]byte); ok {
		if k := bytes.LastIndex(hb[p.o:p.e], any(p.sub).([]byte)); k >= 0 {
			return p.o + k
		}
		return -1
	}
	for q := p.e - ls; q >= p.o; q-- {
		if hasAt(p.hay, p.sub, q) {
			return q
		}
	}
	return -1
}

func countIn[U common.Unit](p pair[U]) int {
	if p.o > p.e {
		return 0
	}
	ls := len(p.sub)
	if ls == 0 {
		return p.e - p.o + 1
	}
	if hb, ok := any(p.hay).([]byte); ok {
		return bytes.Count(hb[p.o:p.e], any(p.sub).([]byte))
	}
	c := 0
	for q := p.o; q+ls <= p.e; {
		if hasAt(p.hay, p.sub, q) {
			c++
			q += ls
		} else {
			q++
		}
	}
	return c
}

// Count returns the number of non-overlapping occurrences of sub in each
// element's window. An empty needle matches at every position, end included.
func Count[U common.Unit](s Options, hay, sub common.Slots[U], start, end int) ([]int, error) {
	el, err := newElements(s, hay, sub, start, end)
	if err != nil {
		return nil, err
	}
	out := make([]int, el.n)
	for i := range out {
		out[i] = countIn(el.at(i))
	}
	return out, nil
}

// Find returns the lowest offset of sub in each element's window, or -1.
func Find[U common.Unit](s Options, hay, sub common.Slots[U], start, end int) ([]int, error) {
	el, err := newElements(s, hay, sub, start, end)
	if err != nil {
		return nil, err
	}
	out := make([]int, el.n)
	for i := range out {
		out[i] = indexIn(el.at(i))
	}
	return out, nil
}

// Index is Find, but fails with ErrSubstringNotFound at the first element
// that has no match.
func Index[U common.Unit](s Options, hay, sub common.Slots[U], start, end int) ([]int, error) {
	el, err := newElements(s, hay, sub, start, end)
	if err != nil {
		return nil, err
	}
	out := make([]int, el.n)
	for i := range out {
		if out[i] = indexIn(el.at(i)); out[i] < 0 {
			return nil, common.ErrSubstringNotFound
		}
	}
	return out, nil
}

// RFind returns the highest offset of sub in each element's window, or -1.
func RFind[U common.Unit](s Options, hay, sub common.Slots[U], start, end int) ([]int, error) {
	el, err := newElements(s, hay, sub, start, end)
	if err != nil {
		return nil, err
	}
	out := make([]int, el.n)
	for i := range out {
		out[i] = lastIndexIn(el.at(i))
	}
	return out, nil
}

// RIndex is RFind, but fails with ErrSubstringNotFound at the first element
// that has no match.
func RIndex[U common.Unit](s Options, hay, sub common.Slots[U], start, end int) ([]int, error) {
	el, err := newElements(s, hay, sub, start, end)
	if err != nil {
		return nil, err
	}
	out := make([]int, el.n)
	for i := range out {
		if out[i] = lastIndexIn(el.at(i)); out[i] < 0 {
			return nil, common.ErrSubstringNotFound
		}
	}
	return out, nil
}

// StartsWith reports whether each element's window begins with sub.
func StartsWith[U common.Unit](s Options, hay, sub common.Slots[U], start, end int) ([]bool, error) {
	el, err := newElements(s, hay, sub, start, end)
	if err != nil {
		return nil, err
	}
	out := make([]bool, el.n)
	for i := range out {
		p := el.at(i)
		out[i] = p.o <= p.e-len(p.sub) && hasAt(p.hay, p.sub, p.o)
	}
	return out, nil
}

// EndsWith reports whether each element's window ends with sub.
func EndsWith[U common.Unit](s Options, hay, sub common.Slots[U], start, end int) ([]bool, error) {
	el, err := newElements(s, hay, sub, start, end)
	if err != nil {
		return nil, err
	}
	out := make([]bool, el.n)
	for i := range out {
		p := el.at(i)
		out[i] = p.o <= p.e-len(p.sub) && hasAt(p.hay, p.sub, p.e-len(p.sub))
	}
	return out, nil
}
