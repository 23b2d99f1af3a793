package charex

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/rawbytedev/charex/internal/common"
)

// Encoding tags the code unit width of a Buffer.
type Encoding uint8

const (
	// Bytes buffers hold one 8-bit unit per character.
	Bytes Encoding = iota
	// Codepoints buffers hold one 32-bit codepoint per character.
	Codepoints
)

func (e Encoding) String() string {
	switch e {
	case Bytes:
		return "bytes"
	case Codepoints:
		return "codepoints"
	}
	return fmt.Sprintf("Encoding(%d)", uint8(e))
}

// Buffer is a flat run of fixed-width, null-padded character slots. A scalar
// is a single slot exactly as wide as its content.
//
// Buffers alias the memory they are built from; nothing in this package
// writes to it.
type Buffer struct {
	enc Encoding
	b   common.Slots[uint8]
	u   common.Slots[uint32]
}

// FromBytes returns a scalar byte buffer over b.
func FromBytes(b []byte) Buffer {
	return Buffer{enc: Bytes, b: common.Scalar(b)}
}

// FromCodepoints returns a scalar codepoint buffer over u.
func FromCodepoints(u []uint32) Buffer {
	return Buffer{enc: Codepoints, u: common.Scalar(u)}
}

// FromString returns a scalar buffer holding s. For Bytes, s is encoded as
// ISO-8859-1 and runes outside it are an error.
func FromString(s string, enc Encoding) (Buffer, error) {
	switch enc {
	case Bytes:
		b, err := latin1(s)
		if err != nil {
			return Buffer{}, err
		}
		return FromBytes(b), nil
	case Codepoints:
		return FromCodepoints(codepoints(s)), nil
	}
	return Buffer{}, fmt.Errorf("%s: %w", enc, ErrUnsupportedCategory)
}

// FromByteArray returns an array buffer of len(buf)/stride byte slots.
// It panics if len(buf) is not a multiple of stride.
func FromByteArray(buf []byte, stride int) Buffer {
	return Buffer{enc: Bytes, b: common.NewSlots(buf, count(len(buf), stride), stride)}
}

// FromCodepointArray returns an array buffer of len(buf)/stride codepoint
// slots. It panics if len(buf) is not a multiple of stride.
func FromCodepointArray(buf []uint32, stride int) Buffer {
	return Buffer{enc: Codepoints, u: common.NewSlots(buf, count(len(buf), stride), stride)}
}

// FromUTF32 returns an array buffer over raw UTF-32LE storage, stride being
// the slot width in codepoints. Aligned storage on little-endian hosts is
// viewed in place; the caller must not modify raw while the buffer is used.
func FromUTF32(raw []byte, stride int) Buffer {
	return FromCodepointArray(common.CodepointView(raw), stride)
}

// FromStrings packs ss into a null-padded array buffer whose stride is the
// longest element, and at least one.
func FromStrings(ss []string, enc Encoding) (Buffer, error) {
	switch enc {
	case Bytes:
		units := make([][]byte, len(ss))
		stride := 1
		for i, s := range ss {
			b, err := latin1(s)
			if err != nil {
				return Buffer{}, err
			}
			units[i] = b
			stride = max(stride, len(b))
		}
		buf := make([]byte, len(ss)*stride)
		for i, b := range units {
			copy(buf[i*stride:], b)
		}
		return FromByteArray(buf, stride), nil
	case Codepoints:
		units := make([][]uint32, len(ss))
		stride := 1
		for i, s := range ss {
			units[i] = codepoints(s)
			stride = max(stride, len(units[i]))
		}
		buf := make([]uint32, len(ss)*stride)
		for i, u := range units {
			copy(buf[i*stride:], u)
		}
		return FromCodepointArray(buf, stride), nil
	}
	return Buffer{}, fmt.Errorf("%s: %w", enc, ErrUnsupportedCategory)
}

func count(n, stride int) int {
	if stride <= 0 {
		if n != 0 {
			panic("charex: non-empty buffer with zero stride")
		}
		return 0
	}
	return n / stride
}

func latin1(s string) ([]byte, error) {
	b, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("charex: encode %q as latin-1: %w", s, err)
	}
	return b, nil
}

func codepoints(s string) []uint32 {
	u := make([]uint32, 0, len(s))
	for _, r := range s {
		u = append(u, uint32(r))
	}
	return u
}

// Encoding returns the buffer's code unit width.
func (b Buffer) Encoding() Encoding { return b.enc }

// Len returns the number of slots.
func (b Buffer) Len() int {
	if b.enc == Bytes {
		return b.b.Count
	}
	return b.u.Count
}

// Stride returns the slot width in code units.
func (b Buffer) Stride() int {
	if b.enc == Bytes {
		return b.b.Stride
	}
	return b.u.Stride
}

// RStrip returns a copy of b with trailing whitespace and NULs cleared from
// every slot. The first unit of a slot is always kept.
func (b Buffer) RStrip() Buffer {
	return b.rstrip(common.DefaultBisectThreshold)
}

func (b Buffer) rstrip(threshold int) Buffer {
	if b.enc == Bytes {
		b.b = common.RStrip(b.b, threshold)
	} else {
		b.u = common.RStrip(b.u, threshold)
	}
	return b
}

// Strings returns the logical content of every slot. Byte slots are decoded
// as ISO-8859-1.
func (b Buffer) Strings() []string {
	out := make([]string, b.Len())
	var sb strings.Builder
	for i := range out {
		sb.Reset()
		if b.enc == Bytes {
			slot := b.b.Slot(i)
			for _, c := range slot[:common.SlotLen(slot, common.DefaultBisectThreshold)] {
				sb.WriteRune(rune(c))
			}
		} else {
			slot := b.u.Slot(i)
			for _, c := range slot[:common.SlotLen(slot, common.DefaultBisectThreshold)] {
				sb.WriteRune(rune(c))
			}
		}
		out[i] = sb.String()
	}
	return out
}
