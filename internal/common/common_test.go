package common

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func pack(stride int, ss ...string) Slots[uint8] {
	buf := make([]byte, len(ss)*stride)
	for i, s := range ss {
		copy(buf[i*stride:], s)
	}
	return NewSlots(buf, len(ss), stride)
}

func TestSlotLenPadded(t *testing.T) {
	slot := append([]byte("abc"), make([]byte, 7)...)
	require.Len(t, slot, 10)
	// bisection
	require.Equal(t, 3, SlotLen(slot, 8))
	// linear probe
	require.Equal(t, 3, SlotLen(slot, 16))
}

func TestSlotLenEdges(t *testing.T) {
	tests := []struct {
		name string
		slot []uint32
		want int
	}{
		{"empty", nil, 0},
		{"full", []uint32{'a', 'b'}, 2},
		{"all zero", make([]uint32, 20), 0},
		{"one left", append([]uint32{'x'}, make([]uint32, 30)...), 1},
		{"one pad", append([]uint32{'x', 'y', 'z', 'w', 'v', 'u', 't', 's', 'r'}, 0), 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SlotLen(tt.slot, DefaultBisectThreshold))
			require.Equal(t, tt.want, SlotLen(tt.slot, 1<<20))
		})
	}
}

func TestStrLen(t *testing.T) {
	s := pack(5, "hello", "hi", "", "abc")
	require.Equal(t, []int{5, 2, 0, 3}, StrLen(s, DefaultBisectThreshold))
	require.Equal(t, []int{0}, StrLen(Scalar([]byte{}), DefaultBisectThreshold))
}

func TestBroadcast(t *testing.T) {
	n, err := Broadcast(4, 4)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	n, err = Broadcast(1, 7)
	require.NoError(t, err)
	require.Equal(t, 7, n)
	n, err = Broadcast(7, 1)
	require.NoError(t, err)
	require.Equal(t, 7, n)
	n, err = Broadcast(0, 1)
	require.NoError(t, err)
	require.Equal(t, 0, n)
	_, err = Broadcast(2, 3)
	require.ErrorIs(t, err, ErrShapeMismatch)
	_, err = Broadcast(0, 3)
	require.ErrorIs(t, err, ErrShapeMismatch)
	require.Equal(t, "shape mismatch: objects cannot be broadcast to a single shape.  Mismatch is between arg 0 and arg 1.", err.Error())
}

func TestSlotBroadcastsScalar(t *testing.T) {
	s := Scalar([]byte("abc"))
	require.Equal(t, []byte("abc"), s.Slot(0))
	require.Equal(t, []byte("abc"), s.Slot(5))

	a := pack(3, "abc", "de")
	require.Equal(t, []byte("de\x00"), a.Slot(1))
}

func TestNewSlotsPanicsOnBadSize(t *testing.T) {
	require.Panics(t, func() { NewSlots(make([]byte, 7), 2, 4) })
}

func TestRStripCopies(t *testing.T) {
	src := pack(4, "ab  ", "  \t\n", "x", "\r\r\r\r")
	orig := append([]byte(nil), src.Units...)

	got := RStrip(src, DefaultBisectThreshold)
	require.Equal(t, orig, src.Units, "input must not change")
	require.Equal(t, []byte("ab\x00\x00"), got.Slot(0))
	require.Equal(t, []byte(" \x00\x00\x00"), got.Slot(1))
	require.Equal(t, []byte("x\x00\x00\x00"), got.Slot(2))
	require.Equal(t, []byte("\r\x00\x00\x00"), got.Slot(3))
}

func TestRStripWideSlots(t *testing.T) {
	src := pack(16, "hello \t", "a")
	got := RStrip(src, 4)
	require.Equal(t, []int{5, 1}, StrLen(got, 4))
}

func TestRStripStrideOne(t *testing.T) {
	src := pack(1, " ", "a")
	got := RStrip(src, DefaultBisectThreshold)
	require.Equal(t, src, got)
}

func utf32le(cps []uint32, dst []byte) {
	for i, c := range cps {
		binary.LittleEndian.PutUint32(dst[i*4:], c)
	}
}

func TestCodepointView(t *testing.T) {
	cps := []uint32{'h', 0xe9, 0x4e2d, 0x1f600, 0}

	backing := make([]uint32, len(cps)+1)
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&backing[0])), len(backing)*4)

	aligned := raw[:len(cps)*4]
	utf32le(cps, aligned)
	require.True(t, Aligned[uint32](aligned))
	require.Equal(t, cps, CodepointView(aligned))

	misaligned := raw[1 : 1+len(cps)*4]
	utf32le(cps, misaligned)
	require.False(t, Aligned[uint32](misaligned))
	require.Equal(t, cps, CodepointView(misaligned))

	require.Nil(t, CodepointView(nil))
}

func TestUnitSize(t *testing.T) {
	require.Equal(t, 1, UnitSize[uint8]())
	require.Equal(t, 4, UnitSize[uint32]())
}
