package entomb

import (
	"unsafe"

	"github.com/hupe1980/flatcol"
	"github.com/hupe1980/flatcol/offsets"
)

// Entomber writes one section of a snapshot. EntombLen must predict the
// exact number of bytes Entomb appends for the given alignment; the snapshot
// writer relies on this to compute section offsets before any bytes exist.
type Entomber interface {
	EntombLen(align int) int
	Entomb(buf []byte, align int) []byte
}

// ScalarSection entombs a slice of fixed-width scalars by reinterpreting
// their memory as bytes, padded to the alignment.
type ScalarSection[T flatcol.Scalar] []T

// EntombLen returns the padded byte length of the section.
func (s ScalarSection[T]) EntombLen(align int) int {
	n := len(s) * elemSize[T]()
	return n + padTo(n, align)
}

// Entomb appends the raw scalar bytes followed by zero padding.
func (s ScalarSection[T]) Entomb(buf []byte, align int) []byte {
	if len(s) > 0 {
		raw := unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*elemSize[T]())
		buf = append(buf, raw...)
	}
	for range padTo(len(s)*elemSize[T](), align) {
		buf = append(buf, 0)
	}
	return buf
}

// ByteSection entombs raw bytes, padded to the alignment.
type ByteSection []byte

// EntombLen returns the padded byte length of the section.
func (b ByteSection) EntombLen(align int) int {
	return len(b) + padTo(len(b), align)
}

// Entomb appends the bytes followed by zero padding.
func (b ByteSection) Entomb(buf []byte, align int) []byte {
	buf = append(buf, b...)
	for range padTo(len(b), align) {
		buf = append(buf, 0)
	}
	return buf
}

// OffsetSection entombs an offset container as a flat u64 sequence. The
// compact stride form does not survive entombing; exhumed readers index the
// flat array directly, which is what zero-copy access wants anyway.
type OffsetSection struct {
	Offsets *offsets.Optimized
}

// EntombLen returns the padded byte length of the section.
func (o OffsetSection) EntombLen(align int) int {
	n := o.Offsets.Len() * 8
	return n + padTo(n, align)
}

// Entomb appends every stored offset as a little-endian u64.
func (o OffsetSection) Entomb(buf []byte, align int) []byte {
	vals := make([]uint64, o.Offsets.Len())
	for i := range vals {
		vals[i] = o.Offsets.Index(i)
	}
	return ScalarSection[uint64](vals).Entomb(buf, align)
}

func elemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
