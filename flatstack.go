package flatcol

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// FlatStack pairs one region with the ordered sequence of indices it has
// issued: the "array of records" abstraction. Append order is significant
// and preserved; Get(k) resolves the k-th appended record.
type FlatStack[T, I, R any, Re Region[T, I, R, Re]] struct {
	region  Re
	indices []I
}

// NewFlatStack creates an empty stack owning region.
func NewFlatStack[T, I, R any, Re Region[T, I, R, Re]](region Re) *FlatStack[T, I, R, Re] {
	return &FlatStack[T, I, R, Re]{region: region}
}

// Append pushes v into the region and records its index.
func (s *FlatStack[T, I, R, Re]) Append(v T) {
	s.indices = append(s.indices, s.region.Push(v))
}

// Get returns the k-th record's read item.
func (s *FlatStack[T, I, R, Re]) Get(k int) R {
	return s.region.Index(s.indices[k])
}

// Len returns the number of records.
func (s *FlatStack[T, I, R, Re]) Len() int {
	return len(s.indices)
}

// Region returns the owned region, for direct pushes or introspection.
// Mutating the region except through the stack desynchronizes the two.
func (s *FlatStack[T, I, R, Re]) Region() Re {
	return s.region
}

// All iterates all records in append order.
func (s *FlatStack[T, I, R, Re]) All() iter.Seq2[int, R] {
	return func(yield func(int, R) bool) {
		for k, i := range s.indices {
			if !yield(k, s.region.Index(i)) {
				return
			}
		}
	}
}

// Select iterates the records at the positions set in bm, in ascending
// position order. This is bulk positional lookup, not search: bm is
// interpreted as a set of record positions in [0, Len).
func (s *FlatStack[T, I, R, Re]) Select(bm *roaring.Bitmap) iter.Seq2[uint32, R] {
	return func(yield func(uint32, R) bool) {
		it := bm.Iterator()
		for it.HasNext() {
			k := it.Next()
			if !yield(k, s.region.Index(s.indices[k])) {
				return
			}
		}
	}
}

// Clear discards all records, invalidating every index the region issued.
// Backing allocations are retained for refilling.
func (s *FlatStack[T, I, R, Re]) Clear() {
	s.region.Clear()
	s.indices = s.indices[:0]
}

// MergeFrom reserves the stack to absorb the records of stacks: the index
// sequence grows to hold the summed lengths and the region reserves per its
// own merge law. No records are copied; callers re-append afterwards (see
// MergeStacks for leaf-shaped regions).
func (s *FlatStack[T, I, R, Re]) MergeFrom(stacks []*FlatStack[T, I, R, Re]) {
	var total int
	regions := make([]Re, len(stacks))
	for k, other := range stacks {
		total += other.Len()
		regions[k] = other.region
	}
	s.indices = reserveCap(s.indices, total)
	s.region.MergeFrom(regions)
}

// HeapSize reports the index sequence and everything the region owns.
func (s *FlatStack[T, I, R, Re]) HeapSize(fn func(used, reserved int)) {
	sliceHeapSize(s.indices, fn)
	s.region.HeapSize(fn)
}

// Strings is a stack of strings over a StringRegion.
type Strings = FlatStack[string, Span, string, *StringRegion]

// NewStrings creates an empty string stack.
func NewStrings() *Strings {
	return NewFlatStack[string, Span, string](NewStringRegion())
}

// Bytes is a stack of byte strings over an OwnedRegion.
type Bytes = FlatStack[[]byte, Span, []byte, *OwnedRegion[byte]]

// NewBytes creates an empty byte-string stack.
func NewBytes() *Bytes {
	return NewFlatStack[[]byte, Span, []byte](NewOwnedRegion[byte]())
}

// Scalars is a stack of scalar values over a MirrorRegion.
type Scalars[T Scalar] = FlatStack[T, T, T, *MirrorRegion[T]]

// NewScalars creates an empty scalar stack.
func NewScalars[T Scalar]() *Scalars[T] {
	return NewFlatStack[T, T, T](NewMirrorRegion[T]())
}
