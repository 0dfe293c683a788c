package flatcol

import "iter"

// SliceRegion stores variable-length sequences of inner-region items. Every
// element of every pushed slice lands in the single shared inner region; the
// per-element indices go into one flat index list, and the slice's own index
// is the Span covering its entries in that list.
type SliceRegion[T, I, R any, Re Region[T, I, R, Re]] struct {
	inner  Re
	slices []I
}

// NewSliceRegion creates a SliceRegion delegating element storage to inner.
func NewSliceRegion[T, I, R any, Re Region[T, I, R, Re]](inner Re) *SliceRegion[T, I, R, Re] {
	return &SliceRegion[T, I, R, Re]{inner: inner}
}

// Push appends every element of vs to the inner region and returns the span
// covering their indices. A push of n elements costs n inner pushes plus n
// index-list entries.
func (r *SliceRegion[T, I, R, Re]) Push(vs []T) Span {
	start := uint64(len(r.slices))
	for _, v := range vs {
		r.slices = append(r.slices, r.inner.Push(v))
	}
	return Span{Start: start, End: uint64(len(r.slices))}
}

// Index returns a view over the sequence stored at i. The view is a cheap
// value: it borrows the index list and resolves elements lazily against the
// inner region.
func (r *SliceRegion[T, I, R, Re]) Index(i Span) SliceView[T, I, R, Re] {
	return SliceView[T, I, R, Re]{
		inner:   r.inner,
		indices: r.slices[i.Start:i.End:i.End],
	}
}

// Inner returns the shared element region.
func (r *SliceRegion[T, I, R, Re]) Inner() Re {
	return r.inner
}

// Clear discards the index list and the inner region's contents.
func (r *SliceRegion[T, I, R, Re]) Clear() {
	r.inner.Clear()
	r.slices = r.slices[:0]
}

// MergeFrom reserves index-list and inner-region capacity for the summed
// contents of regions.
func (r *SliceRegion[T, I, R, Re]) MergeFrom(regions []*SliceRegion[T, I, R, Re]) {
	var total int
	inners := make([]Re, len(regions))
	for k, other := range regions {
		total += len(other.slices)
		inners[k] = other.inner
	}
	r.slices = reserveCap(r.slices, total)
	r.inner.MergeFrom(inners)
}

// HeapSize reports the index list's bytes and everything the inner region
// owns.
func (r *SliceRegion[T, I, R, Re]) HeapSize(fn func(used, reserved int)) {
	sliceHeapSize(r.slices, fn)
	r.inner.HeapSize(fn)
}

// SliceView is the read item of SliceRegion: a borrowed, lazily resolved
// view of one stored sequence. Copying the view is cheap; it stays valid
// until the owning region is cleared.
type SliceView[T, I, R any, Re Region[T, I, R, Re]] struct {
	inner   Re
	indices []I
}

// Len returns the number of elements in the sequence.
func (v SliceView[T, I, R, Re]) Len() int {
	return len(v.indices)
}

// Get resolves the k-th element's read item.
func (v SliceView[T, I, R, Re]) Get(k int) R {
	return v.inner.Index(v.indices[k])
}

// All iterates the sequence's read items in order.
func (v SliceView[T, I, R, Re]) All() iter.Seq[R] {
	return func(yield func(R) bool) {
		for _, i := range v.indices {
			if !yield(v.inner.Index(i)) {
				return
			}
		}
	}
}

// CopySliceView re-pushes a view's elements into dst. It is the re-push half
// of the merge protocol for slice regions whose inner region reads back the
// same type it accepts (leaf-shaped inners such as strings or scalars).
func CopySliceView[T any, I any, Re Region[T, I, T, Re]](dst *SliceRegion[T, I, T, Re], v SliceView[T, I, T, Re]) Span {
	start := uint64(len(dst.slices))
	for e := range v.All() {
		dst.slices = append(dst.slices, dst.inner.Push(e))
	}
	return Span{Start: start, End: uint64(len(dst.slices))}
}

var _ Region[
	[]string, Span,
	SliceView[string, Span, string, *StringRegion],
	*SliceRegion[string, Span, string, *StringRegion],
] = (*SliceRegion[string, Span, string, *StringRegion])(nil)
