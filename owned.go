package flatcol

// OwnedRegion stores pushed slices back to back in one flat buffer. The
// index is the covering Span; lookups return a sub-slice of the buffer
// without copying. It is the workhorse leaf for variable-length data
// (byte strings, element lists) and the storage behind StringRegion.
type OwnedRegion[T any] struct {
	items Buffer[T]
}

// NewOwnedRegion creates an empty OwnedRegion for element type T.
func NewOwnedRegion[T any]() *OwnedRegion[T] {
	return &OwnedRegion[T]{}
}

// Push appends a copy of v to the buffer and returns its span.
func (r *OwnedRegion[T]) Push(v []T) Span {
	return r.items.Append(v)
}

// TryPush appends v only if the reserved capacity can hold it. On false the
// region is unchanged and the caller may Reserve and retry; this is the
// non-panicking path for workloads with a hard memory budget.
func (r *OwnedRegion[T]) TryPush(v []T) (Span, bool) {
	return r.items.TryAppend(v)
}

// Index returns the elements covered by i. The slice aliases region memory,
// is read-only, and stays valid until Clear. Out-of-range spans panic;
// indices are trusted handles and their provenance is never validated.
func (r *OwnedRegion[T]) Index(i Span) []T {
	return r.items.Slice(i)
}

// Len returns the total number of stored elements across all pushes.
func (r *OwnedRegion[T]) Len() int {
	return r.items.Len()
}

// Reserve ensures capacity for additional more elements.
func (r *OwnedRegion[T]) Reserve(additional int) {
	r.items.Reserve(additional)
}

// Clear discards all elements, invalidating every issued span.
func (r *OwnedRegion[T]) Clear() {
	r.items.Clear()
}

// MergeFrom reserves capacity for the summed contents of regions. No data is
// copied; callers re-push afterwards.
func (r *OwnedRegion[T]) MergeFrom(regions []*OwnedRegion[T]) {
	var total int
	for _, other := range regions {
		total += other.Len()
	}
	r.items.Reserve(total)
}

// HeapSize reports the buffer's used and reserved bytes.
func (r *OwnedRegion[T]) HeapSize(fn func(used, reserved int)) {
	r.items.HeapSize(fn)
}

var _ Region[[]byte, Span, []byte, *OwnedRegion[byte]] = (*OwnedRegion[byte])(nil)
