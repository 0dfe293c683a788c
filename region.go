package flatcol

// Region is the contract shared by every columnar region. It is a type
// constraint, not a value interface: regions compose statically, and the
// compiler monomorphizes lookups all the way down to the leaf buffers.
//
// The four type parameters are the region's vocabulary:
//
//   - T is the value type accepted by Push.
//   - I is the opaque index type returned by Push and consumed by Index.
//     Index values must stay cheap to copy and remain valid until Clear.
//   - R is the read item: the borrowed view returned by Index. A read item
//     may reference region memory and may itself be a composite of further
//     read items; it is valid until the region is cleared or merged over.
//   - Self is the implementing pointer type, closing the loop so that
//     MergeFrom can be expressed generically.
//
// MergeFrom pre-sizes the receiver to absorb the contents of the given
// regions and recomputes any region-global derived state (codec dictionaries,
// Huffman codes). It reserves capacity only; callers re-push the source
// contents afterwards. HeapSize invokes the callback once per backing
// allocation with used and reserved byte counts.
type Region[T, I, R, Self any] interface {
	// Push appends v and returns its index. Pushes are independent and
	// append-only; previously returned indices are never invalidated by a
	// push.
	Push(v T) I
	// Index resolves an index returned by Push on this region instance.
	Index(i I) R
	// Clear discards all contents, invalidating every issued index, while
	// retaining backing allocations where possible.
	Clear()
	// MergeFrom reserves capacity and derived state sufficient to absorb
	// the contents of regions.
	MergeFrom(regions []Self)
	// HeapSize reports the used and reserved bytes of every backing
	// allocation.
	HeapSize(fn func(used, reserved int))
}

// Span is the index type of contiguous regions: a half-open [Start, End)
// range of element offsets into the region's flat buffer.
type Span struct {
	Start, End uint64
}

// Len returns the number of elements covered by the span.
func (s Span) Len() int {
	return int(s.End - s.Start)
}

// Empty reports whether the span covers no elements.
func (s Span) Empty() bool {
	return s.Start == s.End
}
