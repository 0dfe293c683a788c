package flatcol

import "unsafe"

// Buffer is the growable backing storage used by regions that own raw
// element buffers. It wraps a slice with the reservation and introspection
// hooks the region protocol needs: Reserve for merge pre-sizing, HeapSize
// for memory accounting, Clear for bulk de-allocation.
type Buffer[T any] struct {
	items []T
}

// Append copies vs onto the end of the buffer and returns the covered
// half-open element range.
func (b *Buffer[T]) Append(vs []T) Span {
	start := uint64(len(b.items))
	b.items = append(b.items, vs...)
	return Span{Start: start, End: uint64(len(b.items))}
}

// TryAppend is the checked variant of Append: it refuses to grow the buffer.
// If the reserved capacity cannot hold vs it reports false and stores
// nothing, so the caller can Reserve and retry instead of over-allocating.
func (b *Buffer[T]) TryAppend(vs []T) (Span, bool) {
	if len(vs) > cap(b.items)-len(b.items) {
		return Span{}, false
	}
	return b.Append(vs), true
}

// Slice returns the elements covered by s. The returned slice aliases buffer
// memory and must be treated as read-only. It stays valid across later
// appends: growth may reallocate, but the elements a previously returned
// slice points at are never mutated. Clear invalidates all issued slices.
func (b *Buffer[T]) Slice(s Span) []T {
	return b.items[s.Start:s.End:s.End]
}

// Len returns the number of stored elements.
func (b *Buffer[T]) Len() int {
	return len(b.items)
}

// Reserve ensures capacity for additional more elements without reallocating
// on subsequent appends.
func (b *Buffer[T]) Reserve(additional int) {
	if additional <= cap(b.items)-len(b.items) {
		return
	}
	grown := make([]T, len(b.items), len(b.items)+additional)
	copy(grown, b.items)
	b.items = grown
}

// Clear drops all elements but keeps the allocation for reuse.
func (b *Buffer[T]) Clear() {
	b.items = b.items[:0]
}

// HeapSize reports the used and reserved bytes of the backing slice.
func (b *Buffer[T]) HeapSize(fn func(used, reserved int)) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	fn(len(b.items)*size, cap(b.items)*size)
}

// reserveCap returns s with capacity for at least additional more elements.
func reserveCap[T any](s []T, additional int) []T {
	if additional <= cap(s)-len(s) {
		return s
	}
	grown := make([]T, len(s), len(s)+additional)
	copy(grown, s)
	return grown
}

// sliceHeapSize reports a plain index slice's used and reserved bytes.
func sliceHeapSize[T any](s []T, fn func(used, reserved int)) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	fn(len(s)*size, cap(s)*size)
}
