package flatcol

import (
	"github.com/hupe1980/flatcol/internal/invariants"
	"github.com/hupe1980/flatcol/offsets"
)

// ConsecutiveOffsetPairs converts a Span-indexed region into one indexed by
// a single running integer. It relies on pushes being dense: the span
// returned for push k must start exactly where push k-1 ended, which holds
// for any append-only contiguous region that only this wrapper pushes into.
// Under that invariant only the end offsets need storing, and they form the
// monotone sequences offsets.Optimized compacts well.
//
// Density is a trusted-caller contract. It is checked only under the
// flatcol_invariants build tag; violating it in a regular build silently
// corrupts offsets.
type ConsecutiveOffsetPairs[T, R any, Re Region[T, Span, R, Re]] struct {
	inner Re
	ends  offsets.Optimized
	last  uint64
}

// NewConsecutiveOffsetPairs wraps inner with running-offset indexing.
func NewConsecutiveOffsetPairs[T, R any, Re Region[T, Span, R, Re]](inner Re) *ConsecutiveOffsetPairs[T, R, Re] {
	return &ConsecutiveOffsetPairs[T, R, Re]{inner: inner}
}

// Push stores v and returns its position.
func (c *ConsecutiveOffsetPairs[T, R, Re]) Push(v T) uint64 {
	span := c.inner.Push(v)
	invariants.Check(span.Start == c.last,
		"flatcol: non-dense span push: got start %d, expected %d", span.Start, c.last)
	c.ends.Push(span.End)
	c.last = span.End
	return uint64(c.ends.Len() - 1)
}

// Index reconstructs the i-th span from the running offsets and resolves it
// against the inner region.
func (c *ConsecutiveOffsetPairs[T, R, Re]) Index(i uint64) R {
	var start uint64
	if i > 0 {
		start = c.ends.Index(int(i) - 1)
	}
	return c.inner.Index(Span{Start: start, End: c.ends.Index(int(i))})
}

// Len returns the number of stored values.
func (c *ConsecutiveOffsetPairs[T, R, Re]) Len() int {
	return c.ends.Len()
}

// Inner returns the wrapped region.
func (c *ConsecutiveOffsetPairs[T, R, Re]) Inner() Re {
	return c.inner
}

// Clear clears the inner region and the offset sequence.
func (c *ConsecutiveOffsetPairs[T, R, Re]) Clear() {
	c.inner.Clear()
	c.ends.Clear()
	c.last = 0
}

// MergeFrom reserves the offset sequence and the inner region from regions.
func (c *ConsecutiveOffsetPairs[T, R, Re]) MergeFrom(regions []*ConsecutiveOffsetPairs[T, R, Re]) {
	var total int
	inners := make([]Re, len(regions))
	for k, other := range regions {
		total += other.ends.Len()
		inners[k] = other.inner
	}
	c.ends.Reserve(total)
	c.inner.MergeFrom(inners)
}

// HeapSize reports the offset sequence and the inner region.
func (c *ConsecutiveOffsetPairs[T, R, Re]) HeapSize(fn func(used, reserved int)) {
	c.ends.HeapSize(fn)
	c.inner.HeapSize(fn)
}

var _ Region[string, uint64, string, *ConsecutiveOffsetPairs[string, string, *StringRegion]] = (*ConsecutiveOffsetPairs[string, string, *StringRegion])(nil)
