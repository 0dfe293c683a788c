package flatcol

// CollapseSequence elides immediately consecutive duplicate pushes: if the
// candidate equals the value most recently stored, the previous index is
// returned and nothing new is written. Only adjacent repeats collapse; this
// is a deliberately cheap heuristic for data with long runs (sorted columns,
// repeated tags), not a general dictionary.
//
// The wrapper compares the candidate against the inner region's read item,
// so it requires an inner region that reads back the same comparable type it
// accepts (strings, scalars).
type CollapseSequence[T comparable, I any, Re Region[T, I, T, Re]] struct {
	inner Re
	last  I
	valid bool
}

// NewCollapseSequence wraps inner with consecutive deduplication.
func NewCollapseSequence[T comparable, I any, Re Region[T, I, T, Re]](inner Re) *CollapseSequence[T, I, Re] {
	return &CollapseSequence[T, I, Re]{inner: inner}
}

// Push returns the previous index if v repeats the last stored value, else
// stores v.
func (c *CollapseSequence[T, I, Re]) Push(v T) I {
	if c.valid && c.inner.Index(c.last) == v {
		return c.last
	}
	c.last = c.inner.Push(v)
	c.valid = true
	return c.last
}

// Index resolves i against the inner region.
func (c *CollapseSequence[T, I, Re]) Index(i I) T {
	return c.inner.Index(i)
}

// Inner returns the wrapped region.
func (c *CollapseSequence[T, I, Re]) Inner() Re {
	return c.inner
}

// Clear clears the inner region and forgets the last value.
func (c *CollapseSequence[T, I, Re]) Clear() {
	c.inner.Clear()
	c.valid = false
}

// MergeFrom reserves the inner region from the inner regions of regions. The
// dedup state does not transfer; the first push after a merge always stores.
func (c *CollapseSequence[T, I, Re]) MergeFrom(regions []*CollapseSequence[T, I, Re]) {
	inners := make([]Re, len(regions))
	for k, other := range regions {
		inners[k] = other.inner
	}
	c.inner.MergeFrom(inners)
	c.valid = false
}

// HeapSize reports the inner region.
func (c *CollapseSequence[T, I, Re]) HeapSize(fn func(used, reserved int)) {
	c.inner.HeapSize(fn)
}

var _ Region[string, Span, string, *CollapseSequence[string, Span, *StringRegion]] = (*CollapseSequence[string, Span, *StringRegion])(nil)
