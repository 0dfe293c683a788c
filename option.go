package flatcol

// Option is an optional value. It exists so that optional columns can be
// stored without a discriminant byte: OptionRegion's index is an
// Option of the inner index, and an absent value costs no storage at all.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None is the absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// OptionRegion stores optional values. Present values delegate to the inner
// region; absent values are carried entirely by the index, so a region that
// only ever receives None never grows its inner storage.
type OptionRegion[T, I, R any, Re Region[T, I, R, Re]] struct {
	inner Re
}

// NewOptionRegion creates an OptionRegion over inner.
func NewOptionRegion[T, I, R any, Re Region[T, I, R, Re]](inner Re) *OptionRegion[T, I, R, Re] {
	return &OptionRegion[T, I, R, Re]{inner: inner}
}

// Push stores v. None costs nothing; Some pushes to the inner region.
func (r *OptionRegion[T, I, R, Re]) Push(v Option[T]) Option[I] {
	if v, ok := v.Get(); ok {
		return Some(r.inner.Push(v))
	}
	return None[I]()
}

// Index resolves the optional index to an optional read item.
func (r *OptionRegion[T, I, R, Re]) Index(i Option[I]) Option[R] {
	if i, ok := i.Get(); ok {
		return Some(r.inner.Index(i))
	}
	return None[R]()
}

// Inner returns the region storing present values.
func (r *OptionRegion[T, I, R, Re]) Inner() Re {
	return r.inner
}

// Clear clears the inner region.
func (r *OptionRegion[T, I, R, Re]) Clear() {
	r.inner.Clear()
}

// MergeFrom reserves the inner region from the inner regions of regions.
func (r *OptionRegion[T, I, R, Re]) MergeFrom(regions []*OptionRegion[T, I, R, Re]) {
	inners := make([]Re, len(regions))
	for k, other := range regions {
		inners[k] = other.inner
	}
	r.inner.MergeFrom(inners)
}

// HeapSize reports the inner region.
func (r *OptionRegion[T, I, R, Re]) HeapSize(fn func(used, reserved int)) {
	r.inner.HeapSize(fn)
}

var _ Region[
	Option[string], Option[Span], Option[string],
	*OptionRegion[string, Span, string, *StringRegion],
] = (*OptionRegion[string, Span, string, *StringRegion])(nil)
