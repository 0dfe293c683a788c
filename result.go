package flatcol

// Result is a two-sided value: success of type T or failure of type E. Like
// Option it exists so that ResultRegion can encode the discriminant in the
// index instead of in stored data.
type Result[T, E any] struct {
	value T
	fault E
	isErr bool
}

// Ok wraps a success value.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v}
}

// Err wraps a failure value.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{fault: e, isErr: true}
}

// Ok returns the success value and whether this is a success.
func (r Result[T, E]) Ok() (T, bool) {
	return r.value, !r.isErr
}

// Err returns the failure value and whether this is a failure.
func (r Result[T, E]) Err() (E, bool) {
	return r.fault, r.isErr
}

// IsOk reports whether this is a success.
func (r Result[T, E]) IsOk() bool {
	return !r.isErr
}

// ResultRegion stores two-sided values in two independent inner regions, one
// for successes and one for failures. Which side an index's variant is
// populated on carries the discriminant; no stored byte does.
type ResultRegion[TO, IO, RO any, O Region[TO, IO, RO, O], TE, IE, RE any, E Region[TE, IE, RE, E]] struct {
	oks  O
	errs E
}

// NewResultRegion creates a ResultRegion over the two side regions.
func NewResultRegion[TO, IO, RO any, O Region[TO, IO, RO, O], TE, IE, RE any, E Region[TE, IE, RE, E]](oks O, errs E) *ResultRegion[TO, IO, RO, O, TE, IE, RE, E] {
	return &ResultRegion[TO, IO, RO, O, TE, IE, RE, E]{oks: oks, errs: errs}
}

// Push stores v in the side region matching its variant.
func (r *ResultRegion[TO, IO, RO, O, TE, IE, RE, E]) Push(v Result[TO, TE]) Result[IO, IE] {
	if v, ok := v.Ok(); ok {
		return Ok[IO, IE](r.oks.Push(v))
	}
	e, _ := v.Err()
	return Err[IO](r.errs.Push(e))
}

// Index resolves the index against the side region its variant names.
func (r *ResultRegion[TO, IO, RO, O, TE, IE, RE, E]) Index(i Result[IO, IE]) Result[RO, RE] {
	if i, ok := i.Ok(); ok {
		return Ok[RO, RE](r.oks.Index(i))
	}
	e, _ := i.Err()
	return Err[RO](r.errs.Index(e))
}

// Clear clears both side regions.
func (r *ResultRegion[TO, IO, RO, O, TE, IE, RE, E]) Clear() {
	r.oks.Clear()
	r.errs.Clear()
}

// MergeFrom reserves both side regions from the matching sides of regions.
func (r *ResultRegion[TO, IO, RO, O, TE, IE, RE, E]) MergeFrom(regions []*ResultRegion[TO, IO, RO, O, TE, IE, RE, E]) {
	oks := make([]O, len(regions))
	errs := make([]E, len(regions))
	for k, other := range regions {
		oks[k] = other.oks
		errs[k] = other.errs
	}
	r.oks.MergeFrom(oks)
	r.errs.MergeFrom(errs)
}

// HeapSize reports both side regions.
func (r *ResultRegion[TO, IO, RO, O, TE, IE, RE, E]) HeapSize(fn func(used, reserved int)) {
	r.oks.HeapSize(fn)
	r.errs.HeapSize(fn)
}

var _ Region[
	Result[string, uint64], Result[Span, uint64], Result[string, uint64],
	*ResultRegion[string, Span, string, *StringRegion, uint64, uint64, uint64, *MirrorRegion[uint64]],
] = (*ResultRegion[string, Span, string, *StringRegion, uint64, uint64, uint64, *MirrorRegion[uint64]])(nil)
