package flatcol

// Tuple regions compose one sub-region per field. The tuple's index is the
// tuple of the fields' indices, and its read item is the tuple of the
// fields' read items, which may recursively be composed views. Pushing
// decomposes the value and pushes each field to its sub-region in order.
// A panic while pushing field k leaves fields 0..k-1 committed; that is
// harmless because sub-regions are append-only and the partial index is
// never returned.
//
// Arities 2 through 6 are provided. Wider records compose by nesting, e.g. a
// Tuple2 of Tuple6s.

// Tuple2 is a generic pair. It serves as value, index and read item of
// Tuple2Region, instantiated at the respective field types.
type Tuple2[A, B any] struct {
	A A
	B B
}

// Tuple3 is a generic triple.
type Tuple3[A, B, C any] struct {
	A A
	B B
	C C
}

// Tuple4 is a generic 4-tuple.
type Tuple4[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

// Tuple5 is a generic 5-tuple.
type Tuple5[A, B, C, D, E any] struct {
	A A
	B B
	C C
	D D
	E E
}

// Tuple6 is a generic 6-tuple.
type Tuple6[A, B, C, D, E, F any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
}

// Tuple2Region stores pairs, one sub-region per field.
type Tuple2Region[TA, IA, RA any, A Region[TA, IA, RA, A], TB, IB, RB any, B Region[TB, IB, RB, B]] struct {
	a A
	b B
}

// NewTuple2Region creates a Tuple2Region over the given field regions.
func NewTuple2Region[TA, IA, RA any, A Region[TA, IA, RA, A], TB, IB, RB any, B Region[TB, IB, RB, B]](a A, b B) *Tuple2Region[TA, IA, RA, A, TB, IB, RB, B] {
	return &Tuple2Region[TA, IA, RA, A, TB, IB, RB, B]{a: a, b: b}
}

// Push pushes each field to its sub-region and returns the index pair.
func (r *Tuple2Region[TA, IA, RA, A, TB, IB, RB, B]) Push(v Tuple2[TA, TB]) Tuple2[IA, IB] {
	return Tuple2[IA, IB]{A: r.a.Push(v.A), B: r.b.Push(v.B)}
}

// Index resolves each field's index to its read item.
func (r *Tuple2Region[TA, IA, RA, A, TB, IB, RB, B]) Index(i Tuple2[IA, IB]) Tuple2[RA, RB] {
	return Tuple2[RA, RB]{A: r.a.Index(i.A), B: r.b.Index(i.B)}
}

// Clear clears both sub-regions.
func (r *Tuple2Region[TA, IA, RA, A, TB, IB, RB, B]) Clear() {
	r.a.Clear()
	r.b.Clear()
}

// MergeFrom reserves each sub-region from the matching field of regions.
func (r *Tuple2Region[TA, IA, RA, A, TB, IB, RB, B]) MergeFrom(regions []*Tuple2Region[TA, IA, RA, A, TB, IB, RB, B]) {
	as := make([]A, len(regions))
	bs := make([]B, len(regions))
	for k, other := range regions {
		as[k] = other.a
		bs[k] = other.b
	}
	r.a.MergeFrom(as)
	r.b.MergeFrom(bs)
}

// HeapSize reports both sub-regions.
func (r *Tuple2Region[TA, IA, RA, A, TB, IB, RB, B]) HeapSize(fn func(used, reserved int)) {
	r.a.HeapSize(fn)
	r.b.HeapSize(fn)
}

// Tuple3Region stores triples, one sub-region per field.
type Tuple3Region[TA, IA, RA any, A Region[TA, IA, RA, A], TB, IB, RB any, B Region[TB, IB, RB, B], TC, IC, RC any, C Region[TC, IC, RC, C]] struct {
	a A
	b B
	c C
}

// NewTuple3Region creates a Tuple3Region over the given field regions.
func NewTuple3Region[TA, IA, RA any, A Region[TA, IA, RA, A], TB, IB, RB any, B Region[TB, IB, RB, B], TC, IC, RC any, C Region[TC, IC, RC, C]](a A, b B, c C) *Tuple3Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C] {
	return &Tuple3Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C]{a: a, b: b, c: c}
}

func (r *Tuple3Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C]) Push(v Tuple3[TA, TB, TC]) Tuple3[IA, IB, IC] {
	return Tuple3[IA, IB, IC]{A: r.a.Push(v.A), B: r.b.Push(v.B), C: r.c.Push(v.C)}
}

func (r *Tuple3Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C]) Index(i Tuple3[IA, IB, IC]) Tuple3[RA, RB, RC] {
	return Tuple3[RA, RB, RC]{A: r.a.Index(i.A), B: r.b.Index(i.B), C: r.c.Index(i.C)}
}

func (r *Tuple3Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C]) Clear() {
	r.a.Clear()
	r.b.Clear()
	r.c.Clear()
}

func (r *Tuple3Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C]) MergeFrom(regions []*Tuple3Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C]) {
	as := make([]A, len(regions))
	bs := make([]B, len(regions))
	cs := make([]C, len(regions))
	for k, other := range regions {
		as[k] = other.a
		bs[k] = other.b
		cs[k] = other.c
	}
	r.a.MergeFrom(as)
	r.b.MergeFrom(bs)
	r.c.MergeFrom(cs)
}

func (r *Tuple3Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C]) HeapSize(fn func(used, reserved int)) {
	r.a.HeapSize(fn)
	r.b.HeapSize(fn)
	r.c.HeapSize(fn)
}

// Tuple4Region stores 4-tuples, one sub-region per field.
type Tuple4Region[TA, IA, RA any, A Region[TA, IA, RA, A], TB, IB, RB any, B Region[TB, IB, RB, B], TC, IC, RC any, C Region[TC, IC, RC, C], TD, ID, RD any, D Region[TD, ID, RD, D]] struct {
	a A
	b B
	c C
	d D
}

// NewTuple4Region creates a Tuple4Region over the given field regions.
func NewTuple4Region[TA, IA, RA any, A Region[TA, IA, RA, A], TB, IB, RB any, B Region[TB, IB, RB, B], TC, IC, RC any, C Region[TC, IC, RC, C], TD, ID, RD any, D Region[TD, ID, RD, D]](a A, b B, c C, d D) *Tuple4Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C, TD, ID, RD, D] {
	return &Tuple4Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C, TD, ID, RD, D]{a: a, b: b, c: c, d: d}
}

func (r *Tuple4Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C, TD, ID, RD, D]) Push(v Tuple4[TA, TB, TC, TD]) Tuple4[IA, IB, IC, ID] {
	return Tuple4[IA, IB, IC, ID]{A: r.a.Push(v.A), B: r.b.Push(v.B), C: r.c.Push(v.C), D: r.d.Push(v.D)}
}

func (r *Tuple4Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C, TD, ID, RD, D]) Index(i Tuple4[IA, IB, IC, ID]) Tuple4[RA, RB, RC, RD] {
	return Tuple4[RA, RB, RC, RD]{A: r.a.Index(i.A), B: r.b.Index(i.B), C: r.c.Index(i.C), D: r.d.Index(i.D)}
}

func (r *Tuple4Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C, TD, ID, RD, D]) Clear() {
	r.a.Clear()
	r.b.Clear()
	r.c.Clear()
	r.d.Clear()
}

func (r *Tuple4Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C, TD, ID, RD, D]) MergeFrom(regions []*Tuple4Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C, TD, ID, RD, D]) {
	as := make([]A, len(regions))
	bs := make([]B, len(regions))
	cs := make([]C, len(regions))
	ds := make([]D, len(regions))
	for k, other := range regions {
		as[k] = other.a
		bs[k] = other.b
		cs[k] = other.c
		ds[k] = other.d
	}
	r.a.MergeFrom(as)
	r.b.MergeFrom(bs)
	r.c.MergeFrom(cs)
	r.d.MergeFrom(ds)
}

func (r *Tuple4Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C, TD, ID, RD, D]) HeapSize(fn func(used, reserved int)) {
	r.a.HeapSize(fn)
	r.b.HeapSize(fn)
	r.c.HeapSize(fn)
	r.d.HeapSize(fn)
}

// Tuple5Region stores 5-tuples, one sub-region per field.
type Tuple5Region[TA, IA, RA any, A Region[TA, IA, RA, A], TB, IB, RB any, B Region[TB, IB, RB, B], TC, IC, RC any, C Region[TC, IC, RC, C], TD, ID, RD any, D Region[TD, ID, RD, D], TE, IE, RE any, E Region[TE, IE, RE, E]] struct {
	a A
	b B
	c C
	d D
	e E
}

// NewTuple5Region creates a Tuple5Region over the given field regions.
func NewTuple5Region[TA, IA, RA any, A Region[TA, IA, RA, A], TB, IB, RB any, B Region[TB, IB, RB, B], TC, IC, RC any, C Region[TC, IC, RC, C], TD, ID, RD any, D Region[TD, ID, RD, D], TE, IE, RE any, E Region[TE, IE, RE, E]](a A, b B, c C, d D, e E) *Tuple5Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C, TD, ID, RD, D, TE, IE, RE, E] {
	return &Tuple5Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C, TD, ID, RD, D, TE, IE, RE, E]{a: a, b: b, c: c, d: d, e: e}
}

func (r *Tuple5Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C, TD, ID, RD, D, TE, IE, RE, E]) Push(v Tuple5[TA, TB, TC, TD, TE]) Tuple5[IA, IB, IC, ID, IE] {
	return Tuple5[IA, IB, IC, ID, IE]{A: r.a.Push(v.A), B: r.b.Push(v.B), C: r.c.Push(v.C), D: r.d.Push(v.D), E: r.e.Push(v.E)}
}

func (r *Tuple5Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C, TD, ID, RD, D, TE, IE, RE, E]) Index(i Tuple5[IA, IB, IC, ID, IE]) Tuple5[RA, RB, RC, RD, RE] {
	return Tuple5[RA, RB, RC, RD, RE]{A: r.a.Index(i.A), B: r.b.Index(i.B), C: r.c.Index(i.C), D: r.d.Index(i.D), E: r.e.Index(i.E)}
}

func (r *Tuple5Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C, TD, ID, RD, D, TE, IE, RE, E]) Clear() {
	r.a.Clear()
	r.b.Clear()
	r.c.Clear()
	r.d.Clear()
	r.e.Clear()
}

func (r *Tuple5Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C, TD, ID, RD, D, TE, IE, RE, E]) MergeFrom(regions []*Tuple5Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C, TD, ID, RD, D, TE, IE, RE, E]) {
	as := make([]A, len(regions))
	bs := make([]B, len(regions))
	cs := make([]C, len(regions))
	ds := make([]D, len(regions))
	es := make([]E, len(regions))
	for k, other := range regions {
		as[k] = other.a
		bs[k] = other.b
		cs[k] = other.c
		ds[k] = other.d
		es[k] = other.e
	}
	r.a.MergeFrom(as)
	r.b.MergeFrom(bs)
	r.c.MergeFrom(cs)
	r.d.MergeFrom(ds)
	r.e.MergeFrom(es)
}

func (r *Tuple5Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C, TD, ID, RD, D, TE, IE, RE, E]) HeapSize(fn func(used, reserved int)) {
	r.a.HeapSize(fn)
	r.b.HeapSize(fn)
	r.c.HeapSize(fn)
	r.d.HeapSize(fn)
	r.e.HeapSize(fn)
}

// Tuple6Region stores 6-tuples, one sub-region per field.
type Tuple6Region[TA, IA, RA any, A Region[TA, IA, RA, A], TB, IB, RB any, B Region[TB, IB, RB, B], TC, IC, RC any, C Region[TC, IC, RC, C], TD, ID, RD any, D Region[TD, ID, RD, D], TE, IE, RE any, E Region[TE, IE, RE, E], TF, IF, RF any, F Region[TF, IF, RF, F]] struct {
	a A
	b B
	c C
	d D
	e E
	f F
}

// NewTuple6Region creates a Tuple6Region over the given field regions.
func NewTuple6Region[TA, IA, RA any, A Region[TA, IA, RA, A], TB, IB, RB any, B Region[TB, IB, RB, B], TC, IC, RC any, C Region[TC, IC, RC, C], TD, ID, RD any, D Region[TD, ID, RD, D], TE, IE, RE any, E Region[TE, IE, RE, E], TF, IF, RF any, F Region[TF, IF, RF, F]](a A, b B, c C, d D, e E, f F) *Tuple6Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C, TD, ID, RD, D, TE, IE, RE, E, TF, IF, RF, F] {
	return &Tuple6Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C, TD, ID, RD, D, TE, IE, RE, E, TF, IF, RF, F]{a: a, b: b, c: c, d: d, e: e, f: f}
}

func (r *Tuple6Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C, TD, ID, RD, D, TE, IE, RE, E, TF, IF, RF, F]) Push(v Tuple6[TA, TB, TC, TD, TE, TF]) Tuple6[IA, IB, IC, ID, IE, IF] {
	return Tuple6[IA, IB, IC, ID, IE, IF]{A: r.a.Push(v.A), B: r.b.Push(v.B), C: r.c.Push(v.C), D: r.d.Push(v.D), E: r.e.Push(v.E), F: r.f.Push(v.F)}
}

func (r *Tuple6Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C, TD, ID, RD, D, TE, IE, RE, E, TF, IF, RF, F]) Index(i Tuple6[IA, IB, IC, ID, IE, IF]) Tuple6[RA, RB, RC, RD, RE, RF] {
	return Tuple6[RA, RB, RC, RD, RE, RF]{A: r.a.Index(i.A), B: r.b.Index(i.B), C: r.c.Index(i.C), D: r.d.Index(i.D), E: r.e.Index(i.E), F: r.f.Index(i.F)}
}

func (r *Tuple6Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C, TD, ID, RD, D, TE, IE, RE, E, TF, IF, RF, F]) Clear() {
	r.a.Clear()
	r.b.Clear()
	r.c.Clear()
	r.d.Clear()
	r.e.Clear()
	r.f.Clear()
}

func (r *Tuple6Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C, TD, ID, RD, D, TE, IE, RE, E, TF, IF, RF, F]) MergeFrom(regions []*Tuple6Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C, TD, ID, RD, D, TE, IE, RE, E, TF, IF, RF, F]) {
	as := make([]A, len(regions))
	bs := make([]B, len(regions))
	cs := make([]C, len(regions))
	ds := make([]D, len(regions))
	es := make([]E, len(regions))
	fs := make([]F, len(regions))
	for k, other := range regions {
		as[k] = other.a
		bs[k] = other.b
		cs[k] = other.c
		ds[k] = other.d
		es[k] = other.e
		fs[k] = other.f
	}
	r.a.MergeFrom(as)
	r.b.MergeFrom(bs)
	r.c.MergeFrom(cs)
	r.d.MergeFrom(ds)
	r.e.MergeFrom(es)
	r.f.MergeFrom(fs)
}

func (r *Tuple6Region[TA, IA, RA, A, TB, IB, RB, B, TC, IC, RC, C, TD, ID, RD, D, TE, IE, RE, E, TF, IF, RF, F]) HeapSize(fn func(used, reserved int)) {
	r.a.HeapSize(fn)
	r.b.HeapSize(fn)
	r.c.HeapSize(fn)
	r.d.HeapSize(fn)
	r.e.HeapSize(fn)
	r.f.HeapSize(fn)
}
