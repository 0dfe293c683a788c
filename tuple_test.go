package flatcol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type recordRegion = Tuple3Region[
	uint64, uint64, uint64, *MirrorRegion[uint64],
	[]byte, Span, []byte, *OwnedRegion[byte],
	string, Span, string, *StringRegion,
]

func newRecordRegion() *recordRegion {
	return NewTuple3Region[
		uint64, uint64, uint64, *MirrorRegion[uint64],
		[]byte, Span, []byte, *OwnedRegion[byte],
		string, Span, string,
	](NewMirrorRegion[uint64](), NewOwnedRegion[byte](), NewStringRegion())
}

func TestTuple3RoundTrip(t *testing.T) {
	r := newRecordRegion()

	i1 := r.Push(Tuple3[uint64, []byte, string]{A: 7, B: []byte("payload"), C: "name"})
	i2 := r.Push(Tuple3[uint64, []byte, string]{A: 8, B: nil, C: ""})

	v1 := r.Index(i1)
	require.Equal(t, uint64(7), v1.A)
	require.Equal(t, []byte("payload"), v1.B)
	require.Equal(t, "name", v1.C)

	v2 := r.Index(i2)
	require.Equal(t, uint64(8), v2.A)
	require.Empty(t, v2.B)
	require.Equal(t, "", v2.C)
}

func TestTuple3EqualValuesEqualReads(t *testing.T) {
	r := newRecordRegion()

	// The same logical record pushed twice resolves to equal read items even
	// though the indices differ.
	rec := Tuple3[uint64, []byte, string]{A: 1, B: []byte("b"), C: "c"}
	ia, ib := r.Push(rec), r.Push(rec)
	require.NotEqual(t, ia.B, ib.B)
	va, vb := r.Index(ia), r.Index(ib)
	require.Equal(t, va.A, vb.A)
	require.Equal(t, va.B, vb.B)
	require.Equal(t, va.C, vb.C)
}

func TestTuple3MergeAndRepush(t *testing.T) {
	fill := func(recs ...Tuple3[uint64, []byte, string]) *recordRegion {
		r := newRecordRegion()
		for _, rec := range recs {
			r.Push(rec)
		}
		return r
	}
	a := fill(Tuple3[uint64, []byte, string]{A: 1, B: []byte("one"), C: "a"})
	b := fill(
		Tuple3[uint64, []byte, string]{A: 2, B: []byte("two"), C: "b"},
		Tuple3[uint64, []byte, string]{A: 3, B: []byte("three"), C: "c"},
	)

	merged := newRecordRegion()
	merged.MergeFrom([]*recordRegion{a, b})

	i := merged.Push(Tuple3[uint64, []byte, string]{A: 3, B: []byte("three"), C: "c"})
	v := merged.Index(i)
	require.Equal(t, uint64(3), v.A)
	require.Equal(t, []byte("three"), v.B)
	require.Equal(t, "c", v.C)
}

func TestTuple2Nested(t *testing.T) {
	// A pair whose second field is itself a pair: composition nests without
	// any special casing.
	inner := NewTuple2Region[uint64, uint64, uint64, *MirrorRegion[uint64], string, Span, string](
		NewMirrorRegion[uint64](), NewStringRegion())
	r := NewTuple2Region[
		string, Span, string, *StringRegion,
		Tuple2[uint64, string], Tuple2[uint64, Span], Tuple2[uint64, string],
	](NewStringRegion(), inner)

	i := r.Push(Tuple2[string, Tuple2[uint64, string]]{
		A: "outer",
		B: Tuple2[uint64, string]{A: 42, B: "inner"},
	})
	v := r.Index(i)
	require.Equal(t, "outer", v.A)
	require.Equal(t, uint64(42), v.B.A)
	require.Equal(t, "inner", v.B.B)
}

func TestTuple6RoundTrip(t *testing.T) {
	r := NewTuple6Region[
		uint64, uint64, uint64, *MirrorRegion[uint64],
		uint64, uint64, uint64, *MirrorRegion[uint64],
		uint64, uint64, uint64, *MirrorRegion[uint64],
		uint64, uint64, uint64, *MirrorRegion[uint64],
		uint64, uint64, uint64, *MirrorRegion[uint64],
		string, Span, string,
	](
		NewMirrorRegion[uint64](), NewMirrorRegion[uint64](), NewMirrorRegion[uint64](),
		NewMirrorRegion[uint64](), NewMirrorRegion[uint64](), NewStringRegion(),
	)

	i := r.Push(Tuple6[uint64, uint64, uint64, uint64, uint64, string]{
		A: 1, B: 2, C: 3, D: 4, E: 5, F: "six",
	})
	v := r.Index(i)
	require.Equal(t, uint64(5), v.E)
	require.Equal(t, "six", v.F)
}
