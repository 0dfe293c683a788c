package flatcol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOwnedRegionRoundTrip(t *testing.T) {
	r := NewOwnedRegion[byte]()
	values := [][]byte{[]byte("abc"), nil, []byte("defg"), []byte("")}
	spans := make([]Span, len(values))
	for k, v := range values {
		spans[k] = r.Push(v)
	}
	for k, v := range values {
		require.Equal(t, string(v), string(r.Index(spans[k])))
	}
	require.Equal(t, 7, r.Len())
}

func TestOwnedRegionIndexStableAcrossPushes(t *testing.T) {
	r := NewOwnedRegion[uint64]()
	span := r.Push([]uint64{42, 43})
	got := r.Index(span)

	for i := 0; i < 5000; i++ {
		r.Push([]uint64{uint64(i)})
	}
	require.Equal(t, []uint64{42, 43}, got)
	require.Equal(t, []uint64{42, 43}, r.Index(span))
}

func TestOwnedRegionTryPush(t *testing.T) {
	r := NewOwnedRegion[byte]()
	_, ok := r.TryPush([]byte("too big"))
	require.False(t, ok)

	r.Reserve(7)
	span, ok := r.TryPush([]byte("too big"))
	require.True(t, ok)
	require.Equal(t, "too big", string(r.Index(span)))
}

func TestOwnedRegionMergeReservesForAll(t *testing.T) {
	a, b := NewOwnedRegion[byte](), NewOwnedRegion[byte]()
	a.Push([]byte("aaaa"))
	b.Push([]byte("bbbbbb"))

	merged := NewOwnedRegion[byte]()
	merged.MergeFrom([]*OwnedRegion[byte]{a, b})

	// The reservation must admit every input value without growing.
	for _, src := range []*OwnedRegion[byte]{a, b} {
		_, ok := merged.TryPush(src.Index(Span{Start: 0, End: uint64(src.Len())}))
		require.True(t, ok)
	}
	require.Equal(t, "aaaabbbbbb", string(merged.Index(Span{Start: 0, End: 10})))
}

func TestStringRegionRoundTrip(t *testing.T) {
	r := NewStringRegion()
	values := []string{"hello", "", "world", "a much longer string value"}
	spans := make([]Span, len(values))
	for k, v := range values {
		spans[k] = r.Push(v)
	}
	for k, v := range values {
		require.Equal(t, v, r.Index(spans[k]))
	}
}

func TestStringRegionTryPush(t *testing.T) {
	r := NewStringRegion()
	_, ok := r.TryPush("x")
	require.False(t, ok)

	r.Reserve(1)
	span, ok := r.TryPush("x")
	require.True(t, ok)
	require.Equal(t, "x", r.Index(span))
}

func TestStringRegionClearInvalidates(t *testing.T) {
	r := NewStringRegion()
	r.Push("before")
	r.Clear()
	require.Equal(t, 0, r.Len())

	span := r.Push("after")
	require.Equal(t, "after", r.Index(span))
}
