package flatcol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollapseSequenceIdempotentPush(t *testing.T) {
	c := NewCollapseSequence[string, Span](NewStringRegion())

	i1 := c.Push("dup")
	before := c.Inner().Len()
	i2 := c.Push("dup")
	require.Equal(t, i1, i2, "consecutive duplicates share the index")
	require.Equal(t, before, c.Inner().Len(), "storage must not grow on a collapsed push")

	i3 := c.Push("other")
	require.NotEqual(t, i1, i3)
	require.Equal(t, "dup", c.Index(i1))
	require.Equal(t, "other", c.Index(i3))
}

func TestCollapseSequenceOnlyAdjacentRepeats(t *testing.T) {
	c := NewCollapseSequence[string, Span](NewStringRegion())

	i1 := c.Push("a")
	c.Push("b")
	i3 := c.Push("a")
	require.NotEqual(t, i1, i3, "non-adjacent repeats store again")
	require.Equal(t, "a", c.Index(i3))
}

func TestCollapseSequenceRunStoresOnce(t *testing.T) {
	c := NewCollapseSequence[uint64, uint64](NewMirrorRegion[uint64]())
	var last uint64
	for i := 0; i < 100; i++ {
		last = c.Push(7)
	}
	require.Equal(t, uint64(7), c.Index(last))
}

func TestCollapseSequenceMergeResetsState(t *testing.T) {
	a := NewCollapseSequence[string, Span](NewStringRegion())
	a.Push("x")

	merged := NewCollapseSequence[string, Span](NewStringRegion())
	merged.MergeFrom([]*CollapseSequence[string, Span, *StringRegion]{a})

	// The first push after a merge always stores, even if it matches what an
	// input last held.
	i := merged.Push("x")
	require.Equal(t, "x", merged.Index(i))
	require.Equal(t, 1, merged.Inner().Len())
}
