package flatcol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConsecutiveOffsetPairsRoundTrip(t *testing.T) {
	c := NewConsecutiveOffsetPairs[string, string](NewStringRegion())

	values := []string{"a", "", "bcd", "ef"}
	indices := make([]uint64, len(values))
	for k, v := range values {
		indices[k] = c.Push(v)
	}
	require.Equal(t, []uint64{0, 1, 2, 3}, indices, "indices are consecutive positions")
	for k, v := range values {
		require.Equal(t, v, c.Index(indices[k]))
	}
	require.Equal(t, len(values), c.Len())
}

func TestConsecutiveOffsetPairsUniformWidthsStayCompact(t *testing.T) {
	c := NewConsecutiveOffsetPairs[string, string](NewStringRegion())
	for i := 0; i < 1000; i++ {
		c.Push("abcd")
	}
	// Uniform widths produce an arithmetic end sequence, which the offset
	// container holds in constant space.
	var offsetBytes int
	c.HeapSize(func(u, _ int) { offsetBytes += u })
	var innerBytes int
	c.Inner().HeapSize(func(u, _ int) { innerBytes += u })
	require.Equal(t, innerBytes, offsetBytes, "offsets should add nothing for uniform rows")
	require.Equal(t, "abcd", c.Index(999))
}

func TestConsecutiveOffsetPairsClear(t *testing.T) {
	c := NewConsecutiveOffsetPairs[string, string](NewStringRegion())
	c.Push("one")
	c.Clear()
	require.Equal(t, 0, c.Len())

	i := c.Push("two")
	require.Equal(t, uint64(0), i)
	require.Equal(t, "two", c.Index(i))
}

func TestConsecutiveOffsetPairsMergeAndRepush(t *testing.T) {
	fill := func(vs ...string) *ConsecutiveOffsetPairs[string, string, *StringRegion] {
		c := NewConsecutiveOffsetPairs[string, string](NewStringRegion())
		for _, v := range vs {
			c.Push(v)
		}
		return c
	}
	a := fill("a1", "a2")
	b := fill("b1")

	merged := NewConsecutiveOffsetPairs[string, string](NewStringRegion())
	merged.MergeFrom([]*ConsecutiveOffsetPairs[string, string, *StringRegion]{a, b})
	for _, src := range []*ConsecutiveOffsetPairs[string, string, *StringRegion]{a, b} {
		for i := 0; i < src.Len(); i++ {
			merged.Push(src.Index(uint64(i)))
		}
	}
	require.Equal(t, 3, merged.Len())
	require.Equal(t, "a2", merged.Index(1))
	require.Equal(t, "b1", merged.Index(2))
}
