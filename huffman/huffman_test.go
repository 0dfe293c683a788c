package huffman

import (
	"testing"

	"github.com/hupe1980/flatcol"
	"github.com/stretchr/testify/require"
)

func TestRawRoundTrip(t *testing.T) {
	c := NewContainer[byte]()
	s1 := c.Push([]byte("hello"))
	s2 := c.Push([]byte("world"))
	require.False(t, c.Encoded())
	require.Equal(t, []byte("hello"), c.Index(s1).Collect())
	require.Equal(t, []byte("world"), c.Index(s2).Collect())
}

func TestEncodedRoundTrip(t *testing.T) {
	seq := []int{1, 2, 3, 1, 2, 3, 1, 2, 3, 1, 2, 3, 2, 3, 4, 2, 3, 4}

	// Every prefix of the sequence must survive a train-and-re-push cycle.
	for n := 0; n <= len(seq); n++ {
		prefix := seq[:n]

		donor := NewContainer[int]()
		donor.Push(prefix)

		c := NewContainer[int]()
		c.MergeFrom([]*Container[int]{donor})
		require.True(t, c.Encoded())

		span := c.Push(prefix)
		got := c.Index(span).Collect()
		if n == 0 {
			require.Empty(t, got)
		} else {
			require.Equal(t, prefix, got)
		}
	}
}

func TestEncodedSpansIndependent(t *testing.T) {
	donor := NewContainer[byte]()
	donor.Push([]byte("aaabbc"))

	c := NewContainer[byte]()
	c.MergeFrom([]*Container[byte]{donor})

	spans := make([]flatcol.Span, 0, 3)
	values := [][]byte{[]byte("abc"), []byte("aaaa"), []byte("cb")}
	for _, v := range values {
		spans = append(spans, c.Push(v))
	}
	for i, v := range values {
		require.Equal(t, v, c.Index(spans[i]).Collect())
	}
}

// merge then push then merge again, three levels deep, as a stack merge
// across generations of containers would do.
func TestNestedMerges(t *testing.T) {
	seq := []int{1, 2, 3, 1, 2, 3, 1, 2, 3, 1, 2, 3, 2, 3, 4, 2, 3, 4}

	c := NewContainer[int]()
	c.Push(seq)
	for level := 0; level < 3; level++ {
		next := NewContainer[int]()
		next.MergeFrom([]*Container[int]{c})
		span := next.Push(seq)
		require.Equal(t, seq, next.Index(span).Collect(), "level %d", level)
		c = next
	}
}

func TestSingleSymbolAlphabet(t *testing.T) {
	donor := NewContainer[byte]()
	donor.Push([]byte{7, 7, 7})

	c := NewContainer[byte]()
	c.MergeFrom([]*Container[byte]{donor})
	span := c.Push([]byte{7, 7, 7, 7, 7})
	require.Equal(t, []byte{7, 7, 7, 7, 7}, c.Index(span).Collect())
	// Five one-bit codes still fit one byte.
	require.Len(t, c.bytes, 1)
}

func TestDeterministicCodes(t *testing.T) {
	build := func() *Container[byte] {
		donor := NewContainer[byte]()
		donor.Push([]byte("abracadabra"))
		c := NewContainer[byte]()
		c.MergeFrom([]*Container[byte]{donor})
		c.Push([]byte("abracadabra"))
		return c
	}
	a, b := build(), build()
	require.Equal(t, a.bytes, b.bytes)
	require.Equal(t, a.bits, b.bits)
}

func TestSkewedFrequenciesShortenHotSymbols(t *testing.T) {
	donor := NewContainer[byte]()
	for i := 0; i < 1000; i++ {
		donor.Push([]byte{'x'})
	}
	donor.Push([]byte("abcdefg"))

	c := NewContainer[byte]()
	c.MergeFrom([]*Container[byte]{donor})

	hot := c.Push([]byte{'x'})
	cold := c.Push([]byte{'g'})
	require.Less(t, hot.End-hot.Start, cold.End-cold.Start)
}

func TestUntrainedSymbolPanics(t *testing.T) {
	donor := NewContainer[byte]()
	donor.Push([]byte("ab"))

	c := NewContainer[byte]()
	c.MergeFrom([]*Container[byte]{donor})
	require.Panics(t, func() { c.Push([]byte("z")) })
}

func TestCorruptBitsPanicOnVoidEntry(t *testing.T) {
	donor := NewContainer[byte]()
	donor.Push([]byte{1, 1, 1})

	c := NewContainer[byte]()
	c.MergeFrom([]*Container[byte]{donor})
	span := c.Push([]byte{1, 1})

	// A single-symbol code assigns only the zero bit; a one bit has no owner.
	c.bytes[0] |= 0x80
	require.Panics(t, func() { c.Index(span).Collect() })
}

func TestClearKeepsTraining(t *testing.T) {
	donor := NewContainer[byte]()
	donor.Push([]byte("aabb"))

	c := NewContainer[byte]()
	c.MergeFrom([]*Container[byte]{donor})
	c.Push([]byte("ab"))
	c.Clear()
	require.True(t, c.Encoded())
	require.Zero(t, c.bits)

	span := c.Push([]byte("ba"))
	require.Equal(t, []byte("ba"), c.Index(span).Collect())
}

func TestHeapSizeCoversEncodedStorage(t *testing.T) {
	donor := NewContainer[byte]()
	donor.Push([]byte("aabbcc"))

	c := NewContainer[byte]()
	c.MergeFrom([]*Container[byte]{donor})
	c.Push([]byte("abcabc"))

	var used int
	c.HeapSize(func(u, _ int) { used += u })
	require.Positive(t, used)
}
