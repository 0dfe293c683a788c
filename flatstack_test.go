package flatcol

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/require"
)

func TestStringsStackRoundTrip(t *testing.T) {
	s := NewStrings()
	values := []string{"one", "", "three"}
	for _, v := range values {
		s.Append(v)
	}
	require.Equal(t, len(values), s.Len())
	for k, v := range values {
		require.Equal(t, v, s.Get(k))
	}

	var got []string
	for _, v := range s.All() {
		got = append(got, v)
	}
	require.Equal(t, values, got)
}

func TestScalarsStack(t *testing.T) {
	s := NewScalars[uint64]()
	for i := uint64(0); i < 10; i++ {
		s.Append(i * i)
	}
	require.Equal(t, uint64(81), s.Get(9))
}

func TestBytesStack(t *testing.T) {
	s := NewBytes()
	s.Append([]byte("raw"))
	s.Append(nil)
	require.Equal(t, []byte("raw"), s.Get(0))
	require.Empty(t, s.Get(1))
}

func TestFlatStackSelect(t *testing.T) {
	s := NewStrings()
	for i := 0; i < 100; i++ {
		s.Append(fmt.Sprintf("row-%d", i))
	}

	bm := roaring.BitmapOf(3, 41, 99)
	var positions []uint32
	var values []string
	for k, v := range s.Select(bm) {
		positions = append(positions, k)
		values = append(values, v)
	}
	require.Equal(t, []uint32{3, 41, 99}, positions)
	require.Equal(t, []string{"row-3", "row-41", "row-99"}, values)
}

func TestFlatStackClear(t *testing.T) {
	s := NewStrings()
	s.Append("gone")
	s.Clear()
	require.Equal(t, 0, s.Len())

	s.Append("back")
	require.Equal(t, "back", s.Get(0))
}

func TestMergeStacks(t *testing.T) {
	fill := func(vs ...string) *Strings {
		s := NewStrings()
		for _, v := range vs {
			s.Append(v)
		}
		return s
	}
	parts := []*Strings{
		fill("a", "b"),
		fill(),
		fill("c", "d", "e"),
	}

	merged := MergeStacks(NewStrings, parts)
	require.Equal(t, 5, merged.Len())
	want := []string{"a", "b", "c", "d", "e"}
	for k, v := range want {
		require.Equal(t, v, merged.Get(k))
	}
}

func TestMergeStacksScalars(t *testing.T) {
	fill := func(vs ...uint64) *Scalars[uint64] {
		s := NewScalars[uint64]()
		for _, v := range vs {
			s.Append(v)
		}
		return s
	}
	merged := MergeStacks(NewScalars[uint64], []*Scalars[uint64]{fill(1, 2), fill(3)})
	require.Equal(t, uint64(3), merged.Get(2))
}

func TestBuildParallel(t *testing.T) {
	ctx := context.Background()
	parts, err := BuildParallel(ctx, 4, NewStrings,
		func(ctx context.Context, worker int, s *Strings) error {
			for i := 0; i < 50; i++ {
				s.Append(fmt.Sprintf("w%d-%d", worker, i))
			}
			return nil
		})
	require.NoError(t, err)
	require.Len(t, parts, 4)

	merged := MergeStacks(NewStrings, parts)
	require.Equal(t, 200, merged.Len())
	require.Equal(t, "w0-0", merged.Get(0))
	require.Equal(t, "w3-49", merged.Get(199))
}

func TestBuildParallelPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	_, err := BuildParallel(context.Background(), 3, NewStrings,
		func(ctx context.Context, worker int, s *Strings) error {
			if worker == 1 {
				return boom
			}
			return nil
		})
	require.ErrorIs(t, err, boom)
}

func TestFlatStackHeapSize(t *testing.T) {
	s := NewStrings()
	s.Append("some stored value")
	var used, reserved int
	s.HeapSize(func(u, r int) {
		used += u
		reserved += r
	})
	require.Positive(t, used)
	require.GreaterOrEqual(t, reserved, used)
}
