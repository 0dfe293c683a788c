package offsets

import (
	"math"
	"testing"
)

func TestStride_ArithmeticThenSaturated(t *testing.T) {
	var s Stride
	for _, v := range []uint64{0, 2, 4, 4, 4} {
		if !s.Push(v) {
			t.Fatalf("push %d rejected", v)
		}
	}
	if got := s.Len(); got != 5 {
		t.Fatalf("expected len=5, got %d", got)
	}
	if got := s.Index(1); got != 2 {
		t.Errorf("expected index(1)=2, got %d", got)
	}
	if got := s.Index(4); got != 4 {
		t.Errorf("expected index(4)=4, got %d", got)
	}

	// A value inconsistent with the saturated tail must be rejected and
	// leave the state untouched.
	if s.Push(5) {
		t.Fatal("push 5 should be rejected after saturation")
	}
	if got := s.Len(); got != 5 {
		t.Fatalf("rejected push changed len: %d", got)
	}
	if got := s.Index(4); got != 4 {
		t.Fatalf("rejected push changed contents: %d", got)
	}
}

func TestStride_Transitions(t *testing.T) {
	t.Run("nonzero first value rejected", func(t *testing.T) {
		var s Stride
		if s.Push(3) {
			t.Fatal("expected rejection")
		}
		if s.Len() != 0 {
			t.Fatal("rejected push must not change length")
		}
	})

	t.Run("repeated zero saturates", func(t *testing.T) {
		var s Stride
		for i := 0; i < 4; i++ {
			if !s.Push(0) {
				t.Fatalf("push #%d rejected", i)
			}
		}
		if s.Len() != 4 {
			t.Fatalf("expected len=4, got %d", s.Len())
		}
		for i := 0; i < 4; i++ {
			if s.Index(i) != 0 {
				t.Fatalf("index(%d) != 0", i)
			}
		}
		if s.Push(1) {
			t.Fatal("stride is pinned at zero, 1 must be rejected")
		}
	})

	t.Run("broken ramp rejected", func(t *testing.T) {
		var s Stride
		s.Push(0)
		s.Push(5)
		s.Push(10)
		if s.Push(12) {
			t.Fatal("12 does not extend stride 5")
		}
	})

	t.Run("clear", func(t *testing.T) {
		var s Stride
		s.Push(0)
		s.Push(7)
		s.Clear()
		if s.Len() != 0 {
			t.Fatal("clear did not empty the stride")
		}
		if !s.Push(0) {
			t.Fatal("cleared stride must accept zero again")
		}
	})
}

func TestList_Promotion(t *testing.T) {
	var l List
	l.Push(1)
	l.Push(2)
	l.Push(math.MaxUint32 + 1)
	// Small again, but the list is already wide; it must stay wide.
	l.Push(3)

	want := []uint64{1, 2, math.MaxUint32 + 1, 3}
	if l.Len() != len(want) {
		t.Fatalf("expected len=%d, got %d", len(want), l.Len())
	}
	for i, w := range want {
		if got := l.Index(i); got != w {
			t.Errorf("index(%d): expected %d, got %d", i, w, got)
		}
	}
	if len(l.lo) != 2 || len(l.hi) != 2 {
		t.Errorf("expected 2 narrow + 2 wide values, got %d + %d", len(l.lo), len(l.hi))
	}
	if got := l.Last(); got != 3 {
		t.Errorf("expected last=3, got %d", got)
	}
}

func TestList_ClearKeepsCapacity(t *testing.T) {
	var l List
	for i := 0; i < 100; i++ {
		l.Push(uint64(i))
	}
	before := cap(l.lo)
	l.Clear()
	if l.Len() != 0 {
		t.Fatal("clear did not empty the list")
	}
	if cap(l.lo) != before {
		t.Fatal("clear dropped capacity")
	}
}

func TestOptimized_SpillIsPermanent(t *testing.T) {
	var o Optimized
	// Stride-able prefix.
	for _, v := range []uint64{0, 4, 8, 12} {
		o.Push(v)
	}
	if o.spilled.Len() != 0 {
		t.Fatal("prefix should be held by the stride machine")
	}
	// Breaks the stride, spills...
	o.Push(13)
	// ...and a value the stride could have taken still spills.
	o.Push(16)

	want := []uint64{0, 4, 8, 12, 13, 16}
	if o.Len() != len(want) {
		t.Fatalf("expected len=%d, got %d", len(want), o.Len())
	}
	for i, w := range want {
		if got := o.Index(i); got != w {
			t.Errorf("index(%d): expected %d, got %d", i, w, got)
		}
	}
	if o.spilled.Len() != 2 {
		t.Errorf("expected 2 spilled values, got %d", o.spilled.Len())
	}
}

func TestOptimized_HeapSizeZeroWhileStriding(t *testing.T) {
	var o Optimized
	for i := 0; i < 1000; i++ {
		o.Push(uint64(i) * 8)
	}
	var total int
	o.HeapSize(func(_, reserved int) { total += reserved })
	if total != 0 {
		t.Fatalf("strided container should own no heap memory, reports %d bytes", total)
	}
}
