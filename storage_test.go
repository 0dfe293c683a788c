package flatcol

import "testing"

func TestBufferAppendSlice(t *testing.T) {
	var b Buffer[byte]

	s1 := b.Append([]byte("hello"))
	s2 := b.Append([]byte("world"))
	if got := string(b.Slice(s1)); got != "hello" {
		t.Fatalf("got %q", got)
	}
	if got := string(b.Slice(s2)); got != "world" {
		t.Fatalf("got %q", got)
	}
	if b.Len() != 10 {
		t.Fatalf("len %d", b.Len())
	}
}

func TestBufferSliceSurvivesGrowth(t *testing.T) {
	var b Buffer[int]
	span := b.Append([]int{1, 2, 3})
	view := b.Slice(span)

	// Force reallocation.
	for i := 0; i < 10000; i++ {
		b.Append([]int{i})
	}
	if view[0] != 1 || view[1] != 2 || view[2] != 3 {
		t.Fatalf("view changed after growth: %v", view)
	}
}

func TestBufferTryAppend(t *testing.T) {
	var b Buffer[byte]

	if _, ok := b.TryAppend([]byte("x")); ok {
		t.Fatal("try-append into empty buffer should fail")
	}
	b.Reserve(4)
	span, ok := b.TryAppend([]byte("abcd"))
	if !ok {
		t.Fatal("reserved capacity should admit the append")
	}
	if got := string(b.Slice(span)); got != "abcd" {
		t.Fatalf("got %q", got)
	}
	if _, ok := b.TryAppend([]byte("e")); ok {
		t.Fatal("exhausted capacity should reject")
	}
}

func TestBufferClearKeepsCapacity(t *testing.T) {
	var b Buffer[uint64]
	b.Append(make([]uint64, 100))
	b.Clear()

	if b.Len() != 0 {
		t.Fatalf("len %d after clear", b.Len())
	}
	var used, reserved int
	b.HeapSize(func(u, r int) { used, reserved = u, r })
	if used != 0 {
		t.Fatalf("used %d after clear", used)
	}
	if reserved < 100*8 {
		t.Fatalf("reserved %d, capacity should be retained", reserved)
	}
}

func TestSpan(t *testing.T) {
	s := Span{Start: 3, End: 7}
	if s.Len() != 4 {
		t.Fatalf("len %d", s.Len())
	}
	if s.Empty() {
		t.Fatal("non-empty span")
	}
	if !(Span{Start: 5, End: 5}).Empty() {
		t.Fatal("empty span")
	}
}
