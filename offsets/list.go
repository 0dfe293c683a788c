package offsets

import "math"

// List is a general append-only container of uint64 values that keeps a
// narrow uint32 lane for as long as every value fits. The first value above
// math.MaxUint32 promotes the list: that value and all subsequent ones land
// in the wide lane, even if they would fit in 32 bits again. Promotion is
// one-directional per instance; mixing lanes by position would make lookups
// ambiguous.
type List struct {
	lo []uint32
	hi []uint64
}

// Push appends v.
func (l *List) Push(v uint64) {
	if len(l.hi) > 0 || v > math.MaxUint32 {
		l.hi = append(l.hi, v)
		return
	}
	l.lo = append(l.lo, uint32(v))
}

// Index returns the i-th pushed value.
func (l *List) Index(i int) uint64 {
	if i < len(l.lo) {
		return uint64(l.lo[i])
	}
	return l.hi[i-len(l.lo)]
}

// Len returns the number of values pushed.
func (l *List) Len() int {
	return len(l.lo) + len(l.hi)
}

// Last returns the most recently pushed value, or zero for an empty list.
func (l *List) Last() uint64 {
	n := l.Len()
	if n == 0 {
		return 0
	}
	return l.Index(n - 1)
}

// Reserve ensures capacity for additional pushes without reallocating.
// Capacity lands in the lane the next push would use.
func (l *List) Reserve(additional int) {
	if len(l.hi) > 0 {
		l.hi = grow(l.hi, additional)
		return
	}
	l.lo = grow(l.lo, additional)
}

// Clear drops all values but keeps allocations for reuse.
func (l *List) Clear() {
	l.lo = l.lo[:0]
	l.hi = l.hi[:0]
}

// HeapSize reports the used and reserved bytes of the backing slices.
func (l *List) HeapSize(fn func(used, total int)) {
	fn(len(l.lo)*4, cap(l.lo)*4)
	fn(len(l.hi)*8, cap(l.hi)*8)
}

func grow[T any](s []T, additional int) []T {
	if additional <= cap(s)-len(s) {
		return s
	}
	grown := make([]T, len(s), len(s)+additional)
	copy(grown, s)
	return grown
}
