package offsets

// Optimized stores an offset sequence as a Stride prefix followed by a spill
// List. While every pushed value extends the stride the container costs O(1)
// space. The first value the stride rejects goes to the spill list, and from
// then on all values do; there is no attempt to resume striding, which keeps
// positional lookups a two-way branch.
type Optimized struct {
	strided Stride
	spilled List
}

// Push appends v.
func (o *Optimized) Push(v uint64) {
	if o.spilled.Len() == 0 && o.strided.Push(v) {
		return
	}
	o.spilled.Push(v)
}

// Index returns the i-th pushed value.
func (o *Optimized) Index(i int) uint64 {
	if i < o.strided.Len() {
		return o.strided.Index(i)
	}
	return o.spilled.Index(i - o.strided.Len())
}

// Len returns the number of values pushed.
func (o *Optimized) Len() int {
	return o.strided.Len() + o.spilled.Len()
}

// Last returns the most recently pushed value, or zero when empty.
func (o *Optimized) Last() uint64 {
	n := o.Len()
	if n == 0 {
		return 0
	}
	return o.Index(n - 1)
}

// Reserve pre-sizes the spill list. The strided prefix needs no capacity, so
// reservations are only meaningful once values have spilled; reserving on a
// fresh container is a no-op.
func (o *Optimized) Reserve(additional int) {
	if o.spilled.Len() > 0 {
		o.spilled.Reserve(additional)
	}
}

// Clear resets both the stride machine and the spill list.
func (o *Optimized) Clear() {
	o.strided.Clear()
	o.spilled.Clear()
}

// HeapSize reports the used and reserved bytes of the spill list. The stride
// prefix lives inline and owns no heap memory.
func (o *Optimized) HeapSize(fn func(used, total int)) {
	o.spilled.HeapSize(fn)
}
