package flatcol

import "unsafe"

// StringRegion stores strings as raw bytes in an OwnedRegion and hands them
// back as strings without copying. Lookups reinterpret the byte sub-slice as
// a string header via unsafe; this is sound because the buffer is append-only
// and the bytes behind an issued span are never mutated. Any new push path
// added to this region must uphold that immutability itself.
type StringRegion struct {
	bytes OwnedRegion[byte]
}

// NewStringRegion creates an empty StringRegion.
func NewStringRegion() *StringRegion {
	return &StringRegion{}
}

// Push appends a copy of v's bytes and returns the covering span.
func (r *StringRegion) Push(v string) Span {
	return r.bytes.Push(toBytes(v))
}

// TryPush appends v only if the reserved capacity can hold it. On false the
// region is unchanged; Reserve and retry.
func (r *StringRegion) TryPush(v string) (Span, bool) {
	return r.bytes.TryPush(toBytes(v))
}

// Index returns the string covered by i, borrowed from region memory. Valid
// until Clear.
func (r *StringRegion) Index(i Span) string {
	b := r.bytes.Index(i)
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// Len returns the total number of stored bytes.
func (r *StringRegion) Len() int {
	return r.bytes.Len()
}

// Reserve ensures capacity for additional more bytes.
func (r *StringRegion) Reserve(additional int) {
	r.bytes.Reserve(additional)
}

// Clear discards all bytes, invalidating every issued span.
func (r *StringRegion) Clear() {
	r.bytes.Clear()
}

// MergeFrom reserves byte capacity for the summed contents of regions.
func (r *StringRegion) MergeFrom(regions []*StringRegion) {
	var total int
	for _, other := range regions {
		total += other.Len()
	}
	r.bytes.Reserve(total)
}

// HeapSize reports the byte buffer's used and reserved bytes.
func (r *StringRegion) HeapSize(fn func(used, reserved int)) {
	r.bytes.HeapSize(fn)
}

// toBytes views a string's bytes without copying. The result is read-only;
// OwnedRegion.Push copies it immediately and never writes through it.
func toBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

var _ Region[string, Span, string, *StringRegion] = (*StringRegion)(nil)
