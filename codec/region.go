package codec

import (
	"github.com/hupe1980/flatcol"
	"github.com/hupe1980/flatcol/offsets"
)

// Region stores byte-slice values through a codec. Pushed values are observed
// for training and encoded with the codec's current state; Index decodes them
// back. Encoded payloads are packed densely, so only end offsets are kept,
// and those live in an offsets.Optimized so uniform payload sizes cost O(1)
// index space.
//
// Because decoding reverses the codec state a value was encoded under, and
// MergeFrom retrains the codec, values are re-encoded during merges rather
// than copied.
type Region[C Codec[C]] struct {
	codec   C
	data    flatcol.Buffer[byte]
	ends    offsets.Optimized
	scratch []byte
}

var _ flatcol.Region[[]byte, uint64, []byte, *Region[*Dictionary]] = (*Region[*Dictionary])(nil)

// NewRegion creates a region encoding through c.
func NewRegion[C Codec[C]](c C) *Region[C] {
	return &Region[C]{codec: c}
}

// Push encodes v and returns its position.
func (r *Region[C]) Push(v []byte) uint64 {
	r.codec.Observe(v)
	return r.encode(v)
}

func (r *Region[C]) encode(v []byte) uint64 {
	r.scratch = r.codec.Encode(r.scratch[:0], v)
	span := r.data.Append(r.scratch)
	r.ends.Push(span.End)
	return uint64(r.ends.Len() - 1)
}

// Index decodes the value at position i. Depending on the codec the result
// may alias region memory and must be treated as read-only.
func (r *Region[C]) Index(i uint64) []byte {
	var start uint64
	if i > 0 {
		start = r.ends.Index(int(i) - 1)
	}
	end := r.ends.Index(int(i))
	return r.codec.Decode(r.data.Slice(flatcol.Span{Start: start, End: end}))
}

// Len returns the number of stored values.
func (r *Region[C]) Len() int {
	return r.ends.Len()
}

// Codec returns the region's codec, for Report and training inspection.
func (r *Region[C]) Codec() C {
	return r.codec
}

// Clear drops all values but keeps allocations and the trained codec state.
func (r *Region[C]) Clear() {
	r.data.Clear()
	r.ends.Clear()
}

// MergeFrom retrains the codec from the statistics of regions and reserves
// capacity for their payloads. Like every region merge it copies no values;
// the caller re-pushes them, and retraining first means frequent values
// across all inputs compress well when it does. Values r already holds are
// decoded under the old state and re-encoded, since their payloads would not
// survive the state change.
func (r *Region[C]) MergeFrom(regions []*Region[C]) {
	var kept [][]byte
	if n := r.Len(); n > 0 {
		kept = make([][]byte, n)
		for i := range n {
			kept[i] = append([]byte(nil), r.Index(uint64(i))...)
		}
		r.data.Clear()
		r.ends.Clear()
	}

	codecs := make([]C, len(regions))
	var total int
	for i, other := range regions {
		codecs[i] = other.codec
		total += other.data.Len()
	}
	r.codec.MergeFrom(codecs)
	r.data.Reserve(total)

	// Re-encode without observing again; the values are already counted.
	for _, v := range kept {
		r.encode(v)
	}
}

// HeapSize reports the payload buffer, offsets, scratch and codec footprint.
func (r *Region[C]) HeapSize(fn func(used, reserved int)) {
	r.data.HeapSize(fn)
	r.ends.HeapSize(fn)
	fn(len(r.scratch), cap(r.scratch))
	r.codec.HeapSize(fn)
}
