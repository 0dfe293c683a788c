package codec

import (
	"fmt"
	"strings"
)

// escape marks an encoded payload as a literal: the byte is followed by the
// raw value. Tags 0..254 remain available for dictionary hits.
const escape = 0xFF

// maxDictEntries is the number of values a dictionary can substitute.
const maxDictEntries = 255 - 0 // tags 0..254

// Dictionary substitutes whole values against a learned table. A value found
// in the table encodes as a single tag byte; anything else encodes as the
// escape byte followed by the raw value. Decoding a literal aliases the
// encoded slice, so reads stay zero-copy for misses and cost one small table
// lookup for hits.
//
// A fresh Dictionary has an empty table and passes everything through as
// literals while a MisraGries summary observes the stream. MergeFrom retrains
// the table from the union of all summaries, so merged regions pick up the
// frequent values of every input.
type Dictionary struct {
	encode map[string]byte
	decode [][]byte
	stats  *MisraGries

	observedBytes int64
	encodedBytes  int64
}

// NewDictionary creates an untrained dictionary tracking up to k candidate
// values.
func NewDictionary(k int) *Dictionary {
	if k > maxDictEntries {
		k = maxDictEntries
	}
	return &Dictionary{stats: NewMisraGries(k)}
}

// Encode appends the encoded form of v to dst and returns the extended slice.
func (d *Dictionary) Encode(dst, v []byte) []byte {
	d.observedBytes += int64(len(v))
	if tag, ok := d.encode[string(v)]; ok {
		d.encodedBytes++
		return append(dst, tag)
	}
	d.encodedBytes += int64(1 + len(v))
	dst = append(dst, escape)
	return append(dst, v...)
}

// Decode returns the value for one encoded payload. Literal payloads alias
// enc; table hits return the stored entry. The result must not be mutated.
func (d *Dictionary) Decode(enc []byte) []byte {
	if len(enc) == 0 {
		return enc
	}
	if enc[0] == escape {
		return enc[1:]
	}
	return d.decode[enc[0]]
}

// Observe feeds v into the training statistics without encoding it.
func (d *Dictionary) Observe(v []byte) {
	d.stats.Observe(v)
}

// MergeFrom retrains the table from this dictionary's summary combined with
// the summaries of others. The previous table is discarded.
func (d *Dictionary) MergeFrom(others []*Dictionary) {
	peers := make([]*MisraGries, 0, len(others))
	for _, o := range others {
		peers = append(peers, o.stats)
	}
	d.stats.Absorb(peers)

	heavy := d.stats.Heavy()
	if len(heavy) > maxDictEntries {
		heavy = heavy[:maxDictEntries]
	}
	d.encode = make(map[string]byte, len(heavy))
	d.decode = make([][]byte, len(heavy))
	for i, v := range heavy {
		d.encode[v] = byte(i)
		d.decode[i] = []byte(v)
	}
	d.observedBytes = 0
	d.encodedBytes = 0
}

// HeapSize reports the table and summary footprint.
func (d *Dictionary) HeapSize(fn func(used, reserved int)) {
	var bytes int
	for v := range d.encode {
		bytes += len(v) + 1
	}
	for _, v := range d.decode {
		bytes += len(v) + cap(v) - len(v)
	}
	fn(bytes, bytes)
	d.stats.HeapSize(fn)
}

// Report summarizes the table size and observed compression ratio.
func (d *Dictionary) Report() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "dictionary: %d entries", len(d.decode))
	if d.observedBytes > 0 {
		fmt.Fprintf(&sb, ", %d -> %d bytes (%.2fx)",
			d.observedBytes, d.encodedBytes,
			float64(d.observedBytes)/float64(d.encodedBytes))
	}
	return sb.String()
}
