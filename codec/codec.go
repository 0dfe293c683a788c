package codec

// Codec encodes and decodes individual byte-string values for a Region. It
// is a type constraint closed over the implementing pointer type so that
// MergeFrom can retrain from peers of the same codec.
//
// Implementations own their statistics; two codec instances never share
// state. Encode must be deterministic between mutations: the bytes appended
// for v must decode to v for as long as the codec is not retrained. Region
// upholds this by re-encoding every value it already stores whenever
// MergeFrom retrains the codec underneath them.
type Codec[Self any] interface {
	// Encode appends the encoded form of v to dst and returns the
	// extended slice.
	Encode(dst, v []byte) []byte
	// Decode returns the value for an encoded byte-string produced by
	// this codec. The result may alias enc or codec-owned memory and is
	// read-only.
	Decode(enc []byte) []byte
	// Observe feeds v into the codec's statistics without encoding it.
	Observe(v []byte)
	// MergeFrom retrains the codec from the union of the peers'
	// statistics.
	MergeFrom(codecs []Self)
	// HeapSize reports the codec's own allocations.
	HeapSize(fn func(used, reserved int))
	// Report returns a human-readable summary of the codec's
	// effectiveness, for explicit diagnostics only.
	Report() string
}
