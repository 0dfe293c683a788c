// Package codec provides byte-string regions that apply statistical
// compression transparently between the region contract and the underlying
// storage.
//
// Region wraps any Codec implementation. The built-in codecs are:
//
//   - Dictionary: replaces values found among the stream's heavy hitters
//     (tracked by a Misra-Gries summary) with single-byte tags. Decoding is
//     zero-copy. Best for streams dominated by a small set of values.
//   - Zstd, LZ4: per-value block compression via klauspost/compress and
//     pierrec/lz4. Stateless; decoding allocates.
//
// Codecs carry region-local statistics, never global state. Merging regions
// retrains the receiving codec from the union of the inputs' statistics, so
// values re-pushed after a merge encode against a dictionary that has seen
// all inputs.
package codec
