// Package offsets implements compact containers for monotone-ish integer
// sequences, as produced by byte-offset and index bookkeeping in columnar
// regions.
//
// Three encodings are provided, from most to least specialized:
//
//   - Stride: an O(1)-space state machine covering empty, zero-only,
//     arithmetic, and saturating (trailing repeat) sequences.
//   - List: a general append-only list that stores values in a uint32 lane
//     until the first value that needs 64 bits, then promotes permanently.
//   - Optimized: a Stride prefix with a permanent spill into a List once a
//     value breaks the stride.
//
// All containers are single-writer and append-only; Clear is the only way to
// discard contents.
package offsets
