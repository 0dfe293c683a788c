// Package huffman provides a symbol container that compresses its contents
// with a Huffman code learned from observed frequencies.
//
// A fresh Container stores symbols verbatim while counting them. The first
// merge trains a prefix code from the accumulated counts and switches the
// container to encoded storage, where indices address bit ranges instead of
// element ranges. Readers never see the difference: both modes yield the
// original symbol sequence.
//
// Encoding packs variable-width codes back to back across byte boundaries.
// Decoding is table driven: one 256-entry table resolves up to eight code
// bits at a time, with nested tables taking over for longer codes. A decode
// lookup that lands on an unassigned entry panics, since it means the stored
// bits were not produced by the container's own code.
package huffman
