package huffman

import (
	"container/heap"
	"fmt"
)

// symbolCode is one symbol's bit string, MSB-first in bits, occupying the
// leading width bits. Codes may exceed 64 bits for skewed distributions, so
// they are kept as byte strings rather than integers.
type symbolCode struct {
	bits  []byte
	width uint16
}

// code pairs the encode map with the root decode table.
type code[B comparable] struct {
	encode map[B]symbolCode
	decode *table[B]
}

type entryKind uint8

const (
	voidEntry entryKind = iota
	leafEntry
	furtherEntry
)

// table resolves the next eight bits of an encoded stream. Leaf entries carry
// the decoded symbol and how many of the eight bits its code actually used;
// further entries consume all eight and delegate to a nested table. Void
// entries are bit patterns no code produces.
type table[B comparable] struct {
	entries [256]entry[B]
}

type entry[B comparable] struct {
	kind  entryKind
	width uint8
	sym   B
	next  *table[B]
}

type treeNode[B comparable] struct {
	count int64
	seq   int
	sym   B
	leaf  bool
	left  *treeNode[B]
	right *treeNode[B]
}

type nodeHeap[B comparable] []*treeNode[B]

func (h nodeHeap[B]) Len() int { return len(h) }
func (h nodeHeap[B]) Less(i, j int) bool {
	if h[i].count != h[j].count {
		return h[i].count < h[j].count
	}
	return h[i].seq < h[j].seq
}
func (h nodeHeap[B]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap[B]) Push(x any)        { *h = append(*h, x.(*treeNode[B])) }
func (h *nodeHeap[B]) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return x
}

// buildCode trains a prefix code for syms with the given counts. syms must be
// in a stable order (first observation order) so that equal-count ties break
// the same way every time the same statistics are trained.
func buildCode[B comparable](syms []B, counts map[B]int64) *code[B] {
	c := &code[B]{encode: make(map[B]symbolCode, len(syms))}
	if len(syms) == 0 {
		return c
	}

	h := make(nodeHeap[B], 0, len(syms))
	for i, s := range syms {
		h = append(h, &treeNode[B]{count: counts[s], seq: i, sym: s, leaf: true})
	}
	heap.Init(&h)

	seq := len(syms)
	for h.Len() > 1 {
		a := heap.Pop(&h).(*treeNode[B])
		b := heap.Pop(&h).(*treeNode[B])
		heap.Push(&h, &treeNode[B]{count: a.count + b.count, seq: seq, left: a, right: b})
		seq++
	}
	root := h[0]

	// A single-symbol alphabet still needs a one-bit code, otherwise encoded
	// values would occupy zero bits and be indistinguishable.
	if root.leaf {
		root = &treeNode[B]{left: root, right: &treeNode[B]{}}
		c.assign(root.left, []byte{0x00}, 1)
		var codes []scopedCode[B]
		codes = append(codes, scopedCode[B]{sym: root.left.sym, bits: []byte{0x00}, width: 1})
		c.decode = buildTable(codes, 0)
		return c
	}

	var codes []scopedCode[B]
	var walk func(n *treeNode[B], bits []byte, width uint16)
	walk = func(n *treeNode[B], bits []byte, width uint16) {
		if n.leaf {
			owned := append([]byte(nil), bits...)
			c.assign(n, owned, width)
			codes = append(codes, scopedCode[B]{sym: n.sym, bits: owned, width: width})
			return
		}
		walk(n.left, withBit(bits, width, 0), width+1)
		walk(n.right, withBit(bits, width, 1), width+1)
	}
	walk(root, nil, 0)

	c.decode = buildTable(codes, 0)
	return c
}

func (c *code[B]) assign(n *treeNode[B], bits []byte, width uint16) {
	c.encode[n.sym] = symbolCode{bits: bits, width: width}
}

// withBit returns a copy of bits with the bit at position width set to b.
func withBit(bits []byte, width uint16, b byte) []byte {
	out := make([]byte, (int(width)+8)/8)
	copy(out, bits)
	if b != 0 {
		out[width/8] |= 0x80 >> (width % 8)
	}
	return out
}

type scopedCode[B comparable] struct {
	sym   B
	bits  []byte
	width uint16
}

// buildTable constructs the decode table for codes whose first off bits have
// already been consumed by outer tables.
func buildTable[B comparable](codes []scopedCode[B], off uint16) *table[B] {
	t := &table[B]{}
	buckets := make(map[byte][]scopedCode[B])
	for _, sc := range codes {
		rem := sc.width - off
		if rem <= 8 {
			// The code completes within this byte window. Every window value
			// sharing its prefix decodes to the symbol.
			prefix := window(sc.bits, off, uint8(rem))
			base := int(prefix) << (8 - rem)
			n := 1 << (8 - rem)
			for i := 0; i < n; i++ {
				t.entries[base+i] = entry[B]{kind: leafEntry, width: uint8(rem), sym: sc.sym}
			}
			continue
		}
		buckets[window(sc.bits, off, 8)] = append(buckets[window(sc.bits, off, 8)], sc)
	}
	for b, group := range buckets {
		t.entries[b] = entry[B]{kind: furtherEntry, next: buildTable(group, off+8)}
	}
	return t
}

// window extracts n bits of bits starting at bit position off, right-aligned.
func window(bits []byte, off uint16, n uint8) byte {
	var w byte
	for i := uint16(0); i < uint16(n); i++ {
		w <<= 1
		pos := off + i
		if bits[pos/8]&(0x80>>(pos%8)) != 0 {
			w |= 1
		}
	}
	return w
}

// lookup returns the code for sym, panicking on symbols the training
// statistics never saw. Pushing an untrained symbol into an encoded container
// is a contract violation, not a runtime condition.
func (c *code[B]) lookup(sym B) symbolCode {
	sc, ok := c.encode[sym]
	if !ok {
		panic(fmt.Sprintf("flatcol/huffman: symbol %v not covered by trained code", sym))
	}
	return sc
}
