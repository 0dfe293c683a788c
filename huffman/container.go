package huffman

import (
	"iter"
	"unsafe"

	"github.com/hupe1980/flatcol"
)

// Container stores sequences of symbols and learns a Huffman code from them.
// Until the first merge it keeps symbols verbatim while counting frequencies;
// MergeFrom trains a code from the combined counts and switches the container
// to bit-packed storage. Spans returned by Push address elements in raw mode
// and bits once encoded, and are only meaningful against the container that
// issued them.
type Container[B comparable] struct {
	stats map[B]int64
	seen  []B

	raw []B

	code  *code[B]
	bytes []byte
	bits  uint64
}

var _ flatcol.Region[[]byte, flatcol.Span, View[byte], *Container[byte]] = (*Container[byte])(nil)

// NewContainer creates an untrained container in raw mode.
func NewContainer[B comparable]() *Container[B] {
	return &Container[B]{stats: make(map[B]int64)}
}

// Encoded reports whether the container has trained a code and stores bits.
func (c *Container[B]) Encoded() bool {
	return c.code != nil
}

// Push appends one symbol sequence and returns the range covering it.
func (c *Container[B]) Push(v []B) flatcol.Span {
	for _, sym := range v {
		if _, ok := c.stats[sym]; !ok {
			c.seen = append(c.seen, sym)
		}
		c.stats[sym]++
	}
	if c.code == nil {
		start := uint64(len(c.raw))
		c.raw = append(c.raw, v...)
		return flatcol.Span{Start: start, End: uint64(len(c.raw))}
	}
	start := c.bits
	for _, sym := range v {
		c.appendCode(c.code.lookup(sym))
	}
	return flatcol.Span{Start: start, End: c.bits}
}

// appendCode packs one code onto the bit stream, carrying the partial
// trailing byte across calls.
func (c *Container[B]) appendCode(sc symbolCode) {
	for i := uint16(0); i < sc.width; i++ {
		if c.bits%8 == 0 {
			c.bytes = append(c.bytes, 0)
		}
		if sc.bits[i/8]&(0x80>>(i%8)) != 0 {
			c.bytes[c.bits/8] |= 0x80 >> (c.bits % 8)
		}
		c.bits++
	}
}

// Index returns a view of the sequence stored at s.
func (c *Container[B]) Index(s flatcol.Span) View[B] {
	return View[B]{c: c, span: s}
}

// Clear drops stored symbols but keeps the statistics and any trained code.
func (c *Container[B]) Clear() {
	c.raw = c.raw[:0]
	c.bytes = c.bytes[:0]
	c.bits = 0
}

// MergeFrom folds the statistics of others into c, trains a code from the
// combined counts and switches to encoded storage. Like every region merge it
// copies no data, and any symbols c itself held are dropped with their spans;
// the caller re-pushes all values afterwards. First-observation order feeds
// the tie break, so training the same statistics yields the same code.
func (c *Container[B]) MergeFrom(others []*Container[B]) {
	for _, o := range others {
		for _, sym := range o.seen {
			if _, ok := c.stats[sym]; !ok {
				c.seen = append(c.seen, sym)
			}
			c.stats[sym] += o.stats[sym]
		}
	}
	c.code = buildCode(c.seen, c.stats)
	c.raw = nil
	c.bytes = c.bytes[:0]
	c.bits = 0

	var total int
	for _, o := range others {
		total += len(o.bytes) + len(o.raw)
	}
	c.bytes = reserveBytes(c.bytes, total)
}

// HeapSize reports raw, encoded and statistics storage.
func (c *Container[B]) HeapSize(fn func(used, reserved int)) {
	fn(len(c.bytes), cap(c.bytes))
	fn(len(c.raw)*symSize[B](), cap(c.raw)*symSize[B]())
	fn(len(c.stats)*(symSize[B]()+8), len(c.stats)*(symSize[B]()+8))
}

// Report summarizes the trained state.
func (c *Container[B]) Report() string {
	if c.code == nil {
		return "huffman: untrained, raw storage"
	}
	return "huffman: trained, encoded storage"
}

// View is a lazily decoded symbol sequence.
type View[B comparable] struct {
	c    *Container[B]
	span flatcol.Span
}

// All iterates the symbols of the viewed sequence in push order.
func (v View[B]) All() iter.Seq[B] {
	return func(yield func(B) bool) {
		if v.c.code == nil {
			for _, sym := range v.c.raw[v.span.Start:v.span.End] {
				if !yield(sym) {
					return
				}
			}
			return
		}
		pos := v.span.Start
		for pos < v.span.End {
			sym, width := v.c.decodeAt(pos)
			if !yield(sym) {
				return
			}
			pos += width
		}
	}
}

// Collect materializes the viewed sequence.
func (v View[B]) Collect() []B {
	var out []B
	for sym := range v.All() {
		out = append(out, sym)
	}
	return out
}

// decodeAt resolves one symbol starting at bit position pos and returns it
// with the number of bits its code occupied.
func (c *Container[B]) decodeAt(pos uint64) (B, uint64) {
	t := c.code.decode
	var consumed uint64
	for {
		e := &t.entries[peek8(c.bytes, pos+consumed)]
		switch e.kind {
		case leafEntry:
			return e.sym, consumed + uint64(e.width)
		case furtherEntry:
			consumed += 8
			t = e.next
		default:
			panic("flatcol/huffman: decode hit an unassigned table entry, stored bits do not match the trained code")
		}
	}
}

// peek8 gathers eight bits starting at bit position pos, reading past the end
// of the stream as zeros. Trailing padding never reaches a decoder because
// span ends bound every read.
func peek8(bytes []byte, pos uint64) byte {
	var b byte
	idx := pos / 8
	shift := pos % 8
	if idx < uint64(len(bytes)) {
		b = bytes[idx] << shift
	}
	if shift > 0 && idx+1 < uint64(len(bytes)) {
		b |= bytes[idx+1] >> (8 - shift)
	}
	return b
}

func symSize[B any]() int {
	var zero B
	return int(unsafe.Sizeof(zero))
}

func reserveBytes(s []byte, additional int) []byte {
	if additional <= cap(s)-len(s) {
		return s
	}
	grown := make([]byte, len(s), len(s)+additional)
	copy(grown, s)
	return grown
}
