package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// LZ4 compresses every value as one lz4 block. Block compression carries no
// length information, so each payload is framed as
//
//	uvarint(origLen) uvarint(blockLen) block
//
// where blockLen == 0 means the value was incompressible and is stored raw.
type LZ4 struct {
	observedBytes int64
	encodedBytes  int64
}

// NewLZ4 creates a stateless lz4 codec.
func NewLZ4() *LZ4 {
	return &LZ4{}
}

// Encode appends the framed lz4 block for v to dst.
func (l *LZ4) Encode(dst, v []byte) []byte {
	start := len(dst)
	dst = binary.AppendUvarint(dst, uint64(len(v)))

	block := make([]byte, lz4.CompressBlockBound(len(v)))
	n, err := lz4.CompressBlock(v, block, nil)
	if err != nil || n == 0 || n >= len(v) {
		// Incompressible, store raw.
		dst = binary.AppendUvarint(dst, 0)
		dst = append(dst, v...)
	} else {
		dst = binary.AppendUvarint(dst, uint64(n))
		dst = append(dst, block[:n]...)
	}

	l.observedBytes += int64(len(v))
	l.encodedBytes += int64(len(dst) - start)
	return dst
}

// Decode returns the decoded value. Raw payloads alias enc.
func (l *LZ4) Decode(enc []byte) []byte {
	origLen, n := binary.Uvarint(enc)
	if n <= 0 {
		panic("flatcol/codec: corrupt lz4 frame: bad length")
	}
	enc = enc[n:]
	blockLen, n := binary.Uvarint(enc)
	if n <= 0 {
		panic("flatcol/codec: corrupt lz4 frame: bad block length")
	}
	enc = enc[n:]

	if blockLen == 0 {
		return enc[:origLen]
	}
	out := make([]byte, origLen)
	m, err := lz4.UncompressBlock(enc[:blockLen], out)
	if err != nil {
		panic(fmt.Sprintf("flatcol/codec: corrupt lz4 block: %v", err))
	}
	return out[:m]
}

// Observe is a no-op; lz4 needs no training.
func (l *LZ4) Observe(v []byte) {}

// MergeFrom folds the peers' ratio statistics into l.
func (l *LZ4) MergeFrom(others []*LZ4) {
	for _, o := range others {
		l.observedBytes += o.observedBytes
		l.encodedBytes += o.encodedBytes
	}
}

// HeapSize reports nothing; the codec holds no buffers.
func (l *LZ4) HeapSize(fn func(used, reserved int)) {}

// Report summarizes the observed compression ratio.
func (l *LZ4) Report() string {
	if l.observedBytes == 0 {
		return "lz4: no data"
	}
	return fmt.Sprintf("lz4: %d -> %d bytes (%.2fx)",
		l.observedBytes, l.encodedBytes,
		float64(l.observedBytes)/float64(l.encodedBytes))
}
