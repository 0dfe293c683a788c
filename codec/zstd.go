package codec

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// Zstd compresses every value as a standalone zstd frame. The frame carries
// the decoded length, so no extra framing is needed. Best for regions holding
// large values; small values mostly pay frame overhead.
type Zstd struct {
	observedBytes int64
	encodedBytes  int64
}

// NewZstd creates a stateless zstd codec.
func NewZstd() *Zstd {
	return &Zstd{}
}

// Encode appends the zstd frame for v to dst.
func (z *Zstd) Encode(dst, v []byte) []byte {
	enc := getZstdEncoder()
	defer zstdEncoderPool.Put(enc)

	out := enc.EncodeAll(v, dst)
	z.observedBytes += int64(len(v))
	z.encodedBytes += int64(len(out) - len(dst))
	return out
}

// Decode returns the decoded value. The result is freshly allocated.
func (z *Zstd) Decode(enc []byte) []byte {
	dec := getZstdDecoder()
	defer zstdDecoderPool.Put(dec)

	out, err := dec.DecodeAll(enc, nil)
	if err != nil {
		panic(fmt.Sprintf("flatcol/codec: corrupt zstd frame: %v", err))
	}
	return out
}

// Observe is a no-op; zstd needs no training.
func (z *Zstd) Observe(v []byte) {}

// MergeFrom folds the peers' ratio statistics into z.
func (z *Zstd) MergeFrom(others []*Zstd) {
	for _, o := range others {
		z.observedBytes += o.observedBytes
		z.encodedBytes += o.encodedBytes
	}
}

// HeapSize reports nothing; pooled coders are shared process-wide.
func (z *Zstd) HeapSize(fn func(used, reserved int)) {}

// Report summarizes the observed compression ratio.
func (z *Zstd) Report() string {
	if z.observedBytes == 0 {
		return "zstd: no data"
	}
	return fmt.Sprintf("zstd: %d -> %d bytes (%.2fx)",
		z.observedBytes, z.encodedBytes,
		float64(z.observedBytes)/float64(z.encodedBytes))
}
