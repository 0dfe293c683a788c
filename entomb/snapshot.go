package entomb

import (
	"encoding/binary"
	"hash/crc32"
	"io"
	"iter"
	"unsafe"

	"github.com/hupe1980/flatcol"
	"github.com/hupe1980/flatcol/internal/conv"
	"github.com/hupe1980/flatcol/internal/mmap"
)

// WriteSnapshot serializes a string stack into the snapshot layout and
// returns the encoded bytes.
func WriteSnapshot(stack *flatcol.Strings) []byte {
	ends := make([]uint64, 0, stack.Len())
	var data []byte
	var total uint64
	for _, s := range stack.All() {
		total += uint64(len(s))
		ends = append(ends, total)
		data = append(data, s...)
	}

	endsSection := ScalarSection[uint64](ends)
	dataSection := ByteSection(data)

	h := header{
		Magic:   formatMagic,
		Version: formatVersion,
		Count:   uint64(stack.Len()),
		EndsOff: headerSize,
		DataOff: uint64(headerSize + endsSection.EntombLen(sectionAlign)),
		DataLen: uint64(len(data)),
	}

	buf := make([]byte, 0, int(h.DataOff)+dataSection.EntombLen(sectionAlign)+4)
	buf = h.marshal(buf)
	buf = endsSection.Entomb(buf, sectionAlign)
	buf = dataSection.Entomb(buf, sectionAlign)
	return binary.LittleEndian.AppendUint32(buf, crc32.ChecksumIEEE(buf[headerSize:]))
}

// Snapshot is read access over entombed bytes. Lookups reinterpret the
// underlying buffer in place; returned strings alias it and are valid until
// Close.
type Snapshot struct {
	ends   []uint64
	data   []byte
	closer io.Closer
}

// Exhume maps the snapshot file at path and reconstructs read access over
// the mapped bytes.
func Exhume(path string) (*Snapshot, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	snap, err := ExhumeBytes(m.Bytes())
	if err != nil {
		m.Close()
		return nil, err
	}
	snap.closer = m
	return snap, nil
}

// ExhumeBytes reconstructs read access over snapshot bytes already in
// memory. The snapshot aliases data; the caller keeps it alive and unchanged
// until Close.
func ExhumeBytes(data []byte) (*Snapshot, error) {
	var h header
	if err := h.unmarshal(data); err != nil {
		return nil, err
	}

	count, err := conv.Uint64ToInt(h.Count)
	if err != nil {
		return nil, ErrCorrupted
	}
	dataOff, err := conv.Uint64ToInt(h.DataOff)
	if err != nil {
		return nil, ErrCorrupted
	}
	dataLen, err := conv.Uint64ToInt(h.DataLen)
	if err != nil {
		return nil, ErrCorrupted
	}
	if h.EndsOff != headerSize || dataOff < headerSize+count*8 {
		return nil, ErrCorrupted
	}
	end := dataOff + dataLen
	if end+padTo(end, sectionAlign)+4 > len(data) {
		return nil, ErrTruncated
	}
	stored := binary.LittleEndian.Uint32(data[len(data)-4:])
	if crc32.ChecksumIEEE(data[headerSize:len(data)-4]) != stored {
		return nil, ErrCorrupted
	}

	snap := &Snapshot{data: data[dataOff:end:end]}
	if count > 0 {
		snap.ends = unsafe.Slice((*uint64)(unsafe.Pointer(&data[headerSize])), count)
		// Every row boundary must fall inside the data section and not run
		// backwards; a bad interior entry would otherwise alias memory past
		// the mapping.
		var prev uint64
		for _, e := range snap.ends {
			if e < prev || e > h.DataLen {
				return nil, ErrCorrupted
			}
			prev = e
		}
		if prev != h.DataLen {
			return nil, ErrCorrupted
		}
	}
	return snap, nil
}

// Len returns the number of rows in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.ends)
}

// At returns the i-th row. The string aliases snapshot memory.
func (s *Snapshot) At(i int) string {
	var start uint64
	if i > 0 {
		start = s.ends[i-1]
	}
	end := s.ends[i]
	if start == end {
		return ""
	}
	return unsafe.String(&s.data[start], end-start)
}

// All iterates all rows in order.
func (s *Snapshot) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := range s.ends {
			if !yield(i, s.At(i)) {
				return
			}
		}
	}
}

// Stack copies the snapshot back into a mutable string stack.
func (s *Snapshot) Stack() *flatcol.Strings {
	stack := flatcol.NewStrings()
	for i := range s.ends {
		stack.Append(s.At(i))
	}
	return stack
}

// Close releases the underlying mapping or blob, invalidating all strings
// previously returned. Idempotent when the underlying closer is.
func (s *Snapshot) Close() error {
	s.ends = nil
	s.data = nil
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
