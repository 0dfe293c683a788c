package entomb

import (
	"encoding/binary"
	"errors"
	"hash/crc32"
)

const (
	// formatMagic identifies snapshot files (ASCII: "FCS0").
	formatMagic = 0x46435330

	// formatVersion is the current snapshot format version.
	formatVersion uint32 = 1

	// headerSize is the size of the snapshot header in bytes. Sections start
	// right after it, so an 8-byte alignment of the header keeps every
	// section 8-byte aligned too.
	headerSize = 48

	// sectionAlign is the alignment every section is padded to.
	sectionAlign = 8
)

var (
	// ErrInvalidMagic is returned when a snapshot has an invalid magic number.
	ErrInvalidMagic = errors.New("entomb: invalid magic number")

	// ErrInvalidVersion is returned for snapshot versions this build cannot read.
	ErrInvalidVersion = errors.New("entomb: unsupported snapshot version")

	// ErrCorrupted is returned when a snapshot fails checksum validation.
	ErrCorrupted = errors.New("entomb: snapshot corrupted (checksum mismatch)")

	// ErrTruncated is returned when a snapshot is shorter than its header claims.
	ErrTruncated = errors.New("entomb: snapshot truncated")
)

// header is the fixed-size block at the start of every snapshot.
//
// All multi-byte fields are little-endian. The layout is
//
//	header | ends section | data section | payload CRC32
//
// where the ends section holds one cumulative end offset per row and the
// data section holds the concatenated row bytes.
type header struct {
	Magic    uint32
	Version  uint32
	Count    uint64 // number of rows
	EndsOff  uint64 // offset of the ends section
	DataOff  uint64 // offset of the data section
	DataLen  uint64 // length of the data section in bytes
	Checksum uint32 // CRC32 of the preceding header bytes
}

func (h *header) validate() error {
	if h.Magic != formatMagic {
		return ErrInvalidMagic
	}
	if h.Version > formatVersion {
		return ErrInvalidVersion
	}
	return nil
}

// marshal appends the header to buf.
func (h *header) marshal(buf []byte) []byte {
	start := len(buf)
	buf = binary.LittleEndian.AppendUint32(buf, h.Magic)
	buf = binary.LittleEndian.AppendUint32(buf, h.Version)
	buf = binary.LittleEndian.AppendUint64(buf, h.Count)
	buf = binary.LittleEndian.AppendUint64(buf, h.EndsOff)
	buf = binary.LittleEndian.AppendUint64(buf, h.DataOff)
	buf = binary.LittleEndian.AppendUint64(buf, h.DataLen)
	h.Checksum = crc32.ChecksumIEEE(buf[start:])
	buf = binary.LittleEndian.AppendUint32(buf, h.Checksum)
	return append(buf, 0, 0, 0, 0) // pad to headerSize
}

// unmarshal parses and validates the header at the start of data.
func (h *header) unmarshal(data []byte) error {
	if len(data) < headerSize {
		return ErrTruncated
	}
	h.Magic = binary.LittleEndian.Uint32(data[0:4])
	h.Version = binary.LittleEndian.Uint32(data[4:8])
	h.Count = binary.LittleEndian.Uint64(data[8:16])
	h.EndsOff = binary.LittleEndian.Uint64(data[16:24])
	h.DataOff = binary.LittleEndian.Uint64(data[24:32])
	h.DataLen = binary.LittleEndian.Uint64(data[32:40])
	h.Checksum = binary.LittleEndian.Uint32(data[40:44])
	if err := h.validate(); err != nil {
		return err
	}
	if crc32.ChecksumIEEE(data[:40]) != h.Checksum {
		return ErrCorrupted
	}
	return nil
}

// padTo returns the number of padding bytes needed to bring n up to align.
func padTo(n, align int) int {
	if r := n % align; r != 0 {
		return align - r
	}
	return 0
}
