package section

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/mmkv/errs"
)

// CRCHeader is the fixed-size header at the start of an MMKV ".crc" sidecar file.
type CRCHeader struct {
	// CRC32 is the IEEE CRC-32 of the enciphered payload, RealSize bytes after the size prefix.
	CRC32 uint32 // byte offset 0-3
	// IV is the AES-128-CFB initialization vector.
	IV [IVSize]byte // byte offset 12-27
	// RealSize is the payload size, excluding the 4-byte size prefix of the store file.
	RealSize int // byte offset 28-31
}

// Parse parses the header from the first CRCHeaderSize bytes of data.
//
// Parameters:
//   - data: Sidecar file contents (at least 32 bytes; anything after is ignored)
//
// Returns:
//   - error: errs.ErrUnexpectedEOF if data is shorter than CRCHeaderSize
func (h *CRCHeader) Parse(data []byte) error {
	if len(data) < CRCHeaderSize {
		return fmt.Errorf("%w: crc header needs %d bytes, have %d", errs.ErrUnexpectedEOF, CRCHeaderSize, len(data))
	}

	h.CRC32 = binary.LittleEndian.Uint32(data[CRC32Offset:])
	copy(h.IV[:], data[IVOffset:IVOffset+IVSize])
	h.RealSize = int(binary.LittleEndian.Uint32(data[RealSizeOffset:]))

	return nil
}

// Bytes serializes the header into a new CRCHeaderSize-byte slice.
// The bytes the parser does not consult are left zero.
func (h *CRCHeader) Bytes() []byte {
	b := make([]byte, CRCHeaderSize)

	binary.LittleEndian.PutUint32(b[CRC32Offset:], h.CRC32)
	copy(b[IVOffset:IVOffset+IVSize], h.IV[:])
	binary.LittleEndian.PutUint32(b[RealSizeOffset:], uint32(h.RealSize)) //nolint:gosec

	return b
}

// ParseCRCHeader parses a CRCHeader from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 32 bytes)
//
// Returns:
//   - CRCHeader: Parsed header struct
//   - error: errs.ErrUnexpectedEOF if data is too short
func ParseCRCHeader(data []byte) (CRCHeader, error) {
	h := CRCHeader{}
	if err := h.Parse(data); err != nil {
		return CRCHeader{}, err
	}

	return h, nil
}

// ReadStoreSize returns the payload size declared in the first 4 bytes of a
// store buffer.
//
// Returns:
//   - int: Declared payload size
//   - error: errs.ErrUnexpectedEOF if buf is shorter than StoreSizePrefix
func ReadStoreSize(buf []byte) (int, error) {
	if len(buf) < StoreSizePrefix {
		return 0, fmt.Errorf("%w: store size prefix needs %d bytes, have %d", errs.ErrUnexpectedEOF, StoreSizePrefix, len(buf))
	}

	return int(binary.LittleEndian.Uint32(buf)), nil
}
