package encoding

import (
	"github.com/arloliu/mmkv/errs"
)

// ReadVarint decodes an unsigned base-128 varint from the start of buf.
//
// Each byte contributes its low 7 bits, least significant group first; a byte
// with the high bit clear terminates the value. There is no limit on the number
// of bytes: groups beyond bit 63 are shifted out of the result.
//
// Parameters:
//   - buf: Byte slice starting with the encoded varint
//
// Returns:
//   - []byte: The remainder of buf, starting right after the terminating byte
//   - uint64: Decoded value
//   - error: errs.ErrUnexpectedEOF if buf is empty or has no terminating byte
func ReadVarint(buf []byte) ([]byte, uint64, error) {
	var value uint64
	var shift uint

	for i, b := range buf {
		value |= uint64(b&0x7f) << shift
		shift += 7

		if b&0x80 == 0 {
			return buf[i+1:], value, nil
		}
	}

	return nil, 0, errs.ErrUnexpectedEOF
}
