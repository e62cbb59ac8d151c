package encoding

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/arloliu/mmkv/errs"
)

// ReadContainer reads a varint length followed by that many content bytes.
//
// The returned content aliases buf; nothing is copied. A zero length is valid
// and yields an empty content span.
//
// Parameters:
//   - buf: Byte slice starting with the container's varint length
//
// Returns:
//   - []byte: The remainder of buf after the content
//   - []byte: The content span
//   - error: errs.ErrUnexpectedEOF if the length cannot be read or exceeds the remaining bytes
func ReadContainer(buf []byte) ([]byte, []byte, error) {
	rest, length, err := ReadVarint(buf)
	if err != nil {
		return nil, nil, err
	}

	if length > uint64(len(rest)) {
		return nil, nil, fmt.Errorf("%w: container length %d exceeds remaining %d bytes",
			errs.ErrUnexpectedEOF, length, len(rest))
	}

	return rest[length:], rest[:length], nil
}

// ReadString reads one container from buf and decodes its content as UTF-8.
//
// Invalid UTF-8 sequences are replaced with U+FFFD; they never cause an error.
func ReadString(buf []byte) (string, error) {
	_, content, err := ReadContainer(buf)
	if err != nil {
		return "", err
	}

	return LossyString(content), nil
}

// LossyString converts b to a string. Each maximal invalid subpart of a UTF-8
// sequence is replaced with a single utf8.RuneError (U+FFFD): a truncated
// multi-byte sequence yields one replacement, a stray byte yields one per byte.
func LossyString(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}

	var sb strings.Builder
	sb.Grow(len(b) + 2)
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size == 1 {
			size = invalidSubpartLen(b)
		}
		sb.WriteRune(r)
		b = b[size:]
	}

	return sb.String()
}

// invalidSubpartLen returns the length of the invalid sequence starting at
// b[0]: the lead byte plus every following byte that still extends a valid
// prefix for that lead.
func invalidSubpartLen(b []byte) int {
	var need int
	lo, hi := byte(0x80), byte(0xBF)
	switch lead := b[0]; {
	case lead >= 0xC2 && lead <= 0xDF:
		need = 1
	case lead == 0xE0:
		need, lo = 2, 0xA0
	case lead == 0xED:
		need, hi = 2, 0x9F
	case lead >= 0xE1 && lead <= 0xEF:
		need = 2
	case lead == 0xF0:
		need, lo = 3, 0x90
	case lead == 0xF4:
		need, hi = 3, 0x8F
	case lead >= 0xF1 && lead <= 0xF3:
		need = 3
	default:
		return 1
	}

	n := 1
	for ; n <= need && n < len(b); n++ {
		if b[n] < lo || b[n] > hi {
			break
		}
		lo, hi = 0x80, 0xBF
	}

	return n
}
