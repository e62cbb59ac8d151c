package store

import (
	"fmt"
	"iter"

	"github.com/arloliu/mmkv/encoding"
	"github.com/arloliu/mmkv/errs"
	"github.com/arloliu/mmkv/section"
)

// Control tells Scan whether to keep going after a visited entry.
type Control int

const (
	// Continue proceeds to the next entry.
	Continue Control = iota
	// Stop ends the scan immediately. Unvisited bytes are not an error.
	Stop
)

// Visitor is called by Scan for every key-value entry, in payload order.
// The key and value spans alias the scanned buffer.
type Visitor func(key, value []byte) Control

// Scan walks every key-value entry of a plain MMKV store buffer.
//
// The first 4 bytes of buf declare the payload length N; only buf[4:4+N] is
// parsed and anything after it is ignored. The payload starts with one varint
// whose meaning is unknown; it is read and discarded. The rest of the payload is
// a sequence of key and value containers.
//
// Parameters:
//   - buf: Complete store file contents
//   - visit: Callback invoked once per entry; returning Stop ends the scan
//
// Returns:
//   - error: errs.ErrBufferTooSmall (as *errs.BufferTooSmallError) when buf is
//     shorter than N+4, errs.ErrUnexpectedEOF on a truncated prefix, varint or
//     container. A Stop from visit is not reported.
func Scan(buf []byte, visit Visitor) error {
	s, err := NewScanner(buf)
	if err != nil {
		return err
	}

	for s.Next() {
		if visit(s.Key(), s.Value()) == Stop {
			break
		}
	}

	return s.Err()
}

// Scanner is a pull iterator over the entries of a plain MMKV store buffer.
//
// It yields the same entries as Scan. A Scanner is finite and not restartable;
// once Next returns false it stays false. Callers may stop pulling at any time.
//
// Note: A Scanner is NOT thread-safe.
type Scanner struct {
	rest  []byte
	key   []byte
	value []byte
	count int
	err   error
}

// NewScanner validates the store prefix of buf and positions the scanner at the
// first entry.
//
// Returns:
//   - *Scanner: Scanner ready for Next
//   - error: Size prefix or leading varint errors, see Scan
func NewScanner(buf []byte) (*Scanner, error) {
	payload, err := Payload(buf)
	if err != nil {
		return nil, err
	}

	// Leading field of unknown purpose, skipped as-is.
	rest, _, err := encoding.ReadVarint(payload)
	if err != nil {
		return nil, fmt.Errorf("read payload header: %w", err)
	}

	return &Scanner{rest: rest}, nil
}

// Next advances to the next entry. It returns false when the payload is
// exhausted or an error occurred; check Err afterwards.
func (s *Scanner) Next() bool {
	if s.err != nil || len(s.rest) == 0 {
		s.key, s.value = nil, nil
		return false
	}

	rest, key, err := encoding.ReadContainer(s.rest)
	if err != nil {
		s.fail(fmt.Errorf("entry %d key: %w", s.count, err))
		return false
	}

	rest, value, err := encoding.ReadContainer(rest)
	if err != nil {
		s.fail(fmt.Errorf("entry %d value: %w", s.count, err))
		return false
	}

	s.rest = rest
	s.key, s.value = key, value
	s.count++

	return true
}

func (s *Scanner) fail(err error) {
	s.err = err
	s.rest = nil
	s.key, s.value = nil, nil
}

// Key returns the key of the current entry.
func (s *Scanner) Key() []byte {
	return s.key
}

// Value returns the raw value of the current entry.
func (s *Scanner) Value() []byte {
	return s.value
}

// Err returns the first error encountered while scanning, if any.
func (s *Scanner) Err() error {
	return s.err
}

// All returns an iterator over the remaining entries.
// Check Err after the loop to distinguish exhaustion from failure.
//
// Example:
//
//	for key, value := range s.All() {
//	    fmt.Printf("%q: %d bytes\n", key, len(value))
//	}
//	if err := s.Err(); err != nil {
//	    return err
//	}
func (s *Scanner) All() iter.Seq2[[]byte, []byte] {
	return func(yield func([]byte, []byte) bool) {
		for s.Next() {
			if !yield(s.key, s.value) {
				return
			}
		}
	}
}

// Payload returns the bounded payload region buf[4:4+N] of a store buffer,
// where N is the little-endian size prefix.
//
// Returns:
//   - []byte: Payload span aliasing buf
//   - error: errs.ErrUnexpectedEOF if buf has no complete size prefix, or
//     *errs.BufferTooSmallError requiring N+4 bytes
func Payload(buf []byte) ([]byte, error) {
	size, err := section.ReadStoreSize(buf)
	if err != nil {
		return nil, err
	}

	need := uint64(size) + section.StoreSizePrefix
	if uint64(len(buf)) < need {
		return nil, errs.NewBufferTooSmall(need)
	}

	return buf[section.StoreSizePrefix:need], nil
}
