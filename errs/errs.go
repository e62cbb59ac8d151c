// Package errs defines the sentinel errors returned by the mmkv packages.
//
// Every error produced by the decoders and the cipher engine either is one of
// these sentinels or wraps one, so callers should test with errors.Is:
//
//	if errors.Is(err, errs.ErrChecksumMismatch) {
//	    // wrong key, wrong sidecar, or a corrupted store file
//	}
//
// The size error additionally carries the number of bytes that would have been
// required; retrieve it with errors.As:
//
//	var tooSmall *errs.BufferTooSmallError
//	if errors.As(err, &tooSmall) {
//	    fmt.Println(tooSmall.Required)
//	}
package errs

import (
	"errors"
	"fmt"
)

// Format errors.
var (
	// ErrUnexpectedEOF is returned when a buffer ends in the middle of a varint,
	// a container, the store length prefix or the CRC header.
	ErrUnexpectedEOF = errors.New("unexpected end-of-file while parsing")

	// ErrBufferTooSmall is matched by every *BufferTooSmallError.
	ErrBufferTooSmall = errors.New("buffer too small")
)

// Cipher errors.
var (
	// ErrFileSizeMismatch is returned when the size declared in the store file
	// disagrees with the size recorded in the CRC header.
	ErrFileSizeMismatch = errors.New("file size mismatch (crc vs mmkv)")

	// ErrChecksumMismatch is returned when the CRC-32 of the enciphered region
	// does not match the CRC header.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrInvalidKeySize is returned when the decryption key is not 16 bytes.
	ErrInvalidKeySize = errors.New("invalid key size")
)

// Boundary errors, produced by the command line tool.
var (
	// ErrSourceIO wraps failures reading the store or CRC file.
	ErrSourceIO = errors.New("I/O error from source")

	// ErrDestinationIO wraps failures writing the decrypted output.
	ErrDestinationIO = errors.New("I/O error from destination")

	// ErrInvalidHexKey is returned when a key string is not valid hex.
	ErrInvalidHexKey = errors.New("invalid hex key")

	// ErrUnsupportedCompression is returned for an unknown compression name or type.
	ErrUnsupportedCompression = errors.New("unsupported compression")
)

// BufferTooSmallError reports that a buffer is shorter than a declared length.
type BufferTooSmallError struct {
	// Required is the minimum number of bytes the buffer must hold.
	Required uint64
}

// NewBufferTooSmall returns a *BufferTooSmallError requiring n bytes.
func NewBufferTooSmall(n uint64) error {
	return &BufferTooSmallError{Required: n}
}

func (e *BufferTooSmallError) Error() string {
	return fmt.Sprintf("buffer too small, at least %d bytes required", e.Required)
}

// Is reports whether target is ErrBufferTooSmall.
func (e *BufferTooSmallError) Is(target error) bool {
	return target == ErrBufferTooSmall
}
