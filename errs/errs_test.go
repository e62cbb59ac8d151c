package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferTooSmallError(t *testing.T) {
	err := NewBufferTooSmall(24)

	require.EqualError(t, err, "buffer too small, at least 24 bytes required")
	require.ErrorIs(t, err, ErrBufferTooSmall)
	require.NotErrorIs(t, err, ErrUnexpectedEOF)

	var tooSmall *BufferTooSmallError
	require.True(t, errors.As(err, &tooSmall))
	require.Equal(t, uint64(24), tooSmall.Required)
}

func TestBufferTooSmallError_Wrapped(t *testing.T) {
	err := fmt.Errorf("decode store: %w", NewBufferTooSmall(8))

	require.ErrorIs(t, err, ErrBufferTooSmall)

	var tooSmall *BufferTooSmallError
	require.ErrorAs(t, err, &tooSmall)
	require.Equal(t, uint64(8), tooSmall.Required)
}

func TestSentinelsAreDistinct(t *testing.T) {
	all := []error{
		ErrUnexpectedEOF,
		ErrBufferTooSmall,
		ErrFileSizeMismatch,
		ErrChecksumMismatch,
		ErrInvalidKeySize,
		ErrSourceIO,
		ErrDestinationIO,
		ErrInvalidHexKey,
		ErrUnsupportedCompression,
	}
	for i, a := range all {
		for j, b := range all {
			if i == j {
				continue
			}
			require.NotErrorIs(t, a, b, "%v must not match %v", a, b)
		}
	}
}
