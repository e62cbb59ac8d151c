package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mmkv/errs"
)

// putVarint appends v in the continuation-bit encoding used by MMKV stores.
func putVarint(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}

	return append(dst, byte(v))
}

func TestReadVarint(t *testing.T) {
	tests := []struct {
		name  string
		buf   []byte
		value uint64
		rest  []byte
	}{
		{"single byte zero", []byte{0x00}, 0, []byte{}},
		{"single byte max", []byte{0x7f, 0xaa}, 127, []byte{0xaa}},
		{"three bytes", []byte{0xff, 0x81, 0x01, 0x00}, 16639, []byte{0x00}},
		{"redundant continuation", []byte{0x80, 0x00, 0xff}, 0, []byte{0xff}},
		{"two bytes", []byte{0xac, 0x02}, 300, []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, value, err := ReadVarint(tt.buf)
			require.NoError(t, err)
			require.Equal(t, tt.value, value)
			require.Equal(t, tt.rest, rest)
		})
	}
}

func TestReadVarint_RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 255, 300, 16383, 16384, 1 << 21, 1<<32 - 1, 1 << 35, 1<<63 + 12345, ^uint64(0)}
	trailer := []byte{0xde, 0xad}

	for _, v := range values {
		buf := append(putVarint(nil, v), trailer...)

		rest, got, err := ReadVarint(buf)
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.Equal(t, trailer, rest, "remainder must start right after the terminating byte")
	}
}

func TestReadVarint_UnexpectedEOF(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"single continuation", []byte{0x81}},
		{"all continuation", []byte{0x81, 0xaa, 0xff, 0x80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ReadVarint(tt.buf)
			require.ErrorIs(t, err, errs.ErrUnexpectedEOF)
		})
	}
}

func TestReadVarint_LongEncoding(t *testing.T) {
	// Eleven bytes: groups past bit 63 are shifted out, the value stays 1.
	buf := []byte{0x81, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00, 0x42}

	rest, value, err := ReadVarint(buf)
	require.NoError(t, err)
	require.Equal(t, uint64(1), value)
	require.Equal(t, []byte{0x42}, rest)
}

func BenchmarkReadVarint(b *testing.B) {
	buf := putVarint(nil, 1<<42+7)
	for b.Loop() {
		_, _, _ = ReadVarint(buf)
	}
}
