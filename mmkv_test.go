package mmkv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mmkv/errs"
	"github.com/arloliu/mmkv/internal/fixture"
	"github.com/arloliu/mmkv/section"
)

var (
	testKey = []byte("mmkv-test-key-16")
	testIV  = [section.IVSize]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
)

func TestParse(t *testing.T) {
	buf := fixture.Store(
		fixture.Pair{Key: []byte("raw"), Value: []byte{0x00, 0x01}},
		fixture.StringPair("name", "mmkv"),
	)

	values, err := Parse(buf)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x01}, values["raw"])
	require.Equal(t, []byte("\x04mmkv"), values["name"])
}

func TestParseStrings(t *testing.T) {
	buf := fixture.Store(fixture.StringPair("name", "mmkv"), fixture.StringPair("lang", "go"))

	values, err := ParseStrings(buf)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"name": "mmkv", "lang": "go"}, values)
}

// TestDecrypt verifies the full pipeline from sidecar bytes to decoded values
func TestDecrypt(t *testing.T) {
	plain := fixture.Store(fixture.StringPair("user", "alice"), fixture.StringPair("token", "s3cr3t"))
	enc, crc, err := fixture.Seal(plain, testKey, testIV)
	require.NoError(t, err)

	t.Run("In place and trimmed", func(t *testing.T) {
		padded := append(append([]byte(nil), enc...), make([]byte, 64)...)

		out, err := Decrypt(padded, crc, testKey)
		require.NoError(t, err)
		require.Equal(t, plain, out)
		require.Equal(t, plain, padded[:len(plain)], "decrypted in place")

		values, err := ParseStrings(out)
		require.NoError(t, err)
		require.Equal(t, map[string]string{"user": "alice", "token": "s3cr3t"}, values)
	})

	t.Run("Without trim", func(t *testing.T) {
		padded := append(append([]byte(nil), enc...), 0xee, 0xee)

		out, err := Decrypt(padded, crc, testKey, WithTrim(false))
		require.NoError(t, err)
		require.Len(t, out, len(plain)+2)
		require.Equal(t, []byte{0xee, 0xee}, out[len(plain):])
	})

	t.Run("With copy", func(t *testing.T) {
		input := append([]byte(nil), enc...)

		out, err := Decrypt(input, crc, testKey, WithCopy())
		require.NoError(t, err)
		require.Equal(t, plain, out)
		require.Equal(t, enc, input, "input stays enciphered")
	})

	t.Run("Short sidecar", func(t *testing.T) {
		_, err := Decrypt(append([]byte(nil), enc...), crc[:31], testKey)
		require.ErrorIs(t, err, errs.ErrUnexpectedEOF)
	})

	t.Run("Sidecar of another file", func(t *testing.T) {
		other := fixture.Store(fixture.StringPair("user", "bobby"), fixture.StringPair("token", "s3cr3t"))
		_, otherCRC, err := fixture.Seal(other, testKey, testIV)
		require.NoError(t, err)

		_, err = Decrypt(append([]byte(nil), enc...), otherCRC, testKey)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})
}

func TestDefaultCRCPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"settings", "settings.crc"},
		{filepath.Join("data", "mmkv", "settings"), filepath.Join("data", "mmkv", "settings.crc")},
		{filepath.Join("data", "store.default"), filepath.Join("data", "store.default.crc")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, DefaultCRCPath(tt.in))
		})
	}
}
