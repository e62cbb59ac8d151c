package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mmkv/errs"
	"github.com/arloliu/mmkv/internal/fixture"
)

func TestDecode(t *testing.T) {
	t.Run("Reference store", func(t *testing.T) {
		values, err := Decode(referenceStore)
		require.NoError(t, err)
		require.Len(t, values, 2)
		require.Empty(t, values["ABC"])
		require.Contains(t, values, "ABC")
		require.Equal(t, []byte("\x041234"), values["DEF"])
	})

	t.Run("Empty store ignores trailing bytes", func(t *testing.T) {
		buf := []byte{
			1, 0, 0, 0, // size of payload
			0,    // leading varint
			0xff, // outside the payload
		}

		values, err := Decode(buf)
		require.NoError(t, err)
		require.Empty(t, values)
	})

	t.Run("Buffer too small", func(t *testing.T) {
		_, err := Decode([]byte{20, 0, 0, 0})

		var tooSmall *errs.BufferTooSmallError
		require.ErrorAs(t, err, &tooSmall)
		require.Equal(t, uint64(24), tooSmall.Required)
	})

	t.Run("Last write wins", func(t *testing.T) {
		buf := fixture.Store(
			fixture.Pair{Key: []byte("k"), Value: []byte("old")},
			fixture.Pair{Key: []byte("other"), Value: []byte("x")},
			fixture.Pair{Key: []byte("k"), Value: []byte("new")},
		)

		values, err := Decode(buf)
		require.NoError(t, err)
		require.Len(t, values, 2)
		require.Equal(t, []byte("new"), values["k"])
	})

	t.Run("Values alias the buffer", func(t *testing.T) {
		buf := fixture.Store(fixture.Pair{Key: []byte("k"), Value: []byte("abc")})

		values, err := Decode(buf)
		require.NoError(t, err)

		buf[len(buf)-1] = 'z'
		require.Equal(t, []byte("abz"), values["k"])
	})

	t.Run("Binary keys", func(t *testing.T) {
		key := []byte{0x00, 0xff, 0x80}
		buf := fixture.Store(fixture.Pair{Key: key, Value: []byte{1}})

		values, err := Decode(buf)
		require.NoError(t, err)
		require.Equal(t, []byte{1}, values[string(key)])
	})
}

func TestDecodeStrings(t *testing.T) {
	t.Run("String values", func(t *testing.T) {
		buf := fixture.StoreWithLeading(1<<20,
			fixture.StringPair("user", "alice"),
			fixture.StringPair("lang", "héllo 🔑"),
			fixture.StringPair("empty", ""),
		)

		strs, err := DecodeStrings(buf)
		require.NoError(t, err)
		require.Equal(t, map[string]string{
			"user":  "alice",
			"lang":  "héllo 🔑",
			"empty": "",
		}, strs)
	})

	t.Run("Nested container ignores trailing value bytes", func(t *testing.T) {
		strs, err := DecodeStrings(fixture.Store(fixture.Pair{Key: []byte("DEF"), Value: []byte("\x041234zz")}))
		require.NoError(t, err)
		require.Equal(t, "1234", strs["DEF"])
	})

	t.Run("Lossy keys and values", func(t *testing.T) {
		buf := fixture.Store(fixture.Pair{
			Key:   []byte{'k', 0xff},
			Value: fixture.AppendContainer(nil, []byte{'v', 0xfe}),
		})

		strs, err := DecodeStrings(buf)
		require.NoError(t, err)
		require.Equal(t, "v�", strs["k�"])
	})

	t.Run("Last write wins", func(t *testing.T) {
		buf := fixture.Store(
			fixture.StringPair("k", "first"),
			fixture.StringPair("k", "second"),
		)

		strs, err := DecodeStrings(buf)
		require.NoError(t, err)
		require.Equal(t, map[string]string{"k": "second"}, strs)
	})

	t.Run("Non-string value fails", func(t *testing.T) {
		// "ABC" maps to an empty value, which holds no nested container.
		_, err := DecodeStrings(referenceStore)
		require.ErrorIs(t, err, errs.ErrUnexpectedEOF)
		require.ErrorContains(t, err, `"ABC"`)
	})

	t.Run("Failure stops the scan", func(t *testing.T) {
		buf := fixture.Store(
			fixture.StringPair("a", "1"),
			fixture.Pair{Key: []byte("b"), Value: []byte{0x09}},
			fixture.StringPair("c", "3"),
		)

		strs, err := DecodeStrings(buf)
		require.ErrorIs(t, err, errs.ErrUnexpectedEOF)
		require.Nil(t, strs)
	})

	t.Run("Scan error", func(t *testing.T) {
		_, err := DecodeStrings([]byte{20, 0, 0, 0})
		require.ErrorIs(t, err, errs.ErrBufferTooSmall)
	})
}

func TestEntries(t *testing.T) {
	buf := fixture.Store(
		fixture.Pair{Key: []byte("k"), Value: []byte("1")},
		fixture.Pair{Key: []byte("j"), Value: []byte("2")},
		fixture.Pair{Key: []byte("k"), Value: []byte("3")},
	)

	entries, err := Entries(buf)
	require.NoError(t, err)
	require.Equal(t, []Entry{
		{Key: []byte("k"), Value: []byte("1")},
		{Key: []byte("j"), Value: []byte("2")},
		{Key: []byte("k"), Value: []byte("3")},
	}, entries)

	_, err = Entries([]byte{9, 0, 0, 0})
	require.ErrorIs(t, err, errs.ErrBufferTooSmall)
}
