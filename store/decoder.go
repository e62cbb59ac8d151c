package store

import (
	"fmt"

	"github.com/arloliu/mmkv/encoding"
)

// Entry is one key-value pair of a store, in payload order.
// Key and Value alias the decoded buffer.
type Entry struct {
	Key   []byte
	Value []byte
}

// Decode parses a plain MMKV store into a map from key to raw value.
//
// Values alias buf and must not be used after buf is modified or released.
// Keys are copied into Go strings. When a key appears more than once, the
// last entry wins.
//
// Parameters:
//   - buf: Complete store file contents
//
// Returns:
//   - map[string][]byte: Key to raw value bytes
//   - error: Any error returned by Scan
func Decode(buf []byte) (map[string][]byte, error) {
	result := make(map[string][]byte)
	err := Scan(buf, func(key, value []byte) Control {
		result[string(key)] = value
		return Continue
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// DecodeStrings parses a plain MMKV store whose values are all strings.
//
// Keys are decoded as UTF-8 directly. Each value is itself a container holding
// the string bytes, the layout MMKV uses for string values. Invalid UTF-8 is
// replaced with U+FFFD. If the store may hold non-string values, use Decode.
//
// Returns:
//   - map[string]string: Key to string value, last entry wins
//   - error: Any error returned by Scan, or the first value that is not a valid container
func DecodeStrings(buf []byte) (map[string]string, error) {
	result := make(map[string]string)

	var valueErr error
	err := Scan(buf, func(key, value []byte) Control {
		s, err := encoding.ReadString(value)
		if err != nil {
			valueErr = fmt.Errorf("value of key %q: %w", encoding.LossyString(key), err)
			return Stop
		}
		result[encoding.LossyString(key)] = s

		return Continue
	})
	if err != nil {
		return nil, err
	}
	if valueErr != nil {
		return nil, valueErr
	}

	return result, nil
}

// Entries returns every entry of a plain MMKV store in payload order,
// duplicates included.
func Entries(buf []byte) ([]Entry, error) {
	var entries []Entry
	err := Scan(buf, func(key, value []byte) Control {
		entries = append(entries, Entry{Key: key, Value: value})
		return Continue
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}
