// Package hash computes the key fingerprints shown by the dump command.
package hash

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// KeyID computes the xxHash64 of a raw store key.
func KeyID(key []byte) uint64 {
	return xxhash.Sum64(key)
}

// KeyIDString formats KeyID as 16 lowercase hex digits.
func KeyIDString(key []byte) string {
	return fmt.Sprintf("%016x", KeyID(key))
}
