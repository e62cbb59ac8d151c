// Package store decodes the key-value payload of plain (decrypted) MMKV stores.
//
// # Payload Format
//
// After the 4-byte size prefix (see package section) the payload is:
//
//	┌──────────────────────────────────────────────┐
//	│ Leading varint (unknown purpose, skipped)    │
//	├──────────────────────────────────────────────┤
//	│ Key container   = varint len + key bytes     │
//	│ Value container = varint len + value bytes   │
//	├──────────────────────────────────────────────┤
//	│ ... more key/value pairs until payload end   │
//	└──────────────────────────────────────────────┘
//
// MMKV appends on update, so the same key may occur several times; the last
// occurrence is the current value. String values are stored as a container
// nested inside the value container.
//
// # Usage
//
// Decoding everything into a map:
//
//	values, err := store.Decode(buf)        // map[string][]byte, zero-copy values
//	strs, err := store.DecodeStrings(buf)   // map[string]string
//
// Visiting entries with early exit:
//
//	err := store.Scan(buf, func(key, value []byte) store.Control {
//	    if string(key) == "token" {
//	        found = value
//	        return store.Stop
//	    }
//	    return store.Continue
//	})
//
// Pulling entries lazily:
//
//	s, err := store.NewScanner(buf)
//	if err != nil {
//	    return err
//	}
//	for key, value := range s.All() {
//	    ...
//	}
//	if err := s.Err(); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// Scan, Decode, DecodeStrings and Entries only read buf and may run
// concurrently. A Scanner must not be shared between goroutines. All returned
// byte spans alias buf and become invalid once buf is modified.
package store
