// Package crypt authenticates and decrypts encrypted MMKV stores.
//
// An encrypted store keeps its 4-byte size prefix in the clear and enciphers
// the payload with AES-128 in CFB (128-bit segment) mode. The IV and an IEEE
// CRC-32 of the enciphered payload live in the ".crc" sidecar header (see
// package section).
//
// The checksum covers the ciphertext, so Decrypt verifies it before any byte is
// decrypted. A checksum mismatch therefore means a corrupted store or a sidecar
// that belongs to another file; it says nothing about the key. A wrong key
// passes every check and produces garbage plaintext, which the store decoder
// then usually rejects.
//
// Example:
//
//	hdr, err := section.ParseCRCHeader(crcFile)
//	if err != nil {
//	    return err
//	}
//	n, err := crypt.Decrypt(hdr, key, storeFile)
//	if err != nil {
//	    return err
//	}
//	values, err := store.Decode(storeFile[:n+4])
//
// Decrypt mutates its buffer; callers sharing a buffer between goroutines must
// serialize access themselves.
package crypt
