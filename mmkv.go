// Package mmkv decodes MMKV key-value store files and decrypts encrypted ones.
//
// MMKV stores are flat files holding a 4-byte payload size followed by
// varint-length-prefixed key and value containers. Encrypted stores encipher the
// payload with AES-128-CFB; a ".crc" sidecar file carries the IV and a CRC-32 of
// the ciphertext.
//
// # Basic Usage
//
// Decoding a plain store:
//
//	import "github.com/arloliu/mmkv"
//
//	data, _ := os.ReadFile("/data/mmkv/settings")
//	values, err := mmkv.ParseStrings(data)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(values["user"])
//
// Decrypting an encrypted store:
//
//	data, _ := os.ReadFile(path)
//	crc, _ := os.ReadFile(mmkv.DefaultCRCPath(path))
//	plain, err := mmkv.Decrypt(data, crc, key)
//	if err != nil {
//	    return err
//	}
//	values, err := mmkv.Parse(plain)
//
// # Package Structure
//
// This package provides convenient top-level wrappers. The building blocks live
// in the encoding (varints, containers), store (scanner and decoders), section
// (CRC header layout) and crypt (integrity check and decryption) packages.
// Every error wraps a sentinel from package errs.
package mmkv

import (
	"path/filepath"

	"github.com/arloliu/mmkv/crypt"
	"github.com/arloliu/mmkv/internal/options"
	"github.com/arloliu/mmkv/section"
	"github.com/arloliu/mmkv/store"
)

// CRCSuffix is appended to a store's file name to locate its sidecar.
const CRCSuffix = ".crc"

// Parse decodes a plain store into a map of raw values. See store.Decode.
func Parse(buf []byte) (map[string][]byte, error) {
	return store.Decode(buf)
}

// ParseStrings decodes a plain store whose values are strings. See store.DecodeStrings.
func ParseStrings(buf []byte) (map[string]string, error) {
	return store.DecodeStrings(buf)
}

// Decrypt authenticates and decrypts an encrypted store.
//
// By default storeBuf is decrypted in place and the returned slice is
// storeBuf[:RealSize+4], ready for Parse.
//
// Parameters:
//   - storeBuf: Encrypted store file contents
//   - crcBuf: Sidecar file contents (only the first 32 bytes are read)
//   - key: 16-byte AES key
//   - opts: WithTrim, WithCopy
//
// Returns:
//   - []byte: Decrypted store buffer
//   - error: Header parsing or crypt.Decrypt errors
func Decrypt(storeBuf, crcBuf, key []byte, opts ...DecryptOption) ([]byte, error) {
	cfg := &decryptConfig{trim: true}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	hdr, err := section.ParseCRCHeader(crcBuf)
	if err != nil {
		return nil, err
	}

	buf := storeBuf
	if cfg.copy {
		buf = append([]byte(nil), storeBuf...)
	}

	n, err := crypt.Decrypt(hdr, key, buf)
	if err != nil {
		return nil, err
	}

	if cfg.trim {
		buf = buf[:n+section.StoreSizePrefix]
	}

	return buf, nil
}

// DefaultCRCPath returns the sidecar path for a store file: the same directory
// and file name with CRCSuffix appended.
func DefaultCRCPath(storePath string) string {
	dir, name := filepath.Split(storePath)
	return filepath.Join(dir, name+CRCSuffix)
}
