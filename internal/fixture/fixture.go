// Package fixture builds MMKV store and sidecar files for tests.
package fixture

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"hash/crc32"

	"github.com/arloliu/mmkv/errs"
	"github.com/arloliu/mmkv/section"
)

// Pair is a raw key-value entry.
type Pair struct {
	Key   []byte
	Value []byte
}

// StringPair returns a Pair whose value uses the nested string layout.
func StringPair(key, value string) Pair {
	return Pair{Key: []byte(key), Value: AppendContainer(nil, []byte(value))}
}

// AppendVarint appends v as a base-128 varint.
func AppendVarint(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}

	return append(dst, byte(v))
}

// AppendContainer appends a varint length followed by content.
func AppendContainer(dst, content []byte) []byte {
	dst = AppendVarint(dst, uint64(len(content)))
	return append(dst, content...)
}

// Store builds a plain store file with a zero leading varint.
func Store(pairs ...Pair) []byte {
	return StoreWithLeading(0, pairs...)
}

// StoreWithLeading builds a plain store file whose payload starts with the
// given leading varint.
func StoreWithLeading(leading uint64, pairs ...Pair) []byte {
	payload := AppendVarint(nil, leading)
	for _, p := range pairs {
		payload = AppendContainer(payload, p.Key)
		payload = AppendContainer(payload, p.Value)
	}

	buf := binary.LittleEndian.AppendUint32(nil, uint32(len(payload))) //nolint:gosec

	return append(buf, payload...)
}

// Seal encrypts the payload of a plain store with AES-128-CFB and returns the
// enciphered store together with a matching sidecar file. plain is not modified.
func Seal(plain, key []byte, iv [section.IVSize]byte) ([]byte, []byte, error) {
	size, err := section.ReadStoreSize(plain)
	if err != nil {
		return nil, nil, err
	}
	if len(plain) < section.StoreSizePrefix+size {
		return nil, nil, errs.NewBufferTooSmall(uint64(section.StoreSizePrefix + size))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}

	sealed := append([]byte(nil), plain...)
	payload := sealed[section.StoreSizePrefix : section.StoreSizePrefix+size]
	cipher.NewCFBEncrypter(block, iv[:]).XORKeyStream(payload, payload) //nolint:staticcheck

	hdr := section.CRCHeader{
		CRC32:    crc32.ChecksumIEEE(payload),
		IV:       iv,
		RealSize: size,
	}

	return sealed, hdr.Bytes(), nil
}
