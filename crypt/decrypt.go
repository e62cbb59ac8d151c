package crypt

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/arloliu/mmkv/errs"
	"github.com/arloliu/mmkv/section"
)

// KeySize is the AES-128 key length MMKV uses.
const KeySize = 16

// Decrypt verifies and decrypts an encrypted store buffer in place.
//
// The steps run in this order and each one fails fast:
//  1. buf must hold at least hdr.RealSize+4 bytes.
//  2. The size prefix of buf must equal hdr.RealSize.
//  3. The CRC-32 of the still enciphered buf[4:4+RealSize] must equal hdr.CRC32.
//  4. buf[4:4+RealSize] is decrypted with AES-128-CFB using key and hdr.IV.
//
// The size prefix and any bytes after the payload are never touched. On error
// buf is left unmodified.
//
// Parameters:
//   - hdr: Parsed sidecar header
//   - key: 16-byte AES key
//   - buf: Encrypted store file contents, decrypted in place
//
// Returns:
//   - int: hdr.RealSize, the plaintext payload length
//   - error: *errs.BufferTooSmallError (requiring hdr.RealSize), errs.ErrFileSizeMismatch,
//     errs.ErrChecksumMismatch or errs.ErrInvalidKeySize
func Decrypt(hdr section.CRCHeader, key, buf []byte) (int, error) {
	realSize := hdr.RealSize
	if realSize < 0 || uint64(len(buf)) < uint64(realSize)+section.StoreSizePrefix {
		return 0, errs.NewBufferTooSmall(uint64(realSize)) //nolint:gosec
	}

	declared, err := section.ReadStoreSize(buf)
	if err != nil {
		return 0, err
	}
	if declared != realSize {
		return 0, fmt.Errorf("%w: store declares %d bytes, crc header records %d",
			errs.ErrFileSizeMismatch, declared, realSize)
	}

	payload := buf[section.StoreSizePrefix : section.StoreSizePrefix+realSize]
	if !VerifyChecksum(payload, hdr.CRC32) {
		return 0, fmt.Errorf("%w: computed 0x%08x, crc header records 0x%08x",
			errs.ErrChecksumMismatch, Checksum(payload), hdr.CRC32)
	}

	stream, err := newDecrypter(key, hdr.IV[:])
	if err != nil {
		return 0, err
	}
	stream.XORKeyStream(payload, payload)

	return realSize, nil
}

func newDecrypter(key, iv []byte) (cipher.Stream, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidKeySize, len(key), KeySize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidKeySize, err)
	}

	return cipher.NewCFBDecrypter(block, iv), nil //nolint:staticcheck // MMKV's on-disk format is CFB.
}
