package crypt

import "hash/crc32"

// Checksum computes the IEEE CRC-32 used by MMKV sidecar headers.
func Checksum(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

// VerifyChecksum reports whether the checksum of data equals expected.
func VerifyChecksum(data []byte, expected uint32) bool {
	return Checksum(data) == expected
}
