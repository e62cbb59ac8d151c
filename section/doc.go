// Package section defines the fixed-layout binary structures of MMKV files.
//
// An MMKV store is a single file that always starts with a 4-byte payload size.
// When the store is encrypted, a companion ".crc" sidecar file carries the
// integrity and cipher parameters needed to decrypt it.
//
// # Store File
//
//	Bytes     | Field    | Type   | Description
//	----------|----------|--------|------------------------------------------
//	0-3       | Size     | uint32 | Payload length N, little-endian
//	4-(4+N)   | Payload  | bytes  | Key-value payload (plain or enciphered)
//	(4+N)-... | Trailing | bytes  | Ignored (MMKV pre-allocates file pages)
//
// # CRC Sidecar Header
//
// Only the first 32 bytes of the sidecar are read:
//
//	Bytes  | Field    | Type     | Description
//	-------|----------|----------|------------------------------------------
//	0-3    | CRC32    | uint32   | IEEE CRC-32 of the enciphered payload
//	4-11   | -        | -        | Not consulted
//	12-27  | IV       | [16]byte | AES-128-CFB initialization vector
//	28-31  | RealSize | uint32   | Payload size, must equal the store's Size
//
// Parsing a header:
//
//	hdr, err := section.ParseCRCHeader(crcFile)
//	if err != nil {
//	    return err // errs.ErrUnexpectedEOF when shorter than 32 bytes
//	}
//
// All multi-byte fields are little-endian regardless of the host byte order.
//
// # Thread Safety
//
// CRCHeader is a plain value type; parsed headers are safe to share between
// goroutines as long as nobody mutates them.
package section
