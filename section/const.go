package section

// CRC sidecar header layout. Bytes 4-11 are not consulted.
const (
	CRCHeaderSize  = 32   // number of leading sidecar bytes that make up the header
	CRC32Offset    = 0x00 // little-endian uint32 checksum of the enciphered payload
	IVOffset       = 0x0C // start of the 16-byte AES-CFB initialization vector
	IVSize         = 16   // initialization vector length in bytes
	RealSizeOffset = 0x1C // little-endian uint32 plaintext payload size
)

// StoreSizePrefix is the length of the little-endian uint32 payload size that
// starts every store file, encrypted or not.
const StoreSizePrefix = 4
