package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// s2MaxDecodedSize bounds the allocation a corrupted block header can request.
// It matches the zstd decoder's memory limit.
const s2MaxDecodedSize = 1 << 30

// S2Compressor writes single S2 blocks: very fast, moderate ratio.
//
// Exports use the "better" encoder; decrypted stores are small and written
// once, so the extra encode time buys a noticeably smaller file.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data as a single S2 block.
//
// Returns:
//   - []byte: Compressed block (nil if input is empty)
//   - error: Input larger than an S2 block can hold
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	maxLen := s2.MaxEncodedLen(len(data))
	if maxLen < 0 {
		return nil, fmt.Errorf("s2 compression failed: %d bytes exceed the block limit", len(data))
	}

	return s2.EncodeBetter(make([]byte, maxLen), data), nil
}

// Decompress decodes a single S2 block. The declared size is checked before
// any output is allocated.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	size, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if size > s2MaxDecodedSize {
		return nil, fmt.Errorf("s2 decompression failed: declared size %d exceeds %d", size, s2MaxDecodedSize)
	}

	out, err := s2.Decode(make([]byte, size), data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return out, nil
}
