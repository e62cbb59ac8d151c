package compress

import (
	"fmt"

	"github.com/arloliu/mmkv/errs"
	"github.com/arloliu/mmkv/format"
)

// Compressor compresses a complete, decrypted store file for export.
type Compressor interface {
	// Compress compresses data and returns the result.
	//
	// Memory management:
	//   - Returned slice is owned by the caller (the no-op codec returns data itself)
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a store file written by the matching Compressor.
type Decompressor interface {
	// Decompress decompresses data and returns the original bytes.
	//
	// Error conditions:
	//   - Returns error if data is corrupted or was written by another codec
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one compression run; the CLI logs it after export.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage.
// Negative values mean the output grew.
func (s CompressionStats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return (1.0 - s.CompressionRatio()) * 100.0
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
//
// Returns:
//   - Codec: Shared, stateless codec instance
//   - error: errs.ErrUnsupportedCompression for unknown types
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}

// Compress compresses data with the codec for compressionType and reports
// the resulting sizes.
func Compress(compressionType format.CompressionType, data []byte) ([]byte, CompressionStats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, CompressionStats{}, err
	}

	out, err := codec.Compress(data)
	if err != nil {
		return nil, CompressionStats{}, fmt.Errorf("%s compression failed: %w", compressionType, err)
	}

	return out, CompressionStats{
		Algorithm:      compressionType,
		OriginalSize:   int64(len(data)),
		CompressedSize: int64(len(out)),
	}, nil
}

// Decompress decompresses data with the codec for compressionType.
func Decompress(compressionType format.CompressionType, data []byte) ([]byte, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, err
	}

	return codec.Decompress(data)
}
