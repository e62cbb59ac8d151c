// Package format defines the small enumerations shared by the mmkv packages and
// the command line tool.
package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/mmkv/errs"
)

type (
	// CompressionType selects the codec applied to exported store files.
	CompressionType uint8
	// OutputFormat selects how decoded entries are rendered.
	OutputFormat uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone writes the store as-is.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 frame compression.

	OutputTable OutputFormat = 0x1 // OutputTable renders entries as a text table.
	OutputJSON  OutputFormat = 0x2 // OutputJSON renders entries as a JSON array.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Extension returns the conventional file name suffix for the compression type.
func (c CompressionType) Extension() string {
	switch c {
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// ParseCompressionType parses a case-insensitive compression name.
// The empty string selects CompressionNone.
func ParseCompressionType(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, nil
	case "zstd", "zst":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnsupportedCompression, name)
	}
}

func (o OutputFormat) String() string {
	switch o {
	case OutputTable:
		return "table"
	case OutputJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseOutputFormat parses a case-insensitive output format name.
// The empty string selects OutputTable.
func ParseOutputFormat(name string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "table":
		return OutputTable, nil
	case "json":
		return OutputJSON, nil
	default:
		return 0, fmt.Errorf("unsupported output format: %q", name)
	}
}
