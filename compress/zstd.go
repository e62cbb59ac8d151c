package compress

// ZstdCompressor writes Zstandard frames: the best ratio of the built-in codecs.
//
// The default build uses the pure Go klauspost/compress implementation. Building
// with cgo and the "gozstd" tag switches to the libzstd bindings of
// valyala/gozstd; both produce standard frames and can read each other's output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
