// Package compress provides the codecs used when exporting decrypted MMKV stores.
//
// Decrypted stores are written back to disk by the command line tool, optionally
// compressed. The dump command reads such exports back by selecting the same
// codec. Supported algorithms:
//   - None: store bytes written unchanged
//   - Zstd: best ratio (klauspost/compress, or libzstd via the "gozstd" build tag)
//   - S2: fastest, single S2 block
//   - LZ4: LZ4 frame with content checksum
//
// # Usage
//
//	out, stats, err := compress.Compress(format.CompressionZstd, plain)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("saved %.1f%%\n", stats.SpaceSavings())
//
//	plain, err = compress.Decompress(format.CompressionZstd, out)
//
// Every codec accepts empty input and returns nil for it.
//
// # Thread Safety
//
// All codecs are stateless values; the Zstd codec draws encoders and decoders
// from sync.Pools. They are safe for concurrent use.
package compress
