package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arloliu/mmkv"
	"github.com/arloliu/mmkv/compress"
	"github.com/arloliu/mmkv/errs"
	"github.com/arloliu/mmkv/format"
	"github.com/arloliu/mmkv/internal/config"
	"github.com/arloliu/mmkv/internal/log"
	"github.com/arloliu/mmkv/internal/pool"
)

var errNoKey = errors.New("no decryption key: pass -k or set " + config.EnvKey)

type decryptFlags struct {
	Input       string
	Output      string
	Key         string
	CRCFile     string
	Compression string
}

func newDecryptCommand(g *globalFlags) *cobra.Command {
	f := &decryptFlags{}
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "verify and decrypt an encrypted MMKV store",
		Example: `  mmkv decrypt -i settings -o settings.plain -k 30313233343536373839616263646566
  mmkv decrypt -i settings -c backup/settings.crc -o settings.zst --compress zstd`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("compress") {
				f.Compression = g.cfg.Compression
			}
			n, err := runDecrypt(cmd, f, g.cfg)
			if err != nil {
				return fmt.Errorf("failed to decrypt mmkv: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "done, %d bytes processed.\n", n)

			return nil
		},
	}

	cmd.Flags().StringVarP(&f.Input, "input", "i", "", "path to the encrypted mmkv store")
	cmd.Flags().StringVarP(&f.Output, "output", "o", "", "path to the decrypted mmkv file")
	cmd.Flags().StringVarP(&f.Key, "key", "k", "", "hex-encoded 16-byte key (default from config or "+config.EnvKey+")")
	cmd.Flags().StringVarP(&f.CRCFile, "crc_file", "c", "", "path to the .crc sidecar (default <input>.crc)")
	cmd.Flags().StringVar(&f.Compression, "compress", "none", "compress the output: none, zstd, s2, lz4")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// runDecrypt returns the number of decrypted bytes written, size prefix included.
func runDecrypt(cmd *cobra.Command, f *decryptFlags, cfg *config.Config) (int, error) {
	ctx := cmd.Context()

	key, err := resolveKey(f.Key, cfg)
	if err != nil {
		return 0, err
	}
	if key == nil {
		return 0, errNoKey
	}

	ct, err := format.ParseCompressionType(f.Compression)
	if err != nil {
		return 0, err
	}

	crcPath := f.CRCFile
	if crcPath == "" {
		crcPath = mmkv.DefaultCRCPath(f.Input)
	}

	crcBuf, err := readSource(crcPath)
	if err != nil {
		return 0, err
	}
	defer pool.PutFileBuffer(crcBuf)

	storeBuf, err := readSource(f.Input)
	if err != nil {
		return 0, err
	}
	defer pool.PutFileBuffer(storeBuf)

	log.Debug(ctx, "read encrypted store", log.Fields{
		"input":     f.Input,
		"crc_file":  crcPath,
		"file_size": storeBuf.Len(),
	})

	plain, err := mmkv.Decrypt(storeBuf.Bytes(), crcBuf.Bytes(), key)
	if err != nil {
		return 0, fmt.Errorf("error when deciphering enciphered file: %w", err)
	}

	out, stats, err := compress.Compress(ct, plain)
	if err != nil {
		return 0, err
	}

	if err := writeFileAtomic(ctx, f.Output, out); err != nil {
		return 0, fmt.Errorf("%w: %w", errs.ErrDestinationIO, err)
	}

	log.Info(ctx, "decrypted store written", log.Fields{
		"output":        f.Output,
		"bytes":         len(plain),
		"compression":   stats.Algorithm.String(),
		"written":       stats.CompressedSize,
		"space_savings": fmt.Sprintf("%.1f%%", stats.SpaceSavings()),
	})

	return len(plain), nil
}

// resolveKey prefers the flag over the configured key. It returns nil, nil
// when neither is set.
func resolveKey(flagKey string, cfg *config.Config) ([]byte, error) {
	hexKey := flagKey
	if hexKey == "" {
		hexKey = cfg.Key
	}
	if hexKey == "" {
		return nil, nil
	}

	return config.ParseHexKey(hexKey)
}

func readSource(path string) (*pool.ByteBuffer, error) {
	bb, err := pool.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrSourceIO, err)
	}

	return bb, nil
}

// outputFileMode is what os.Create yields under the common 022 umask.
const outputFileMode os.FileMode = 0o644

// writeFileAtomic writes data to a temporary file next to path and renames it
// into place, so a failed run never leaves a partial output file.
func writeFileAtomic(ctx context.Context, path string, data []byte) (err error) {
	if _, statErr := os.Stat(path); statErr == nil {
		log.Warning(ctx, "overwriting existing output file", log.Fields{"output": path})
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err == nil {
			return
		}
		_ = tmp.Close()
		if rmErr := os.Remove(tmpName); rmErr != nil {
			log.Error(ctx, "failed to remove temporary output file", log.Fields{
				"path":  tmpName,
				"error": rmErr.Error(),
			})
		}
	}()

	// CreateTemp uses 0600; exports get regular file permissions.
	if err = tmp.Chmod(outputFileMode); err != nil {
		return err
	}
	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
