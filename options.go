package mmkv

import "github.com/arloliu/mmkv/internal/options"

type decryptConfig struct {
	trim bool
	copy bool
}

// DecryptOption configures Decrypt.
type DecryptOption = options.Option[*decryptConfig]

// WithTrim controls whether the returned buffer is cut to the size prefix plus
// the payload. Enabled by default; MMKV files are padded to page size.
func WithTrim(enabled bool) DecryptOption {
	return options.NoError(func(c *decryptConfig) {
		c.trim = enabled
	})
}

// WithCopy makes Decrypt work on a copy so the caller's buffer stays enciphered.
func WithCopy() DecryptOption {
	return options.NoError(func(c *decryptConfig) {
		c.copy = true
	})
}
