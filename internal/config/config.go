// Package config loads settings for the mmkv command line tool.
//
// Settings come from three layers, later ones winning: built-in defaults, an
// optional YAML file, and the MMKV_KEY / MMKV_LOG_LEVEL environment variables.
// Command line flags are applied on top by the commands themselves.
package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/mmkv/errs"
	"github.com/arloliu/mmkv/format"
	"github.com/arloliu/mmkv/internal/log"
)

// EnvKey names the environment variable holding the hex-encoded key.
// The log level variable is owned by package log.
const EnvKey = "MMKV_KEY"

// Config represents the mmkv tool configuration.
type Config struct {
	// Key is the hex-encoded AES-128 key for encrypted stores.
	Key string `yaml:"key"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// Compression is applied to decrypted output: none, zstd, s2 or lz4.
	Compression string `yaml:"compression"`
	// Format is the dump output format: table or json.
	Format string `yaml:"format"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:    "warn",
		Compression: "none",
		Format:      "table",
	}
}

// LoadConfig loads configuration from the specified path on top of the defaults.
func LoadConfig(configPath string) (*Config, error) {
	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Load returns the defaults, overlaid with configPath when it is not empty,
// overlaid with the environment.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = LoadConfig(configPath); err != nil {
			return nil, err
		}
	}
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides fields from the environment.
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv(EnvKey); ok {
		c.Key = v
	}
	if v, ok := os.LookupEnv(log.EnvLogLevel); ok {
		c.LogLevel = v
	}
}

// Validate checks that every field holds a recognised value.
func (c *Config) Validate() error {
	if _, err := format.ParseCompressionType(c.Compression); err != nil {
		return fmt.Errorf("invalid compression in config: %w", err)
	}
	if _, err := format.ParseOutputFormat(c.Format); err != nil {
		return fmt.Errorf("invalid format in config: %w", err)
	}
	if c.Key != "" {
		if _, err := ParseHexKey(c.Key); err != nil {
			return fmt.Errorf("invalid key in config: %w", err)
		}
	}

	return nil
}

// ParseHexKey decodes a hex-encoded key. An optional 0x prefix and
// surrounding whitespace are accepted. The key length is checked later by
// the cipher.
func ParseHexKey(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return nil, fmt.Errorf("%w: empty key", errs.ErrInvalidHexKey)
	}

	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidHexKey, err)
	}

	return key, nil
}
