package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mmkv/errs"
	"github.com/arloliu/mmkv/internal/log"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, "none", cfg.Compression)
	require.Equal(t, "table", cfg.Format)
	require.Empty(t, cfg.Key)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mmkv.yaml")
	content := "key: 30313233343536373839616263646566\ncompression: zstd\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "30313233343536373839616263646566", cfg.Key)
	require.Equal(t, "zstd", cfg.Compression)
	require.Equal(t, "table", cfg.Format, "unset fields keep their defaults")
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.ErrorContains(t, err, "failed to read config file")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("key: [unterminated"), 0o600))
	_, err = LoadConfig(bad)
	require.ErrorContains(t, err, "failed to parse config file")
}

func TestLoad(t *testing.T) {
	t.Run("Defaults and environment", func(t *testing.T) {
		t.Setenv(EnvKey, "000102030405060708090a0b0c0d0e0f")
		t.Setenv(log.EnvLogLevel, "debug")

		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, "000102030405060708090a0b0c0d0e0f", cfg.Key)
		require.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("Environment overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mmkv.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log_level: error\nformat: json\n"), 0o600))
		t.Setenv(log.EnvLogLevel, "info")

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "info", cfg.LogLevel)
		require.Equal(t, "json", cfg.Format)
	})

	t.Run("Invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mmkv.yaml")
		require.NoError(t, os.WriteFile(path, []byte("compression: brotli\n"), 0o600))

		_, err := Load(path)
		require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
	})

	t.Run("Invalid key", func(t *testing.T) {
		t.Setenv(EnvKey, "xyz")

		_, err := Load("")
		require.ErrorIs(t, err, errs.ErrInvalidHexKey)
	})
}

func TestParseHexKey(t *testing.T) {
	key, err := ParseHexKey("30313233343536373839616263646566")
	require.NoError(t, err)
	require.Equal(t, []byte("0123456789abcdef"), key)

	key, err = ParseHexKey(" 0xA0FF\n")
	require.NoError(t, err)
	require.Equal(t, []byte{0xa0, 0xff}, key)

	for _, bad := range []string{"", "0x", "abc", "zz"} {
		_, err := ParseHexKey(bad)
		require.ErrorIs(t, err, errs.ErrInvalidHexKey, "input %q", bad)
	}
}
