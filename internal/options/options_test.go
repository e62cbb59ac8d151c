package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Level  string
	Trim   bool
	Calls  []string
	Limits int
}

var errNegative = errors.New("limit cannot be negative")

func withLevel(level string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.Level = level
		c.Calls = append(c.Calls, "level")
	})
}

func withLimit(n int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if n < 0 {
			return errNegative
		}
		c.Limits = n
		c.Calls = append(c.Calls, "limit")

		return nil
	})
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &testConfig{}

		err := Apply(cfg, withLevel("debug"), withLimit(3), withLevel("info"))
		require.NoError(t, err)
		require.Equal(t, "info", cfg.Level)
		require.Equal(t, 3, cfg.Limits)
		require.Equal(t, []string{"level", "limit", "level"}, cfg.Calls)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &testConfig{Trim: true}

		require.NoError(t, Apply(cfg))
		require.True(t, cfg.Trim)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &testConfig{}

		require.NoError(t, Apply(cfg, nil, withLimit(1)))
		require.Equal(t, 1, cfg.Limits)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}

		err := Apply(cfg, withLimit(-1), withLevel("debug"))
		require.ErrorIs(t, err, errNegative)
		require.ErrorContains(t, err, "option 0")
		require.Empty(t, cfg.Level, "options after a failure are not applied")
	})
}

func TestFunc(t *testing.T) {
	cfg := &testConfig{}
	opt := Func[*testConfig](func(c *testConfig) error {
		c.Trim = true
		return nil
	})

	require.NoError(t, opt.apply(cfg))
	require.True(t, cfg.Trim)
}
