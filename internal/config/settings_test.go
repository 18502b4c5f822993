package config_test

import (
	"earthly/internal/config"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		s, err := config.LoadSettings(filepath.Join(t.TempDir(), "settings.yaml"))

		require.NoError(t, err)
		assert.Equal(t, config.DefaultSettings(), s)
	})

	t.Run("file overrides defaults field by field", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		require.NoError(t, os.WriteFile(path, []byte("currency: €\nwidth: 100\n"), 0o644))

		s, err := config.LoadSettings(path)

		require.NoError(t, err)
		assert.Equal(t, "€", s.Currency)
		assert.Equal(t, 100, s.Width)
		assert.Equal(t, "warn", s.LogLevel)
	})

	t.Run("malformed file names the path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		require.NoError(t, os.WriteFile(path, []byte("width: [oops"), 0o644))

		_, err := config.LoadSettings(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
	})

	t.Run("too narrow width rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		require.NoError(t, os.WriteFile(path, []byte("width: 10\n"), 0o644))

		_, err := config.LoadSettings(path)

		assert.ErrorIs(t, err, config.ErrInvalidWidth)
	})
}

func TestSettings_Save(t *testing.T) {
	t.Run("round trips through the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
		want := config.Settings{LogLevel: "debug", Currency: "€", Width: 72, DataDir: "/srv/earthly"}

		require.NoError(t, want.Save(path))
		got, err := config.LoadSettings(path)

		require.NoError(t, err)
		assert.Equal(t, want, got)
		_, err = os.Stat(path + ".tmp")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("refuses invalid settings", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")

		err := config.Settings{Width: 5}.Save(path)

		assert.ErrorIs(t, err, config.ErrInvalidWidth)
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestSettings_WithEnv(t *testing.T) {
	env := func(vars map[string]string) func(string) string {
		return func(k string) string { return vars[k] }
	}

	t.Run("overlays set variables only", func(t *testing.T) {
		s, err := config.DefaultSettings().WithEnv(env(map[string]string{
			config.EnvLogLevel: "debug",
			config.EnvWidth:    "90",
		}))

		require.NoError(t, err)
		assert.Equal(t, "debug", s.LogLevel)
		assert.Equal(t, 90, s.Width)
		assert.Equal(t, "$", s.Currency)
	})

	t.Run("bad width", func(t *testing.T) {
		_, err := config.DefaultSettings().WithEnv(env(map[string]string{config.EnvWidth: "wide"}))

		assert.Error(t, err)
	})
}

func TestLoadDotEnv(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NoError(t, config.LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
	})

	t.Run("loads variables that are not already set", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("EARTHLY_CURRENCY=£\n"), 0o644))
		t.Setenv(config.EnvCurrency, "")
		os.Unsetenv(config.EnvCurrency)

		require.NoError(t, config.LoadDotEnv(path))

		assert.Equal(t, "£", os.Getenv(config.EnvCurrency))
	})
}
