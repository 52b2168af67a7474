package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formvalidate/pkg/config"
)

type sampleConfig struct {
	Color   string   `env:"COLOR" envDefault:"#999"`
	Retries int      `env:"RETRIES" envDefault:"3"`
	Tags    []string `env:"TAGS" envSeparator:","`
}

type requiredConfig struct {
	Token string `env:"TOKEN,required"`
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		var cfg sampleConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		require.NoError(t, err)
		assert.Equal(t, "#999", cfg.Color)
		assert.Equal(t, 3, cfg.Retries)
		assert.Nil(t, cfg.Tags)
	})

	t.Run("reads prefixed variables", func(t *testing.T) {
		var cfg sampleConfig
		err := config.Load(&cfg,
			config.WithPrefix("APP_"),
			config.WithEnvironment(map[string]string{
				"APP_COLOR": "#000",
				"APP_TAGS":  "a,b",
				"COLOR":     "#fff",
			}),
		)
		require.NoError(t, err)
		assert.Equal(t, "#000", cfg.Color)
		assert.Equal(t, []string{"a", "b"}, cfg.Tags)
	})

	t.Run("reads process environment", func(t *testing.T) {
		t.Setenv("CFGTEST_COLOR", "red")
		var cfg sampleConfig
		require.NoError(t, config.Load(&cfg, config.WithPrefix("CFGTEST_")))
		assert.Equal(t, "red", cfg.Color)
	})

	t.Run("wraps parse errors", func(t *testing.T) {
		var cfg sampleConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{"RETRIES": "many"}))
		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrParsingConfig))
	})

	t.Run("reports missing required values", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("rejects nil pointer", func(t *testing.T) {
		var cfg *sampleConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	assert.NotPanics(t, func() {
		var cfg sampleConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("loads variables from file", func(t *testing.T) {
		path := writeEnvFile(t, "ENVFILE_COLOR=\"#123\"\nENVFILE_RETRIES=7\n")
		t.Cleanup(func() {
			os.Unsetenv("ENVFILE_COLOR")
			os.Unsetenv("ENVFILE_RETRIES")
		})

		require.NoError(t, config.LoadEnv(path))

		var cfg sampleConfig
		require.NoError(t, config.Load(&cfg, config.WithPrefix("ENVFILE_")))
		assert.Equal(t, "#123", cfg.Color)
		assert.Equal(t, 7, cfg.Retries)
	})

	t.Run("does not overwrite existing variables", func(t *testing.T) {
		t.Setenv("KEEP_COLOR", "mine")
		path := writeEnvFile(t, "KEEP_COLOR=theirs\n")

		require.NoError(t, config.LoadEnv(path))
		assert.Equal(t, "mine", os.Getenv("KEEP_COLOR"))
	})

	t.Run("no paths is a no-op", func(t *testing.T) {
		assert.NoError(t, config.LoadEnv())
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("must variant panics on missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			config.MustLoadEnv(filepath.Join(t.TempDir(), "missing.env"))
		})
	})
}
