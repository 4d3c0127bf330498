package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("GITHUB_USER", "octocat")

		cfg, err := load(viper.New(), t.TempDir())

		require.NoError(t, err)
		assert.Equal(t, "octocat", cfg.GithubUser)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "https://api.github.com/", cfg.GithubAPIURL)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
		assert.Equal(t, ":8080", cfg.HTTPAddr)
		assert.Equal(t, "pt-BR", cfg.DisplayLocale)
		assert.Equal(t, time.UTC, cfg.Location)
		assert.Equal(t, time.Second, cfg.RetryMinInterval)
	})

	t.Run("reads .env file and lets environment win", func(t *testing.T) {
		dir := t.TempDir()
		content := "GITHUB_USER=from-file\nDISPLAY_LOCALE=en-US\nGITHUB_API_URL=http://localhost:9999\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))
		t.Setenv("DISPLAY_LOCALE", "en-GB")

		cfg, err := load(viper.New(), dir)

		require.NoError(t, err)
		assert.Equal(t, "from-file", cfg.GithubUser)
		assert.Equal(t, "en-GB", cfg.DisplayLocale)
		assert.Equal(t, "http://localhost:9999/", cfg.GithubAPIURL)
	})

	t.Run("requires a github user", func(t *testing.T) {
		t.Setenv("GITHUB_USER", "")

		_, err := load(viper.New(), t.TempDir())

		assert.ErrorContains(t, err, "GITHUB_USER")
	})

	t.Run("rejects unknown time zone", func(t *testing.T) {
		t.Setenv("GITHUB_USER", "octocat")
		t.Setenv("DISPLAY_TIMEZONE", "Mars/Olympus")

		_, err := load(viper.New(), t.TempDir())

		assert.ErrorContains(t, err, "DISPLAY_TIMEZONE")
	})
}
