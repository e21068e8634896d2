package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/pickupcheck/config"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadFromLookup_Defaults(t *testing.T) {
	cfg, err := config.LoadFromLookup(lookupFrom(nil))
	require.NoError(t, err)

	assert.Empty(t, cfg.BaseURL)
	assert.True(t, cfg.UsesStub())
	assert.Equal(t, "/v6/", cfg.EntryPath)
	assert.Equal(t, config.BrowserChromium, cfg.Browser)
	assert.True(t, cfg.Headless)
	assert.Equal(t, 15*time.Second, cfg.SpinnerTimeout)
	assert.Equal(t, 5*time.Second, cfg.CanvasTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.CoordinatesFile, "built-in cases by default")
}

func TestLoadFromLookup_Overrides(t *testing.T) {
	cfg, err := config.LoadFromLookup(lookupFrom(map[string]string{
		"WIDGET_BASE_URL":     "https://widget.packeta.com",
		"HEADLESS":            "false",
		"BROWSER":             "firefox",
		"MAP_SPINNER_TIMEOUT": "30s",
		"SLOW_MO":             "250ms",
		"LOG_LEVEL":           "debug",
	}))
	require.NoError(t, err)

	assert.False(t, cfg.UsesStub())
	assert.False(t, cfg.Headless)
	assert.Equal(t, config.BrowserFirefox, cfg.Browser)
	assert.Equal(t, 30*time.Second, cfg.SpinnerTimeout)
	assert.Equal(t, 250*time.Millisecond, cfg.SlowMo)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadFromLookup_Invalid(t *testing.T) {
	_, err := config.LoadFromLookup(lookupFrom(map[string]string{
		"BROWSER": "opera",
	}))
	assert.ErrorContains(t, err, `unknown browser "opera"`)

	_, err = config.LoadFromLookup(lookupFrom(map[string]string{
		"MAP_CANVAS_TIMEOUT": "0s",
	}))
	assert.ErrorContains(t, err, "MAP_CANVAS_TIMEOUT must be positive")

	_, err = config.LoadFromLookup(lookupFrom(map[string]string{
		"RESULTS_TIMEOUT": "soon",
	}))
	assert.Error(t, err)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("WIDGET_LOCALE=cs-CZ\n"), 0o644))

	// godotenv.Load sets process variables, restore them after the test
	t.Setenv("WIDGET_LOCALE", "")
	require.NoError(t, os.Unsetenv("WIDGET_LOCALE"))

	cfg, err := config.Load(envFile, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "cs-CZ", cfg.Locale)
}
