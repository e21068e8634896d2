//go:build acceptance
// +build acceptance

package acceptance

import (
	"log/slog"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/pickupcheck/browser"
	"github.com/networkteam/pickupcheck/config"
)

// PlaywrightFixture manages the Playwright driver and the browser for tests.
// Set HEADLESS=false to run with a visible browser for debugging, BROWSER to switch the engine.
type PlaywrightFixture struct {
	*browser.Runtime
}

// NewPlaywrightFixture starts Playwright and launches the browser configured in cfg.
func NewPlaywrightFixture(t *testing.T, cfg config.Config, logger *slog.Logger) *PlaywrightFixture {
	t.Helper()

	rt, err := browser.Launch(cfg, logger)
	require.NoError(t, err, "failed to launch browser")

	return &PlaywrightFixture{Runtime: rt}
}

// NewContext creates a new browser context with isolated cookies, storage and geolocation.
func (pf *PlaywrightFixture) NewContext(t *testing.T, options browser.ContextOptions) playwright.BrowserContext {
	t.Helper()

	ctx, err := pf.Runtime.NewContext(options)
	require.NoError(t, err, "failed to create browser context")
	return ctx
}

// Close releases all Playwright resources.
func (pf *PlaywrightFixture) Close() {
	pf.Runtime.Close()
}
