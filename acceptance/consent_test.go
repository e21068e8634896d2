//go:build acceptance
// +build acceptance

package acceptance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/pickupcheck/config"
)

// TestConsentIsIdempotent verifies that accepting consent again is a no-op, also after a reload.
func TestConsentIsIdempotent(t *testing.T) {
	t.Parallel()

	shortConsent := WithConfig(func(cfg *config.Config) {
		cfg.ConsentTimeout = 2 * time.Second
	})

	WithWidget(t, func(t *testing.T, f *TestFixtures) {
		wp := f.Widget

		assert.False(t, wp.IsVisible(wp.Locators().ConsentAccept()), "consent dialog should be closed")
		require.NoError(t, wp.AcceptConsent(), "second accept should be a no-op")

		require.NoError(t, wp.Reload())
		require.NoError(t, wp.AcceptConsent(), "accept after reload should be a no-op")
		assert.False(t, wp.IsVisible(wp.Locators().ConsentAccept()))
	}, shortConsent)
}
