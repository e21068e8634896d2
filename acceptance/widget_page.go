//go:build acceptance
// +build acceptance

package acceptance

import (
	"strings"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/pickupcheck/geo"
	"github.com/networkteam/pickupcheck/widget"
)

// WidgetPage wraps the widget page object with test helpers that fail the test on errors.
type WidgetPage struct {
	*widget.Page
	Ctx playwright.BrowserContext
	t   *testing.T
}

// NewWidgetPage creates a helper for page running in ctx.
func NewWidgetPage(t *testing.T, ctx playwright.BrowserContext, page *widget.Page) *WidgetPage {
	return &WidgetPage{Page: page, Ctx: ctx, t: t}
}

// Open navigates to the widget and accepts the consent dialog.
func (wp *WidgetPage) Open() {
	wp.t.Helper()

	require.NoError(wp.t, wp.Navigate(), "failed to open widget")
	require.NoError(wp.t, wp.AcceptConsent(), "failed to accept consent")
}

// MoveTo simulates point as the GPS position and waits for the map to settle.
func (wp *WidgetPage) MoveTo(point geo.Point) {
	wp.t.Helper()

	require.NoError(wp.t, wp.SetSimulatedLocation(wp.Ctx, point), "failed to set location %s", point)
	require.NoError(wp.t, wp.WaitForMapReady(), "map not ready at %s", point)
}

// FilterZBoxes applies the Z-Box filter and waits for the filtered results.
func (wp *WidgetPage) FilterZBoxes() {
	wp.t.Helper()

	require.NoError(wp.t, wp.ApplyZBoxFilter(), "failed to apply Z-Box filter")
	require.NoError(wp.t, wp.WaitForMapReady(), "map not ready after filtering")
	require.NoError(wp.t, wp.WaitForResults(), "no results rendered after filtering")
}

// IsVisible reports whether the first element of l is visible.
func (wp *WidgetPage) IsVisible(l playwright.Locator) bool {
	wp.t.Helper()

	visible, err := l.First().IsVisible()
	require.NoError(wp.t, err)
	return visible
}

// ExpectResultsPresent asserts at least one branch row and one marker or pointer.
func (wp *WidgetPage) ExpectResultsPresent() widget.Snapshot {
	wp.t.Helper()

	require.NoError(wp.t, wp.WaitForGlyphs(widget.ShapeResultsPresent), "no marker or pointer visible")
	s, err := wp.Snapshot()
	require.NoError(wp.t, err)

	require.GreaterOrEqual(wp.t, s.Rows, 1, "expected branch rows, got %s", s)
	require.GreaterOrEqual(wp.t, s.Detailed(), 1, "expected markers or pointers, got %s", s)
	return s
}

// ExpectNoResults asserts the fallback text, no markers and at least one cluster.
func (wp *WidgetPage) ExpectNoResults() widget.Snapshot {
	wp.t.Helper()

	require.NoError(wp.t, wp.WaitForGlyphs(widget.ShapeNoResults), "no cluster marker visible")
	s, err := wp.Snapshot()
	require.NoError(wp.t, err)

	require.Zero(wp.t, s.Rows, "expected no branch rows, got %s", s)
	require.Equal(wp.t, wp.FallbackText(), strings.TrimSpace(s.ListText))
	require.Zero(wp.t, s.Detailed(), "expected no markers, got %s", s)
	require.GreaterOrEqual(wp.t, s.Clusters, 1, "expected cluster markers, got %s", s)
	return s
}

// ExpectShape classifies the page and asserts the expected shape.
func (wp *WidgetPage) ExpectShape(want widget.Shape) {
	wp.t.Helper()

	shape, s, err := wp.Classify()
	require.NoError(wp.t, err)
	assert.Equal(wp.t, want, shape, "snapshot: %s", s)
}
