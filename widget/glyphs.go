package widget

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// waitForGlyphs waits for the first map glyph belonging to shape: a marker or pointer for
// results, a cluster marker for no results. Map glyphs render after the branch list.
func waitForGlyphs(shape Shape, detailed, clusters waiter, timeout time.Duration) error {
	var glyph waiter
	switch shape {
	case ShapeResultsPresent:
		glyph = detailed
	case ShapeNoResults:
		glyph = clusters
	default:
		return fmt.Errorf("no map glyphs known for %s", shape)
	}

	err := glyph.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: millis(timeout),
	})
	if err != nil {
		return fmt.Errorf("waiting for map glyphs of %s: %w", shape, err)
	}
	return nil
}
