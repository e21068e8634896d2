package widget

import (
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitForGlyphs(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  string
	}{
		{name: "results present waits for markers", shape: ShapeResultsPresent, want: "detailed"},
		{name: "no results waits for clusters", shape: ShapeNoResults, want: "clusters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []recordedWait
			detailed := &fakeWaiter{name: "detailed", calls: &calls}
			clusters := &fakeWaiter{name: "clusters", calls: &calls}

			err := waitForGlyphs(tt.shape, detailed, clusters, 15*time.Second)
			require.NoError(t, err)

			require.Len(t, calls, 1)
			assert.Equal(t, recordedWait{name: tt.want, state: *playwright.WaitForSelectorStateVisible, timeout: 15000}, calls[0])
		})
	}
}

func TestWaitForGlyphs_Timeout(t *testing.T) {
	var calls []recordedWait
	detailed := &fakeWaiter{name: "detailed", calls: &calls, err: playwright.ErrTimeout}
	clusters := &fakeWaiter{name: "clusters", calls: &calls}

	err := waitForGlyphs(ShapeResultsPresent, detailed, clusters, time.Second)
	assert.ErrorIs(t, err, playwright.ErrTimeout)
	assert.ErrorContains(t, err, "results present")
}

func TestWaitForGlyphs_UnknownShape(t *testing.T) {
	var calls []recordedWait
	detailed := &fakeWaiter{name: "detailed", calls: &calls}
	clusters := &fakeWaiter{name: "clusters", calls: &calls}

	err := waitForGlyphs(Shape(0), detailed, clusters, time.Second)
	assert.Error(t, err)
	assert.Empty(t, calls)
}
