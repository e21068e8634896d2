package widget

import (
	"errors"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/pickupcheck/geo"
)

// fakePage implements the few playwright.Page methods the page object calls without a browser.
// Any other method panics on the nil embedded interface.
type fakePage struct {
	playwright.Page

	calls     *[]string
	reloadErr error
}

func (p *fakePage) Reload(options ...playwright.PageReloadOptions) (playwright.Response, error) {
	*p.calls = append(*p.calls, "reload")
	return nil, p.reloadErr
}

func (p *fakePage) Locator(selector string, options ...playwright.PageLocatorOptions) playwright.Locator {
	return &fakeLocator{selector: selector}
}

type fakeLocator struct {
	playwright.Locator
	selector string
}

type fakeGeolocator struct {
	calls *[]string
	set   []playwright.Geolocation
	err   error
}

func (g *fakeGeolocator) SetGeolocation(geolocation *playwright.Geolocation) error {
	*g.calls = append(*g.calls, "set geolocation")
	g.set = append(g.set, *geolocation)
	return g.err
}

func TestSetSimulatedLocation(t *testing.T) {
	var calls []string
	bc := &fakeGeolocator{calls: &calls}
	p := New(&fakePage{calls: &calls})

	err := p.SetSimulatedLocation(bc, geo.Point{Latitude: 49.1951, Longitude: 16.6068})
	require.NoError(t, err)

	assert.Equal(t, []string{"set geolocation", "reload"}, calls, "the override must be in place before the page reads it")
	assert.Equal(t, []playwright.Geolocation{{Latitude: 49.1951, Longitude: 16.6068}}, bc.set)
}

func TestSetSimulatedLocation_InvalidPoint(t *testing.T) {
	var calls []string
	bc := &fakeGeolocator{calls: &calls}
	p := New(&fakePage{calls: &calls})

	err := p.SetSimulatedLocation(bc, geo.Point{Latitude: 50, Longitude: 181})
	assert.ErrorIs(t, err, geo.ErrOutOfRange)
	assert.Empty(t, calls, "neither context nor page are touched")
}

func TestSetSimulatedLocation_GeolocationFails(t *testing.T) {
	var calls []string
	bc := &fakeGeolocator{calls: &calls, err: errors.New("context closed")}
	p := New(&fakePage{calls: &calls})

	err := p.SetSimulatedLocation(bc, geo.Point{Latitude: 50, Longitude: 14})
	assert.ErrorContains(t, err, "context closed")
	assert.Equal(t, []string{"set geolocation"}, calls, "no reload without the override")
}

func TestSetSimulatedLocation_ReloadFails(t *testing.T) {
	var calls []string
	bc := &fakeGeolocator{calls: &calls}
	p := New(&fakePage{calls: &calls, reloadErr: errors.New("navigation failed")})

	err := p.SetSimulatedLocation(bc, geo.Point{Latitude: 50, Longitude: 14})
	assert.ErrorContains(t, err, "reloading page: navigation failed")
}

func TestLocators_MapLoadingIndicator(t *testing.T) {
	var calls []string
	p := New(&fakePage{calls: &calls})

	l, ok := p.Locators().MapLoadingIndicator().(*fakeLocator)
	require.True(t, ok)
	// Matches the generated class in any position, e.g. class="map-overlay spinnerWrapper-0-1-194"
	assert.Equal(t, `[class*="spinnerWrapper-"]`, l.selector)
}
