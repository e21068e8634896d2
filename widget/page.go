package widget

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/playwright-community/playwright-go"

	"github.com/networkteam/pickupcheck/geo"
)

// Page wraps a browser page showing the pickup point widget.
// The playwright.Page is borrowed; it is owned and closed by whoever created it.
type Page struct {
	page playwright.Page
	loc  Locators
	opts options
}

// geolocator is the part of playwright.BrowserContext needed to simulate a position.
type geolocator interface {
	SetGeolocation(geolocation *playwright.Geolocation) error
}

// New creates a page object for page.
func New(page playwright.Page, opts ...Option) *Page {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Page{
		page: page,
		loc:  NewLocators(page, o.FallbackText),
		opts: o,
	}
}

// Page returns the underlying browser page.
func (p *Page) Page() playwright.Page {
	return p.page
}

// Locators returns the element registry of this page.
func (p *Page) Locators() Locators {
	return p.loc
}

// FallbackText returns the branch list text of the no-results state.
func (p *Page) FallbackText() string {
	return p.opts.FallbackText
}

// Navigate loads the widget entry route.
func (p *Page) Navigate() error {
	p.opts.Logger.Debug("Navigating to widget", slog.String("path", p.opts.EntryPath))
	if _, err := p.page.Goto(p.opts.EntryPath); err != nil {
		return fmt.Errorf("navigating to %s: %w", p.opts.EntryPath, err)
	}
	return nil
}

// Reload reloads the current page.
func (p *Page) Reload() error {
	if _, err := p.page.Reload(); err != nil {
		return fmt.Errorf("reloading page: %w", err)
	}
	return nil
}

// AcceptConsent dismisses the cookie consent dialog.
//
// If the dialog does not show up within the consent timeout it is treated as already dismissed
// and nil is returned, so calling this repeatedly is safe.
func (p *Page) AcceptConsent() error {
	accept := p.loc.ConsentAccept()

	err := accept.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: millis(p.opts.ConsentTimeout),
	})
	if errors.Is(err, playwright.ErrTimeout) {
		p.opts.Logger.Debug("Consent dialog not present, skipping")
		return nil
	}
	if err != nil {
		return fmt.Errorf("waiting for consent dialog: %w", err)
	}

	if err := accept.Click(); err != nil {
		return fmt.Errorf("accepting consent: %w", err)
	}

	err = accept.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateHidden,
		Timeout: millis(p.opts.ConsentTimeout),
	})
	if err != nil {
		return fmt.Errorf("waiting for consent dialog to close: %w", err)
	}

	p.opts.Logger.Debug("Accepted consent")
	return nil
}

// SetSimulatedLocation overrides the GPS position of the browser context and reloads the page
// so the widget reads it again. The override lives on the context and survives the reload.
//
// It does not wait for the map; call WaitForMapReady before looking at results.
func (p *Page) SetSimulatedLocation(bc geolocator, point geo.Point) error {
	if err := point.Validate(); err != nil {
		return err
	}

	err := bc.SetGeolocation(&playwright.Geolocation{
		Latitude:  point.Latitude,
		Longitude: point.Longitude,
	})
	if err != nil {
		return fmt.Errorf("setting geolocation %s: %w", point, err)
	}
	p.opts.Logger.Debug("Set simulated location", slog.String("point", point.String()))

	return p.Reload()
}

// WaitForMapReady waits for the loading indicator to detach and then for the map canvas to be visible.
// Both stages have independent timeouts; a failure is reported as *StageError.
func (p *Page) WaitForMapReady() error {
	err := waitForMapReady(
		p.loc.MapLoadingIndicator(),
		p.loc.MapCanvas(),
		p.opts.SpinnerTimeout,
		p.opts.CanvasTimeout,
	)
	if err != nil {
		return err
	}
	p.opts.Logger.Debug("Map ready")
	return nil
}

// OpenFilters opens the filter menu.
func (p *Page) OpenFilters() (*FilterPanel, error) {
	if err := p.loc.FilterToggle().Click(); err != nil {
		return nil, fmt.Errorf("opening filters: %w", err)
	}

	return newFilterPanel(filterControls{
		parcelPoints:  p.loc.ParcelPointsSection(),
		zBox:          p.loc.ZBoxOption(),
		otherServices: p.loc.OtherServicesSection(),
		wheelchair:    p.loc.WheelchairOption(),
		submit:        p.loc.FilterSubmit(),
	}, p.loc.OpenHoursSection(), p.opts.Logger), nil
}

// ApplyZBoxFilter restricts results to Z-Box pickup points.
func (p *Page) ApplyZBoxFilter() error {
	panel, err := p.OpenFilters()
	if err != nil {
		return err
	}
	return applyZBox(panel)
}

func applyZBox(panel *FilterPanel) error {
	if err := panel.ExpandParcelPoints(); err != nil {
		return err
	}
	if err := panel.SelectZBox(); err != nil {
		return err
	}
	return panel.Submit()
}

// Search types query into the search field and confirms it with Enter.
// It waits for the autocomplete list first, which otherwise covers the filter controls.
func (p *Page) Search(query string) error {
	input := p.loc.SearchInput()
	if err := input.Fill(query); err != nil {
		return fmt.Errorf("filling search %q: %w", query, err)
	}

	err := p.loc.SearchSuggestions().WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateVisible,
	})
	if err != nil {
		return fmt.Errorf("waiting for suggestions of %q: %w", query, err)
	}

	if err := input.Press("Enter"); err != nil {
		return fmt.Errorf("confirming search %q: %w", query, err)
	}
	p.opts.Logger.Debug("Searched", slog.String("query", query))
	return nil
}

// WaitForResults waits until either a branch row or the fallback message is visible.
func (p *Page) WaitForResults() error {
	rendered := p.loc.BranchListRows().Or(p.loc.EmptyListMessage()).First()
	err := rendered.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: millis(p.opts.ResultsTimeout),
	})
	if err != nil {
		return fmt.Errorf("waiting for results: %w", err)
	}
	return nil
}

// WaitForGlyphs waits within the results timeout until the map shows the glyphs of shape.
// Call it after WaitForResults and before Snapshot, as the map layer renders after the list.
func (p *Page) WaitForGlyphs(shape Shape) error {
	return waitForGlyphs(shape,
		p.loc.DetailedMarkers().First(),
		p.loc.ClusterMarkers().First(),
		p.opts.ResultsTimeout,
	)
}

// WaitForSettled waits for the list to render and then for the map glyphs matching it.
func (p *Page) WaitForSettled() error {
	if err := p.WaitForResults(); err != nil {
		return err
	}

	hasRows, err := p.loc.BranchListRows().First().IsVisible()
	if err != nil {
		return fmt.Errorf("checking branch rows: %w", err)
	}
	shape := ShapeNoResults
	if hasRows {
		shape = ShapeResultsPresent
	}
	return p.WaitForGlyphs(shape)
}

// Snapshot counts the visible result elements.
func (p *Page) Snapshot() (Snapshot, error) {
	var (
		s   Snapshot
		err error
	)

	if s.Rows, err = countVisible(p.loc.BranchListRows()); err != nil {
		return s, fmt.Errorf("counting branch rows: %w", err)
	}
	if s.Markers, err = countVisible(p.loc.Markers()); err != nil {
		return s, fmt.Errorf("counting markers: %w", err)
	}
	if s.Pointers, err = countVisible(p.loc.Pointers()); err != nil {
		return s, fmt.Errorf("counting pointers: %w", err)
	}
	if s.Clusters, err = countVisible(p.loc.ClusterMarkers()); err != nil {
		return s, fmt.Errorf("counting cluster markers: %w", err)
	}

	list := p.loc.BranchList()
	n, err := list.Count()
	if err != nil {
		return s, fmt.Errorf("locating branch list: %w", err)
	}
	if n > 0 {
		if s.ListText, err = list.First().InnerText(); err != nil {
			return s, fmt.Errorf("reading branch list: %w", err)
		}
	}

	return s, nil
}

// Classify takes a snapshot and classifies it against the configured fallback text.
func (p *Page) Classify() (Shape, Snapshot, error) {
	s, err := p.Snapshot()
	if err != nil {
		return 0, s, err
	}
	shape, err := Classify(s, p.opts.FallbackText)
	return shape, s, err
}

func countVisible(l playwright.Locator) (int, error) {
	all, err := l.All()
	if err != nil {
		return 0, err
	}

	visible := 0
	for _, el := range all {
		ok, err := el.IsVisible()
		if err != nil {
			return 0, err
		}
		if ok {
			visible++
		}
	}
	return visible, nil
}
