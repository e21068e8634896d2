package widget

import (
	"fmt"
	"log/slog"

	"github.com/playwright-community/playwright-go"
)

type clicker interface {
	Click(options ...playwright.LocatorClickOptions) error
}

type filterControls struct {
	parcelPoints  clicker
	zBox          clicker
	otherServices clicker
	wheelchair    clicker
	submit        clicker
}

type section int

const (
	sectionParcelPoints section = iota
	sectionOtherServices
)

// FilterPanel is an opened filter menu.
//
// Options inside a section are rendered only after the section was expanded, so selecting an
// option of a collapsed section fails with ErrSectionCollapsed before anything is clicked.
// A panel is single use: after Submit every call returns ErrPanelSubmitted.
type FilterPanel struct {
	controls  filterControls
	openHours playwright.Locator
	logger    *slog.Logger

	expanded  map[section]bool
	submitted bool
}

func newFilterPanel(controls filterControls, openHours playwright.Locator, logger *slog.Logger) *FilterPanel {
	return &FilterPanel{
		controls:  controls,
		openHours: openHours,
		logger:    logger,
		expanded:  make(map[section]bool),
	}
}

// ExpandParcelPoints activates the parcel points category.
func (fp *FilterPanel) ExpandParcelPoints() error {
	return fp.expand(sectionParcelPoints, fp.controls.parcelPoints, "parcel points")
}

// SelectZBox activates the Z-Box sub-option. The parcel points section must be expanded.
func (fp *FilterPanel) SelectZBox() error {
	return fp.selectOption(sectionParcelPoints, fp.controls.zBox, "Z-Box")
}

// ExpandOtherServices activates the other services category.
func (fp *FilterPanel) ExpandOtherServices() error {
	return fp.expand(sectionOtherServices, fp.controls.otherServices, "other services")
}

// SelectWheelchairAccessible activates the wheelchair option. The other services section must be expanded.
func (fp *FilterPanel) SelectWheelchairAccessible() error {
	return fp.selectOption(sectionOtherServices, fp.controls.wheelchair, "wheelchair accessible")
}

// OpenHours returns the open hours section for inspection. It is informational only.
func (fp *FilterPanel) OpenHours() playwright.Locator {
	return fp.openHours
}

// Submit applies the selected filters. The widget re-queries and re-renders afterwards,
// so callers have to wait for readiness or results again.
func (fp *FilterPanel) Submit() error {
	if fp.submitted {
		return ErrPanelSubmitted
	}
	if err := fp.controls.submit.Click(); err != nil {
		return fmt.Errorf("submitting filters: %w", err)
	}
	fp.submitted = true
	fp.logger.Debug("Submitted filters")
	return nil
}

func (fp *FilterPanel) expand(s section, control clicker, name string) error {
	if fp.submitted {
		return ErrPanelSubmitted
	}
	if err := control.Click(); err != nil {
		return fmt.Errorf("expanding %s section: %w", name, err)
	}
	fp.expanded[s] = true
	fp.logger.Debug("Expanded filter section", slog.String("section", name))
	return nil
}

func (fp *FilterPanel) selectOption(s section, control clicker, name string) error {
	if fp.submitted {
		return ErrPanelSubmitted
	}
	if !fp.expanded[s] {
		return fmt.Errorf("selecting %s: %w", name, ErrSectionCollapsed)
	}
	if err := control.Click(); err != nil {
		return fmt.Errorf("selecting %s: %w", name, err)
	}
	fp.logger.Debug("Selected filter option", slog.String("option", name))
	return nil
}
