package widget

import (
	"github.com/playwright-community/playwright-go"
)

const loadingIndicatorSelector = `[class*="spinnerWrapper-"]`

// Locators is the registry of semantic widget elements.
//
// Every accessor builds a new lazy playwright.Locator, so the result is re-resolved against the
// current document on each use and stays valid across reloads. A locator matching nothing is fine
// until an operation waits on it.
type Locators struct {
	page         playwright.Page
	fallbackText string
}

// NewLocators creates the registry for the given page.
func NewLocators(page playwright.Page, fallbackText string) Locators {
	return Locators{page: page, fallbackText: fallbackText}
}

// Consent dialog

func (l Locators) ConsentAccept() playwright.Locator {
	return l.page.Locator(`button[data-cookiefirst-action="accept"]`)
}

// Search

func (l Locators) SearchInput() playwright.Locator {
	return l.page.GetByTestId("input_search_filed")
}

func (l Locators) SearchSuggestions() playwright.Locator {
	return l.page.GetByTestId("autocomplete_list")
}

// Filter panel

func (l Locators) FilterToggle() playwright.Locator {
	return l.page.GetByTestId("filter_button")
}

func (l Locators) ParcelPointsSection() playwright.Locator {
	return l.page.GetByTestId("parcel_points_section")
}

// ZBoxOption is the Z-Box entry inside the parcel points section.
func (l Locators) ZBoxOption() playwright.Locator {
	return l.page.GetByTestId("CZ-JGUZHA")
}

func (l Locators) OtherServicesSection() playwright.Locator {
	return l.page.GetByTestId("filter_other_section")
}

func (l Locators) WheelchairOption() playwright.Locator {
	return l.page.GetByTestId("wheelChair")
}

func (l Locators) OpenHoursSection() playwright.Locator {
	return l.page.GetByTestId("open_hours_section")
}

func (l Locators) FilterSubmit() playwright.Locator {
	return l.page.GetByTestId("filter_submit")
}

// Branch list

func (l Locators) BranchList() playwright.Locator {
	return l.page.Locator(".branch-list")
}

func (l Locators) BranchListRows() playwright.Locator {
	return l.page.Locator(".branch-list-row")
}

// EmptyListMessage matches the branch list only while it shows the fallback text.
func (l Locators) EmptyListMessage() playwright.Locator {
	return l.BranchList().Filter(playwright.LocatorFilterOptions{
		HasText: l.fallbackText,
	})
}

// Map

func (l Locators) Markers() playwright.Locator {
	return l.page.Locator(".marker")
}

func (l Locators) Pointers() playwright.Locator {
	return l.page.Locator(".pointer")
}

// DetailedMarkers matches individual results, either a marker or a pointer glyph.
func (l Locators) DetailedMarkers() playwright.Locator {
	return l.Markers().Or(l.Pointers())
}

func (l Locators) ClusterMarkers() playwright.Locator {
	return l.page.Locator(".maplibregl-marker")
}

func (l Locators) MapCanvas() playwright.Locator {
	return l.page.Locator("#map canvas")
}

// MapLoadingIndicator matches the spinner overlay. Its class carries a generated suffix
// (e.g. spinnerWrapper-0-1-194) and may follow other classes, so the stable part is matched anywhere.
func (l Locators) MapLoadingIndicator() playwright.Locator {
	return l.page.Locator(loadingIndicatorSelector)
}
