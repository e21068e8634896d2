// Package widget is a page object for the pickup point map widget.
//
// A Page is created per test on a borrowed playwright.Page. Operations are strictly sequential
// and block on Playwright's own wait primitives; there are no retries. A typical flow:
//
//	w := widget.New(page)
//	_ = w.Navigate()
//	_ = w.AcceptConsent()
//	_ = w.SetSimulatedLocation(browserContext, geo.Point{Latitude: 50.08, Longitude: 14.43})
//	_ = w.WaitForMapReady()
//	_ = w.ApplyZBoxFilter()
//	_ = w.WaitForResults()
//	shape, snapshot, err := w.Classify()
package widget
