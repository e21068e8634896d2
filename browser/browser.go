// Package browser starts Playwright and hands out isolated browser contexts
// prepared for geolocation simulation.
package browser

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/playwright-community/playwright-go"

	"github.com/networkteam/pickupcheck/config"
	"github.com/networkteam/pickupcheck/geo"
)

// DefaultLocation is reported by new contexts until a scenario overrides it (Prague city centre).
var DefaultLocation = geo.Point{Latitude: 50.0755, Longitude: 14.4378}

// Runtime is a running Playwright driver with one launched browser.
type Runtime struct {
	PW      *playwright.Playwright
	Browser playwright.Browser

	logger *slog.Logger
}

// Launch starts Playwright and the browser type named in cfg.
func Launch(cfg config.Config, logger *slog.Logger) (*Runtime, error) {
	if logger == nil {
		logger = slog.Default()
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("starting playwright: %w", err)
	}

	browserType, err := browserTypeFor(pw, cfg.Browser)
	if err != nil {
		_ = pw.Stop()
		return nil, err
	}

	launchOptions := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	}
	if cfg.SlowMo > 0 {
		launchOptions.SlowMo = playwright.Float(float64(cfg.SlowMo.Milliseconds()))
	}

	b, err := browserType.Launch(launchOptions)
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("launching %s: %w", cfg.Browser, err)
	}

	logger.Debug("Launched browser",
		slog.String("browser", cfg.Browser),
		slog.Bool("headless", cfg.Headless),
		slog.String("version", b.Version()),
	)

	return &Runtime{PW: pw, Browser: b, logger: logger}, nil
}

func browserTypeFor(pw *playwright.Playwright, name string) (playwright.BrowserType, error) {
	switch name {
	case config.BrowserChromium:
		return pw.Chromium, nil
	case config.BrowserFirefox:
		return pw.Firefox, nil
	case config.BrowserWebKit:
		return pw.WebKit, nil
	default:
		return nil, fmt.Errorf("unknown browser %q", name)
	}
}

// ContextOptions configures a new browser context.
type ContextOptions struct {
	// BaseURL resolves relative navigation such as the widget entry path.
	BaseURL string
	// Locale of the context, e.g. "en-US".
	Locale string
	// Location is the initial simulated position. Default: DefaultLocation
	Location *geo.Point
}

// NewContext creates a context with isolated cookies and storage. Geolocation permission is granted
// up front so later overrides via SetGeolocation are visible to the page without a prompt.
func (r *Runtime) NewContext(options ContextOptions) (playwright.BrowserContext, error) {
	location := DefaultLocation
	if options.Location != nil {
		location = *options.Location
	}
	if err := location.Validate(); err != nil {
		return nil, err
	}

	contextOptions := playwright.BrowserNewContextOptions{
		Permissions: []string{"geolocation"},
		Geolocation: &playwright.Geolocation{
			Latitude:  location.Latitude,
			Longitude: location.Longitude,
		},
	}
	if options.BaseURL != "" {
		contextOptions.BaseURL = playwright.String(options.BaseURL)
	}
	if options.Locale != "" {
		contextOptions.Locale = playwright.String(options.Locale)
	}

	ctx, err := r.Browser.NewContext(contextOptions)
	if err != nil {
		return nil, fmt.Errorf("creating browser context: %w", err)
	}
	return ctx, nil
}

// Close releases the browser and stops the driver.
func (r *Runtime) Close() error {
	return errors.Join(r.Browser.Close(), r.PW.Stop())
}
