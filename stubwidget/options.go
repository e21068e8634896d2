package stubwidget

import (
	"log/slog"
	"time"

	"github.com/networkteam/pickupcheck/geo"
	"github.com/networkteam/pickupcheck/widget"
)

// handlerOptions holds configuration for a stub widget Handler.
// This is unexported; use HandlerOption functions to configure.
type handlerOptions struct {
	// Catalog serves the pickup points.
	Catalog *Catalog
	// RadiusKm limits location based results.
	RadiusKm float64
	// LoadDelay delays every points response, keeping the loading indicator attached.
	LoadDelay time.Duration
	// ConsentDelay delays showing the consent dialog after page load.
	ConsentDelay time.Duration
	// FallbackText is shown in the branch list without results.
	FallbackText string
	// DefaultCenter is used when the page cannot read a geolocation.
	DefaultCenter geo.Point

	Logger *slog.Logger
}

func defaultHandlerOptions() handlerOptions {
	return handlerOptions{
		RadiusKm:      10,
		ConsentDelay:  300 * time.Millisecond,
		FallbackText:  widget.FallbackListText,
		DefaultCenter: geo.Point{Latitude: 50.0755, Longitude: 14.4378},
		Logger:        slog.Default(),
	}
}

// HandlerOption configures a stub widget Handler.
type HandlerOption func(*handlerOptions)

// WithCatalog sets the pickup points served by the stub.
// Default is DefaultCatalog().
func WithCatalog(catalog *Catalog) HandlerOption {
	return func(o *handlerOptions) {
		o.Catalog = catalog
	}
}

// WithRadius sets the search radius around the simulated location in kilometres.
// Default is 10.
func WithRadius(km float64) HandlerOption {
	return func(o *handlerOptions) {
		if km > 0 {
			o.RadiusKm = km
		}
	}
}

// WithLoadDelay delays all point responses, e.g. to observe the loading indicator.
func WithLoadDelay(delay time.Duration) HandlerOption {
	return func(o *handlerOptions) {
		o.LoadDelay = delay
	}
}

// WithConsentDelay sets how long after page load the consent dialog appears.
// Default is 300ms.
func WithConsentDelay(delay time.Duration) HandlerOption {
	return func(o *handlerOptions) {
		o.ConsentDelay = delay
	}
}

// WithLogger sets the logger for request logging.
func WithLogger(logger *slog.Logger) HandlerOption {
	return func(o *handlerOptions) {
		if logger != nil {
			o.Logger = logger
		}
	}
}
