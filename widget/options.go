package widget

import (
	"log/slog"
	"time"
)

const (
	// DefaultEntryPath is the route of the standalone widget page.
	DefaultEntryPath = "/v6/"
	// FallbackListText is shown in the branch list when no pickup point matches.
	FallbackListText = "The list of pick-up points is not available."

	DefaultSpinnerTimeout = 15 * time.Second
	DefaultCanvasTimeout  = 5 * time.Second
	DefaultConsentTimeout = 5 * time.Second
	DefaultResultsTimeout = 15 * time.Second
)

// options holds configuration for a Page.
// This is unexported; use Option functions to configure.
type options struct {
	// EntryPath is navigated to by Navigate, relative to the context base URL.
	EntryPath string
	// FallbackText is the branch list text expected when there are no results.
	FallbackText string
	// SpinnerTimeout bounds the wait for the loading indicator to detach.
	SpinnerTimeout time.Duration
	// CanvasTimeout bounds the wait for the map canvas to become visible.
	CanvasTimeout time.Duration
	// ConsentTimeout bounds the wait for the consent dialog to show up.
	ConsentTimeout time.Duration
	// ResultsTimeout bounds the wait for list rows or the fallback message.
	ResultsTimeout time.Duration

	Logger *slog.Logger
}

func defaultOptions() options {
	return options{
		EntryPath:      DefaultEntryPath,
		FallbackText:   FallbackListText,
		SpinnerTimeout: DefaultSpinnerTimeout,
		CanvasTimeout:  DefaultCanvasTimeout,
		ConsentTimeout: DefaultConsentTimeout,
		ResultsTimeout: DefaultResultsTimeout,
		Logger:         slog.Default(),
	}
}

// Option configures a Page.
type Option func(*options)

// WithEntryPath sets the path loaded by Navigate.
// Default is "/v6/".
func WithEntryPath(path string) Option {
	return func(o *options) {
		if path != "" {
			o.EntryPath = path
		}
	}
}

// WithFallbackText overrides the text of the empty branch list (e.g. for other locales).
func WithFallbackText(text string) Option {
	return func(o *options) {
		if text != "" {
			o.FallbackText = text
		}
	}
}

// WithMapTimeouts sets the budgets of both map readiness stages.
// Non-positive values keep the defaults (15s for the loading indicator, 5s for the canvas).
func WithMapTimeouts(spinner, canvas time.Duration) Option {
	return func(o *options) {
		if spinner > 0 {
			o.SpinnerTimeout = spinner
		}
		if canvas > 0 {
			o.CanvasTimeout = canvas
		}
	}
}

// WithConsentTimeout sets how long AcceptConsent waits for the dialog before treating it as dismissed.
func WithConsentTimeout(timeout time.Duration) Option {
	return func(o *options) {
		if timeout > 0 {
			o.ConsentTimeout = timeout
		}
	}
}

// WithResultsTimeout sets how long WaitForResults waits.
func WithResultsTimeout(timeout time.Duration) Option {
	return func(o *options) {
		if timeout > 0 {
			o.ResultsTimeout = timeout
		}
	}
}

// WithLogger sets the logger used for step logging.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

func millis(d time.Duration) *float64 {
	ms := float64(d.Milliseconds())
	return &ms
}
