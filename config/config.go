package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/mstoykov/envconfig"

	"github.com/networkteam/pickupcheck/widget"
)

// Browser names supported by Playwright.
const (
	BrowserChromium = "chromium"
	BrowserFirefox  = "firefox"
	BrowserWebKit   = "webkit"
)

// Config controls the target widget, the browser and wait budgets.
type Config struct {
	// BaseURL of the widget, e.g. https://widget.packeta.com. Empty runs against the local stub widget.
	BaseURL string `envconfig:"WIDGET_BASE_URL"`
	// EntryPath is the route of the widget page, relative to BaseURL.
	EntryPath string `envconfig:"WIDGET_ENTRY_PATH" default:"/v6/"`
	// Locale of the browser context. The fallback text of the branch list depends on it.
	Locale string `envconfig:"WIDGET_LOCALE" default:"en-US"`
	// FallbackText overrides the empty branch list text for non-English locales.
	FallbackText string `envconfig:"WIDGET_FALLBACK_TEXT"`

	Browser  string        `envconfig:"BROWSER" default:"chromium"`
	Headless bool          `envconfig:"HEADLESS" default:"true"`
	SlowMo   time.Duration `envconfig:"SLOW_MO"`

	// CoordinatesFile holds the data-driven location test cases (JSON or YAML).
	// Empty uses the built-in cases of package testcase.
	CoordinatesFile string `envconfig:"COORDINATES_FILE"`
	// ArtifactsDir receives screenshots and traces of failed scenarios. Empty disables artifacts.
	ArtifactsDir string `envconfig:"ARTIFACTS_DIR"`

	SpinnerTimeout time.Duration `envconfig:"MAP_SPINNER_TIMEOUT" default:"15s"`
	CanvasTimeout  time.Duration `envconfig:"MAP_CANVAS_TIMEOUT" default:"5s"`
	ConsentTimeout time.Duration `envconfig:"CONSENT_TIMEOUT" default:"5s"`
	ResultsTimeout time.Duration `envconfig:"RESULTS_TIMEOUT" default:"15s"`

	LogLevel slog.Level `envconfig:"LOG_LEVEL" default:"INFO"`
}

// Load reads optional .env files and then the process environment.
// Missing env files are ignored; variables already set in the environment win.
func Load(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", file, err)
		}
	}
	return LoadFromLookup(os.LookupEnv)
}

// LoadFromLookup builds a Config from the given variable lookup.
func LoadFromLookup(lookup func(key string) (string, bool)) (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg, lookup); err != nil {
		return Config{}, fmt.Errorf("processing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the browser name and wait budgets.
func (c Config) Validate() error {
	var errs []error

	switch c.Browser {
	case BrowserChromium, BrowserFirefox, BrowserWebKit:
	default:
		errs = append(errs, fmt.Errorf("unknown browser %q", c.Browser))
	}

	for name, d := range map[string]time.Duration{
		"MAP_SPINNER_TIMEOUT": c.SpinnerTimeout,
		"MAP_CANVAS_TIMEOUT":  c.CanvasTimeout,
		"CONSENT_TIMEOUT":     c.ConsentTimeout,
		"RESULTS_TIMEOUT":     c.ResultsTimeout,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", name, d))
		}
	}
	if c.SlowMo < 0 {
		errs = append(errs, fmt.Errorf("SLOW_MO must not be negative, got %s", c.SlowMo))
	}

	return errors.Join(errs...)
}

// UsesStub reports whether scenarios run against the local stub widget.
func (c Config) UsesStub() bool {
	return c.BaseURL == ""
}

// WidgetOptions maps the configuration to page object options.
func (c Config) WidgetOptions(logger *slog.Logger) []widget.Option {
	return []widget.Option{
		widget.WithEntryPath(c.EntryPath),
		widget.WithFallbackText(c.FallbackText),
		widget.WithMapTimeouts(c.SpinnerTimeout, c.CanvasTimeout),
		widget.WithConsentTimeout(c.ConsentTimeout),
		widget.WithResultsTimeout(c.ResultsTimeout),
		widget.WithLogger(logger),
	}
}

// Logger returns a text logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}
