//go:build acceptance
// +build acceptance

package acceptance

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/pickupcheck/browser"
	"github.com/networkteam/pickupcheck/config"
	"github.com/networkteam/pickupcheck/stubwidget"
	"github.com/networkteam/pickupcheck/trace"
	"github.com/networkteam/pickupcheck/widget"
)

// artifactTail limits the trace written for a failed test.
const artifactTail = 200

// TestFixtures bundles all commonly needed test fixtures.
type TestFixtures struct {
	Config config.Config
	Stub   *StubApp
	PW     *PlaywrightFixture
	Ctx    playwright.BrowserContext
	Trace  *trace.Recorder
	Widget *WidgetPage
}

type fixtureOptions struct {
	stubOptions []stubwidget.HandlerOption
	configure   []func(*config.Config)
	skipOpen    bool
}

// FixtureOption customizes WithWidget.
type FixtureOption func(*fixtureOptions)

// WithStubOptions passes options to the stub widget. They have no effect against a live widget.
func WithStubOptions(opts ...stubwidget.HandlerOption) FixtureOption {
	return func(o *fixtureOptions) {
		o.stubOptions = append(o.stubOptions, opts...)
	}
}

// WithConfig adjusts the loaded configuration, e.g. to shorten timeouts.
func WithConfig(fn func(cfg *config.Config)) FixtureOption {
	return func(o *fixtureOptions) {
		o.configure = append(o.configure, fn)
	}
}

// WithoutOpen skips navigation and consent, leaving a blank page.
func WithoutOpen() FixtureOption {
	return func(o *fixtureOptions) {
		o.skipOpen = true
	}
}

func loadConfig(t *testing.T) config.Config {
	t.Helper()

	cfg, err := config.Load(".env", "../.env")
	require.NoError(t, err, "failed to load config")
	return cfg
}

// requireStub skips scenarios that need control over the widget backend.
func requireStub(t *testing.T) {
	t.Helper()

	if !loadConfig(t).UsesStub() {
		t.Skip("needs the stub widget, unset WIDGET_BASE_URL")
	}
}

// WithWidget creates all fixtures, opens the widget with consent accepted, registers cleanup with
// t.Cleanup() and calls the test function. When the test fails a screenshot and the trace are
// written to ARTIFACTS_DIR.
func WithWidget(t *testing.T, fn func(t *testing.T, f *TestFixtures), opts ...FixtureOption) {
	t.Helper()

	var o fixtureOptions
	for _, opt := range opts {
		opt(&o)
	}

	cfg := loadConfig(t)
	for _, configure := range o.configure {
		configure(&cfg)
	}

	recorder := trace.NewRecorder(trace.RecorderOptions{})
	logger := slog.New(recorder.Handler(slog.LevelDebug, cfg.Logger(os.Stderr).Handler())).
		With(slog.String("test", t.Name()))

	var stub *StubApp
	baseURL := cfg.BaseURL
	if cfg.UsesStub() {
		stub = NewStubApp(t, logger, o.stubOptions...)
		t.Cleanup(stub.Close)
		baseURL = stub.BaseURL
	}

	pw := NewPlaywrightFixture(t, cfg, logger)
	t.Cleanup(pw.Close)

	ctx := pw.NewContext(t, browser.ContextOptions{
		BaseURL: baseURL,
		Locale:  cfg.Locale,
	})
	t.Cleanup(func() { ctx.Close() })

	page, err := ctx.NewPage()
	require.NoError(t, err)
	recorder.AttachPage(page)

	// Registered last so it runs first, while the page is still open.
	t.Cleanup(func() {
		if t.Failed() && cfg.ArtifactsDir != "" {
			writeArtifacts(t, cfg.ArtifactsDir, page, recorder)
		}
	})

	wp := NewWidgetPage(t, ctx, widget.New(page, cfg.WidgetOptions(logger)...))
	if !o.skipOpen {
		wp.Open()
	}

	fn(t, &TestFixtures{
		Config: cfg,
		Stub:   stub,
		PW:     pw,
		Ctx:    ctx,
		Trace:  recorder,
		Widget: wp,
	})
}

func writeArtifacts(t *testing.T, dir string, page playwright.Page, recorder *trace.Recorder) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Logf("creating artifacts dir: %v", err)
		return
	}
	base := filepath.Join(dir, strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())+"-"+recorder.ID().String())

	_, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(base + ".png"),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		t.Logf("taking screenshot: %v", err)
	}

	f, err := os.Create(base + ".log")
	if err != nil {
		t.Logf("creating trace file: %v", err)
		return
	}
	defer f.Close()
	if err := recorder.Dump(f, artifactTail); err != nil {
		t.Logf("writing trace: %v", err)
	}
	t.Logf("artifacts written to %s.{png,log}", base)
}
