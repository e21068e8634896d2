// Package probe runs the location detection flow of the widget outside of go test:
// simulate a position, filter for Z-Boxes and classify what the widget renders.
package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/playwright-community/playwright-go"
	"golang.org/x/sync/errgroup"

	"github.com/networkteam/pickupcheck/browser"
	"github.com/networkteam/pickupcheck/config"
	"github.com/networkteam/pickupcheck/geo"
	"github.com/networkteam/pickupcheck/testcase"
	"github.com/networkteam/pickupcheck/trace"
	"github.com/networkteam/pickupcheck/widget"
)

// Outcome is the classified result for one location.
type Outcome struct {
	Point    geo.Point
	Shape    widget.Shape
	Snapshot widget.Snapshot
	Duration time.Duration
	// Trace holds browser events and step logs of the run.
	Trace *trace.Recorder
}

// CaseResult pairs a test case with its outcome or error.
type CaseResult struct {
	Case    testcase.TestCase
	Outcome Outcome
	Err     error
}

// Passed reports whether the observed shape matches the expectation.
func (r CaseResult) Passed() bool {
	if r.Err != nil {
		return false
	}
	want := widget.ShapeNoResults
	if r.Case.ExpectedResultNearby {
		want = widget.ShapeResultsPresent
	}
	return r.Outcome.Shape == want
}

// ContextFactory creates isolated browser contexts.
type ContextFactory interface {
	NewContext(options browser.ContextOptions) (playwright.BrowserContext, error)
}

// Prober runs probes against one widget deployment.
type Prober struct {
	contexts ContextFactory
	cfg      config.Config
	baseURL  string
	logger   *slog.Logger
}

// New creates a prober. baseURL overrides cfg.BaseURL, e.g. for a locally started stub widget.
func New(contexts ContextFactory, cfg config.Config, baseURL string, logger *slog.Logger) *Prober {
	if baseURL == "" {
		baseURL = cfg.BaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Prober{
		contexts: contexts,
		cfg:      cfg,
		baseURL:  baseURL,
		logger:   logger,
	}
}

// Probe opens the widget in a fresh context, simulates point, applies the Z-Box filter and classifies the result.
// ctx is checked between steps; a running browser wait is bounded by its own timeout.
func (p *Prober) Probe(ctx context.Context, point geo.Point) (outcome Outcome, err error) {
	start := time.Now()
	outcome.Point = point
	outcome.Trace = trace.NewRecorder(trace.RecorderOptions{})

	logger := slog.New(outcome.Trace.Handler(slog.LevelDebug, p.logger.Handler())).
		With(slog.String("point", point.String()), slog.String("run", outcome.Trace.ID().String()))

	if err := point.Validate(); err != nil {
		return outcome, err
	}

	bc, err := p.contexts.NewContext(browser.ContextOptions{
		BaseURL:  p.baseURL,
		Locale:   p.cfg.Locale,
		Location: &point,
	})
	if err != nil {
		return outcome, err
	}
	defer func() {
		err = errors.Join(err, bc.Close())
	}()

	page, err := bc.NewPage()
	if err != nil {
		return outcome, fmt.Errorf("opening page: %w", err)
	}
	outcome.Trace.AttachPage(page)

	w := widget.New(page, p.cfg.WidgetOptions(logger)...)

	steps := []struct {
		name string
		fn   func() error
	}{
		{"navigate", w.Navigate},
		{"accept consent", w.AcceptConsent},
		{"set location", func() error { return w.SetSimulatedLocation(bc, point) }},
		{"wait for map", w.WaitForMapReady},
		{"apply Z-Box filter", w.ApplyZBoxFilter},
		{"wait for filtered map", w.WaitForMapReady},
		{"wait for results", w.WaitForSettled},
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return outcome, err
		}
		if err := step.fn(); err != nil {
			return outcome, fmt.Errorf("%s: %w", step.name, err)
		}
	}

	outcome.Shape, outcome.Snapshot, err = w.Classify()
	outcome.Duration = time.Since(start)
	if err != nil {
		return outcome, err
	}

	logger.Info("Probed location",
		slog.String("shape", outcome.Shape.String()),
		slog.String("snapshot", outcome.Snapshot.String()),
		slog.Duration("duration", outcome.Duration),
	)
	return outcome, nil
}

// RunCases probes all cases with at most parallel concurrent browser contexts.
// Results keep the order of cases. Per-case failures are reported in CaseResult.Err;
// the returned error is only set when ctx was cancelled.
func (p *Prober) RunCases(ctx context.Context, cases []testcase.TestCase, parallel int) ([]CaseResult, error) {
	if parallel < 1 {
		parallel = 1
	}

	results := make([]CaseResult, len(cases))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, tc := range cases {
		g.Go(func() error {
			outcome, err := p.Probe(gctx, tc.Point())
			results[i] = CaseResult{Case: tc, Outcome: outcome, Err: err}
			if err != nil {
				p.logger.Warn("Probe failed", slog.String("case", tc.Name), slog.Any("error", err))
			}
			return nil
		})
	}
	_ = g.Wait()

	return results, ctx.Err()
}
