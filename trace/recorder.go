package trace

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gofrs/uuid"
	"github.com/playwright-community/playwright-go"
)

// Source attribute values of recorded browser events.
const (
	SourceConsole  = "console"
	SourcePage     = "page"
	SourceNetwork  = "network"
	sourceAttrName = "source"
)

// Recorder keeps the most recent log records and browser events of one scenario.
type Recorder struct {
	id      uuid.UUID
	records *window[slog.Record]
	now     func() time.Time
}

// RecorderOptions configures a Recorder.
type RecorderOptions struct {
	// Capacity is the number of records kept. Default: 500
	Capacity int
}

// NewRecorder creates a Recorder with a fresh random ID.
func NewRecorder(options RecorderOptions) *Recorder {
	capacity := options.Capacity
	if capacity <= 0 {
		capacity = 500
	}

	return &Recorder{
		id:      uuid.Must(uuid.NewV4()),
		records: newWindow[slog.Record](capacity),
		now:     time.Now,
	}
}

// ID identifies the recorded run, e.g. in artifact file names.
func (r *Recorder) ID() uuid.UUID {
	return r.id
}

// Record stores a log record.
func (r *Recorder) Record(record slog.Record) {
	r.records.push(record)
}

// Handler returns a slog.Handler recording records at or above level and forwarding them to next.
// next may be nil.
func (r *Recorder) Handler(level slog.Leveler, next slog.Handler) slog.Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{
		recorder: r,
		level:    level,
		next:     next,
	}
}

// Tail returns the n most recent records, oldest first.
func (r *Recorder) Tail(n int) []slog.Record {
	return r.records.last(n)
}

// Len returns the number of records kept.
func (r *Recorder) Len() int {
	return r.records.len()
}

// Dump writes the n most recent records as text lines to w.
func (r *Recorder) Dump(w io.Writer, n int) error {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})

	if dropped := r.records.dropped(); dropped > 0 {
		if _, err := fmt.Fprintf(w, "# trace %s: %d earlier records dropped\n", r.id, dropped); err != nil {
			return err
		}
	}

	for _, record := range r.Tail(n) {
		if err := h.Handle(context.Background(), record); err != nil {
			return fmt.Errorf("writing trace record: %w", err)
		}
	}
	return nil
}

// PageEvents is the part of playwright.Page the recorder subscribes to.
type PageEvents interface {
	OnConsole(fn func(playwright.ConsoleMessage))
	OnPageError(fn func(error))
	OnRequestFailed(fn func(playwright.Request))
	OnResponse(fn func(playwright.Response))
}

// AttachPage records console messages, uncaught page errors, failed requests and
// error responses (status >= 400) of page.
func (r *Recorder) AttachPage(page PageEvents) {
	page.OnConsole(func(msg playwright.ConsoleMessage) {
		r.Record(r.consoleRecord(msg.Type(), msg.Text()))
	})
	page.OnPageError(func(err error) {
		r.Record(r.pageErrorRecord(err))
	})
	page.OnRequestFailed(func(req playwright.Request) {
		r.Record(r.requestFailedRecord(req.Method(), req.URL(), req.Failure()))
	})
	page.OnResponse(func(resp playwright.Response) {
		if resp.Status() >= 400 {
			r.Record(r.errorResponseRecord(resp.Status(), resp.URL()))
		}
	})
}

func (r *Recorder) consoleRecord(typ, text string) slog.Record {
	level := slog.LevelInfo
	switch typ {
	case "error":
		level = slog.LevelError
	case "warning":
		level = slog.LevelWarn
	case "debug", "trace":
		level = slog.LevelDebug
	}

	record := slog.NewRecord(r.now(), level, text, 0)
	record.AddAttrs(slog.String(sourceAttrName, SourceConsole), slog.String("type", typ))
	return record
}

func (r *Recorder) pageErrorRecord(err error) slog.Record {
	record := slog.NewRecord(r.now(), slog.LevelError, "Uncaught page error", 0)
	record.AddAttrs(slog.String(sourceAttrName, SourcePage), slog.Any("error", err))
	return record
}

func (r *Recorder) requestFailedRecord(method, url string, failure error) slog.Record {
	record := slog.NewRecord(r.now(), slog.LevelWarn, "Request failed", 0)
	record.AddAttrs(
		slog.String(sourceAttrName, SourceNetwork),
		slog.String("method", method),
		slog.String("url", url),
	)
	if failure != nil {
		record.AddAttrs(slog.String("failure", failure.Error()))
	}
	return record
}

func (r *Recorder) errorResponseRecord(status int, url string) slog.Record {
	record := slog.NewRecord(r.now(), slog.LevelWarn, "Error response", 0)
	record.AddAttrs(
		slog.String(sourceAttrName, SourceNetwork),
		slog.Int("status", status),
		slog.String("url", url),
	)
	return record
}
