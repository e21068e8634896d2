package trace

import (
	"context"
	"log/slog"
	"slices"

	"github.com/samber/lo"
)

// Handler is a slog.Handler that records into a Recorder and optionally forwards to another handler.
type Handler struct {
	recorder *Recorder
	level    slog.Leveler
	next     slog.Handler

	attrs  []slog.Attr
	groups []string
}

// Enabled reports whether either the recorder or the next handler wants the level.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	if level >= h.level.Level() {
		return true
	}
	return h.next != nil && h.next.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level >= h.level.Level() {
		h.recorder.Record(h.flatten(record))
	}

	if h.next != nil && h.next.Enabled(ctx, record.Level) {
		return h.next.Handle(ctx, record)
	}
	return nil
}

// flatten copies record with the handler attributes first and record attributes nested in the open groups.
func (h *Handler) flatten(record slog.Record) slog.Record {
	out := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	out.AddAttrs(h.attrs...)

	attrs := make([]slog.Attr, 0, record.NumAttrs())
	record.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, attr)
		return true
	})
	out.AddAttrs(appendAttrsToGroup(h.groups, nil, attrs...)...)

	return out
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var next slog.Handler
	if h.next != nil {
		next = h.next.WithAttrs(attrs)
	}

	return &Handler{
		recorder: h.recorder,
		level:    h.level,
		next:     next,

		attrs:  appendAttrsToGroup(h.groups, h.attrs, attrs...),
		groups: h.groups,
	}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	var next slog.Handler
	if h.next != nil {
		next = h.next.WithGroup(name)
	}

	return &Handler{
		recorder: h.recorder,
		level:    h.level,
		next:     next,

		attrs:  h.attrs,
		groups: append(slices.Clone(h.groups), name),
	}
}

// appendAttrsToGroup adds newAttrs inside the nested groups path of actualAttrs.
func appendAttrsToGroup(groups []string, actualAttrs []slog.Attr, newAttrs ...slog.Attr) []slog.Attr {
	actualAttrs = slices.Clone(actualAttrs)

	if len(groups) == 0 {
		return append(actualAttrs, newAttrs...)
	}

	for i := range actualAttrs {
		attr := actualAttrs[i]
		if attr.Key == groups[0] && attr.Value.Kind() == slog.KindGroup {
			actualAttrs[i] = slog.Group(groups[0], lo.ToAnySlice(appendAttrsToGroup(groups[1:], attr.Value.Group(), newAttrs...))...)
			return actualAttrs
		}
	}

	return append(
		actualAttrs,
		slog.Group(
			groups[0],
			lo.ToAnySlice(appendAttrsToGroup(groups[1:], []slog.Attr{}, newAttrs...))...,
		),
	)
}
