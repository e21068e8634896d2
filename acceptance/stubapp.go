//go:build acceptance
// +build acceptance

package acceptance

import (
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/networkteam/pickupcheck/stubwidget"
)

// StubApp serves the stub widget for scenarios that run without WIDGET_BASE_URL.
type StubApp struct {
	Server  *httptest.Server
	BaseURL string
}

// NewStubApp starts the stub widget with the given handler options.
func NewStubApp(t *testing.T, logger *slog.Logger, opts ...stubwidget.HandlerOption) *StubApp {
	t.Helper()

	opts = append([]stubwidget.HandlerOption{stubwidget.WithLogger(logger)}, opts...)
	server := httptest.NewServer(stubwidget.NewHandler(opts...))

	return &StubApp{
		Server:  server,
		BaseURL: server.URL,
	}
}

// Close shuts down the test server.
func (app *StubApp) Close() {
	app.Server.Close()
}
