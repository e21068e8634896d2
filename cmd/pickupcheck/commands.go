package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/networkteam/pickupcheck/browser"
	"github.com/networkteam/pickupcheck/config"
	"github.com/networkteam/pickupcheck/probe"
	"github.com/networkteam/pickupcheck/stubwidget"
	"github.com/networkteam/pickupcheck/testcase"
	"github.com/networkteam/pickupcheck/trace"
)

type globalFlags struct {
	envFiles []string
}

func (f *globalFlags) loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(f.envFiles...)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, cfg.Logger(os.Stderr), nil
}

// loadCases reads path, falling back to COORDINATES_FILE and then to the built-in cases.
func (f *globalFlags) loadCases(path string) ([]testcase.TestCase, error) {
	if path == "" {
		cfg, _, err := f.loadConfig()
		if err != nil {
			return nil, err
		}
		path = cfg.CoordinatesFile
	}
	return testcase.LoadOrDefault(path)
}

// session holds a launched browser and, when no widget URL is configured, a local stub widget.
type session struct {
	cfg     config.Config
	logger  *slog.Logger
	runtime *browser.Runtime
	prober  *probe.Prober

	stub *http.Server
}

func openSession(flags *globalFlags) (*session, error) {
	cfg, logger, err := flags.loadConfig()
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg, logger: logger}

	baseURL := cfg.BaseURL
	if cfg.UsesStub() {
		srv, url, err := startStub("127.0.0.1:0", logger)
		if err != nil {
			return nil, err
		}
		s.stub = srv
		baseURL = url
		logger.Info("Using local stub widget", slog.String("url", url))
	}

	s.runtime, err = browser.Launch(cfg, logger)
	if err != nil {
		return nil, errors.Join(err, s.Close())
	}
	s.prober = probe.New(s.runtime, cfg, baseURL, logger)

	return s, nil
}

func (s *session) Close() error {
	var errs []error
	if s.runtime != nil {
		errs = append(errs, s.runtime.Close())
	}
	if s.stub != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		errs = append(errs, s.stub.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

// startStub serves the stub widget on addr in the background and returns its base URL.
func startStub(addr string, logger *slog.Logger, opts ...stubwidget.HandlerOption) (*http.Server, string, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, "", fmt.Errorf("listening on %s: %w", addr, err)
	}

	opts = append([]stubwidget.HandlerOption{stubwidget.WithLogger(logger)}, opts...)
	srv := &http.Server{
		Handler:           stubwidget.NewHandler(opts...),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Stub widget stopped", slog.Any("error", err))
		}
	}()

	return srv, "http://" + ln.Addr().String(), nil
}

// writeTrace dumps the trace of a failed probe to dir and returns the file path.
func writeTrace(dir, name string, rec *trace.Recorder) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, artifactName(name)+"-"+rec.ID().String()+".log")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := rec.Dump(f, rec.Len()); err != nil {
		return "", err
	}
	return path, nil
}

func artifactName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
