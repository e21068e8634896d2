package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/networkteam/pickupcheck/stubwidget"
)

func newStubCmd(flags *globalFlags) *cobra.Command {
	var (
		addr      string
		radius    float64
		loadDelay time.Duration
	)

	cmd := &cobra.Command{
		Use:   "stub",
		Short: "Serve the local stub widget",
		Long:  "Serves a stand-in for the pickup point widget with a fixed catalog of Czech pickup points.",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := flags.loadConfig()
			if err != nil {
				return err
			}

			srv, url, err := startStub(addr, logger,
				stubwidget.WithRadius(radius),
				stubwidget.WithLoadDelay(loadDelay),
			)
			if err != nil {
				return err
			}
			color.Green("Stub widget listening on %s%s", url, stubwidget.EntryPath)

			<-cmd.Context().Done()

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			logger.Info("Shutting down stub widget", slog.String("url", url))
			return srv.Shutdown(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	cmd.Flags().Float64Var(&radius, "radius", 10, "search radius around the location in km")
	cmd.Flags().DurationVar(&loadDelay, "load-delay", 0, "delay of every points response")

	return cmd
}
