package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pickupcheck",
		Short: "Checks location detection of the pickup point widget",
		Long: `Drives the pickup point widget in a real browser: simulates GPS positions,
filters for Z-Box points and checks whether nearby results are shown.

Without WIDGET_BASE_URL the checks run against a local stub widget.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := &globalFlags{}
	rootCmd.PersistentFlags().StringSliceVar(&flags.envFiles, "env-file", []string{".env"}, "env files to load before the environment")

	rootCmd.AddCommand(
		newProbeCmd(flags),
		newRunCmd(flags),
		newCasesCmd(flags),
		newStubCmd(flags),
	)

	return rootCmd
}
