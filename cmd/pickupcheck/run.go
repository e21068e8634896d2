package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/networkteam/pickupcheck/probe"
	"github.com/networkteam/pickupcheck/testcase"
)

func newRunCmd(flags *globalFlags) *cobra.Command {
	var (
		casesFile string
		names     []string
		parallel  int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the location test cases",
		Long: `Probes every location of the coordinates file and compares the result with its expectation.
Without --cases or COORDINATES_FILE the built-in cases are used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cases, err := flags.loadCases(casesFile)
			if err != nil {
				return err
			}
			cases, err = testcase.Select(cases, names...)
			if err != nil {
				return err
			}

			s, err := openSession(flags)
			if err != nil {
				return err
			}
			defer s.Close()

			start := time.Now()
			results, err := s.prober.RunCases(cmd.Context(), cases, parallel)
			if err != nil {
				printResults(cmd.OutOrStdout(), results)
				return err
			}

			if s.cfg.ArtifactsDir != "" {
				for _, r := range failedResults(results) {
					if r.Outcome.Trace == nil {
						continue
					}
					path, err := writeTrace(s.cfg.ArtifactsDir, r.Case.Name, r.Outcome.Trace)
					if err != nil {
						s.logger.Warn("Writing trace failed", "case", r.Case.Name, "error", err)
						continue
					}
					fmt.Fprintf(cmd.OutOrStdout(), "  trace of %q: %s\n", r.Case.Name, path)
				}
			}

			return reportResults(cmd.OutOrStdout(), results, time.Since(start))
		},
	}

	cmd.Flags().StringVar(&casesFile, "cases", "", "coordinates file, JSON or YAML (default COORDINATES_FILE or built-in cases)")
	cmd.Flags().StringSliceVar(&names, "name", nil, "only run the named cases")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 1, "number of concurrent browser contexts")

	return cmd
}

func failedResults(results []probe.CaseResult) []probe.CaseResult {
	return lo.Reject(results, func(r probe.CaseResult, _ int) bool { return r.Passed() })
}

// reportResults prints every result and a summary line. It returns an error if any case failed.
func reportResults(w io.Writer, results []probe.CaseResult, elapsed time.Duration) error {
	printResults(w, results)

	failed := len(failedResults(results))
	summary := fmt.Sprintf("%d passed, %d failed in %s", len(results)-failed, failed, elapsed.Round(time.Millisecond))
	if failed > 0 {
		fmt.Fprintln(w, color.RedString("%s", summary))
		return fmt.Errorf("%d of %d cases failed", failed, len(results))
	}
	fmt.Fprintln(w, color.GreenString("%s", summary))
	return nil
}

func printResults(w io.Writer, results []probe.CaseResult) {
	for _, r := range results {
		want := "no results"
		if r.Case.ExpectedResultNearby {
			want = "results present"
		}

		switch {
		case r.Err != nil:
			fmt.Fprintf(w, "%s %s (%s): %v\n", color.RedString("✗"), r.Case.Name, r.Case.Point(), r.Err)
		case r.Passed():
			fmt.Fprintf(w, "%s %s (%s): %s\n", color.GreenString("✓"), r.Case.Name, r.Case.Point(), r.Outcome.Shape)
		default:
			fmt.Fprintf(w, "%s %s (%s): expected %s, got %s [%s]\n",
				color.RedString("✗"), r.Case.Name, r.Case.Point(), want, r.Outcome.Shape, r.Outcome.Snapshot)
		}
	}
}
