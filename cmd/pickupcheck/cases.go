package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/networkteam/pickupcheck/testcase"
)

func newCasesCmd(flags *globalFlags) *cobra.Command {
	var casesFile string

	cmd := &cobra.Command{
		Use:   "cases",
		Short: "List the location test cases",
		Long:  "Lists the cases of --cases, COORDINATES_FILE or the built-in cases, grouped by expectation.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cases, err := flags.loadCases(casesFile)
			if err != nil {
				return err
			}

			nearby, remote := testcase.SplitByExpectation(cases)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, color.CyanString("Expecting nearby results (%d):", len(nearby)))
			for _, tc := range nearby {
				fmt.Fprintf(out, "  %-24s %s\n", tc.Name, tc.Point())
			}
			fmt.Fprintln(out, color.CyanString("Expecting no results (%d):", len(remote)))
			for _, tc := range remote {
				fmt.Fprintf(out, "  %-24s %s\n", tc.Name, tc.Point())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&casesFile, "cases", "", "coordinates file, JSON or YAML (default COORDINATES_FILE or built-in cases)")

	return cmd
}
