package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/networkteam/pickupcheck/geo"
)

func newProbeCmd(flags *globalFlags) *cobra.Command {
	var point geo.Point

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Probe a single location",
		Long:  "Simulates the given GPS position, applies the Z-Box filter and prints the classified result.",
		Example: `  pickupcheck probe --lat 50.0755 --lon 14.4378
  WIDGET_BASE_URL=https://widget.packeta.com pickupcheck probe --lat 45 --lon -30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := point.Validate(); err != nil {
				return err
			}

			s, err := openSession(flags)
			if err != nil {
				return err
			}
			defer s.Close()

			outcome, err := s.prober.Probe(cmd.Context(), point)
			if err != nil {
				if s.cfg.ArtifactsDir != "" && outcome.Trace != nil {
					if path, werr := writeTrace(s.cfg.ArtifactsDir, "probe-"+point.String(), outcome.Trace); werr == nil {
						color.Yellow("Trace written to %s", path)
					}
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", color.CyanString("Location:"), outcome.Point)
			fmt.Fprintf(out, "%s %s\n", color.CyanString("Result:  "), color.GreenString(outcome.Shape.String()))
			fmt.Fprintf(out, "%s %s\n", color.CyanString("Snapshot:"), outcome.Snapshot)
			fmt.Fprintf(out, "%s %s\n", color.CyanString("Took:    "), outcome.Duration.Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().Float64Var(&point.Latitude, "lat", 0, "latitude in degrees")
	cmd.Flags().Float64Var(&point.Longitude, "lon", 0, "longitude in degrees")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")

	return cmd
}
