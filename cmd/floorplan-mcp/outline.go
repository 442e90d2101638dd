package main

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/floorplan-mcp/internal/outline"
)

func newOutlineCmd() *cobra.Command {
	var asGeoJSON bool

	cmd := &cobra.Command{
		Use:   "outline <plan.json>",
		Short: "Trace the exterior outline of a unit plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			plan, err := outline.LoadPlan(args[0])
			if err != nil {
				return err
			}
			res := outline.Trace(*plan)
			if asGeoJSON {
				data, err := res.GeoJSON()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(append(data, '\n'))
				return err
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().BoolVar(&asGeoJSON, "geojson", false, "Print the outline as a GeoJSON Feature")
	return cmd
}

func newEnvelopeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "envelope <placements.json>",
		Short: "Compute the convex hull of several placed unit plans",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			placements, err := outline.LoadPlacements(args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), outline.Envelope(placements))
		},
	}
}
