package main

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/floorplan-mcp/internal/config"
	"github.com/ironsheep/floorplan-mcp/internal/digitizer"
)

type digitizeFlags struct {
	minRegionPixels int
	whitelist       string
	noOCR           bool
	plan            bool
}

func newDigitizeCmd(cfg *config.Config) *cobra.Command {
	var f digitizeFlags

	cmd := &cobra.Command{
		Use:   "digitize <image>",
		Short: "Digitize a floor plan image and print the rooms as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			opts := cfg.Digitize()
			if f.minRegionPixels > 0 {
				opts.MinRegionPixels = f.minRegionPixels
			}
			if f.whitelist != "" {
				opts.OCRWhitelist = f.whitelist
			}
			opts.DisableOCR = f.noOCR

			res, err := digitizer.New(cfg.OCR()).DigitizeFile(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			if f.plan {
				return writeJSON(cmd.OutOrStdout(), res.Plan())
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().IntVar(&f.minRegionPixels, "min-region-pixels", 0, "Drop regions smaller than this many pixels (default from FLOORPLAN_MIN_REGION_PIXELS)")
	cmd.Flags().StringVar(&f.whitelist, "whitelist", "", "OCR character whitelist (default from FLOORPLAN_OCR_WHITELIST)")
	cmd.Flags().BoolVar(&f.noOCR, "no-ocr", false, "Skip scale calibration and report pixel units")
	cmd.Flags().BoolVar(&f.plan, "plan", false, "Print an outline plan (overallDimensions + spaces) instead of the rooms")
	return cmd
}
