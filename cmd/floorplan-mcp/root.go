package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/ironsheep/floorplan-mcp/internal/config"
	"github.com/ironsheep/floorplan-mcp/internal/server"
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "floorplan-mcp",
		Short: "MCP server and CLI for digitizing colour-coded floor plans",
		Long: `floorplan-mcp digitizes colour-coded floor plan rasters into room
rectangles and traces unit outlines.

Without a subcommand it runs the MCP server on stdin/stdout.

Environment variables:
  FLOORPLAN_MCP_LOG_LEVEL=debug    Enable debug logging
  FLOORPLAN_MIN_REGION_PIXELS      Minimum room size in pixels (1500)
  FLOORPLAN_OCR_WHITELIST          OCR character whitelist (0123456789)
  FLOORPLAN_OCR_LANGUAGE           Tesseract language (eng)
  FLOORPLAN_TESSDATA_PREFIX        Tesseract data directory
  FLOORPLAN_OCR_TIMEOUT            OCR timeout in seconds (30)
  FLOORPLAN_MAX_PIXELS             Largest accepted image (40000000)
  FLOORPLAN_OCR_MIN_WIDTH          Upscale narrower images before OCR (1600)`,
		Version:       fmt.Sprintf("%s\n  Build time: %s\n  Git commit: %s", Version, BuildTime, GitCommit),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, cfg)
		},
	}
	root.SetVersionTemplate(`floorplan-mcp {{printf "%s\n" .Version}}`)

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the MCP server on stdin/stdout",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(cmd, cfg)
			},
		},
		newDigitizeCmd(cfg),
		newOutlineCmd(),
		newEnvelopeCmd(),
	)
	return root
}

func runServe(cmd *cobra.Command, cfg *config.Config) error {
	cmd.SilenceUsage = true

	srv := server.New(cfg)
	srv.SetVersion(Version)
	if err := srv.Run(cmd.Context()); err != nil {
		log.Printf("Server error: %v", err)
		return err
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
