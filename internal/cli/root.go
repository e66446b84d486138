// Package cli provides the weatherviz command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/weather-viz/internal/config"
	"github.com/couchcryptid/weather-viz/internal/export"
	"github.com/couchcryptid/weather-viz/internal/ingest"
	"github.com/couchcryptid/weather-viz/internal/observability"
	"github.com/couchcryptid/weather-viz/internal/pipeline"
	"github.com/couchcryptid/weather-viz/internal/render"
	"github.com/couchcryptid/weather-viz/internal/report"
)

// Version is set at build time.
var Version = "0.1.0"

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "weatherviz",
		Short: "Clean a weather CSV, compute statistics and render charts",
		Long: `weatherviz ingests a daily weather CSV (Date, Temperature, Humidity,
Rainfall), cleans and imputes missing values, computes global, monthly and
seasonal statistics, renders four chart images and exports a cleaned CSV
plus a text summary.`,
		Version:       Version,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringP("input", "i", config.DefaultInput, "Path to the input CSV")
	rootCmd.Flags().StringP("out-dir", "o", config.DefaultOutDir, "Output directory for charts and exports")
	rootCmd.Flags().Bool("no-show", false, "Do not open charts in the image viewer (headless mode)")
	rootCmd.Flags().String("log-level", config.DefaultLogLevel, "Log level (debug|info|warn|error)")
	rootCmd.Flags().String("log-format", config.DefaultLogFormat, "Log format (text|json)")

	return rootCmd
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	logger := observability.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	// Idempotent: an existing directory is fine. Created before any load so
	// a missing-input failure leaves no half-made tree elsewhere.
	if err := os.MkdirAll(cfg.OutDir, 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p := pipeline.New(
		ingest.NewLoader(logger),
		render.New(cfg.OutDir, !cfg.NoShow, logger),
		export.New(cfg.OutDir, logger),
		report.NewConsole(cmd.OutOrStdout()),
		logger,
		metrics,
		clockwork.NewRealClock(),
	)

	return p.Run(cmd.Context(), cfg.Input, cfg.OutDir)
}

// Execute runs the root command and returns the process exit code. All
// fatal conditions print a single diagnostic and map to exit code 1.
func Execute() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
