// Package pipeline orchestrates the load-clean-aggregate-render-export run.
package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/weather-viz/internal/domain"
	"github.com/couchcryptid/weather-viz/internal/export"
	"github.com/couchcryptid/weather-viz/internal/observability"
	"github.com/couchcryptid/weather-viz/internal/render"
)

// Loader reads raw records from the input CSV.
type Loader interface {
	Load(path string) ([]domain.RawRecord, error)
}

// Renderer produces the chart artifacts from the cleaned table.
type Renderer interface {
	Render(obs []domain.Observation, totals []domain.MonthlyRainfall) (render.Artifacts, error)
}

// Exporter writes the cleaned table and the summary report.
type Exporter interface {
	Export(obs []domain.Observation, summary domain.TemperatureSummary, charts render.Artifacts) (export.Files, error)
}

// Reporter prints the human-readable sections on stdout.
type Reporter interface {
	Preview(obs []domain.Observation)
	TemperatureSummary(s domain.TemperatureSummary)
	MonthlyStats(stats []domain.MonthlyTemperature)
	SeasonalAverages(avgs []domain.SeasonalAverage)
	ArtifactPaths(cleanedCSV, plotsDir, summary string)
}

// Pipeline wires the stages together. Data flows strictly forward; every
// stage runs exactly once and the first error stops the run.
type Pipeline struct {
	loader   Loader
	renderer Renderer
	exporter Exporter
	reporter Reporter
	logger   *slog.Logger
	metrics  *observability.Metrics
	clock    clockwork.Clock
}

// New creates a Pipeline with the given stages and observability.
func New(l Loader, r Renderer, e Exporter, rep Reporter, logger *slog.Logger, metrics *observability.Metrics, clock clockwork.Clock) *Pipeline {
	return &Pipeline{
		loader:   l,
		renderer: r,
		exporter: e,
		reporter: rep,
		logger:   logger,
		metrics:  metrics,
		clock:    clock,
	}
}

// Run executes one complete pass: load, clean, aggregate, render, export,
// report. The context is threaded for callers that wire cancellation, but no
// stage blocks on I/O beyond local files.
func (p *Pipeline) Run(ctx context.Context, input, outDir string) error {
	start := p.clock.Now()

	raw, err := p.loader.Load(input)
	if err != nil {
		return err
	}
	p.metrics.RowsLoaded.Add(float64(len(raw)))

	if err := ctx.Err(); err != nil {
		return err
	}

	obs, report := domain.Clean(raw)
	p.recordCleanReport(report)

	p.reporter.Preview(obs)

	summary := domain.SummarizeTemperature(obs)
	p.reporter.TemperatureSummary(summary)

	monthly := domain.MonthlyTemperatureStats(obs)
	p.reporter.MonthlyStats(monthly)

	totals := domain.MonthlyRainfallTotals(obs)
	charts, err := p.renderer.Render(obs, totals)
	if err != nil {
		return err
	}
	p.metrics.ChartsRendered.Add(4)

	p.reporter.SeasonalAverages(domain.SeasonalAverages(obs))

	files, err := p.exporter.Export(obs, summary, charts)
	if err != nil {
		return err
	}

	plotsDir, err := filepath.Abs(outDir)
	if err != nil {
		plotsDir = outDir
	}
	p.reporter.ArtifactPaths(files.CleanedCSV, plotsDir, files.Summary)

	elapsed := p.clock.Since(start)
	p.metrics.RunDuration.Observe(elapsed.Seconds())
	p.logger.Info("run complete",
		"rows_in", report.RowsIn,
		"rows_dropped", report.RowsDropped,
		"duration", elapsed,
	)
	return nil
}

// recordCleanReport feeds the cleaning repair counts into metrics and logs.
// Imputation is silent at the row level; this is where it stays visible.
func (p *Pipeline) recordCleanReport(r domain.CleanReport) {
	p.metrics.RowsDropped.Add(float64(r.RowsDropped))
	p.metrics.ValuesImputed.WithLabelValues("temperature").Add(float64(r.TemperatureImputed))
	p.metrics.ValuesImputed.WithLabelValues("humidity").Add(float64(r.HumidityImputed))
	p.metrics.ValuesImputed.WithLabelValues("rainfall").Add(float64(r.RainfallZeroed))

	if r.RowsDropped > 0 {
		p.logger.Warn("rows dropped for unparsable dates", "count", r.RowsDropped)
	}
	if n := r.TemperatureImputed + r.HumidityImputed + r.RainfallZeroed; n > 0 {
		p.logger.Info("cells repaired during cleaning",
			"temperature", r.TemperatureImputed,
			"humidity", r.HumidityImputed,
			"rainfall", r.RainfallZeroed,
		)
	}
}
