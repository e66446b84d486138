// Package export writes the cleaned table and the run summary to disk.
package export

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/couchcryptid/weather-viz/internal/domain"
	"github.com/couchcryptid/weather-viz/internal/render"
)

// Fixed artifact filenames, written into the output directory.
const (
	CleanedCSVFile = "cleaned_weather_data.csv"
	SummaryFile    = "weather_summary.txt"
)

// csvHeader is the exported column order.
var csvHeader = []string{"Date", "Temperature", "Humidity", "Rainfall", "Month", "Season"}

const summaryTemplate = `Weather Data Analysis Summary

Temperature:
- Mean temperature: %.2f°C
- Highest temperature: %.2f°C
- Lowest temperature: %.2f°C
- Standard deviation: %.2f

Rainfall:
- Monthly rainfall total saved to: %s

Humidity:
- Scatter plot saved to: %s

Seasonal Averages saved to cleaned CSV: %s
`

// Files holds the on-disk paths of the exported artifacts.
type Files struct {
	CleanedCSV string
	Summary    string
}

// Exporter writes run artifacts into an output directory.
type Exporter struct {
	outDir string
	logger *slog.Logger
}

// New creates an Exporter.
func New(outDir string, logger *slog.Logger) *Exporter {
	return &Exporter{outDir: outDir, logger: logger}
}

// Export writes the cleaned CSV and the summary report. Both writes are
// attempted exactly once; the first failure propagates.
func (e *Exporter) Export(obs []domain.Observation, summary domain.TemperatureSummary, charts render.Artifacts) (Files, error) {
	csvPath, err := e.writeCleanedCSV(obs)
	if err != nil {
		return Files{}, err
	}

	summaryPath, err := e.writeSummary(summary, charts, csvPath)
	if err != nil {
		return Files{}, err
	}

	e.logger.Info("artifacts exported", "csv", csvPath, "summary", summaryPath)
	return Files{CleanedCSV: csvPath, Summary: summaryPath}, nil
}

// writeCleanedCSV writes the cleaned table without a row index. Dates use
// the ISO layout; floats use the shortest exact representation so a reload
// round-trips to identical statistics.
func (e *Exporter) writeCleanedCSV(obs []domain.Observation) (string, error) {
	path := filepath.Join(e.outDir, CleanedCSVFile)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create cleaned csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("write cleaned csv header: %w", err)
	}
	for _, o := range obs {
		row := []string{
			o.Date.Format("2006-01-02"),
			formatFloat(o.Temperature),
			formatFloat(o.Humidity),
			formatFloat(o.Rainfall),
			strconv.Itoa(o.Month),
			string(o.Season),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write cleaned csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush cleaned csv: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close cleaned csv: %w", err)
	}
	return path, nil
}

func (e *Exporter) writeSummary(summary domain.TemperatureSummary, charts render.Artifacts, csvPath string) (string, error) {
	path := filepath.Join(e.outDir, SummaryFile)
	text := fmt.Sprintf(summaryTemplate,
		summary.Mean, summary.Max, summary.Min, summary.StdDev,
		charts.MonthlyRainfall,
		charts.HumidityTemperature,
		csvPath,
	)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("write summary: %w", err)
	}
	return path, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
