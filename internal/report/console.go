// Package report renders the human-readable run output on stdout.
package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/couchcryptid/weather-viz/internal/domain"
)

// previewRows is how many cleaned rows the head preview shows.
const previewRows = 5

// Console writes the report sections in run order. Output is for humans, not
// for machine parsing.
type Console struct {
	w io.Writer
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Preview prints the first five cleaned rows for inspection.
func (c *Console) Preview(obs []domain.Observation) {
	fmt.Fprintln(c.w, "\n--- Cleaned Data Head ---")

	t := c.newTable()
	t.AppendHeader(table.Row{"Date", "Temperature", "Humidity", "Rainfall"})
	for i, o := range obs {
		if i == previewRows {
			break
		}
		t.AppendRow(table.Row{
			o.Date.Format("2006-01-02"),
			formatted(o.Temperature),
			formatted(o.Humidity),
			formatted(o.Rainfall),
		})
	}
	t.Render()
}

// TemperatureSummary prints the global temperature statistics.
func (c *Console) TemperatureSummary(s domain.TemperatureSummary) {
	fmt.Fprintln(c.w, "\n--- Temperature Statistics ---")
	fmt.Fprintf(c.w, "Mean: %.2f\n", s.Mean)
	fmt.Fprintf(c.w, "Max: %.2f\n", s.Max)
	fmt.Fprintf(c.w, "Min: %.2f\n", s.Min)
	fmt.Fprintf(c.w, "Std Dev: %.2f\n", s.StdDev)
}

// MonthlyStats prints the per-month temperature table in ascending month
// order.
func (c *Console) MonthlyStats(stats []domain.MonthlyTemperature) {
	fmt.Fprintln(c.w, "\n--- Monthly Temperature Stats ---")

	t := c.newTable()
	t.AppendHeader(table.Row{"Month", "Mean", "Min", "Max", "Std Dev"})
	for _, s := range stats {
		t.AppendRow(table.Row{s.Month, formatted(s.Mean), formatted(s.Min), formatted(s.Max), formatted(s.StdDev)})
	}
	t.Render()
}

// SeasonalAverages prints the per-season averages table.
func (c *Console) SeasonalAverages(avgs []domain.SeasonalAverage) {
	fmt.Fprintln(c.w, "\n--- Seasonal Averages ---")

	t := c.newTable()
	t.AppendHeader(table.Row{"Season", "Temperature", "Rainfall", "Humidity"})
	for _, a := range avgs {
		t.AppendRow(table.Row{a.Season, formatted(a.Temperature), formatted(a.Rainfall), formatted(a.Humidity)})
	}
	t.Render()
}

// ArtifactPaths prints where the run's outputs landed.
func (c *Console) ArtifactPaths(cleanedCSV, plotsDir, summary string) {
	fmt.Fprintf(c.w, "\nSaved cleaned CSV to: %s\n", cleanedCSV)
	fmt.Fprintf(c.w, "Saved plots to: %s\n", plotsDir)
	fmt.Fprintf(c.w, "Summary saved to: %s\n", summary)
}

func (c *Console) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(c.w)
	t.SetStyle(table.StyleLight)
	return t
}

// formatted renders a statistic to two decimals; NaN (single-row sample
// deviation) prints as NaN.
func formatted(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
