package export

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/weather-viz/internal/domain"
	"github.com/couchcryptid/weather-viz/internal/ingest"
	"github.com/couchcryptid/weather-viz/internal/render"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixtureObservations(t *testing.T) []domain.Observation {
	t.Helper()
	raw := []domain.RawRecord{
		{Date: "2023-01-05", Temperature: "10", Humidity: "80", Rainfall: ""},
		{Date: "2023-01-15", Temperature: "12.5", Humidity: "70", Rainfall: "5"},
		{Date: "2023-07-01", Temperature: "30", Humidity: "50", Rainfall: "0.2"},
		{Date: "2023-07-02", Temperature: "31", Humidity: "52", Rainfall: "0"},
	}
	for i := range raw {
		raw[i].ParsedDate, raw[i].DateValid = domain.ParseDate(raw[i].Date)
	}
	obs, _ := domain.Clean(raw)
	require.Len(t, obs, 4)
	return obs
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	obs := fixtureObservations(t)
	summary := domain.SummarizeTemperature(obs)
	charts := render.Artifacts{
		MonthlyRainfall:     filepath.Join(dir, render.MonthlyRainfallFile),
		HumidityTemperature: filepath.Join(dir, render.HumidityTemperatureFile),
	}

	files, err := New(dir, testLogger()).Export(obs, summary, charts)
	require.NoError(t, err)

	t.Run("cleaned csv shape", func(t *testing.T) {
		f, err := os.Open(files.CleanedCSV)
		require.NoError(t, err)
		defer f.Close()

		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 5)
		assert.Equal(t, []string{"Date", "Temperature", "Humidity", "Rainfall", "Month", "Season"}, rows[0])
		assert.Equal(t, []string{"2023-01-05", "10", "80", "0", "1", "Winter"}, rows[1])
		assert.Equal(t, []string{"2023-07-01", "30", "50", "0.2", "7", "Summer"}, rows[3])
	})

	t.Run("summary embeds stats and artifact paths", func(t *testing.T) {
		data, err := os.ReadFile(files.Summary)
		require.NoError(t, err)
		text := string(data)

		assert.Contains(t, text, "Weather Data Analysis Summary")
		assert.Contains(t, text, "Mean temperature: 20.88°C")
		assert.Contains(t, text, "Highest temperature: 31.00°C")
		assert.Contains(t, text, "Lowest temperature: 10.00°C")
		assert.Contains(t, text, charts.MonthlyRainfall)
		assert.Contains(t, text, charts.HumidityTemperature)
		assert.Contains(t, text, files.CleanedCSV)
	})

	t.Run("re-cleaning the export is idempotent", func(t *testing.T) {
		reloaded, err := ingest.NewLoader(testLogger()).Load(files.CleanedCSV)
		require.NoError(t, err)

		obs2, report := domain.Clean(reloaded)
		require.Len(t, obs2, len(obs))
		assert.Equal(t, 0, report.RowsDropped)
		assert.Equal(t, 0, report.TemperatureImputed)
		assert.Equal(t, 0, report.HumidityImputed)
		assert.Equal(t, 0, report.RainfallZeroed)

		assert.Equal(t, domain.SummarizeTemperature(obs), domain.SummarizeTemperature(obs2))
		assert.Equal(t, domain.MonthlyTemperatureStats(obs), domain.MonthlyTemperatureStats(obs2))
		assert.Equal(t, domain.SeasonalAverages(obs), domain.SeasonalAverages(obs2))
		assert.Equal(t, domain.MonthlyRainfallTotals(obs), domain.MonthlyRainfallTotals(obs2))
	})

	t.Run("unwritable directory propagates", func(t *testing.T) {
		_, err := New(filepath.Join(dir, "missing", "deeper"), testLogger()).Export(obs, summary, charts)
		require.Error(t, err)
	})
}
