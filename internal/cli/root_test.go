package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Date,Temperature,Humidity,Rainfall
2023-01-05,10,80,
2023-01-15,,70,5
`

func TestRootCommand(t *testing.T) {
	t.Run("end to end headless run", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "weather.csv")
		require.NoError(t, os.WriteFile(input, []byte(sampleCSV), 0o644))

		cmd := NewRootCmd()
		var stdout, stderr bytes.Buffer
		cmd.SetOut(&stdout)
		cmd.SetErr(&stderr)
		cmd.SetArgs([]string{"--input", input, "--out-dir", dir, "--no-show"})

		require.NoError(t, cmd.Execute())

		for _, name := range []string{
			"temperature_trend.png",
			"monthly_rainfall.png",
			"humidity_vs_temperature.png",
			"combined_plot.png",
			"cleaned_weather_data.csv",
			"weather_summary.txt",
		} {
			_, err := os.Stat(filepath.Join(dir, name))
			assert.NoError(t, err, "expected artifact %s", name)
		}
		assert.Contains(t, stdout.String(), "--- Cleaned Data Head ---")
	})

	t.Run("missing input file", func(t *testing.T) {
		dir := t.TempDir()

		cmd := NewRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"--input", filepath.Join(dir, "absent.csv"), "--out-dir", dir, "--no-show"})

		err := cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "input file not found")
	})

	t.Run("output directory is created", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "weather.csv")
		require.NoError(t, os.WriteFile(input, []byte(sampleCSV), 0o644))

		outDir := filepath.Join(dir, "nested", "out")
		cmd := NewRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"-i", input, "-o", outDir, "--no-show"})

		require.NoError(t, cmd.Execute())

		info, err := os.Stat(outDir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}
