package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func obsAt(date string, temp, hum, rain float64) Observation {
	d, ok := ParseDate(date)
	if !ok {
		panic("bad test date: " + date)
	}
	month := int(d.Month())
	return Observation{
		Date:        d,
		Temperature: temp,
		Humidity:    hum,
		Rainfall:    rain,
		Month:       month,
		Season:      SeasonForMonth(month),
	}
}

func TestSeasonForMonth(t *testing.T) {
	tests := []struct {
		month int
		want  Season
	}{
		{1, Winter}, {2, Winter}, {3, Spring}, {4, Spring},
		{5, Spring}, {6, Summer}, {7, Summer}, {8, Summer},
		{9, Autumn}, {10, Autumn}, {11, Autumn}, {12, Winter},
	}

	for _, tt := range tests {
		t.Run(time.Month(tt.month).String(), func(t *testing.T) {
			assert.Equal(t, tt.want, SeasonForMonth(tt.month))
		})
	}

	t.Run("out of range", func(t *testing.T) {
		assert.Equal(t, Season(""), SeasonForMonth(0))
		assert.Equal(t, Season(""), SeasonForMonth(13))
	})
}

func TestStdDevConventions(t *testing.T) {
	// Hand-computed: values 10, 20, 30 have mean 20.
	// Population variance = (100+0+100)/3, sample variance = 200/2.
	values := []float64{10, 20, 30}

	assert.InDelta(t, math.Sqrt(200.0/3.0), PopulationStdDev(values), 1e-9)
	assert.InDelta(t, 10.0, SampleStdDev(values), 1e-9)

	t.Run("single value", func(t *testing.T) {
		assert.Equal(t, 0.0, PopulationStdDev([]float64{5}))
		assert.True(t, math.IsNaN(SampleStdDev([]float64{5})))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, 0.0, PopulationStdDev(nil))
		assert.True(t, math.IsNaN(SampleStdDev(nil)))
	})
}

func TestSummarizeTemperature(t *testing.T) {
	obs := []Observation{
		obsAt("2023-01-01", 10, 80, 0),
		obsAt("2023-01-02", 20, 70, 1),
		obsAt("2023-02-01", 30, 60, 2),
	}

	s := SummarizeTemperature(obs)

	assert.InDelta(t, 20.0, s.Mean, 1e-9)
	assert.Equal(t, 30.0, s.Max)
	assert.Equal(t, 10.0, s.Min)
	// Population formula, divisor N.
	assert.InDelta(t, math.Sqrt(200.0/3.0), s.StdDev, 1e-9)

	t.Run("empty table", func(t *testing.T) {
		assert.Equal(t, TemperatureSummary{}, SummarizeTemperature(nil))
	})
}

func TestMonthlyTemperatureStats(t *testing.T) {
	obs := []Observation{
		obsAt("2023-02-10", 30, 60, 0),
		obsAt("2023-01-05", 10, 80, 0),
		obsAt("2023-01-20", 20, 70, 0),
	}

	stats := MonthlyTemperatureStats(obs)

	require.Len(t, stats, 2)
	assert.Equal(t, 1, stats[0].Month, "months must be ascending")
	assert.Equal(t, 2, stats[1].Month)

	jan := stats[0]
	assert.InDelta(t, 15.0, jan.Mean, 1e-9)
	assert.Equal(t, 10.0, jan.Min)
	assert.Equal(t, 20.0, jan.Max)
	// Sample formula, divisor N-1: sqrt(((10-15)^2+(20-15)^2)/1).
	assert.InDelta(t, math.Sqrt(50.0), jan.StdDev, 1e-9)

	// A single-row month has an undefined sample deviation.
	assert.True(t, math.IsNaN(stats[1].StdDev))
}

func TestSeasonalAverages(t *testing.T) {
	obs := []Observation{
		obsAt("2023-01-05", 2, 85, 10),  // Winter
		obsAt("2023-12-20", 4, 75, 20),  // Winter
		obsAt("2023-07-01", 30, 50, 0),  // Summer
		obsAt("2023-04-01", 15, 60, 5),  // Spring
		obsAt("2023-10-01", 12, 70, 15), // Autumn
	}

	avgs := SeasonalAverages(obs)

	require.Len(t, avgs, 4)
	// Lexical season order.
	assert.Equal(t, []Season{Autumn, Spring, Summer, Winter},
		[]Season{avgs[0].Season, avgs[1].Season, avgs[2].Season, avgs[3].Season})

	winter := avgs[3]
	assert.InDelta(t, 3.0, winter.Temperature, 1e-9)
	assert.InDelta(t, 80.0, winter.Humidity, 1e-9)
	assert.InDelta(t, 15.0, winter.Rainfall, 1e-9)
}

func TestMonthlyRainfallTotals(t *testing.T) {
	obs := []Observation{
		obsAt("2023-03-01", 0, 0, 1.5),
		obsAt("2023-01-10", 0, 0, 2),
		obsAt("2023-01-20", 0, 0, 3),
	}

	totals := MonthlyRainfallTotals(obs)

	require.Len(t, totals, 2)
	assert.Equal(t, MonthlyRainfall{Month: 1, Total: 5}, totals[0])
	assert.Equal(t, MonthlyRainfall{Month: 3, Total: 1.5}, totals[1])
}
