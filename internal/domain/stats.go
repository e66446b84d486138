package domain

import (
	"math"
	"sort"
)

// TemperatureSummary holds the global temperature statistics. StdDev uses
// the population formula (divisor N).
type TemperatureSummary struct {
	Mean   float64
	Max    float64
	Min    float64
	StdDev float64
}

// MonthlyTemperature holds per-month temperature statistics. StdDev uses the
// sample formula (divisor N-1) and is NaN for a month with a single row.
type MonthlyTemperature struct {
	Month  int
	Mean   float64
	Min    float64
	Max    float64
	StdDev float64
}

// SeasonalAverage holds the mean temperature, rainfall and humidity for one
// season.
type SeasonalAverage struct {
	Season      Season
	Temperature float64
	Rainfall    float64
	Humidity    float64
}

// MonthlyRainfall is the rainfall sum for one month.
type MonthlyRainfall struct {
	Month int
	Total float64
}

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// PopulationStdDev returns the standard deviation with divisor N.
// Returns 0 for an empty slice.
func PopulationStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return math.Sqrt(sumSquaredDiffs(values) / float64(len(values)))
}

// SampleStdDev returns the standard deviation with divisor N-1.
// Returns NaN for fewer than two values, matching the convention that a
// sample deviation of a single observation is undefined.
func SampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return math.NaN()
	}
	return math.Sqrt(sumSquaredDiffs(values) / float64(len(values)-1))
}

func sumSquaredDiffs(values []float64) float64 {
	mean := Mean(values)
	var sumSq float64
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq
}

// SummarizeTemperature computes the global temperature statistics over all
// observations. The zero summary is returned for an empty table.
func SummarizeTemperature(obs []Observation) TemperatureSummary {
	if len(obs) == 0 {
		return TemperatureSummary{}
	}

	values := make([]float64, len(obs))
	minV, maxV := obs[0].Temperature, obs[0].Temperature
	for i, o := range obs {
		values[i] = o.Temperature
		if o.Temperature < minV {
			minV = o.Temperature
		}
		if o.Temperature > maxV {
			maxV = o.Temperature
		}
	}

	return TemperatureSummary{
		Mean:   Mean(values),
		Max:    maxV,
		Min:    minV,
		StdDev: PopulationStdDev(values),
	}
}

// MonthlyTemperatureStats groups temperatures by month, ascending month
// order. Only months present in the data appear.
func MonthlyTemperatureStats(obs []Observation) []MonthlyTemperature {
	byMonth := make(map[int][]float64)
	for _, o := range obs {
		byMonth[o.Month] = append(byMonth[o.Month], o.Temperature)
	}

	months := sortedKeys(byMonth)
	stats := make([]MonthlyTemperature, 0, len(months))
	for _, m := range months {
		values := byMonth[m]
		minV, maxV := values[0], values[0]
		for _, v := range values {
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
		}
		stats = append(stats, MonthlyTemperature{
			Month:  m,
			Mean:   Mean(values),
			Min:    minV,
			Max:    maxV,
			StdDev: SampleStdDev(values),
		})
	}
	return stats
}

// SeasonalAverages groups observations by season and averages temperature,
// rainfall and humidity. Seasons are returned in lexical order (Autumn,
// Spring, Summer, Winter), matching grouped output conventions.
func SeasonalAverages(obs []Observation) []SeasonalAverage {
	type bucket struct {
		temp, rain, hum []float64
	}
	bySeason := make(map[Season]*bucket)
	for _, o := range obs {
		b, ok := bySeason[o.Season]
		if !ok {
			b = &bucket{}
			bySeason[o.Season] = b
		}
		b.temp = append(b.temp, o.Temperature)
		b.rain = append(b.rain, o.Rainfall)
		b.hum = append(b.hum, o.Humidity)
	}

	seasons := make([]Season, 0, len(bySeason))
	for s := range bySeason {
		seasons = append(seasons, s)
	}
	sort.Slice(seasons, func(i, j int) bool { return seasons[i] < seasons[j] })

	averages := make([]SeasonalAverage, 0, len(seasons))
	for _, s := range seasons {
		b := bySeason[s]
		averages = append(averages, SeasonalAverage{
			Season:      s,
			Temperature: Mean(b.temp),
			Rainfall:    Mean(b.rain),
			Humidity:    Mean(b.hum),
		})
	}
	return averages
}

// MonthlyRainfallTotals sums rainfall by month, ascending month order.
func MonthlyRainfallTotals(obs []Observation) []MonthlyRainfall {
	byMonth := make(map[int]float64)
	for _, o := range obs {
		byMonth[o.Month] += o.Rainfall
	}

	totals := make([]MonthlyRainfall, 0, len(byMonth))
	for _, m := range sortedTotalKeys(byMonth) {
		totals = append(totals, MonthlyRainfall{Month: m, Total: byMonth[m]})
	}
	return totals
}

func sortedKeys(m map[int][]float64) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func sortedTotalKeys(m map[int]float64) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
