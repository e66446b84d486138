package domain

import (
	"math"
	"strconv"
	"strings"
)

// CleanReport counts the repairs applied during cleaning. Every repair is
// silent at the row level, so the counts are the only record of what changed.
type CleanReport struct {
	RowsIn             int
	RowsDropped        int // rows removed because the date matched no layout
	TemperatureImputed int // cells replaced with the column mean (or 0)
	HumidityImputed    int
	RainfallZeroed     int // cells replaced with 0
}

// Clean coerces raw records into observations, applying the imputation
// policy documented in the package comment. Rows with an unparsable date are
// dropped; all other malformed cells are repaired, never rejected. Output
// order follows input order.
func Clean(raw []RawRecord) ([]Observation, CleanReport) {
	report := CleanReport{RowsIn: len(raw)}

	obs := make([]Observation, 0, len(raw))
	temps := make([]float64, 0, len(raw))
	hums := make([]float64, 0, len(raw))

	// First pass: drop undated rows and coerce numerics, marking missing
	// cells NaN so the second pass can fill them with the column mean.
	for _, rec := range raw {
		if !rec.DateValid {
			report.RowsDropped++
			continue
		}

		temp, tempOK := parseNumericCell(rec.Temperature)
		hum, humOK := parseNumericCell(rec.Humidity)
		rain, rainOK := parseNumericCell(rec.Rainfall)

		if tempOK {
			temps = append(temps, temp)
		} else {
			temp = math.NaN()
			report.TemperatureImputed++
		}
		if humOK {
			hums = append(hums, hum)
		} else {
			hum = math.NaN()
			report.HumidityImputed++
		}
		if !rainOK {
			rain = 0
			report.RainfallZeroed++
		}

		month := int(rec.ParsedDate.Month())
		obs = append(obs, Observation{
			Date:        rec.ParsedDate,
			Temperature: temp,
			Humidity:    hum,
			Rainfall:    rain,
			Month:       month,
			Season:      SeasonForMonth(month),
		})
	}

	tempFill := meanOrZero(temps)
	humFill := meanOrZero(hums)
	for i := range obs {
		if math.IsNaN(obs[i].Temperature) {
			obs[i].Temperature = tempFill
		}
		if math.IsNaN(obs[i].Humidity) {
			obs[i].Humidity = humFill
		}
	}

	return obs, report
}

// parseNumericCell coerces a numeric cell, treating empty strings and the
// common NA sentinels as missing.
func parseNumericCell(s string) (float64, bool) {
	s = trimCell(s)
	if s == "" || strings.EqualFold(s, "NA") || strings.EqualFold(s, "NaN") || strings.EqualFold(s, "null") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// meanOrZero is the imputation fill: the column mean, or 0 when the column
// has no valid values at all.
func meanOrZero(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return Mean(values)
}

func trimCell(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), `"`))
}
