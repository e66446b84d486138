package domain

import "time"

// dateLayouts are tried in order when coercing the Date column.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
	"02-Jan-2006",
}

// Season is one of the four meteorological seasons.
type Season string

const (
	Winter Season = "Winter"
	Spring Season = "Spring"
	Summer Season = "Summer"
	Autumn Season = "Autumn"
)

// RawRecord is one CSV row before cleaning. All cells are the original
// strings; Date carries the result of the eager parse attempt made at load
// time so the cleaner can drop undated rows without re-parsing.
type RawRecord struct {
	Date        string
	ParsedDate  time.Time
	DateValid   bool
	Temperature string
	Humidity    string
	Rainfall    string
}

// Observation is a fully cleaned record. Month and Season are derived from
// Date; the remaining fields are typed, imputed values.
type Observation struct {
	Date        time.Time
	Temperature float64
	Humidity    float64
	Rainfall    float64
	Month       int
	Season      Season
}

// ParseDate coerces a raw date cell, trying each known layout in order.
// Returns false when no layout matches.
func ParseDate(s string) (time.Time, bool) {
	s = trimCell(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SeasonForMonth maps a calendar month (1-12) to its meteorological season.
// Out-of-range months return the empty Season.
func SeasonForMonth(month int) Season {
	switch month {
	case 12, 1, 2:
		return Winter
	case 3, 4, 5:
		return Spring
	case 6, 7, 8:
		return Summer
	case 9, 10, 11:
		return Autumn
	default:
		return ""
	}
}
