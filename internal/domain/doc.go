// Package domain models daily weather observations loaded from CSV.
//
// # Data Source
//
// Input files are plain CSVs with a header row containing at least the
// columns Date, Temperature, Humidity and Rainfall. Extra columns are
// ignored. Values arrive as strings and are coerced here.
//
// # Date Parsing
//
// Dates are accepted in a fixed, ordered list of layouts:
//
//	2006-01-02
//	2006-01-02T15:04:05
//	2006/01/02
//	01/02/2006
//	02-Jan-2006
//
// A value that matches none of them marks the row as undated, and undated
// rows are dropped during cleaning rather than imputed. See [ParseDate].
//
// # Imputation Policy
//
// Cleaning is best-effort, not strict validation:
//
//	Temperature, Humidity:
//	  - Non-numeric or empty values are replaced with the arithmetic mean
//	    of the column's valid values.
//	  - If a column has no valid values at all, every cell becomes 0
//	    (the mean of zero elements is undefined; 0 is the stated policy).
//	Rainfall:
//	  - Non-numeric or empty values become 0. Absent rainfall means
//	    "no rain recorded", not "unknown", so no mean imputation.
//
// Repair counts are reported in [CleanReport] so silent fixes stay visible.
//
// # Season Mapping
//
// Meteorological convention, fixed lookup on the calendar month:
//
//	Dec-Feb Winter | Mar-May Spring | Jun-Aug Summer | Sep-Nov Autumn
//
// # Standard Deviation Conventions
//
// Global temperature statistics use the population formula (divisor N);
// per-month statistics use the sample formula (divisor N-1, NaN for a
// single-row month). The asymmetry is intentional and matches the two
// conventions the statistics are reported under. Do not unify them.
package domain
