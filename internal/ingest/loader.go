// Package ingest loads raw weather observations from CSV files.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/couchcryptid/weather-viz/internal/domain"
)

// ErrNotFound marks a missing input file. The wrapped message carries the
// offending path.
var ErrNotFound = errors.New("input file not found")

// requiredColumns must all be present in the header row. Matching is exact.
var requiredColumns = []string{"Date", "Temperature", "Humidity", "Rainfall"}

// MissingColumnsError reports required columns absent from the CSV header.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns in CSV: %v", e.Columns)
}

// Loader reads a weather CSV into raw records.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a Loader.
func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load opens the CSV at path and reads it into raw records. A missing file
// returns an error wrapping [ErrNotFound]; absent required columns return a
// [MissingColumnsError]. Date cells are parsed eagerly where possible, but a
// date that matches no known layout never fails the load — the row is
// carried through with DateValid false and dropped during cleaning.
func (l *Loader) Load(path string) ([]domain.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	records, err := l.LoadFromReader(f)
	if err != nil {
		return nil, err
	}

	l.logger.Info("input loaded", "path", path, "rows", len(records))
	return records, nil
}

// LoadFromReader reads CSV data from r. Split out from Load for tests and
// for callers that already hold an open stream.
func (l *Loader) LoadFromReader(r io.Reader) ([]domain.RawRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// Ragged rows are tolerated; short rows read as empty cells and the
	// cleaner's imputation policy covers them.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &MissingColumnsError{Columns: requiredColumns}
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx, missing := mapColumns(header)
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	var records []domain.RawRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		rec := domain.RawRecord{
			Date:        cellAt(row, idx["Date"]),
			Temperature: cellAt(row, idx["Temperature"]),
			Humidity:    cellAt(row, idx["Humidity"]),
			Rainfall:    cellAt(row, idx["Rainfall"]),
		}
		rec.ParsedDate, rec.DateValid = domain.ParseDate(rec.Date)
		records = append(records, rec)
	}

	return records, nil
}

// mapColumns resolves required column positions from the header, ignoring
// any extra columns. Returns the index map and the names not found, in
// required-column order.
func mapColumns(header []string) (map[string]int, []string) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if _, seen := positions[name]; !seen {
			positions[name] = i
		}
	}

	idx := make(map[string]int, len(requiredColumns))
	var missing []string
	for _, name := range requiredColumns {
		pos, ok := positions[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		idx[name] = pos
	}
	return idx, missing
}

func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
