// Package ingest parses guest list CSV sources into typed rows and loads them
// from a file, a URL, or the bundled fallback sample.
package ingest

import (
	"encoding/csv"
	"strings"

	"github.com/usherapp/usher-server/internal/errors"
)

// Row is a single guest list entry after header mapping. Fields are still raw
// strings; coercion to typed guests happens during directory construction so
// malformed values can be skipped per row instead of rejecting the source.
type Row struct {
	Name           string
	TableID        string
	TableName      string
	Seat           string
	VietnameseName string
	Side           string
}

// requiredColumns must all appear in the header for a source to be accepted.
var requiredColumns = []string{"name", "table_id", "table_name", "side"}

// Parse reads CSV content and returns one Row per non-empty line.
// A source missing any required column is rejected outright with an
// INGEST_REJECTED error; individual malformed rows are not (they are
// skipped later, during directory construction).
func Parse(content []byte) ([]Row, error) {
	if len(strings.TrimSpace(string(content))) == 0 {
		return nil, errors.IngestRejected("guest list source is empty")
	}

	reader := csv.NewReader(strings.NewReader(string(content)))
	reader.FieldsPerRecord = -1 // rows may have trailing fields missing
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeIngestRejected, "guest list source is not valid CSV")
	}
	if len(records) < 2 {
		return nil, errors.IngestRejected("guest list source has no data rows")
	}

	header := records[0]
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(col)] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, errors.IngestRejectedf("guest list source is missing required columns: %s", strings.Join(missing, ", "))
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		if isBlank(record) {
			continue
		}
		rows = append(rows, Row{
			Name:           field(record, index, "name"),
			TableID:        field(record, index, "table_id"),
			TableName:      field(record, index, "table_name"),
			Seat:           field(record, index, "seat"),
			VietnameseName: field(record, index, "vietnamese_name"),
			Side:           field(record, index, "side"),
		})
	}

	return rows, nil
}

// field extracts a named column from a record, tolerating short rows.
func field(record []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
