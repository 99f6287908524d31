// Package dataset loads and queries the strategies CSV: real public-sector
// data strategy records used for landscape context around the journey core.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// RequiredColumns must all be present in the CSV header.
var RequiredColumns = []string{
	"id", "title", "organisation", "org_type", "country", "year", "scope",
	"link", "summary", "source", "date_added",
}

// Record is one strategy row. Year is nil when the raw cell does not parse
// as a number; RawYear keeps the original text for validation.
type Record struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Organisation string `json:"organisation"`
	OrgType      string `json:"org_type"`
	Country      string `json:"country"`
	Year         *int   `json:"year"`
	RawYear      string `json:"-"`
	Scope        string `json:"scope"`
	Link         string `json:"link"`
	Summary      string `json:"summary"`
	Source       string `json:"source"`
	DateAdded    string `json:"date_added"`
}

// Load reads and parses the strategies CSV at path.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset unreadable %s: %w", path, err)
	}
	defer f.Close()
	records, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("dataset parse failed %s: %w", path, err)
	}
	return records, nil
}

// Parse reads CSV rows from r. The first row must be a header containing at
// least the required columns; extra columns are ignored. Short rows are
// padded with empty cells.
func Parse(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("empty csv: header row required")
	}

	index := map[string]int{}
	for i, h := range rows[0] {
		index[strings.TrimSpace(h)] = i
	}
	missing := []string{}
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}

	cell := func(row []string, col string) string {
		i := index[col]
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := Record{
			ID:           cell(row, "id"),
			Title:        cell(row, "title"),
			Organisation: cell(row, "organisation"),
			OrgType:      cell(row, "org_type"),
			Country:      cell(row, "country"),
			RawYear:      cell(row, "year"),
			Scope:        cell(row, "scope"),
			Link:         cell(row, "link"),
			Summary:      cell(row, "summary"),
			Source:       cell(row, "source"),
			DateAdded:    cell(row, "date_added"),
		}
		if y, err := strconv.Atoi(rec.RawYear); err == nil {
			rec.Year = &y
		}
		records = append(records, rec)
	}
	return records, nil
}
