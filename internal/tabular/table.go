// Package tabular loads the flat CSV tables the scraper collaborators
// produce. Loading is deliberately tolerant: unnamed columns are
// dropped, malformed numerics degrade to absent values, and a missing
// file is an error the caller logs and skips rather than a pipeline
// abort.
package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Table is an ordered collection of rows keyed by column name
type Table struct {
	columns []string
	rows    []Row
}

// Row is one record keyed by column name
type Row map[string]string

// Load reads a CSV file with a header row into a Table
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse table %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("table %s has no header row", path)
	}

	header := records[0]
	table := &Table{}
	keep := make([]int, 0, len(header))
	for i, col := range header {
		col = strings.TrimSpace(col)
		// Index artifacts from upstream exports carry empty or "Unnamed"
		// headers
		if col == "" || strings.Contains(col, "Unnamed") {
			continue
		}
		header[i] = col
		keep = append(keep, i)
		table.columns = append(table.columns, col)
	}

	for _, record := range records[1:] {
		row := make(Row, len(keep))
		for _, i := range keep {
			if i >= len(record) {
				continue
			}
			row[header[i]] = strings.TrimSpace(record[i])
		}
		table.rows = append(table.rows, row)
	}

	return table, nil
}

// Len returns the number of data rows
func (t *Table) Len() int {
	return len(t.rows)
}

// Columns returns the retained column names in file order
func (t *Table) Columns() []string {
	return t.columns
}

// HasColumn reports whether the table carries the named column
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.columns {
		if col == name {
			return true
		}
	}
	return false
}

// Rows returns all data rows in file order
func (t *Table) Rows() []Row {
	return t.rows
}

// Str returns the raw cell value with a presence flag; empty cells are
// absent
func (r Row) Str(col string) (string, bool) {
	v, ok := r[col]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Float parses the cell as a float; malformed or empty cells are absent
func (r Row) Float(col string) (float64, bool) {
	v, ok := r.Str(col)
	if !ok {
		return 0, false
	}
	// Some sources format large counts with thousands separators
	v = strings.ReplaceAll(v, ",", "")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Int parses the cell as an integer, tolerating float formatting
func (r Row) Int(col string) (int, bool) {
	f, ok := r.Float(col)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// FirstOf returns the first present column value among candidates; used
// where providers disagree on a column's name
func (r Row) FirstOf(cols ...string) (string, bool) {
	for _, col := range cols {
		if v, ok := r.Str(col); ok {
			return v, true
		}
	}
	return "", false
}

// FirstFloatOf returns the first parseable float among candidate columns
func (r Row) FirstFloatOf(cols ...string) (float64, bool) {
	for _, col := range cols {
		if v, ok := r.Float(col); ok {
			return v, true
		}
	}
	return 0, false
}

// FirstIntOf returns the first parseable integer among candidate columns
func (r Row) FirstIntOf(cols ...string) (int, bool) {
	for _, col := range cols {
		if v, ok := r.Int(col); ok {
			return v, true
		}
	}
	return 0, false
}
