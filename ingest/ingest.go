// Package ingest reads the securities table and the portfolio table from CSV.
//
// Both tables are comma separated, start with a header naming the columns,
// and may contain lines starting with '#' as comments. Columns are matched by
// name, ignoring case, so their order is free and unknown columns are
// ignored.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// table is a CSV table read by column name.
type table struct {
	reader  *csv.Reader
	columns map[string]int
}

func newTable(r io.Reader) (*table, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1 // short rows leave trailing columns empty
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("missing header")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	t := &table{reader: reader, columns: make(map[string]int)}
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := t.columns[name]; !dup {
			t.columns[name] = i
		}
	}
	return t, nil
}

func (t *table) has(column string) bool {
	_, ok := t.columns[strings.ToLower(column)]
	return ok
}

// require checks that all columns are in the header.
func (t *table) require(columns ...string) error {
	var missing []string
	for _, c := range columns {
		if !t.has(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing column %s in header", strings.Join(missing, ", "))
	}
	return nil
}

// record is one row of a table.
type record struct {
	t      *table
	line   int
	fields []string
}

// next returns the next record, io.EOF at the end of the table.
func (t *table) next() (record, error) {
	fields, err := t.reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return record{}, io.EOF
		}
		return record{}, fmt.Errorf("failed to read csv: %w", err)
	}
	line, _ := t.reader.FieldPos(0)
	return record{t: t, line: line, fields: fields}, nil
}

// get returns the trimmed value of column, empty if the row is too short or
// the column does not exist.
func (r record) get(column string) string {
	i, ok := r.t.columns[strings.ToLower(column)]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

// blank reports whether every field of the record is empty.
func (r record) blank() bool {
	for _, f := range r.fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// readFile opens path and passes it to read.
func readFile[T any](path string, read func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	v, err := read(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}
