package errfmt

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Frame is a small column-oriented table: named string columns of equal
// length, in insertion order. It is the exchange type between the CSV
// reader, [FormatFrame], and the table writers.
type Frame struct {
	names []string
	cols  map[string][]string
}

// NewFrame returns an empty frame.
func NewFrame() *Frame {
	return &Frame{cols: make(map[string][]string)}
}

// ReadFrame reads a CSV document whose first record is the header row.
func ReadFrame(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty CSV input", ErrColumnResolution)
	}

	f := NewFrame()
	header := records[0]
	for i, name := range header {
		col := make([]string, 0, len(records)-1)
		for _, record := range records[1:] {
			col = append(col, record[i])
		}
		f.AddColumn(name, col)
	}
	return f, nil
}

// Names returns the column names in order. The returned slice is a copy.
func (f *Frame) Names() []string {
	names := make([]string, len(f.names))
	copy(names, f.names)
	return names
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	if len(f.names) == 0 {
		return 0
	}
	return len(f.cols[f.names[0]])
}

// AddColumn appends a named column. Adding a name twice replaces the column
// but keeps its original position.
func (f *Frame) AddColumn(name string, values []string) {
	if _, ok := f.cols[name]; !ok {
		f.names = append(f.names, name)
	}
	f.cols[name] = values
}

// Column returns the named column's cells.
func (f *Frame) Column(name string) ([]string, error) {
	col, ok := f.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: no column %q", ErrColumnResolution, name)
	}
	return col, nil
}

// Floats returns the named column parsed as float64s.
func (f *Frame) Floats(name string) ([]float64, error) {
	col, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(col))
	for i, cell := range col {
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: column %q row %d: %q is not a number",
				ErrColumnResolution, name, i, cell)
		}
		out[i] = v
	}
	return out, nil
}

// row returns the cells of row i across all columns, in column order.
func (f *Frame) row(i int) []string {
	cells := make([]string, len(f.names))
	for j, name := range f.names {
		col := f.cols[name]
		if i < len(col) {
			cells[j] = col[i]
		}
	}
	return cells
}

// numeric reports whether every cell of column j parses as a number.
// Numeric columns are right-aligned by the table writers.
func (f *Frame) numeric(j int) bool {
	if j >= len(f.names) {
		return false
	}
	col := f.cols[f.names[j]]
	if len(col) == 0 {
		return false
	}
	for _, cell := range col {
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			return false
		}
	}
	return true
}
