package errfmt

import (
	"fmt"
	"strings"
)

// ErrorColumn is a column of uncertainties: one slice of magnitudes when
// symmetric, an upper/lower slice pair when asymmetric. Construct values
// with [SymColumn] and [AsymColumns].
type ErrorColumn struct {
	upper, lower []float64
	asym         bool
}

// SymColumn returns a symmetric uncertainty column.
func SymColumn(values []float64) ErrorColumn { return ErrorColumn{upper: values} }

// AsymColumns returns an asymmetric uncertainty column from separate upper
// and lower magnitude columns.
func AsymColumns(upper, lower []float64) ErrorColumn {
	return ErrorColumn{upper: upper, lower: lower, asym: true}
}

func (c ErrorColumn) lengths() []int {
	if c.asym {
		return []int{len(c.upper), len(c.lower)}
	}
	return []int{len(c.upper)}
}

func (c ErrorColumn) row(i int) Uncertainty {
	if c.asym {
		return Asym(c.upper[i], c.lower[i])
	}
	return Sym(c.upper[i])
}

// FormatColumns formats a central column and its uncertainty columns row by
// row, returning the formatted strings in the same row order. All columns
// must have the same length. In LaTeX mode each cell is fenced in $...$ so
// it can be dropped into a tabular environment directly.
func FormatColumns(central []float64, errs []ErrorColumn, opts Options) ([]string, error) {
	for i, e := range errs {
		for _, n := range e.lengths() {
			if n != len(central) {
				return nil, fmt.Errorf("%w: uncertainty column %d has %d rows, central has %d",
					ErrColumnResolution, i, n, len(central))
			}
		}
	}

	out := make([]string, len(central))
	row := make([]Uncertainty, len(errs))
	for i, v := range central {
		for j, e := range errs {
			row[j] = e.row(i)
		}
		s, err := Format(v, opts, row...)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if opts.LaTeX {
			s = "$" + s + "$"
		}
		out[i] = s
	}
	return out, nil
}

// ErrorSpec names the frame column(s) holding one uncertainty: a single
// column name for a symmetric uncertainty, or upper and lower names for an
// asymmetric pair.
type ErrorSpec struct {
	Upper string
	Lower string // empty for a symmetric uncertainty
}

func (s ErrorSpec) asym() bool { return s.Lower != "" }

// ColumnSpec describes one output column of [FormatFrame]: a central-value
// column, the uncertainty columns folded into it, the name of the resulting
// column, and optional per-column formatting overrides. A spec with no
// uncertainties passes the named column through untouched.
type ColumnSpec struct {
	Value  string
	Errors []ErrorSpec

	// Name of the formatted column. Empty means the Value name.
	Name string

	// Options overrides the frame-level options for this column when
	// non-nil.
	Options *Options
}

// ParseColumnSpec parses the compact column spec syntax used on the command
// line: a value column name followed by comma-separated uncertainty columns,
// where an asymmetric pair is written upper-lower. For example
// "d_value,d_upper-d_lower,d_systematic".
func ParseColumnSpec(s string) (ColumnSpec, error) {
	parts := strings.Split(s, ",")
	if parts[0] == "" {
		return ColumnSpec{}, fmt.Errorf("%w: empty column spec %q", ErrColumnResolution, s)
	}
	spec := ColumnSpec{Value: parts[0]}
	for _, part := range parts[1:] {
		upper, lower, _ := strings.Cut(part, "-")
		if upper == "" {
			return ColumnSpec{}, fmt.Errorf("%w: empty uncertainty column in spec %q", ErrColumnResolution, s)
		}
		spec.Errors = append(spec.Errors, ErrorSpec{Upper: upper, Lower: lower})
	}
	return spec, nil
}

// resolve extracts the central and uncertainty columns named by spec from f.
func (spec ColumnSpec) resolve(f *Frame) ([]float64, []ErrorColumn, error) {
	central, err := f.Floats(spec.Value)
	if err != nil {
		return nil, nil, err
	}
	errs := make([]ErrorColumn, len(spec.Errors))
	for i, es := range spec.Errors {
		upper, err := f.Floats(es.Upper)
		if err != nil {
			return nil, nil, err
		}
		if !es.asym() {
			errs[i] = SymColumn(upper)
			continue
		}
		lower, err := f.Floats(es.Lower)
		if err != nil {
			return nil, nil, err
		}
		errs[i] = AsymColumns(upper, lower)
	}
	return central, errs, nil
}

// FormatFrame builds a new frame with one column per spec, in spec order:
// plain specs copy their column through, specs with uncertainties collapse
// their value and uncertainty columns into a single formatted string column.
func FormatFrame(f *Frame, specs []ColumnSpec, opts Options) (*Frame, error) {
	out := NewFrame()
	for _, spec := range specs {
		name := spec.Name
		if name == "" {
			name = spec.Value
		}

		if len(spec.Errors) == 0 {
			col, err := f.Column(spec.Value)
			if err != nil {
				return nil, err
			}
			out.AddColumn(name, col)
			continue
		}

		colOpts := opts
		if spec.Options != nil {
			colOpts = *spec.Options
		}
		central, errs, err := spec.resolve(f)
		if err != nil {
			return nil, err
		}
		formatted, err := FormatColumns(central, errs, colOpts)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		out.AddColumn(name, formatted)
	}
	return out, nil
}
