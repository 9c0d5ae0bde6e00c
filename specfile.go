package errfmt

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// specFile is the YAML document accepted by [ReadSpecFile]:
//
//	columns:
//	  - column: run          # passthrough column
//	  - value: mass_value    # formatted column
//	    errors:
//	      - mass_stat
//	      - upper: mass_up
//	        lower: mass_down
//	    name: mass
//	    abbreviate: true
//	    significant_figures: 3
type specFile struct {
	Columns []specEntry `yaml:"columns"`
}

type specEntry struct {
	Column string      `yaml:"column"`
	Value  string      `yaml:"value"`
	Errors []specError `yaml:"errors"`
	Name   string      `yaml:"name"`

	// Per-column option overrides. Unset fields inherit the base options.
	Abbreviate         *bool   `yaml:"abbreviate"`
	LaTeX              *bool   `yaml:"latex"`
	Exponential        *bool   `yaml:"exponential"`
	SignificantFigures *int    `yaml:"significant_figures"`
	LengthControl      *string `yaml:"length_control"`
}

// specError accepts either a bare column name (symmetric) or an upper/lower
// mapping (asymmetric).
type specError struct {
	Upper string
	Lower string
}

func (e *specError) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		e.Upper = node.Value
		return nil
	}
	var raw struct {
		Upper string `yaml:"upper"`
		Lower string `yaml:"lower"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	e.Upper, e.Lower = raw.Upper, raw.Lower
	return nil
}

// ReadSpecFile loads table column specs from a YAML document. Per-column
// option overrides are applied on top of base.
func ReadSpecFile(r io.Reader, base Options) ([]ColumnSpec, error) {
	var file specFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if len(file.Columns) == 0 {
		return nil, fmt.Errorf("%w: spec file declares no columns", ErrConfiguration)
	}

	specs := make([]ColumnSpec, 0, len(file.Columns))
	for i, entry := range file.Columns {
		spec, err := entry.columnSpec(base)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func (e specEntry) columnSpec(base Options) (ColumnSpec, error) {
	if e.Column != "" {
		if e.Value != "" || len(e.Errors) > 0 {
			return ColumnSpec{}, fmt.Errorf("%w: entry mixes column and value keys", ErrConfiguration)
		}
		return ColumnSpec{Value: e.Column, Name: e.Name}, nil
	}
	if e.Value == "" {
		return ColumnSpec{}, fmt.Errorf("%w: entry has neither column nor value", ErrConfiguration)
	}

	spec := ColumnSpec{Value: e.Value, Name: e.Name}
	for _, se := range e.Errors {
		if se.Upper == "" {
			return ColumnSpec{}, fmt.Errorf("%w: uncertainty entry has no column name", ErrConfiguration)
		}
		spec.Errors = append(spec.Errors, ErrorSpec{Upper: se.Upper, Lower: se.Lower})
	}

	opts, overridden, err := e.merge(base)
	if err != nil {
		return ColumnSpec{}, err
	}
	if overridden {
		spec.Options = &opts
	}
	return spec, nil
}

// merge applies the entry's overrides to base and reports whether any field
// was set.
func (e specEntry) merge(base Options) (Options, bool, error) {
	opts := base
	overridden := false
	if e.Abbreviate != nil {
		opts.Abbreviate = *e.Abbreviate
		overridden = true
	}
	if e.LaTeX != nil {
		opts.LaTeX = *e.LaTeX
		overridden = true
	}
	if e.Exponential != nil {
		opts.Exponential = *e.Exponential
		overridden = true
	}
	if e.SignificantFigures != nil {
		opts.SignificantFigures = *e.SignificantFigures
		overridden = true
	}
	if e.LengthControl != nil {
		lc, err := ParseLengthControl(*e.LengthControl)
		if err != nil {
			return Options{}, false, err
		}
		opts.LengthControl = lc
		overridden = true
	}
	return opts, overridden, nil
}
