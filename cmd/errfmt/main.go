// Command errfmt formats numbers with uncertainties, either one value at a
// time or whole CSV tables.
//
// Usage:
//
//	errfmt [flags] format <value> <uncertainty>...
//	errfmt [flags] table <input.csv> <colspec>... [-output file] [-headings h1,h2] [-spec file.yaml] [-format latex|csv|text|markdown]
//
// An uncertainty argument is a single number, or upper,lower for an
// asymmetric pair. A colspec is a value column name optionally followed by
// comma-separated uncertainty columns, with asymmetric pairs written
// upper-lower: "mass,stat,up-down".
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bjaus/errfmt"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "errfmt:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("errfmt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		abbreviate  = fs.Bool("abbreviate", false, "abbreviate uncertainties, e.g. 1.23(4) instead of 1.23 ± 0.04")
		latex       = fs.Bool("latex", false, "emit LaTeX, e.g. 1.23 \\pm 0.04")
		exponential = fs.Bool("exponential", false, "use exponential notation")
		sigFigs     = fs.Int("significant-figures", errfmt.DefaultSignificantFigures, "significant figures on the controlling value")
		lengthCtl   = fs.String("length-control", string(errfmt.LengthSmallest), "value controlling the digit count: smallest or central")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	lc, err := errfmt.ParseLengthControl(*lengthCtl)
	if err != nil {
		return err
	}
	opts := errfmt.Options{
		SignificantFigures: *sigFigs,
		LengthControl:      lc,
		Abbreviate:         *abbreviate,
		Exponential:        *exponential,
		LaTeX:              *latex,
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return fmt.Errorf("missing command: format or table")
	}
	switch rest[0] {
	case "format":
		return runFormat(rest[1:], opts, stdout)
	case "table":
		return runTable(rest[1:], opts, stdout, stderr)
	}
	return fmt.Errorf("unknown command %q (want format or table)", rest[0])
}

func runFormat(args []string, opts errfmt.Options, stdout io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("format: missing central value")
	}
	central, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("format: central value %q is not a number", args[0])
	}
	uncertainties := make([]errfmt.Uncertainty, 0, len(args)-1)
	for _, arg := range args[1:] {
		u, err := parseUncertainty(arg)
		if err != nil {
			return err
		}
		uncertainties = append(uncertainties, u)
	}

	s, err := errfmt.Format(central, opts, uncertainties...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, s)
	return err
}

// parseUncertainty parses a single number or an upper,lower pair.
func parseUncertainty(arg string) (errfmt.Uncertainty, error) {
	parts := strings.Split(arg, ",")
	switch len(parts) {
	case 1:
		v, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return errfmt.Uncertainty{}, fmt.Errorf("cannot parse %q as a number or pair of numbers", arg)
		}
		return errfmt.Sym(v), nil
	case 2:
		upper, err1 := strconv.ParseFloat(parts[0], 64)
		lower, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			return errfmt.Uncertainty{}, fmt.Errorf("cannot parse %q as a number or pair of numbers", arg)
		}
		return errfmt.Asym(upper, lower), nil
	}
	return errfmt.Uncertainty{}, fmt.Errorf("cannot parse %q as a number or pair of numbers", arg)
}

func runTable(args []string, opts errfmt.Options, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("table", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		outputPath = fs.String("output", "", "write output here instead of stdout")
		headings   = fs.String("headings", "", "comma-separated column headings (default: CSV header names)")
		specPath   = fs.String("spec", "", "YAML file of column specs, used instead of colspec arguments")
		format     = fs.String("format", string(errfmt.OutputLaTeX), "table output format: latex, csv, text, or markdown")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("table: missing input CSV path")
	}

	output, err := errfmt.ParseOutput(*format)
	if err != nil {
		return err
	}
	if output == errfmt.OutputLaTeX && !opts.LaTeX {
		fmt.Fprintln(stderr, "warning: -latex not specified; forced on for LaTeX table output")
		opts.LaTeX = true
	}

	specs, err := tableSpecs(rest[1:], *specPath, opts)
	if err != nil {
		return err
	}

	in, err := os.Open(rest[0])
	if err != nil {
		return err
	}
	defer in.Close()
	frame, err := errfmt.ReadFrame(in)
	if err != nil {
		return err
	}

	formatted, err := errfmt.FormatFrame(frame, specs, opts)
	if err != nil {
		return err
	}

	var headingList []string
	if *headings != "" {
		headingList = strings.Split(*headings, ",")
	}

	out := stdout
	if *outputPath != "" {
		file, err := os.Create(*outputPath)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}
	return formatted.WriteWith(out, output, headingList)
}

// tableSpecs resolves column specs from either the positional colspec
// arguments or a YAML spec file.
func tableSpecs(args []string, specPath string, opts errfmt.Options) ([]errfmt.ColumnSpec, error) {
	if specPath != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("table: colspec arguments and -spec are mutually exclusive")
		}
		file, err := os.Open(specPath)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return errfmt.ReadSpecFile(file, opts)
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("table: missing column specs")
	}
	specs := make([]errfmt.ColumnSpec, 0, len(args))
	for _, arg := range args {
		spec, err := errfmt.ParseColumnSpec(arg)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
