package errfmt

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Output is a table output format.
type Output string

const (
	OutputLaTeX    Output = "latex"
	OutputCSV      Output = "csv"
	OutputText     Output = "text"
	OutputMarkdown Output = "markdown"
)

var outputs = []Output{OutputLaTeX, OutputCSV, OutputText, OutputMarkdown}

// String returns the output name.
func (o Output) String() string { return string(o) }

// Outputs returns all supported output names.
func Outputs() []Output {
	out := make([]Output, len(outputs))
	copy(out, outputs)
	return out
}

// ParseOutput parses an output format string.
func ParseOutput(s string) (Output, error) {
	for _, o := range outputs {
		if string(o) == s {
			return o, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedOutput, s)
}

// Write renders the frame to w in the given output format, using the column
// names as headings.
func (f *Frame) Write(w io.Writer, o Output) error {
	return f.WriteWith(w, o, nil)
}

// WriteWith renders the frame with explicit headings in place of the column
// names. The heading count must match the column count.
func (f *Frame) WriteWith(w io.Writer, o Output, headings []string) error {
	if headings == nil {
		headings = f.Names()
	}
	if len(headings) != len(f.names) {
		return fmt.Errorf("%w: %d headings for %d columns",
			ErrColumnResolution, len(headings), len(f.names))
	}
	switch o {
	case OutputLaTeX:
		return f.writeLaTeX(w, headings)
	case OutputCSV:
		return f.writeCSV(w, headings)
	case OutputText:
		return f.writeText(w, headings)
	case OutputMarkdown:
		return f.writeMarkdown(w, headings)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedOutput, o)
}

// writeLaTeX emits a booktabs tabular environment. Numeric columns are
// right-aligned, everything else left-aligned.
func (f *Frame) writeLaTeX(w io.Writer, headings []string) error {
	var b strings.Builder
	b.WriteString("\\begin{tabular}{")
	for j := range f.names {
		if f.numeric(j) {
			b.WriteByte('r')
		} else {
			b.WriteByte('l')
		}
	}
	b.WriteString("}\n\\toprule\n")
	b.WriteString(strings.Join(headings, " & "))
	b.WriteString(" \\\\\n\\midrule\n")
	for i := 0; i < f.Len(); i++ {
		b.WriteString(strings.Join(f.row(i), " & "))
		b.WriteString(" \\\\\n")
	}
	b.WriteString("\\bottomrule\n\\end{tabular}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func (f *Frame) writeCSV(w io.Writer, headings []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headings); err != nil {
		return err
	}
	for i := 0; i < f.Len(); i++ {
		if err := cw.Write(f.row(i)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeText emits space-separated columns padded to a common width, with a
// dashed rule under the headings.
func (f *Frame) writeText(w io.Writer, headings []string) error {
	widths := f.columnWidths(headings, 0)

	if err := f.writeTextRow(w, headings, widths); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for j, width := range widths {
		sep[j] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintln(w, strings.Join(sep, "  ")); err != nil {
		return err
	}
	for i := 0; i < f.Len(); i++ {
		if err := f.writeTextRow(w, f.row(i), widths); err != nil {
			return err
		}
	}
	return nil
}

func (f *Frame) writeTextRow(w io.Writer, cells []string, widths []int) error {
	parts := make([]string, len(widths))
	for j, width := range widths {
		cell := ""
		if j < len(cells) {
			cell = cells[j]
		}
		parts[j] = alignCell(cell, width, f.numeric(j))
	}
	line := strings.TrimRight(strings.Join(parts, "  "), " ")
	_, err := fmt.Fprintln(w, line)
	return err
}

// writeMarkdown emits a GitHub-flavored Markdown table with alignment
// markers on numeric columns.
func (f *Frame) writeMarkdown(w io.Writer, headings []string) error {
	// Minimum 3 to leave room for the alignment markers.
	widths := f.columnWidths(headings, 3)

	if err := writeMarkdownRow(w, headings, widths); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for j, width := range widths {
		if f.numeric(j) {
			sep[j] = strings.Repeat("-", width-1) + ":"
		} else {
			sep[j] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for i := 0; i < f.Len(); i++ {
		if err := writeMarkdownRow(w, f.row(i), widths); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(widths))
	for j, width := range widths {
		cell := ""
		if j < len(cells) {
			cell = cells[j]
		}
		padded[j] = alignCell(cell, width, false)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

// columnWidths measures the display width of every column, headings
// included, with a floor of min.
func (f *Frame) columnWidths(headings []string, min int) []int {
	widths := make([]int, len(f.names))
	for j, h := range headings {
		if w := runewidth.StringWidth(h); w > widths[j] {
			widths[j] = w
		}
	}
	for j, name := range f.names {
		for _, cell := range f.cols[name] {
			if w := runewidth.StringWidth(cell); w > widths[j] {
				widths[j] = w
			}
		}
	}
	for j := range widths {
		if widths[j] < min {
			widths[j] = min
		}
	}
	return widths
}

func alignCell(s string, width int, right bool) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", pad) + s
	}
	return s + strings.Repeat(" ", pad)
}
