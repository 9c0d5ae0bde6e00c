package errfmt

import (
	"fmt"
	"strings"
)

// render serializes the decomposed central value and uncertainties at the
// shared precision dp. It is a pure function: rounding happens here per
// component, everything else is string assembly.
func render(central number, errs []uncNumber, dp, exponent int, opts Options) string {
	var b strings.Builder
	b.WriteString(fixed(roundAt(central, dp), dp))
	for _, u := range errs {
		b.WriteString(uncPiece(u, dp, opts))
	}
	body := b.String()

	if exponent != 0 {
		if !opts.Abbreviate {
			// Group the components so the exponent applies to all of them.
			body = "(" + body + ")"
		}
		if opts.LaTeX {
			body += fmt.Sprintf(" \\times 10^{%d}", exponent)
		} else {
			body += fmt.Sprintf("e%d", exponent)
		}
	}
	return body
}

// uncPiece renders one uncertainty, including its leading separator or
// bracket.
func uncPiece(u uncNumber, dp int, opts Options) string {
	component := uncFixed
	if opts.Abbreviate {
		component = uncAbbreviated
	}

	if u.asym {
		up, lo := component(u.upper, dp), component(u.lower, dp)
		switch {
		case opts.Abbreviate && opts.LaTeX:
			return fmt.Sprintf("({}^{+%s}_{-%s})", up, lo)
		case opts.Abbreviate:
			return fmt.Sprintf("(+%s / -%s)", up, lo)
		case opts.LaTeX:
			return fmt.Sprintf(" {}^{+%s}_{-%s}", up, lo)
		default:
			return fmt.Sprintf(" (+%s / -%s)", up, lo)
		}
	}

	s := component(u.upper, dp)
	switch {
	case opts.Abbreviate:
		return "(" + s + ")"
	case opts.LaTeX:
		return " \\pm " + s
	default:
		return " ± " + s
	}
}

// uncFixed renders one uncertainty magnitude in full decimal alignment.
// A magnitude that rounds away entirely shows as "0.0" rather than a full
// run of zero decimals.
func uncFixed(n number, dp int) string {
	r := roundAt(n, dp)
	if r.isZero() {
		if dp > 0 {
			return "0.0"
		}
		return "0"
	}
	return fixed(r, dp)
}

// uncAbbreviated renders one uncertainty magnitude in bracket notation:
// only the digits occupying the last dp decimal places, as a bare integer.
// Magnitudes of one or more keep their own decimal point, since their
// digits would otherwise be ambiguous against the central value's.
func uncAbbreviated(n number, dp int) string {
	if dp <= 0 || n.exp >= 0 {
		return uncFixed(n, dp)
	}
	r := roundAt(n, dp)
	if r.isZero() {
		return "0"
	}
	return r.digits + strings.Repeat("0", r.exp+dp+1-len(r.digits))
}

// fixed renders an already-rounded number with exactly dp digits after the
// decimal point. When dp <= 0 the value is rendered as a plain integer with
// no decimal point.
func fixed(n number, dp int) string {
	var b strings.Builder
	if n.neg && !n.isZero() {
		b.WriteByte('-')
	}

	if dp <= 0 {
		if n.isZero() {
			return "0"
		}
		b.WriteString(n.digits)
		for i := len(n.digits); i <= n.exp; i++ {
			b.WriteByte('0')
		}
		return b.String()
	}

	frac := ""
	switch {
	case n.isZero():
		b.WriteByte('0')
	case n.exp < 0:
		b.WriteByte('0')
		frac = strings.Repeat("0", -n.exp-1) + n.digits
	default:
		intLen := n.exp + 1
		if len(n.digits) >= intLen {
			b.WriteString(n.digits[:intLen])
			frac = n.digits[intLen:]
		} else {
			b.WriteString(n.digits)
			b.WriteString(strings.Repeat("0", intLen-len(n.digits)))
		}
	}
	b.WriteByte('.')
	b.WriteString(frac)
	b.WriteString(strings.Repeat("0", dp-len(frac)))
	return b.String()
}
