// Package errfmt renders a central value together with its uncertainties as a
// single string, with every component shown at a consistent precision.
//
// The central entry point is [Format], which accepts a central value, an
// [Options] value, and zero or more uncertainties built with [Sym] and [Asym]:
//
//	s, err := errfmt.Format(1.001, errfmt.Options{Abbreviate: true},
//		errfmt.Sym(0.010), errfmt.Asym(0.020, 0.034))
//	// s == "1.001(10)(+20 / -34)"
//
// The number of digits shown is anchored on the smallest uncertainty (or on
// the central value, under [LengthCentral]) and applied uniformly: after
// formatting, the central value and every uncertainty carry the same number
// of digits past the decimal point. Rounding is half-away-from-zero on the
// value's shortest decimal representation, with carries that grow the
// magnitude handled exactly (0.096 at two significant figures is 0.10, and
// 9.96 at one decimal place is 10.0).
//
// # Styles
//
// Four independent option axes combine freely:
//
//   - Abbreviate — bracketed trailing digits (1.001(10)) instead of full
//     decimal alignment (1.001 ± 0.010).
//   - LaTeX — typeset macros (\pm, {}^{+U}_{-L}, \times 10^{n}) instead of
//     plain-text symbols.
//   - Exponential — one shared power of ten factored out of every component
//     ((1.23 ± 0.45)e-3).
//   - LengthControl — whether the smallest uncertainty or the central value
//     anchors the shared precision.
//
// # Values with intrinsic uncertainties
//
// A central value implementing [Carrier] contributes its own uncertainty,
// which is prepended to the explicit ones. The uncertainty must already have
// been computed; otherwise Format fails with [ErrUncomputed].
//
// # Columns and tables
//
// [FormatColumns] applies Format row-wise across aligned slices, and [Frame]
// adapts whole CSV tables: [ReadFrame] loads one, [FormatFrame] replaces
// groups of value/uncertainty columns with formatted string columns per
// [ColumnSpec], and [Frame.Write] renders the result as LaTeX (booktabs),
// CSV, aligned text, or Markdown.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidValue] — non-finite input or negative uncertainty
//   - [ErrUncomputed] — a [Carrier] whose uncertainty is not yet computed
//   - [ErrConfiguration] — invalid [Options]
//   - [ErrColumnResolution] — unknown or misaligned column
//   - [ErrUnsupportedOutput] — unknown table output format
package errfmt
