package errfmt

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidValue      = errors.New("invalid value")
	ErrUncomputed        = errors.New("uncertainty not computed")
	ErrConfiguration     = errors.New("invalid configuration")
	ErrColumnResolution  = errors.New("cannot resolve column")
	ErrUnsupportedOutput = errors.New("unsupported output")
)

// DefaultSignificantFigures is used when Options.SignificantFigures is zero.
const DefaultSignificantFigures = 2

// LengthControl selects which quantity anchors the shared-precision decision.
type LengthControl string

const (
	// LengthSmallest anchors on the smallest supplied uncertainty. This is
	// the default; the zero value of LengthControl behaves identically.
	LengthSmallest LengthControl = "smallest"
	// LengthCentral anchors on the central value.
	LengthCentral LengthControl = "central"
)

// String returns the control name.
func (lc LengthControl) String() string { return string(lc) }

// ParseLengthControl parses a length control string, as found in CLI flags
// or spec files.
func ParseLengthControl(s string) (LengthControl, error) {
	switch LengthControl(s) {
	case LengthSmallest, LengthCentral:
		return LengthControl(s), nil
	}
	return "", fmt.Errorf("%w: length control %q", ErrConfiguration, s)
}

// Options selects the output style of [Format]. The zero value formats with
// two significant figures, anchored on the smallest uncertainty, in full
// plain-text fixed-point notation.
//
// Options values are immutable inputs: a single Options may be shared by any
// number of concurrent Format calls.
type Options struct {
	// SignificantFigures is the digit count applied to the anchor quantity
	// when deriving the shared precision. Zero means
	// DefaultSignificantFigures; negative values are rejected.
	SignificantFigures int

	// LengthControl picks the anchor quantity. Empty means LengthSmallest.
	LengthControl LengthControl

	// Abbreviate renders uncertainties as bracketed trailing digits,
	// e.g. 1.234(56) instead of 1.234 ± 0.056.
	Abbreviate bool

	// Exponential factors one shared power of ten out of every component,
	// e.g. (1.2 ± 0.3)e-3 instead of 0.0012 ± 0.0003.
	Exponential bool

	// LaTeX emits typeset macros rather than plain-text symbols.
	LaTeX bool
}

// sigFigs resolves the effective significant figure count.
func (o Options) sigFigs() (int, error) {
	switch {
	case o.SignificantFigures == 0:
		return DefaultSignificantFigures, nil
	case o.SignificantFigures < 1:
		return 0, fmt.Errorf("%w: significant figures must be at least 1, got %d",
			ErrConfiguration, o.SignificantFigures)
	}
	return o.SignificantFigures, nil
}

func (o Options) validate() error {
	if _, err := o.sigFigs(); err != nil {
		return err
	}
	switch o.LengthControl {
	case "", LengthSmallest, LengthCentral:
		return nil
	}
	return fmt.Errorf("%w: length control %q", ErrConfiguration, o.LengthControl)
}

// Uncertainty is one error bound on a central value: symmetric (a single
// magnitude) or asymmetric (separate upper and lower magnitudes). Construct
// values with [Sym] and [Asym].
type Uncertainty struct {
	upper, lower float64
	asym         bool
}

// Sym returns a symmetric uncertainty.
func Sym(v float64) Uncertainty { return Uncertainty{upper: v} }

// Asym returns an asymmetric uncertainty with separate upper and lower
// magnitudes.
func Asym(upper, lower float64) Uncertainty {
	return Uncertainty{upper: upper, lower: lower, asym: true}
}

// Carrier is implemented by central-value types that bundle an intrinsic
// uncertainty, such as resampled observables. Format prepends the carried
// uncertainty to the explicitly supplied ones.
type Carrier interface {
	// HasUncertainty reports whether the uncertainty has been computed yet.
	HasUncertainty() bool
	// Split returns the central value and its uncertainty.
	Split() (central, uncertainty float64)
}

// Format renders central and its uncertainties as one string in which every
// component is shown at the same precision.
//
// central may be any Go integer or float type, or a [Carrier]. Uncertainty
// magnitudes must be non-negative and, like the central value, finite.
func Format(central any, opts Options, uncertainties ...Uncertainty) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}
	sf, _ := opts.sigFigs()

	value, uncertainties, err := resolveCentral(central, uncertainties)
	if err != nil {
		return "", err
	}

	cn, err := decompose(value)
	if err != nil {
		return "", err
	}
	errs := make([]uncNumber, len(uncertainties))
	for i, u := range uncertainties {
		if errs[i], err = decomposeUncertainty(u); err != nil {
			return "", err
		}
	}

	exponent := 0
	if opts.Exponential {
		exponent = sharedExponent(cn, errs)
		cn = rescale(cn, exponent)
		for i := range errs {
			errs[i] = rescaleUncertainty(errs[i], exponent)
		}
	}

	dp := decimalPlaces(cn, errs, opts.LengthControl, sf)
	return render(cn, errs, dp, exponent, opts), nil
}

// resolveCentral reduces the polymorphic central argument to a float64,
// prepending a Carrier's intrinsic uncertainty.
func resolveCentral(central any, uncertainties []Uncertainty) (float64, []Uncertainty, error) {
	switch v := central.(type) {
	case Carrier:
		if !v.HasUncertainty() {
			return 0, nil, fmt.Errorf("%w: %T must have its uncertainty computed before formatting", ErrUncomputed, v)
		}
		value, unc := v.Split()
		return value, append([]Uncertainty{Sym(unc)}, uncertainties...), nil
	case float64:
		return v, uncertainties, nil
	case float32:
		return float64(v), uncertainties, nil
	case int:
		return float64(v), uncertainties, nil
	case int8:
		return float64(v), uncertainties, nil
	case int16:
		return float64(v), uncertainties, nil
	case int32:
		return float64(v), uncertainties, nil
	case int64:
		return float64(v), uncertainties, nil
	case uint:
		return float64(v), uncertainties, nil
	case uint8:
		return float64(v), uncertainties, nil
	case uint16:
		return float64(v), uncertainties, nil
	case uint32:
		return float64(v), uncertainties, nil
	case uint64:
		return float64(v), uncertainties, nil
	}
	return 0, nil, fmt.Errorf("%w: unsupported central value type %T", ErrInvalidValue, central)
}
