package errfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// number is a decomposed decimal value: a sign, the significant digits of the
// shortest round-tripping representation (most significant first, no trailing
// zeros), and the decimal position of the leading digit. Position 0 is the
// units digit, so the represented value is ±0.digits × 10^(exp+1).
//
// Zero is represented as digits "0" with exp 0. number values are never
// mutated; every transformation returns a fresh value.
type number struct {
	neg    bool
	digits string
	exp    int
}

func (n number) isZero() bool { return n.digits == "0" }

// uncNumber is a decomposed [Uncertainty]: one number when symmetric, an
// upper/lower pair when asymmetric.
type uncNumber struct {
	upper, lower number
	asym         bool
}

// components returns the magnitudes held by u: one for a symmetric
// uncertainty, two for an asymmetric pair.
func (u uncNumber) components() []number {
	if u.asym {
		return []number{u.upper, u.lower}
	}
	return []number{u.upper}
}

// decompose converts a float into its decimal digit form. It fails on NaN
// and infinities; negative values keep their sign.
func decompose(v float64) (number, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return number{}, fmt.Errorf("%w: %v cannot be formatted", ErrInvalidValue, v)
	}
	if v == 0 {
		return number{digits: "0"}, nil
	}

	n := number{neg: math.Signbit(v)}

	// The shortest round-tripping representation, e.g. "1.2345e-03".
	s := strconv.FormatFloat(math.Abs(v), 'e', -1, 64)
	mant, expStr, _ := strings.Cut(s, "e")
	exp, err := strconv.Atoi(expStr)
	if err != nil {
		return number{}, fmt.Errorf("%w: %v: %v", ErrInvalidValue, v, err)
	}
	n.exp = exp
	n.digits = strings.Replace(mant, ".", "", 1)
	n.digits = strings.TrimRight(n.digits, "0")
	if n.digits == "" {
		n.digits = "0"
	}
	return n, nil
}

// decomposeUncertainty decomposes each magnitude of u, rejecting negatives.
func decomposeUncertainty(u Uncertainty) (uncNumber, error) {
	un := uncNumber{asym: u.asym}
	var err error
	if un.upper, err = decomposeMagnitude(u.upper); err != nil {
		return uncNumber{}, err
	}
	if u.asym {
		if un.lower, err = decomposeMagnitude(u.lower); err != nil {
			return uncNumber{}, err
		}
	}
	return un, nil
}

func decomposeMagnitude(v float64) (number, error) {
	if v < 0 {
		return number{}, fmt.Errorf("%w: uncertainty %v must be non-negative", ErrInvalidValue, v)
	}
	return decompose(v)
}

// lessAbs reports whether |a| < |b|. Neither value may be zero.
func lessAbs(a, b number) bool {
	if a.exp != b.exp {
		return a.exp < b.exp
	}
	da, db := a.digits, b.digits
	if len(da) < len(db) {
		da += strings.Repeat("0", len(db)-len(da))
	} else if len(db) < len(da) {
		db += strings.Repeat("0", len(da)-len(db))
	}
	return da < db
}
