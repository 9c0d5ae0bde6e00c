package errfmt

// decimalPlaces chooses the number of digits after the decimal point shared
// by the central value and every uncertainty.
//
// The anchor is the smallest nonzero uncertainty magnitude (first in input
// order on a tie), or the central value under LengthCentral or when no
// nonzero uncertainty exists. The anchor's leading-digit position, offset by
// the requested significant figures, gives the precision. The derivation runs
// twice because rounding the anchor at the first-pass precision can carry
// into a higher leading-digit position (0.0999 at two significant figures
// rounds to 0.10, which needs two decimal places rather than three).
func decimalPlaces(central number, errs []uncNumber, lc LengthControl, sigFigs int) int {
	anchor := central
	if lc != LengthCentral {
		if s, ok := smallestNonzero(errs); ok {
			anchor = s
		}
	}

	dp := 0
	for i := 0; i < 2; i++ {
		dp = sigFigs - 1 - anchor.exp
		anchor = roundAt(anchor, dp)
	}
	return dp
}

// smallestNonzero finds the smallest nonzero magnitude across all
// uncertainty components, flattening asymmetric pairs.
func smallestNonzero(errs []uncNumber) (number, bool) {
	var smallest number
	found := false
	for _, u := range errs {
		for _, c := range u.components() {
			if c.isZero() {
				continue
			}
			if !found || lessAbs(c, smallest) {
				smallest = c
				found = true
			}
		}
	}
	return smallest, found
}
