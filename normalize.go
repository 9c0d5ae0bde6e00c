package errfmt

// sharedExponent picks the power of ten factored out of every component in
// exponential mode: the central value's leading-digit position, or the
// largest uncertainty's when the central value is zero.
func sharedExponent(central number, errs []uncNumber) int {
	if !central.isZero() {
		return central.exp
	}
	var largest number
	found := false
	for _, u := range errs {
		for _, c := range u.components() {
			if c.isZero() {
				continue
			}
			if !found || lessAbs(largest, c) {
				largest = c
				found = true
			}
		}
	}
	if !found {
		return 0
	}
	return largest.exp
}

// rescale expresses n against a shared exponent. In digit form this is a
// pure shift; no significant digits are gained or lost, and components
// smaller than the shared unit end up with a negative position rather than
// being dropped.
func rescale(n number, exponent int) number {
	if n.isZero() {
		return n
	}
	return number{neg: n.neg, digits: n.digits, exp: n.exp - exponent}
}

func rescaleUncertainty(u uncNumber, exponent int) uncNumber {
	r := uncNumber{asym: u.asym, upper: rescale(u.upper, exponent)}
	if u.asym {
		r.lower = rescale(u.lower, exponent)
	}
	return r
}
