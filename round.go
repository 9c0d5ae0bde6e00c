package errfmt

import "strings"

// roundAt rounds n to dp digits after the decimal point, half away from
// zero. dp may be negative to round left of the point (dp -2 rounds to
// hundreds).
//
// A carry that overflows the leading digit grows the magnitude by one order:
// 9.96 at one decimal place becomes 10.0, with exp raised accordingly.
// Values lying entirely below the rounding position become zero.
func roundAt(n number, dp int) number {
	if n.isZero() {
		return n
	}
	// Number of digits at or above position -dp.
	keep := n.exp + dp + 1
	if keep >= len(n.digits) {
		return n
	}
	if keep < 0 {
		return number{digits: "0"}
	}

	up := n.digits[keep] >= '5'
	d := []byte(n.digits[:keep])
	exp := n.exp
	if up {
		i := len(d) - 1
		for ; i >= 0; i-- {
			if d[i] < '9' {
				d[i]++
				break
			}
			d[i] = '0'
		}
		if i < 0 {
			// Carry out of the leading digit: 99 → 100 and, when keep is
			// zero, 0.06 → 0.1 at one decimal place.
			d = append([]byte{'1'}, d...)
			exp++
		}
	}

	digits := strings.TrimRight(string(d), "0")
	if digits == "" {
		return number{digits: "0"}
	}
	return number{neg: n.neg, digits: digits, exp: exp}
}
