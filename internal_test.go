package errfmt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompose(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   float64
		want number
	}{
		"unit":          {in: 1, want: number{digits: "1", exp: 0}},
		"zero":          {in: 0, want: number{digits: "0", exp: 0}},
		"negative zero": {in: math.Copysign(0, -1), want: number{digits: "0", exp: 0}},
		"pi-ish":        {in: 3.141, want: number{digits: "3141", exp: 0}},
		"small":         {in: 0.0012345, want: number{digits: "12345", exp: -3}},
		"large":         {in: 1234.5, want: number{digits: "12345", exp: 3}},
		"negative":      {in: -0.25, want: number{neg: true, digits: "25", exp: -1}},
		"power of ten":  {in: 1000, want: number{digits: "1", exp: 3}},
		"tenth":         {in: 0.1, want: number{digits: "1", exp: -1}},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := decompose(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecomposeInvalid(t *testing.T) {
	t.Parallel()
	for name, in := range map[string]float64{
		"nan":          math.NaN(),
		"positive inf": math.Inf(1),
		"negative inf": math.Inf(-1),
	} {
		in := in
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := decompose(in)
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}

func TestDecomposeMagnitudeNegative(t *testing.T) {
	t.Parallel()
	_, err := decomposeMagnitude(-0.1)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestRoundAt(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   number
		dp   int
		want number
	}{
		"exact fit": {
			in: number{digits: "12345", exp: 0}, dp: 4,
			want: number{digits: "12345", exp: 0},
		},
		"round down": {
			in: number{digits: "12345", exp: 0}, dp: 2,
			want: number{digits: "123", exp: 0},
		},
		"round up": {
			in: number{digits: "1267", exp: 0}, dp: 2,
			want: number{digits: "127", exp: 0},
		},
		"half rounds away from zero": {
			in: number{digits: "125", exp: 0}, dp: 1,
			want: number{digits: "13", exp: 0},
		},
		"negative half rounds away from zero": {
			in: number{neg: true, digits: "125", exp: 0}, dp: 1,
			want: number{neg: true, digits: "13", exp: 0},
		},
		"carry through nines": {
			in: number{digits: "996", exp: 0}, dp: 1,
			want: number{digits: "1", exp: 1},
		},
		"carry at leading digit": {
			in: number{digits: "96", exp: -2}, dp: 2,
			want: number{digits: "1", exp: -1},
		},
		"all below rounding point": {
			in: number{digits: "4", exp: -3}, dp: 1,
			want: number{digits: "0", exp: 0},
		},
		"just below but rounds up": {
			in: number{digits: "6", exp: -2}, dp: 1,
			want: number{digits: "1", exp: -1},
		},
		"negative places": {
			in: number{digits: "12345", exp: 4}, dp: -3,
			want: number{digits: "12", exp: 4},
		},
		"zero": {
			in: number{digits: "0", exp: 0}, dp: 3,
			want: number{digits: "0", exp: 0},
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, roundAt(tt.in, tt.dp))
		})
	}
}

// TestRoundAtCarryRendered pins the two carry scenarios end to end: rounding
// must shift the exponent, not misplace the decimal point.
func TestRoundAtCarryRendered(t *testing.T) {
	t.Parallel()
	n, err := decompose(9.96)
	require.NoError(t, err)
	assert.Equal(t, "10.0", fixed(roundAt(n, 1), 1))

	n, err = decompose(0.096)
	require.NoError(t, err)
	assert.Equal(t, "0.10", fixed(roundAt(n, 2), 2))
}

func TestLessAbs(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		a, b number
		want bool
	}{
		"smaller exponent":       {a: number{digits: "9", exp: -2}, b: number{digits: "1", exp: -1}, want: true},
		"larger exponent":        {a: number{digits: "1", exp: 1}, b: number{digits: "9", exp: 0}, want: false},
		"same exponent smaller":  {a: number{digits: "12", exp: 0}, b: number{digits: "13", exp: 0}, want: true},
		"same exponent equal":    {a: number{digits: "12", exp: 0}, b: number{digits: "12", exp: 0}, want: false},
		"short digits pad right": {a: number{digits: "1", exp: 0}, b: number{digits: "105", exp: 0}, want: true},
		"sign is ignored":        {a: number{neg: true, digits: "5", exp: 0}, b: number{digits: "4", exp: 0}, want: false},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, lessAbs(tt.a, tt.b))
		})
	}
}

func TestDecimalPlaces(t *testing.T) {
	t.Parallel()
	sym := func(v float64) uncNumber {
		n, err := decompose(v)
		require.NoError(t, err)
		return uncNumber{upper: n}
	}
	one := number{digits: "1", exp: 0}
	tests := map[string]struct {
		central number
		errs    []uncNumber
		lc      LengthControl
		sigFigs int
		want    int
	}{
		"smallest uncertainty anchors": {
			central: one, errs: []uncNumber{sym(0.1), sym(0.02)}, sigFigs: 2, want: 3,
		},
		"central anchors": {
			central: one, errs: []uncNumber{sym(0.1), sym(0.02)}, lc: LengthCentral, sigFigs: 2, want: 1,
		},
		"no uncertainties fall back to central": {
			central: one, sigFigs: 2, want: 1,
		},
		"zero uncertainties fall back to central": {
			central: one, errs: []uncNumber{sym(0)}, sigFigs: 2, want: 1,
		},
		"carry moves the anchor": {
			// 0.0999 at two figures rounds to 0.10, so two places, not three.
			central: one, errs: []uncNumber{sym(0.0999)}, sigFigs: 2, want: 2,
		},
		"negative places for wide anchors": {
			central: number{digits: "12345", exp: 4}, lc: LengthCentral, sigFigs: 2, want: -3,
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, decimalPlaces(tt.central, tt.errs, tt.lc, tt.sigFigs))
		})
	}
}

func TestSharedExponent(t *testing.T) {
	t.Parallel()
	small, err := decompose(0.0012345)
	require.NoError(t, err)
	assert.Equal(t, -3, sharedExponent(small, nil))

	zero, err := decompose(0)
	require.NoError(t, err)
	u1, err := decomposeUncertainty(Sym(0.01))
	require.NoError(t, err)
	u2, err := decomposeUncertainty(Asym(0.123, 0.49))
	require.NoError(t, err)
	assert.Equal(t, -1, sharedExponent(zero, []uncNumber{u1, u2}))

	assert.Equal(t, 0, sharedExponent(zero, nil))
}

func TestRescale(t *testing.T) {
	t.Parallel()
	n, err := decompose(0.0012345)
	require.NoError(t, err)
	got := rescale(n, -3)
	assert.Equal(t, number{digits: "12345", exp: 0}, got)

	// Rescaling never drops digits, even below the shared unit.
	small, err := decompose(0.0000121)
	require.NoError(t, err)
	got = rescale(small, -3)
	assert.Equal(t, number{digits: "121", exp: -2}, got)

	zero, err := decompose(0)
	require.NoError(t, err)
	assert.Equal(t, zero, rescale(zero, -3))
}

func TestFixed(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   number
		dp   int
		want string
	}{
		"integer":                  {in: number{digits: "12", exp: 4}, dp: -3, want: "12000"},
		"integer zero":             {in: number{digits: "0", exp: 0}, dp: 0, want: "0"},
		"pads fraction":            {in: number{digits: "1", exp: -1}, dp: 2, want: "0.10"},
		"leading fraction zeros":   {in: number{digits: "121", exp: -5}, dp: 6, want: "0.000012"},
		"integer and fraction":     {in: number{digits: "12345", exp: 3}, dp: 1, want: "1234.5"},
		"pads integer part":        {in: number{digits: "1", exp: 1}, dp: 1, want: "10.0"},
		"zero with decimals":       {in: number{digits: "0", exp: 0}, dp: 2, want: "0.00"},
		"negative":                 {in: number{neg: true, digits: "1234", exp: 0}, dp: 3, want: "-1.234"},
		"negative rounded to zero": {in: number{digits: "0", exp: 0, neg: true}, dp: 2, want: "0.00"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fixed(tt.in, tt.dp))
		})
	}
}

func TestUncAbbreviated(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   float64
		dp   int
		want string
	}{
		"bare digits":           {in: 0.010, dp: 3, want: "10"},
		"rounds within bracket": {in: 0.123456789, dp: 4, want: "1235"},
		"rounds to zero":        {in: 0.0004, dp: 2, want: "0"},
		"magnitude above one":   {in: 6.7, dp: 1, want: "6.7"},
		"integer places":        {in: 6789, dp: -3, want: "7000"},
		"carry into bracket":    {in: 0.096, dp: 2, want: "10"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			n, err := decompose(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, uncAbbreviated(n, tt.dp))
		})
	}
}
