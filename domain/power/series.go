package power

import "math"

const (
	// lnTerms is the fixed number of Mercator terms; there is no early exit.
	lnTerms = 70

	// expTerms caps the Taylor expansion, counting the leading 1.
	expTerms = 30

	// expTolerance stops the Taylor expansion once a term drops below it.
	expTolerance = 1e-15
)

// ln2 is computed with the same kernel so the package stays self-contained.
var ln2 = mercatorLn(2)

// mercatorLn evaluates 2·Σ u^(2n+1)/(2n+1) with u = (z-1)/(z+1).
// Accuracy depends on |u|; callers must pass z > 0.
func mercatorLn(z float64) float64 {
	u := (z - 1) / (z + 1)
	u2 := u * u
	sum := 0.0
	denom := 1.0
	term := u
	for n := 0; n < lnTerms; n++ {
		sum += term / denom
		term *= u2
		denom += 2
	}
	return 2 * sum
}

// taylorExp evaluates Σ y^n/n!.
func taylorExp(y float64) float64 {
	sum := 1.0
	term := 1.0
	for n := 1; n < expTerms; n++ {
		term *= y / float64(n)
		sum += term
		if math.Abs(term) < expTolerance {
			break
		}
	}
	return sum
}

// Ln returns the natural logarithm of z using the Mercator series.
//
// The argument is first split as z = m·2^k with m in [√½, √2), so the series
// only ever sees |u| < 0.172 and the 70 terms converge to full precision;
// ln z = ln m + k·ln 2.
func Ln(z float64) (float64, error) {
	if math.IsNaN(z) || z <= 0 {
		return 0, ErrDomain
	}
	if math.IsInf(z, 1) {
		return z, nil
	}

	m, k := math.Frexp(z)
	if m < math.Sqrt2/2 {
		m *= 2
		k--
	}
	return mercatorLn(m) + float64(k)*ln2, nil
}

// Exp returns e^y using the Taylor series.
//
// The argument is reduced as y = k·ln 2 + r with |r| <= ln2/2, so at most 30
// terms with a 1e-15 cut-off reach full precision; e^y = 2^k·e^r.
// Results that overflow are returned as +Inf.
func Exp(y float64) float64 {
	switch {
	case math.IsNaN(y):
		return y
	case y > 1000:
		return math.Inf(1)
	case y < -1100:
		return 0
	}

	k := math.Round(y / ln2)
	r := y - k*ln2
	return math.Ldexp(taylorExp(r), int(k))
}

// Pow returns base^exponent as Exp(exponent·Ln(base)).
func Pow(base, exponent float64) (float64, error) {
	lb, err := Ln(base)
	if err != nil {
		return 0, err
	}
	return Exp(exponent * lb), nil
}

// LegacyLn applies the Mercator series directly to z without range
// reduction. It loses accuracy as z moves away from 1 and exists to
// reproduce the numbers of the desktop calculator exactly.
func LegacyLn(z float64) (float64, error) {
	if math.IsNaN(z) || z <= 0 {
		return 0, ErrDomain
	}
	return mercatorLn(z), nil
}

// LegacyExp applies the Taylor series directly to y without range reduction.
func LegacyExp(y float64) float64 {
	return taylorExp(y)
}

// LegacyPow returns LegacyExp(exponent·LegacyLn(base)).
func LegacyPow(base, exponent float64) (float64, error) {
	lb, err := LegacyLn(base)
	if err != nil {
		return 0, err
	}
	return LegacyExp(exponent * lb), nil
}
