package power

import (
	"fmt"
	"math"
	"strings"
)

// Method selects how base^exponent is evaluated.
type Method string

// Evaluation methods.
const (
	// MethodNative uses math.Pow. It is the default.
	MethodNative Method = "native"

	// MethodSeries composes the range-reduced Ln and Exp series.
	MethodSeries Method = "series"

	// MethodLegacy composes the unreduced series, as the desktop calculator did.
	MethodLegacy Method = "legacy"
)

// Methods lists every supported method in display order.
var Methods = []Method{MethodNative, MethodSeries, MethodLegacy}

// ParseMethod resolves a method name. An empty name selects MethodNative.
func ParseMethod(name string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(name))); m {
	case "":
		return MethodNative, nil
	case MethodNative, MethodSeries, MethodLegacy:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

// Evaluate returns multiplier × base^exponent using math.Pow.
func Evaluate(multiplier, base, exponent float64) (float64, error) {
	return EvaluateWith(MethodNative, multiplier, base, exponent)
}

// EvaluateWith returns multiplier × base^exponent using the given method.
//
// The base must be strictly positive. Overflow is not an error: the
// non-finite product is returned as is.
func EvaluateWith(method Method, multiplier, base, exponent float64) (float64, error) {
	if math.IsNaN(base) || base <= 0 {
		return 0, ErrNonPositiveBase
	}

	var (
		p   float64
		err error
	)
	switch method {
	case MethodNative, "":
		p = math.Pow(base, exponent)
	case MethodSeries:
		p, err = Pow(base, exponent)
	case MethodLegacy:
		p, err = LegacyPow(base, exponent)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, string(method))
	}
	if err != nil {
		return 0, err
	}
	return multiplier * p, nil
}
