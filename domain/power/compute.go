package power

import (
	"math"
	"strconv"
	"strings"
)

// Compute parses the three fields and returns multiplier × base^exponent.
//
// Fields are validated in multiplier, base, exponent order and the first
// invalid one is reported.
func Compute(multiplierText, baseText, exponentText string) (float64, error) {
	return ComputeWith(MethodNative, multiplierText, baseText, exponentText)
}

// ComputeWith is Compute with an explicit evaluation method.
func ComputeWith(method Method, multiplierText, baseText, exponentText string) (float64, error) {
	a, err := Parse(multiplierText, RoleMultiplier)
	if err != nil {
		return 0, err
	}
	b, err := Parse(baseText, RoleBase)
	if err != nil {
		return 0, err
	}
	x, err := Parse(exponentText, RoleExponent)
	if err != nil {
		return 0, err
	}
	return EvaluateWith(method, a, b, x)
}

// Outcome is the single result of one computation: a value or an error.
type Outcome struct {
	Value float64
	Err   error
}

// NewOutcome pairs a Compute result with its error, so that
// NewOutcome(Compute(a, b, x)) reads naturally.
func NewOutcome(value float64, err error) Outcome {
	if err != nil {
		return Outcome{Err: err}
	}
	return Outcome{Value: value}
}

// OK reports whether the computation succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Message returns the user-facing failure text, or "" on success.
func (o Outcome) Message() string {
	return Message(o.Err)
}

// String renders the outcome as "Result: <value>" or "Error: <message>".
func (o Outcome) String() string {
	if o.Err != nil {
		return "Error: " + o.Message()
	}
	return "Result: " + FormatValue(o.Value)
}

// FormatValue renders v the way the calculator always displayed doubles:
// plain decimals with at least one fractional digit in [1e-3, 1e7),
// otherwise d.dddE<n>.
func FormatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	if abs := math.Abs(v); abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	mant, exp, _ := strings.Cut(strconv.FormatFloat(v, 'E', -1, 64), "E")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	n, _ := strconv.Atoi(exp)
	return mant + "E" + strconv.Itoa(n)
}
