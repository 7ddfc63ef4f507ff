package power

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Role names the input field a number was read from.
type Role string

// Input roles, in validation order.
const (
	RoleMultiplier Role = "multiplier"
	RoleBase       Role = "base"
	RoleExponent   Role = "exponent"
)

// numberPattern accepts an optional minus sign, digits, and an optional
// fractional part. Exponent notation and a leading plus are rejected.
var numberPattern = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

// Parse converts text into a finite float64.
// Surrounding whitespace is ignored.
func Parse(text string, role Role) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, &ValidationError{Role: role, Err: ErrEmptyInput}
	}
	if !numberPattern.MatchString(s) {
		return 0, &ValidationError{Role: role, Err: ErrInvalidFormat}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		// Only reachable for literals too large for float64.
		return 0, &ValidationError{Role: role, Err: ErrInvalidFormat}
	}
	return v, nil
}
