package power

import (
	"errors"
	"fmt"
)

// Sentinel errors for validation and evaluation.
var (
	// ErrEmptyInput is returned when a field is empty after trimming.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidFormat is returned when a field is not a plain decimal literal.
	ErrInvalidFormat = errors.New("invalid numeric input")

	// ErrNonPositiveBase is returned when the base is zero or negative.
	ErrNonPositiveBase = errors.New("base must be greater than zero")

	// ErrDomain is returned when the logarithm is asked for a non-positive argument.
	// Compute never produces it because the base is checked first.
	ErrDomain = errors.New("logarithm of non-positive argument")

	// ErrUnknownMethod is returned for an unrecognised evaluation method name.
	ErrUnknownMethod = errors.New("unknown evaluation method")
)

// ValidationError reports which input field failed to parse.
type ValidationError struct {
	Role Role
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Role, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Code returns a stable machine-readable classification of err.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyInput):
		return "empty_input"
	case errors.Is(err, ErrInvalidFormat):
		return "invalid_format"
	case errors.Is(err, ErrNonPositiveBase):
		return "non_positive_base"
	case errors.Is(err, ErrUnknownMethod):
		return "unknown_method"
	default:
		return "internal"
	}
}

// Message returns the user-facing text for err.
func Message(err error) string {
	var verr *ValidationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &verr) && errors.Is(verr.Err, ErrEmptyInput):
		return fmt.Sprintf("%s cannot be empty.", verr.Role)
	case errors.As(err, &verr) && errors.Is(verr.Err, ErrInvalidFormat):
		return fmt.Sprintf("Invalid numeric input for %s.", verr.Role)
	case errors.Is(err, ErrNonPositiveBase):
		return "Base must be greater than zero."
	case errors.Is(err, ErrUnknownMethod):
		return err.Error()
	default:
		return "Internal error: computation failed."
	}
}
