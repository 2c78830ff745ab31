package pricing

import (
	"errors"
	"fmt"
)

// Error kinds. Every validation failure returned by this package wraps one
// of them, so callers can classify with errors.Is.
var (
	ErrMissingParameters    = errors.New("missing parameters")
	ErrInvalidNumber        = errors.New("invalid number")
	ErrNegativeValue        = errors.New("negative value")
	ErrPercentageOutOfRange = errors.New("percentage out of range")
	ErrUnsupportedCurrency  = errors.New("unsupported currency")
	ErrUnsupportedPair      = errors.New("unsupported conversion pair")
)

// Error is a client input error. Message is the exact text returned to the
// caller in the JSON error body.
type Error struct {
	Kind    error
	Message string
}

func newError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Reason returns a short, metric-friendly label for err.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrMissingParameters):
		return "missing_parameters"
	case errors.Is(err, ErrInvalidNumber):
		return "invalid_number"
	case errors.Is(err, ErrNegativeValue):
		return "negative_value"
	case errors.Is(err, ErrPercentageOutOfRange):
		return "percentage_out_of_range"
	case errors.Is(err, ErrUnsupportedCurrency):
		return "unsupported_currency"
	case errors.Is(err, ErrUnsupportedPair):
		return "unsupported_pair"
	default:
		return "unknown"
	}
}
