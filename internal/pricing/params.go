package pricing

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// ConvertRequest is a validated currency conversion input.
type ConvertRequest struct {
	From   Currency
	To     Currency
	Amount float64
}

// TaxRequest is a validated tax calculation input.
type TaxRequest struct {
	HT   float64
	Rate float64
}

// DiscountRequest is a validated discount calculation input.
type DiscountRequest struct {
	Price      float64
	Percentage float64
}

// ParseConvertRequest reads from, to and amount from q. Currency existence
// is checked later by Convert.
func ParseConvertRequest(q url.Values) (ConvertRequest, error) {
	if err := requireParams(q, "from", "to", "amount"); err != nil {
		return ConvertRequest{}, err
	}

	amount, ok := parseNumber(q.Get("amount"))
	if !ok {
		return ConvertRequest{}, newError(ErrInvalidNumber, "Amount must be a valid number")
	}

	if amount < 0 {
		return ConvertRequest{}, newError(ErrNegativeValue, "Amount cannot be negative")
	}

	return ConvertRequest{
		From:   NormalizeCurrency(q.Get("from")),
		To:     NormalizeCurrency(q.Get("to")),
		Amount: amount,
	}, nil
}

// ParseTaxRequest reads ht and taux from q.
func ParseTaxRequest(q url.Values) (TaxRequest, error) {
	values, err := parseNonNegative(q, "ht", "taux")
	if err != nil {
		return TaxRequest{}, err
	}

	return TaxRequest{HT: values[0], Rate: values[1]}, nil
}

// ParseDiscountRequest reads prix and pourcentage from q.
func ParseDiscountRequest(q url.Values) (DiscountRequest, error) {
	values, err := parseNonNegative(q, "prix", "pourcentage")
	if err != nil {
		return DiscountRequest{}, err
	}

	if values[1] > 100 {
		return DiscountRequest{}, newError(ErrPercentageOutOfRange, "Percentage cannot exceed 100")
	}

	return DiscountRequest{Price: values[0], Percentage: values[1]}, nil
}

// parseNonNegative checks presence of every name, then parses each as a
// number, then rejects negatives, in that order.
func parseNonNegative(q url.Values, names ...string) ([]float64, error) {
	if err := requireParams(q, names...); err != nil {
		return nil, err
	}

	values := make([]float64, len(names))
	for i, name := range names {
		v, ok := parseNumber(q.Get(name))
		if !ok {
			return nil, newError(ErrInvalidNumber, "Parameters must be valid numbers")
		}
		values[i] = v
	}

	for _, v := range values {
		if v < 0 {
			return nil, newError(ErrNegativeValue, "Parameters cannot be negative")
		}
	}

	return values, nil
}

func requireParams(q url.Values, names ...string) error {
	for _, name := range names {
		if q.Get(name) == "" {
			return newError(ErrMissingParameters, "Missing required parameters: %s", strings.Join(names, ", "))
		}
	}
	return nil
}

// parseNumber accepts finite decimal numbers, ignoring surrounding spaces.
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
