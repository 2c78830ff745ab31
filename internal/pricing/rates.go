package pricing

import "strings"

// Currency is an ISO-4217 style currency code, always stored uppercase.
type Currency string

const (
	EUR Currency = "EUR"
	USD Currency = "USD"
	GBP Currency = "GBP"
)

// NormalizeCurrency uppercases a user-supplied code.
func NormalizeCurrency(code string) Currency {
	return Currency(strings.ToUpper(code))
}

// Rates maps a destination currency to the multiplier applied to the source amount.
type Rates map[Currency]float64

// exchangeRates is the fixed conversion table. It is never written after init.
// GBP has no EUR entry.
var exchangeRates = map[Currency]Rates{
	EUR: {
		USD: 1.1,
		EUR: 1.0,
	},
	USD: {
		GBP: 0.8,
		USD: 1.0,
		EUR: 1 / 1.1,
	},
	GBP: {
		GBP: 1.0,
		USD: 1 / 0.8,
	},
}

// Rate returns the conversion rate from one currency to another.
// The error wraps ErrUnsupportedCurrency when from is unknown and
// ErrUnsupportedPair when from is known but has no rate to to.
func Rate(from, to Currency) (float64, error) {
	rates, ok := exchangeRates[from]
	if !ok {
		return 0, newError(ErrUnsupportedCurrency, "Unsupported currency: %s", from)
	}

	rate, ok := rates[to]
	if !ok {
		return 0, newError(ErrUnsupportedPair, "Conversion from %s to %s not supported", from, to)
	}

	return rate, nil
}
