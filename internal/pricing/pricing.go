// Package pricing implements the currency, tax and discount operations and
// their HTTP handlers.
package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Round2 rounds v to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return round2(decimal.NewFromFloat(v))
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// checkResult rejects results that no longer fit in a float64. Inputs near
// math.MaxFloat64 are finite but the computed amount can overflow to Inf.
func checkResult(v float64) error {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return newError(ErrInvalidNumber, "Result is out of range")
	}
	return nil
}

// Convert returns amount expressed in to, rounded to the cent.
func Convert(amount float64, from, to Currency) (float64, error) {
	rate, err := Rate(from, to)
	if err != nil {
		return 0, err
	}

	converted := round2(decimal.NewFromFloat(amount).Mul(decimal.NewFromFloat(rate)))
	if err := checkResult(converted); err != nil {
		return 0, err
	}
	return converted, nil
}

// TaxInclusive returns the price including tax (TTC) for a pre-tax amount
// (HT) and a tax rate in percent. The result is +Inf when it overflows a
// float64; the handler rejects it.
func TaxInclusive(ht, rate float64) float64 {
	base := decimal.NewFromFloat(ht)
	tax := base.Mul(decimal.NewFromFloat(rate)).Div(hundred)
	return round2(base.Add(tax))
}

// ApplyDiscount returns price reduced by percentage percent.
func ApplyDiscount(price, percentage float64) float64 {
	base := decimal.NewFromFloat(price)
	off := base.Mul(decimal.NewFromFloat(percentage)).Div(hundred)
	return round2(base.Sub(off))
}
