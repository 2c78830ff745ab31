package pricing

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		amount float64
		from   Currency
		to     Currency
		want   float64
	}{
		{amount: 100, from: EUR, to: USD, want: 110},
		{amount: 100, from: USD, to: GBP, want: 80},
		{amount: 99.99, from: EUR, to: USD, want: 109.99},
		{amount: 1100, from: USD, to: EUR, want: 1000},
		{amount: 100, from: GBP, to: USD, want: 125},
		{amount: 0, from: EUR, to: USD, want: 0},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%g %s->%s", tc.amount, tc.from, tc.to), func(t *testing.T) {
			got, err := Convert(tc.amount, tc.from, tc.to)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConvertMatchesRateTable(t *testing.T) {
	amounts := []float64{0, 1, 10, 99.99, 100, 250.5, 1000, 2500}

	for from, rates := range exchangeRates {
		for to, rate := range rates {
			for _, amount := range amounts {
				got, err := Convert(amount, from, to)
				require.NoError(t, err)
				assert.Equal(t, Round2(amount*rate), got, "%g %s->%s", amount, from, to)
			}
		}
	}
}

func TestConvertSameCurrencyIsIdentity(t *testing.T) {
	for _, code := range []Currency{EUR, USD, GBP} {
		got, err := Convert(123.456, code, code)
		require.NoError(t, err)
		assert.Equal(t, 123.46, got, string(code))
	}
}

func TestConvertUnsupported(t *testing.T) {
	_, err := Convert(100, "JPY", USD)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedCurrency))
	assert.Equal(t, "Unsupported currency: JPY", err.Error())

	_, err = Convert(100, EUR, "JPY")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedPair))
	assert.Equal(t, "Conversion from EUR to JPY not supported", err.Error())

	_, err = Convert(100, GBP, EUR)
	assert.True(t, errors.Is(err, ErrUnsupportedPair))
}

func TestConvertOverflowIsRejected(t *testing.T) {
	_, err := Convert(1.7e308, EUR, USD)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidNumber))
	assert.Equal(t, "Result is out of range", err.Error())

	got, err := Convert(1e308, EUR, USD)
	require.NoError(t, err)
	assert.Equal(t, 1.1e308, got)
}

func TestCheckResult(t *testing.T) {
	assert.NoError(t, checkResult(0))
	assert.NoError(t, checkResult(math.MaxFloat64))
	assert.True(t, errors.Is(checkResult(TaxInclusive(1e308, 100)), ErrInvalidNumber))
	assert.True(t, errors.Is(checkResult(math.NaN()), ErrInvalidNumber))
}

func TestTaxInclusive(t *testing.T) {
	assert.Equal(t, 120.0, TaxInclusive(100, 20))
	assert.Equal(t, 55.0, TaxInclusive(50, 10))
	assert.Equal(t, 100.0, TaxInclusive(100, 0))
	assert.Equal(t, 119.99, TaxInclusive(99.99, 20))
	assert.Equal(t, 117.5, TaxInclusive(100, 17.5))
	assert.Equal(t, 275.0, TaxInclusive(250, 10))
}

func TestApplyDiscount(t *testing.T) {
	assert.Equal(t, 90.0, ApplyDiscount(100, 10))
	assert.Equal(t, 100.0, ApplyDiscount(200, 50))
	assert.Equal(t, 100.0, ApplyDiscount(100, 0))
	assert.Equal(t, 0.0, ApplyDiscount(100, 100))
	assert.Equal(t, 89.99, ApplyDiscount(99.99, 10))
}

func TestZeroRateAndZeroDiscountRoundOnly(t *testing.T) {
	for _, v := range []float64{0, 0.004, 10.126, 99.999, 1234.5678} {
		assert.Equal(t, Round2(v), TaxInclusive(v, 0), "tax %g", v)
		assert.Equal(t, Round2(v), ApplyDiscount(v, 0), "discount %g", v)
		assert.Equal(t, 0.0, ApplyDiscount(v, 100), "full discount %g", v)
	}
}

func TestRound2HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 1.01, Round2(1.005))
	assert.Equal(t, 2.68, Round2(2.675))
	assert.Equal(t, -1.01, Round2(-1.005))
	assert.Equal(t, 0.0, Round2(0.004))
	assert.Equal(t, 313.13, Round2(313.125))
}

func TestNormalizeCurrency(t *testing.T) {
	assert.Equal(t, EUR, NormalizeCurrency("eur"))
	assert.Equal(t, USD, NormalizeCurrency("UsD"))
	assert.Equal(t, GBP, NormalizeCurrency("gbp"))
}
