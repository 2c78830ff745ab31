package pricing

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func query(kv ...string) url.Values {
	q := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		q.Set(kv[i], kv[i+1])
	}
	return q
}

func TestParseConvertRequest(t *testing.T) {
	req, err := ParseConvertRequest(query("from", "eur", "to", "Usd", "amount", " 12.5 "))
	require.NoError(t, err)
	assert.Equal(t, ConvertRequest{From: EUR, To: USD, Amount: 12.5}, req)
}

func TestParseConvertRequestErrors(t *testing.T) {
	tests := []struct {
		name string
		q    url.Values
		kind error
		msg  string
	}{
		{
			name: "missing amount",
			q:    query("from", "EUR", "to", "USD"),
			kind: ErrMissingParameters,
			msg:  "Missing required parameters: from, to, amount",
		},
		{
			name: "empty from",
			q:    query("from", "", "to", "USD", "amount", "1"),
			kind: ErrMissingParameters,
			msg:  "Missing required parameters: from, to, amount",
		},
		{
			name: "missing wins over invalid",
			q:    query("to", "USD", "amount", "abc"),
			kind: ErrMissingParameters,
			msg:  "Missing required parameters: from, to, amount",
		},
		{
			name: "invalid amount",
			q:    query("from", "EUR", "to", "USD", "amount", "invalid"),
			kind: ErrInvalidNumber,
			msg:  "Amount must be a valid number",
		},
		{
			name: "infinite amount",
			q:    query("from", "EUR", "to", "USD", "amount", "Inf"),
			kind: ErrInvalidNumber,
			msg:  "Amount must be a valid number",
		},
		{
			name: "negative amount",
			q:    query("from", "EUR", "to", "USD", "amount", "-100"),
			kind: ErrNegativeValue,
			msg:  "Amount cannot be negative",
		},
		{
			name: "negative checked before currency",
			q:    query("from", "JPY", "to", "USD", "amount", "-1"),
			kind: ErrNegativeValue,
			msg:  "Amount cannot be negative",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseConvertRequest(tc.q)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.kind), "kind: got %v", err)
			assert.Equal(t, tc.msg, err.Error())
		})
	}
}

func TestParseTaxRequest(t *testing.T) {
	req, err := ParseTaxRequest(query("ht", "99.99", "taux", "20"))
	require.NoError(t, err)
	assert.Equal(t, TaxRequest{HT: 99.99, Rate: 20}, req)

	tests := []struct {
		name string
		q    url.Values
		kind error
		msg  string
	}{
		{"missing taux", query("ht", "100"), ErrMissingParameters, "Missing required parameters: ht, taux"},
		{"invalid ht", query("ht", "invalid", "taux", "20"), ErrInvalidNumber, "Parameters must be valid numbers"},
		{"invalid taux", query("ht", "100", "taux", "x"), ErrInvalidNumber, "Parameters must be valid numbers"},
		{"negative ht", query("ht", "-100", "taux", "20"), ErrNegativeValue, "Parameters cannot be negative"},
		{"negative taux", query("ht", "100", "taux", "-5"), ErrNegativeValue, "Parameters cannot be negative"},
		{"invalid beats negative", query("ht", "-1", "taux", "x"), ErrInvalidNumber, "Parameters must be valid numbers"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseTaxRequest(tc.q)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.kind))
			assert.Equal(t, tc.msg, err.Error())
		})
	}
}

func TestParseDiscountRequest(t *testing.T) {
	req, err := ParseDiscountRequest(query("prix", "100", "pourcentage", "100"))
	require.NoError(t, err)
	assert.Equal(t, DiscountRequest{Price: 100, Percentage: 100}, req)

	tests := []struct {
		name string
		q    url.Values
		kind error
		msg  string
	}{
		{"missing pourcentage", query("prix", "100"), ErrMissingParameters, "Missing required parameters: prix, pourcentage"},
		{"invalid prix", query("prix", "invalid", "pourcentage", "10"), ErrInvalidNumber, "Parameters must be valid numbers"},
		{"negative prix", query("prix", "-100", "pourcentage", "10"), ErrNegativeValue, "Parameters cannot be negative"},
		{"negative pourcentage", query("prix", "100", "pourcentage", "-10"), ErrNegativeValue, "Parameters cannot be negative"},
		{"over 100", query("prix", "100", "pourcentage", "150"), ErrPercentageOutOfRange, "Percentage cannot exceed 100"},
		{"just over 100", query("prix", "100", "pourcentage", "100.01"), ErrPercentageOutOfRange, "Percentage cannot exceed 100"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDiscountRequest(tc.q)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.kind))
			assert.Equal(t, tc.msg, err.Error())
		})
	}
}

func TestReason(t *testing.T) {
	_, err := ParseDiscountRequest(query("prix", "1", "pourcentage", "101"))
	assert.Equal(t, "percentage_out_of_range", Reason(err))

	_, err = Rate("XYZ", USD)
	assert.Equal(t, "unsupported_currency", Reason(err))

	assert.Equal(t, "unknown", Reason(errors.New("other")))
}
