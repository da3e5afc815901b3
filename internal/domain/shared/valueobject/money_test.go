package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eur(t *testing.T, amount string) Money {
	t.Helper()
	m, err := NewMoney(decimal.RequireFromString(amount), "EUR")
	require.NoError(t, err)
	return m
}

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid amount and currency", func(t *testing.T) {
		m := eur(t, "100.50")
		assert.Equal(t, Currency("EUR"), m.Currency())
		assert.True(t, m.Amount().Equal(decimal.RequireFromString("100.50")))
		assert.False(t, m.TaxIncluded())
	})

	t.Run("returns error for empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(100), "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "currency cannot be empty")
	})
}

func TestNewCurrency(t *testing.T) {
	c, err := NewCurrency(" eur ")
	require.NoError(t, err)
	assert.Equal(t, Currency("EUR"), c)

	_, err = NewCurrency("EURO")
	assert.Error(t, err)
}

func TestMoney_DisplayOptions(t *testing.T) {
	m := eur(t, "39.98")

	gross := m.WithTaxIncluded(true).WithPostFormat("%s incl. tax")
	assert.True(t, gross.TaxIncluded())
	assert.Equal(t, "39.98 EUR incl. tax", gross.String())

	assert.False(t, m.TaxIncluded(), "original must be unchanged")
	assert.Equal(t, "", m.PostFormat())
	assert.Equal(t, "39.98 EUR", m.String())
}

func TestMoney_MarshalJSON(t *testing.T) {
	m := eur(t, "39.98").WithTaxIncluded(true).WithPostFormat("%s incl. tax")

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"39.98","currency":"EUR","tax_included":true,"post_format":"%s incl. tax"}`, string(data))
}
