package currency

import (
	"context"
	"testing"

	"github.com/erp/backoffice/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type stubResources struct {
	values map[string]string
}

func (s stubResources) T(_ context.Context, languageID int64, key string) string {
	if v, ok := s.values[key]; ok && languageID == 1 {
		return v
	}
	return key
}

func (stubResources) Tag(languageID int64) language.Tag {
	if languageID == 2 {
		return language.German
	}
	return language.English
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService("eur", stubResources{values: map[string]string{
		ResourceInclTaxSuffix: "%s incl. tax",
		ResourceExclTaxSuffix: "%s excl. tax",
	}})
	require.NoError(t, err)
	return svc
}

func TestNewService(t *testing.T) {
	svc := newTestService(t)
	assert.Equal(t, valueobject.Currency("EUR"), svc.PrimaryCurrency())

	_, err := NewService("EURO", stubResources{})
	assert.Error(t, err)
	_, err = NewService("XQQ", stubResources{})
	assert.Error(t, err)
}

func TestService_TaxFormat(t *testing.T) {
	svc := newTestService(t)

	assert.Equal(t, "%s incl. tax", svc.TaxFormat(1, true, true))
	assert.Equal(t, "%s excl. tax", svc.TaxFormat(1, true, false))
	assert.Equal(t, "", svc.TaxFormat(1, false, true))
	// unresolved resource yields no suffix
	assert.Equal(t, "", svc.TaxFormat(2, true, true))
}

func money(t *testing.T, amount, code string) valueobject.Money {
	t.Helper()
	m, err := valueobject.NewMoney(decimal.RequireFromString(amount), valueobject.Currency(code))
	require.NoError(t, err)
	return m
}

func TestService_Format(t *testing.T) {
	svc := newTestService(t)
	m := money(t, "39.98", "EUR")

	t.Run("english", func(t *testing.T) {
		assert.Equal(t, "39.98 EUR", svc.Format(1, m))
	})

	t.Run("german separators", func(t *testing.T) {
		assert.Equal(t, "1.234,50 EUR", svc.Format(2, money(t, "1234.5", "EUR")))
	})

	t.Run("post format", func(t *testing.T) {
		assert.Equal(t, "39.98 EUR incl. tax", svc.Format(1, m.WithPostFormat("%s incl. tax")))
	})

	t.Run("rounds to the currency scale", func(t *testing.T) {
		assert.Equal(t, "10.01 EUR", svc.Format(1, money(t, "10.005", "EUR")))
	})

	t.Run("large amounts keep every digit", func(t *testing.T) {
		assert.Equal(t, "12,345,678,901,234,567.89 EUR", svc.Format(1, money(t, "12345678901234567.89", "EUR")))
	})

	t.Run("zero decimal currency", func(t *testing.T) {
		out := svc.Format(1, money(t, "1500", "JPY"))
		assert.Equal(t, "1,500 JPY", out)
	})
}
