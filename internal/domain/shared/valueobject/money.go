package valueobject

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency represents a currency code (ISO 4217)
type Currency string

// NewCurrency normalizes and validates an ISO 4217 code
func NewCurrency(code string) (Currency, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if len(normalized) != 3 {
		return "", fmt.Errorf("invalid currency code %q", code)
	}
	return Currency(normalized), nil
}

// Money is a value object representing a monetary amount for display.
// It is immutable - all operations return new Money instances.
//
// PostFormat is an optional fmt layout with a single %s verb that wraps the
// formatted amount, e.g. "%s incl. tax".
type Money struct {
	amount      decimal.Decimal
	currency    Currency
	taxIncluded bool
	postFormat  string
}

// NewMoney creates a new Money with the specified amount and currency
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	if currency == "" {
		return Money{}, errors.New("currency cannot be empty")
	}
	return Money{
		amount:   amount,
		currency: currency,
	}, nil
}

// WithTaxIncluded returns a copy marked as a gross (tax-inclusive) amount
func (m Money) WithTaxIncluded(included bool) Money {
	m.taxIncluded = included
	return m
}

// WithPostFormat returns a copy carrying the given display post-format
func (m Money) WithPostFormat(format string) Money {
	m.postFormat = format
	return m
}

// Amount returns the decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code
func (m Money) Currency() Currency {
	return m.currency
}

// TaxIncluded reports whether the amount includes tax
func (m Money) TaxIncluded() bool {
	return m.taxIncluded
}

// PostFormat returns the display post-format, empty if none
func (m Money) PostFormat() string {
	return m.postFormat
}

// String returns a plain representation such as "39.98 EUR".
// Locale-aware rendering is the job of the currency service.
func (m Money) String() string {
	s := fmt.Sprintf("%s %s", m.StringFixed(2), m.currency)
	if m.postFormat != "" {
		s = fmt.Sprintf(m.postFormat, s)
	}
	return s
}

// StringFixed returns the amount as a string with fixed decimal places
func (m Money) StringFixed(places int32) string {
	return m.amount.StringFixed(places)
}

// MarshalJSON implements json.Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Amount      string   `json:"amount"`
		Currency    Currency `json:"currency"`
		TaxIncluded bool     `json:"tax_included"`
		PostFormat  string   `json:"post_format,omitempty"`
	}{
		Amount:      m.StringFixed(2),
		Currency:    m.currency,
		TaxIncluded: m.taxIncluded,
		PostFormat:  m.postFormat,
	})
}
