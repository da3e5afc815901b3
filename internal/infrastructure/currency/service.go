// Package currency renders money amounts for the admin grid using CLDR
// number formatting for the viewer's language.
package currency

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/erp/backoffice/internal/application/returns"
	"github.com/erp/backoffice/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Resource keys of the tax suffix post-formats
const (
	ResourceInclTaxSuffix = "Products.InclTaxSuffix"
	ResourceExclTaxSuffix = "Products.ExclTaxSuffix"
)

// Resources resolves localized strings and language tags
type Resources interface {
	T(ctx context.Context, languageID int64, key string) string
	Tag(languageID int64) language.Tag
}

// Service implements returns.CurrencyService
type Service struct {
	primary   valueobject.Currency
	unit      currency.Unit
	resources Resources
}

// NewService creates a currency service with the given primary currency code
func NewService(primaryCode string, resources Resources) (*Service, error) {
	code, err := valueobject.NewCurrency(primaryCode)
	if err != nil {
		return nil, err
	}
	unit, err := currency.ParseISO(string(code))
	if err != nil {
		return nil, fmt.Errorf("unknown currency %q: %w", primaryCode, err)
	}
	return &Service{primary: code, unit: unit, resources: resources}, nil
}

// PrimaryCurrency returns the store's primary currency
func (s *Service) PrimaryCurrency() valueobject.Currency {
	return s.primary
}

// TaxFormat returns the localized incl./excl. tax post-format, or "" when
// the suffix is not displayed
func (s *Service) TaxFormat(languageID int64, displayTaxSuffix, priceIncludesTax bool) string {
	if !displayTaxSuffix {
		return ""
	}
	key := ResourceExclTaxSuffix
	if priceIncludesTax {
		key = ResourceInclTaxSuffix
	}
	format := s.resources.T(context.Background(), languageID, key)
	if format == key || strings.Count(format, "%s") != 1 {
		return ""
	}
	return format
}

// Format renders m with the number conventions of the language, e.g.
// "1,234.50 EUR incl. tax" for English and "1.234,50 EUR inkl. MwSt." for German
func (s *Service) Format(languageID int64, m valueobject.Money) string {
	unit := s.unit
	if m.Currency() != s.primary {
		if u, err := currency.ParseISO(string(m.Currency())); err == nil {
			unit = u
		}
	}
	scale, _ := currency.Standard.Rounding(unit)

	p := message.NewPrinter(s.resources.Tag(languageID))
	out := formatAmount(p, m.Amount(), scale) + " " + unit.String()
	if pf := m.PostFormat(); strings.Count(pf, "%s") == 1 {
		out = fmt.Sprintf(pf, out)
	}
	return out
}

// formatAmount groups the integer digits per locale and appends the exact
// fraction digits of the rounded decimal
func formatAmount(p *message.Printer, amount decimal.Decimal, scale int) string {
	rounded := amount.Round(int32(scale))
	abs := rounded.Abs()
	whole := abs.Truncate(0)
	if whole.GreaterThan(maxWhole) {
		f, _ := rounded.Float64()
		return p.Sprint(number.Decimal(f, number.Scale(scale)))
	}

	out := p.Sprint(number.Decimal(whole.IntPart()))
	if scale > 0 {
		// "0.98" -> "98"
		frac := abs.Sub(whole).StringFixed(int32(scale))[2:]
		out += decimalSeparator(p) + frac
	}
	if rounded.IsNegative() {
		out = "-" + out
	}
	return out
}

var maxWhole = decimal.NewFromInt(math.MaxInt64)

func decimalSeparator(p *message.Printer) string {
	half := p.Sprint(number.Decimal(0.5, number.Scale(1)))
	return strings.TrimSuffix(strings.TrimPrefix(half, "0"), "5")
}

var _ returns.CurrencyService = (*Service)(nil)
