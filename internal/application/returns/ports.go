package returns

import (
	"context"
	"time"

	"github.com/erp/backoffice/internal/domain/returns"
	"github.com/erp/backoffice/internal/domain/shared/valueobject"
)

// StoreDirectory lists all stores of the installation
type StoreDirectory interface {
	GetAllStores(ctx context.Context) ([]returns.Store, error)
}

// LocalizableEnum is an enum value with a resource key for its label
type LocalizableEnum interface {
	ResourceKey() string
	String() string
}

// Localizer resolves localized resources for a language
type Localizer interface {
	// T returns the resource value for key, or the key itself when unknown
	T(ctx context.Context, languageID int64, key string) string
	// GetLocalizedEnum returns the label of an enum value, or its name when unknown
	GetLocalizedEnum(ctx context.Context, languageID int64, value LocalizableEnum) string
}

// DateTimeHelper converts UTC timestamps into the display timezone
type DateTimeHelper interface {
	ToDisplayTime(utc time.Time) time.Time
}

// CurrencyService provides the primary currency and money formatting
type CurrencyService interface {
	PrimaryCurrency() valueobject.Currency
	// TaxFormat returns a post-format with one %s verb, empty when tax is not displayed
	TaxFormat(languageID int64, displayTaxSuffix, priceIncludesTax bool) string
	// Format renders money for the given language
	Format(languageID int64, m valueobject.Money) string
}

// URLBuilder builds admin URLs
type URLBuilder interface {
	// Action builds the URL of a controller action; id is omitted when zero
	Action(action, controller string, id int64) string
}

// TransientMessageStore holds one-shot messages. Reading a message removes it.
type TransientMessageStore interface {
	TakeOnce(ctx context.Context, key string) (string, bool, error)
}

// Metrics records grid activity
type Metrics interface {
	ObserveQuery(operation string, duration time.Duration, err error)
	IncDegradedRow(reason string)
}

type nopMetrics struct{}

func (nopMetrics) ObserveQuery(string, time.Duration, error) {}
func (nopMetrics) IncDegradedRow(string)                     {}

// NopMetrics returns a Metrics that records nothing
func NopMetrics() Metrics {
	return nopMetrics{}
}
