package datetime

import (
	"fmt"
	"time"

	"github.com/erp/backoffice/internal/application/returns"
)

// Helper converts UTC timestamps into the configured display timezone
type Helper struct {
	location *time.Location
}

// NewHelper loads the named IANA timezone
func NewHelper(timezone string) (*Helper, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid display timezone %q: %w", timezone, err)
	}
	return &Helper{location: loc}, nil
}

// ToDisplayTime returns utc in the display timezone. Zero times stay zero.
func (h *Helper) ToDisplayTime(utc time.Time) time.Time {
	if utc.IsZero() {
		return utc
	}
	return utc.In(h.location)
}

// Location returns the display timezone
func (h *Helper) Location() *time.Location {
	return h.location
}

var _ returns.DateTimeHelper = (*Helper)(nil)
