package persistence

import (
	"strings"
)

// ValidateSortOrder normalizes the sort order to ASC or DESC.
// Returns fallback if the input is empty or invalid.
func ValidateSortOrder(orderDir, fallback string) string {
	switch strings.ToUpper(strings.TrimSpace(orderDir)) {
	case "ASC":
		return "ASC"
	case "DESC":
		return "DESC"
	}
	return fallback
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// ReturnRequestSortFields contains allowed sort fields for return requests
var ReturnRequestSortFields = map[string]bool{
	"id":                       true,
	"created_on_utc":           true,
	"updated_on_utc":           true,
	"store_id":                 true,
	"customer_id":              true,
	"quantity":                 true,
	"return_request_status_id": true,
}
