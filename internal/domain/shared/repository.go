package shared

import "math"

// Offset returns the number of records to skip for a 1-based page.
// It saturates at math.MaxInt instead of wrapping.
func Offset(page, pageSize int) int {
	if page < 1 || pageSize < 1 {
		return 0
	}
	if page-1 > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return (page - 1) * pageSize
}
