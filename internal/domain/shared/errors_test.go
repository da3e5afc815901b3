package shared

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Is(t *testing.T) {
	cause := errors.New("connection refused")
	err := DataUnavailable("failed to load return requests", cause)

	assert.True(t, errors.Is(err, ErrDataUnavailable))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(err, cause))
}

func TestDomainError_WrappedWithFmt(t *testing.T) {
	err := fmt.Errorf("grid: %w", InvalidArgument("page size must be positive"))

	var domainErr *DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, CodeInvalidArgument, domainErr.Code)
	assert.Equal(t, "page size must be positive", domainErr.Error())
}

func TestDomainError_ErrorIncludesCause(t *testing.T) {
	err := WrapDomainError(CodeDataUnavailable, "count failed", errors.New("timeout"))
	assert.Equal(t, "count failed: timeout", err.Error())
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 25))
	assert.Equal(t, 50, Offset(3, 25))
	assert.Equal(t, 0, Offset(0, 25))
	assert.Equal(t, math.MaxInt, Offset(1<<62, 4))
}
