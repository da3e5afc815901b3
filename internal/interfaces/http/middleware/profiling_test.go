package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestControllerFromRoute(t *testing.T) {
	tests := []struct {
		route string
		want  string
	}{
		{"/api/v1/admin/return-requests", "return-requests"},
		{"/api/v1/admin/return-requests/:id", "return-requests"},
		{"/api/v2/admin/return-requests/filters", "return-requests"},
		{"/health", "health"},
		{"/api/v1/:id", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			assert.Equal(t, tt.want, controllerFromRoute(tt.route))
		})
	}
}

func TestIsVersionSegment(t *testing.T) {
	assert.True(t, isVersionSegment("v1"))
	assert.True(t, isVersionSegment("V12"))
	assert.False(t, isVersionSegment("v"))
	assert.False(t, isVersionSegment("version"))
}

func TestProfiling_PassesThrough(t *testing.T) {
	for _, cfg := range []ProfilingConfig{DefaultProfilingConfig(), {Enabled: false}} {
		router := gin.New()
		router.Use(Profiling(cfg))
		router.GET("/api/v1/admin/return-requests", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		router.GET("/health", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		for _, path := range []string{"/api/v1/admin/return-requests", "/health"} {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}
	}
}
