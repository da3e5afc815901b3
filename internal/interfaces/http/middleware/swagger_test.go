package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/erp/backoffice/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serveSwagger(cfg SwaggerConfig, remoteAddr string) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/swagger/*any", SwaggerProtection(cfg), func(c *gin.Context) {
		c.String(http.StatusOK, "docs")
	})

	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSwaggerProtection(t *testing.T) {
	t.Run("disabled answers not found", func(t *testing.T) {
		w := serveSwagger(SwaggerConfig{}, "127.0.0.1:12345")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), dto.ErrCodeNotFound)
	})

	t.Run("enabled without allow list", func(t *testing.T) {
		w := serveSwagger(SwaggerConfig{Enabled: true}, "203.0.113.9:4000")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "docs", w.Body.String())
	})

	tests := []struct {
		name       string
		allowed    []string
		remoteAddr string
		want       int
	}{
		{"exact ip allowed", []string{"127.0.0.1"}, "127.0.0.1:12345", http.StatusOK},
		{"exact ip denied", []string{"127.0.0.1"}, "192.168.1.7:12345", http.StatusForbidden},
		{"cidr allowed", []string{"10.0.0.0/8"}, "10.20.30.40:80", http.StatusOK},
		{"cidr denied", []string{"10.0.0.0/8"}, "11.0.0.1:80", http.StatusForbidden},
		{"invalid entries are ignored", []string{"not-an-ip", "10.0.0.0/99"}, "10.0.0.1:80", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serveSwagger(SwaggerConfig{Enabled: true, AllowedIPs: tt.allowed}, tt.remoteAddr)
			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusForbidden {
				assert.Contains(t, w.Body.String(), dto.ErrCodeForbidden)
			}
		})
	}
}
