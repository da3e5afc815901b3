package middleware

import (
	"github.com/erp/backoffice/internal/application/returns"
	"github.com/gin-gonic/gin"
)

// Keys of the working language and admin session
const (
	LanguageIDKey   = "language_id"
	SessionIDHeader = "X-Session-ID"
	SessionCookie   = "admin_session"
	maxSessionIDLen = 128
)

// LanguageResolver maps an Accept-Language header onto a language id
type LanguageResolver interface {
	ResolveLanguageID(acceptLanguage string) int64
}

// Language stores the working language of the request in the gin context
// and in the request context read by the grid service
func Language(resolver LanguageResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		languageID := resolver.ResolveLanguageID(c.GetHeader("Accept-Language"))
		c.Set(LanguageIDKey, languageID)
		c.Request = c.Request.WithContext(returns.WithLanguageID(c.Request.Context(), languageID))
		c.Next()
	}
}

// Session scopes one-shot messages to the admin session taken from the
// X-Session-ID header or the session cookie
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionIDHeader)
		if sessionID == "" {
			sessionID, _ = c.Cookie(SessionCookie)
		}
		if len(sessionID) > maxSessionIDLen {
			sessionID = ""
		}
		if sessionID != "" {
			c.Request = c.Request.WithContext(returns.WithSessionID(c.Request.Context(), sessionID))
		}
		c.Next()
	}
}
