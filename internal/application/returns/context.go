package returns

import "context"

type contextKey string

const (
	languageIDKey contextKey = "language_id"
	sessionIDKey  contextKey = "session_id"
)

// WithLanguageID returns a context carrying the working language
func WithLanguageID(ctx context.Context, languageID int64) context.Context {
	return context.WithValue(ctx, languageIDKey, languageID)
}

// LanguageIDFromContext returns the working language, if set
func LanguageIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(languageIDKey).(int64)
	return id, ok
}

// WithSessionID returns a context carrying the admin session id
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// SessionIDFromContext returns the admin session id, empty if unset
func SessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey).(string)
	return id
}

// InfoMessageKey is the transient store key of the accept-dialog info message
const InfoMessageKey = "UpdateOrderDetailsContext.InfoKey"

// SessionInfoMessageKey scopes the info message key to a session.
// ok is false without a session; such requests have no message to read.
func SessionInfoMessageKey(sessionID string) (key string, ok bool) {
	if sessionID == "" {
		return "", false
	}
	return sessionID + ":" + InfoMessageKey, true
}
