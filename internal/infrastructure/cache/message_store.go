// Package cache holds the process and Redis backed caches of the grid:
// the one-shot message store and the store directory snapshot.
package cache

import "context"

// MessageStore holds one-shot messages such as the accept-dialog notice.
// The accept workflow writes them; the grid only consumes them, and reading
// a message with TakeOnce removes it.
type MessageStore interface {
	// TakeOnce returns and deletes the value. ok is false when the key is
	// absent or expired.
	TakeOnce(ctx context.Context, key string) (value string, ok bool, err error)
	Close() error
}
