package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/erp/backoffice/internal/infrastructure/config"
	"go.uber.org/zap"
)

// MessageStoreFactory creates message stores based on configuration
type MessageStoreFactory struct {
	redisConfig           config.RedisConfig
	cleanupInterval       time.Duration
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// MessageStoreFactoryOption is a functional option for configuring the factory
type MessageStoreFactoryOption func(*MessageStoreFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) MessageStoreFactoryOption {
	return func(f *MessageStoreFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether an unreachable Redis falls back to
// the in-memory store. Default is true.
func WithInMemoryFallback(allow bool) MessageStoreFactoryOption {
	return func(f *MessageStoreFactory) {
		f.allowInMemoryFallback = allow
	}
}

// WithCleanupInterval sets the sweep interval of the in-memory store
func WithCleanupInterval(interval time.Duration) MessageStoreFactoryOption {
	return func(f *MessageStoreFactory) {
		f.cleanupInterval = interval
	}
}

// NewMessageStoreFactory creates a new factory
func NewMessageStoreFactory(cfg config.RedisConfig, opts ...MessageStoreFactoryOption) *MessageStoreFactory {
	f := &MessageStoreFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateStore returns a Redis store when Redis is enabled and reachable,
// otherwise the in-memory store
func (f *MessageStoreFactory) CreateStore(ctx context.Context) (MessageStore, error) {
	if !f.redisConfig.Enabled {
		f.logger.Info("using in-memory message store")
		return NewInMemoryMessageStore(f.cleanupInterval), nil
	}

	store, err := NewRedisMessageStore(ctx, f.redisConfig)
	if err == nil {
		f.logger.Info("using Redis message store", zap.String("addr", f.redisConfig.Addr()))
		return store, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("redis required for message store but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory message store. "+
		"Messages will not be shared across instances.",
		zap.Error(err),
	)
	return NewInMemoryMessageStore(f.cleanupInterval), nil
}
