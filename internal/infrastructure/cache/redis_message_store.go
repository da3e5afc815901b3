package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/erp/backoffice/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

const defaultMessageKeyPrefix = "returns:msg:"

// RedisMessageStore implements MessageStore on Redis, so messages survive
// across instances behind a load balancer
type RedisMessageStore struct {
	client    redis.UniversalClient
	keyPrefix string
}

// NewRedisMessageStore connects to Redis and verifies the connection
func NewRedisMessageStore(ctx context.Context, cfg config.RedisConfig) (*RedisMessageStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisMessageStoreWithClient(client, cfg.KeyPrefix), nil
}

// NewRedisMessageStoreWithClient wraps an existing client
func NewRedisMessageStoreWithClient(client redis.UniversalClient, keyPrefix string) *RedisMessageStore {
	if keyPrefix == "" {
		keyPrefix = defaultMessageKeyPrefix
	}
	return &RedisMessageStore{client: client, keyPrefix: keyPrefix}
}

// TakeOnce reads and deletes the message atomically with GETDEL
func (s *RedisMessageStore) TakeOnce(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.GetDel(ctx, s.keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to take message: %w", err)
	}
	return value, true, nil
}

// Close closes the Redis client
func (s *RedisMessageStore) Close() error {
	return s.client.Close()
}

var _ MessageStore = (*RedisMessageStore)(nil)
