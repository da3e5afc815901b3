package cache

import (
	"context"
	"sync"
	"time"
)

type message struct {
	value     string
	expiresAt time.Time
}

// InMemoryMessageStore implements MessageStore with a map.
// Messages are not shared across process instances.
type InMemoryMessageStore struct {
	mu        sync.Mutex
	messages  map[string]message
	now       func() time.Time
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryMessageStore creates a store that sweeps expired messages
// every cleanupInterval
func NewInMemoryMessageStore(cleanupInterval time.Duration) *InMemoryMessageStore {
	if cleanupInterval <= 0 {
		cleanupInterval = 5 * time.Minute
	}
	s := &InMemoryMessageStore{
		messages: make(map[string]message),
		now:      time.Now,
		stopChan: make(chan struct{}),
	}

	s.wg.Add(1)
	go s.cleanupLoop(cleanupInterval)

	return s
}

// TakeOnce removes the message under the lock, so one caller wins
func (s *InMemoryMessageStore) TakeOnce(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.messages[key]
	if !ok {
		return "", false, nil
	}
	delete(s.messages, key)
	if !s.now().Before(m.expiresAt) {
		return "", false, nil
	}
	return m.value, true, nil
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (s *InMemoryMessageStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
	return nil
}

func (s *InMemoryMessageStore) cleanupLoop(interval time.Duration) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.cleanup()
		}
	}
}

func (s *InMemoryMessageStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, m := range s.messages {
		if !now.Before(m.expiresAt) {
			delete(s.messages, key)
		}
	}
}

var _ MessageStore = (*InMemoryMessageStore)(nil)
