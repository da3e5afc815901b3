package cache

import (
	"context"
	"slices"
	"sync/atomic"
	"time"

	"github.com/erp/backoffice/internal/domain/returns"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type storeSnapshot struct {
	stores   []returns.Store
	loadedAt time.Time
}

// StoreDirectory caches the store list as an immutable snapshot.
// Reads are lock-free. A stale snapshot is reloaded by a single caller
// while concurrent callers share the result.
type StoreDirectory struct {
	repo     returns.StoreRepository
	ttl      time.Duration
	logger   *zap.Logger
	now      func() time.Time
	snapshot atomic.Pointer[storeSnapshot]
	group    singleflight.Group
}

// NewStoreDirectory creates a directory reloading from repo after ttl
func NewStoreDirectory(repo returns.StoreRepository, ttl time.Duration, logger *zap.Logger) *StoreDirectory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StoreDirectory{repo: repo, ttl: ttl, logger: logger, now: time.Now}
}

// GetAllStores returns a copy of the cached stores. Load failures are
// returned to the caller; the previous snapshot is kept for the next try.
func (d *StoreDirectory) GetAllStores(ctx context.Context) ([]returns.Store, error) {
	if snap := d.snapshot.Load(); snap != nil && d.now().Sub(snap.loadedAt) < d.ttl {
		return slices.Clone(snap.stores), nil
	}

	v, err, _ := d.group.Do("stores", func() (any, error) {
		stores, err := d.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		snap := &storeSnapshot{stores: stores, loadedAt: d.now()}
		d.snapshot.Store(snap)
		d.logger.Debug("store directory refreshed", zap.Int("stores", len(stores)))
		return snap, nil
	})
	if err != nil {
		d.logger.Warn("store directory refresh failed", zap.Error(err))
		return nil, err
	}
	return slices.Clone(v.(*storeSnapshot).stores), nil
}

