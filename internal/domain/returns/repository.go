package returns

import "context"

// ReturnRequestRepository reads return requests for the grid
type ReturnRequestRepository interface {
	// FindPage returns the requests matching the predicate, sorted, after
	// skipping skip rows and limited to take rows
	FindPage(ctx context.Context, predicate Predicate, sort SortSpec, skip, take int) ([]ReturnRequest, error)

	// Count returns the number of requests matching the predicate, ignoring paging
	Count(ctx context.Context, predicate Predicate) (int64, error)

	// FindByID returns a single request or shared.ErrNotFound
	FindByID(ctx context.Context, id int64) (*ReturnRequest, error)
}

// OrderItemRepository resolves order items together with product and order
type OrderItemRepository interface {
	// FindByIDs resolves all ids in one round-trip. Missing ids are absent from the map.
	FindByIDs(ctx context.Context, ids []int64) (map[int64]*OrderItem, error)
}

// CustomerRepository resolves customers together with their addresses
type CustomerRepository interface {
	// FindByIDs resolves all ids in one round-trip. Missing ids are absent from the map.
	FindByIDs(ctx context.Context, ids []int64) (map[int64]*Customer, error)
}

// StoreRepository lists stores
type StoreRepository interface {
	FindAll(ctx context.Context) ([]Store, error)
}

// SettingRepository reads store and language scoped settings
type SettingRepository interface {
	// GetLocalizedSetting returns the most specific value of the setting for
	// the store and language, or an empty string when none is defined
	GetLocalizedSetting(ctx context.Context, key string, languageID, storeID int64) (string, error)
}

// Setting keys
const (
	SettingReturnRequestReasons = "OrderSettings.ReturnRequestReasons"
	SettingReturnRequestActions = "OrderSettings.ReturnRequestActions"
)

// DistinctIDs returns the distinct non-zero ids in first-seen order
func DistinctIDs(requests []ReturnRequest, id func(ReturnRequest) int64) []int64 {
	seen := make(map[int64]struct{}, len(requests))
	out := make([]int64, 0, len(requests))
	for _, r := range requests {
		v := id(r)
		if v == 0 {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
