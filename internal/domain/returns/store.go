package returns

// Store is a storefront of the shop
type Store struct {
	ID   int64
	Name string
}

// StoreMap indexes stores by id
type StoreMap map[int64]Store

// NewStoreMap builds a map from the given stores
func NewStoreMap(stores []Store) StoreMap {
	m := make(StoreMap, len(stores))
	for _, s := range stores {
		m[s.ID] = s
	}
	return m
}

// IsMultiStore reports whether more than one store exists
func (m StoreMap) IsMultiStore() bool {
	return len(m) > 1
}

// Get returns the store with the given id
func (m StoreMap) Get(id int64) (Store, bool) {
	s, ok := m[id]
	return s, ok
}
