package returns

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/erp/backoffice/internal/domain/returns"
	"github.com/erp/backoffice/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/mock"
)

// MockReturnRequestRepository is a mock implementation of ReturnRequestRepository
type MockReturnRequestRepository struct {
	mock.Mock
}

func (m *MockReturnRequestRepository) FindPage(ctx context.Context, predicate returns.Predicate, sort returns.SortSpec, skip, take int) ([]returns.ReturnRequest, error) {
	args := m.Called(ctx, predicate, sort, skip, take)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]returns.ReturnRequest), args.Error(1)
}

func (m *MockReturnRequestRepository) Count(ctx context.Context, predicate returns.Predicate) (int64, error) {
	args := m.Called(ctx, predicate)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReturnRequestRepository) FindByID(ctx context.Context, id int64) (*returns.ReturnRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*returns.ReturnRequest), args.Error(1)
}

// MockOrderItemRepository is a mock implementation of OrderItemRepository
type MockOrderItemRepository struct {
	mock.Mock
}

func (m *MockOrderItemRepository) FindByIDs(ctx context.Context, ids []int64) (map[int64]*returns.OrderItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]*returns.OrderItem), args.Error(1)
}

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByIDs(ctx context.Context, ids []int64) (map[int64]*returns.Customer, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]*returns.Customer), args.Error(1)
}

// MockStoreDirectory is a mock implementation of StoreDirectory
type MockStoreDirectory struct {
	mock.Mock
}

func (m *MockStoreDirectory) GetAllStores(ctx context.Context) ([]returns.Store, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]returns.Store), args.Error(1)
}

// MockSettingRepository is a mock implementation of SettingRepository
type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) GetLocalizedSetting(ctx context.Context, key string, languageID, storeID int64) (string, error) {
	args := m.Called(ctx, key, languageID, storeID)
	return args.String(0), args.Error(1)
}

// MockMessageStore is a mock implementation of TransientMessageStore
type MockMessageStore struct {
	mock.Mock
}

func (m *MockMessageStore) TakeOnce(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

// stubLocalizer resolves from a fixed table and falls back to the key
type stubLocalizer struct {
	resources map[string]string
}

func (l stubLocalizer) T(_ context.Context, _ int64, key string) string {
	if v, ok := l.resources[key]; ok {
		return v
	}
	return key
}

func (l stubLocalizer) GetLocalizedEnum(_ context.Context, _ int64, value LocalizableEnum) string {
	if v, ok := l.resources[value.ResourceKey()]; ok {
		return v
	}
	return value.String()
}

type offsetDates struct {
	offset time.Duration
}

func (d offsetDates) ToDisplayTime(utc time.Time) time.Time {
	return utc.Add(d.offset)
}

type stubCurrency struct{}

func (stubCurrency) PrimaryCurrency() valueobject.Currency { return valueobject.Currency("EUR") }

func (stubCurrency) TaxFormat(_ int64, displayTaxSuffix, priceIncludesTax bool) string {
	if !displayTaxSuffix {
		return ""
	}
	if priceIncludesTax {
		return "%s incl. tax"
	}
	return "%s excl. tax"
}

func (stubCurrency) Format(_ int64, m valueobject.Money) string {
	return m.String()
}

type pathURLs struct{}

func (pathURLs) Action(action, controller string, id int64) string {
	if id == 0 {
		return fmt.Sprintf("/admin/%s/%s", controller, action)
	}
	return fmt.Sprintf("/admin/%s/%s/%d", controller, action, id)
}

// recordingMetrics counts degraded rows by reason
type recordingMetrics struct {
	mu       sync.Mutex
	degraded map[string]int
	queries  map[string]int
	errors   int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{degraded: map[string]int{}, queries: map[string]int{}}
}

func (m *recordingMetrics) ObserveQuery(operation string, _ time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries[operation]++
	if err != nil {
		m.errors++
	}
}

func (m *recordingMetrics) IncDegradedRow(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.degraded[reason]++
}

var testResources = map[string]string{
	"Enums.ReturnRequestStatus.Pending":                     "Pending",
	"Enums.ReturnRequestStatus.Received":                    "Received",
	"Enums.ReturnRequestStatus.ItemsRefunded":               "Items refunded",
	"Admin.Catalog.Products.ProductType.SimpleProduct.Label": "Simple",
	ResourceUnspecified:                                     "Unspecified",
	ResourceAcceptCaption:                                   "Accept return request",
}

type projectorFixture struct {
	settings *MockSettingRepository
	messages *MockMessageStore
	metrics  *recordingMetrics
}

func newTestProjector() (*Projector, *projectorFixture) {
	f := &projectorFixture{
		settings: new(MockSettingRepository),
		messages: new(MockMessageStore),
		metrics:  newRecordingMetrics(),
	}
	p := NewProjector(ProjectorDeps{
		Localizer: stubLocalizer{resources: testResources},
		Dates:     offsetDates{offset: 2 * time.Hour},
		Currency:  stubCurrency{},
		URLs:      pathURLs{},
		Messages:  f.messages,
		Settings:  f.settings,
		Metrics:   f.metrics,
	})
	return p, f
}

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }
