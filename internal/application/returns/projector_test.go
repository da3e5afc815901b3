package returns

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/erp/backoffice/internal/domain/returns"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testCreated = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	testUpdated = time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC)
)

func sampleRequest() *returns.ReturnRequest {
	return &returns.ReturnRequest{
		ID:               7,
		StoreID:          1,
		OrderItemID:      11,
		CustomerID:       21,
		Quantity:         2,
		Status:           returns.ReturnRequestStatusReceived,
		ReasonForReturn:  "Damaged",
		RequestedAction:  "Refund",
		CustomerComments: "box was crushed",
		StaffNotes:       "checked",
		AdminComment:     "ok",
		CreatedOnUtc:     testCreated,
		UpdatedOnUtc:     testUpdated,
	}
}

func sampleItem(status returns.OrderStatus) *returns.OrderItem {
	return &returns.OrderItem{
		ID:                   11,
		OrderID:              31,
		ProductID:            41,
		UnitPriceInclTax:     decimal.RequireFromString("19.99"),
		AttributeDescription: "Size: M",
		Product: &returns.Product{
			ID:          41,
			Name:        "Trail shoe",
			Sku:         "TS-41",
			ProductType: returns.ProductTypeSimple,
		},
		Order: &returns.Order{
			ID:                 31,
			OrderNumber:        "ORD-31",
			OrderStatus:        status,
			CustomerLanguageID: 2,
		},
	}
}

func sampleCustomer() *returns.Customer {
	return &returns.Customer{ID: 21, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
}

func singleStore() returns.StoreMap {
	return returns.NewStoreMap([]returns.Store{{ID: 1, Name: "Main"}})
}

func TestProjector_ListRow(t *testing.T) {
	p, f := newTestProjector()

	row := p.ProjectListRow(context.Background(), RowInput{
		Request:    sampleRequest(),
		OrderItem:  sampleItem(returns.OrderStatusPending),
		Customer:   sampleCustomer(),
		Stores:     singleStore(),
		LanguageID: 1,
	})

	assert.Equal(t, int64(7), row.ID)
	assert.Equal(t, int64(41), row.ProductID)
	assert.Equal(t, "TS-41", row.ProductSku)
	assert.Equal(t, "Trail shoe", row.ProductName)
	assert.Equal(t, "Simple", row.ProductTypeName)
	assert.Equal(t, "Size: M", row.AttributeInfo)
	assert.Equal(t, int64(31), row.OrderID)
	assert.Equal(t, "ORD-31", row.OrderNumber)
	assert.Equal(t, "Ada Lovelace", row.CustomerFullName)
	assert.True(t, row.CanSendEmailToCustomer)
	assert.Equal(t, 2, row.Quantity)
	assert.Equal(t, "Received", row.ReturnRequestStatusString)
	assert.Equal(t, testCreated.Add(2*time.Hour), row.CreatedOn)
	assert.Equal(t, testUpdated.Add(2*time.Hour), row.UpdatedOn)
	assert.Equal(t, "/admin/ReturnRequest/Edit/7", row.EditURL)
	assert.Equal(t, "/admin/Customer/Edit/21", row.CustomerEditURL)
	assert.Equal(t, "/admin/Order/Edit/31", row.OrderEditURL)
	assert.Equal(t, "/admin/Product/Edit/41", row.ProductEditURL)
	assert.Empty(t, row.StoreName, "single store installations hide the store column")

	// list rows never touch settings or the message store
	f.settings.AssertNotCalled(t, "GetLocalizedSetting", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.messages.AssertNotCalled(t, "TakeOnce", mock.Anything, mock.Anything)
}

func TestProjector_ListRowOmitsDetailFields(t *testing.T) {
	p, _ := newTestProjector()
	row := p.Project(context.Background(), RowInput{
		Request:   sampleRequest(),
		OrderItem: sampleItem(returns.OrderStatusPending),
		Customer:  sampleCustomer(),
		Stores:    singleStore(),
	}, listOptions)

	assert.Empty(t, row.ReasonForReturn)
	assert.Empty(t, row.StaffNotes)
	assert.Zero(t, row.ReturnRequestStatusID)
	assert.Nil(t, row.ReasonOptions)
	assert.Nil(t, row.UpdateOrderItem)
	assert.Nil(t, row.MaxRefundAmount)
}

func TestProjector_StoreNameOnMultiStore(t *testing.T) {
	p, _ := newTestProjector()
	stores := returns.NewStoreMap([]returns.Store{{ID: 1, Name: "Main"}, {ID: 2, Name: "Outlet"}})

	row := p.ProjectListRow(context.Background(), RowInput{
		Request:   sampleRequest(),
		OrderItem: sampleItem(returns.OrderStatusPending),
		Customer:  sampleCustomer(),
		Stores:    stores,
	})
	assert.Equal(t, "Main", row.StoreName)

	req := sampleRequest()
	req.StoreID = 99
	row = p.ProjectListRow(context.Background(), RowInput{Request: req, Stores: stores})
	assert.Empty(t, row.StoreName, "deleted store renders empty")
}

func TestProjector_MissingReferencesDegrade(t *testing.T) {
	p, f := newTestProjector()

	row := p.ProjectListRow(context.Background(), RowInput{
		Request: sampleRequest(),
		Stores:  singleStore(),
	})

	assert.Equal(t, int64(7), row.ID)
	assert.Zero(t, row.ProductID)
	assert.Empty(t, row.ProductName)
	assert.Empty(t, row.OrderNumber)
	assert.Empty(t, row.OrderEditURL)
	assert.Equal(t, "N/A", row.CustomerFullName)
	assert.False(t, row.CanSendEmailToCustomer)
	assert.Equal(t, "/admin/Customer/Edit/21", row.CustomerEditURL)
	assert.Equal(t, 1, f.metrics.degraded["order_item_missing"])
	assert.Equal(t, 1, f.metrics.degraded["customer_missing"])
}

func TestProjector_OrderNumberFallsBackToID(t *testing.T) {
	p, _ := newTestProjector()
	item := sampleItem(returns.OrderStatusPending)
	item.Order.OrderNumber = ""

	row := p.ProjectListRow(context.Background(), RowInput{Request: sampleRequest(), OrderItem: item, Stores: singleStore()})
	assert.Equal(t, "31", row.OrderNumber)
}

func TestProjector_DetailRow(t *testing.T) {
	p, f := newTestProjector()
	ctx := WithSessionID(context.Background(), "sess-1")

	f.settings.On("GetLocalizedSetting", mock.Anything, returns.SettingReturnRequestReasons, int64(2), int64(1)).
		Return("Wrong size,Damaged", nil)
	f.settings.On("GetLocalizedSetting", mock.Anything, returns.SettingReturnRequestActions, int64(2), int64(1)).
		Return("Repair,Refund", nil)
	f.messages.On("TakeOnce", mock.Anything, "sess-1:"+InfoMessageKey).Return("Order totals updated", true, nil)

	actionUpdated := testUpdated.Add(time.Hour)
	req := sampleRequest()
	req.RequestedActionUpdatedOnUtc = &actionUpdated

	row := p.ProjectDetailRow(ctx, RowInput{
		Request:    req,
		OrderItem:  sampleItem(returns.OrderStatusPending),
		Customer:   sampleCustomer(),
		Stores:     singleStore(),
		LanguageID: 1,
	})

	assert.Equal(t, "Damaged", row.ReasonForReturn)
	assert.Equal(t, "Refund", row.RequestedAction)
	require.NotNil(t, row.RequestedActionUpdated)
	assert.Equal(t, actionUpdated.Add(2*time.Hour), *row.RequestedActionUpdated)
	assert.Equal(t, "box was crushed", row.CustomerComments)
	assert.Equal(t, "checked", row.StaffNotes)
	assert.Equal(t, "ok", row.AdminComment)
	assert.Equal(t, 10, row.ReturnRequestStatusID)

	require.Len(t, row.ReasonOptions, 3)
	assert.Equal(t, SelectOption{Text: "Unspecified", Value: ""}, row.ReasonOptions[0])
	assert.True(t, row.ReasonOptions[2].Selected)
	require.Len(t, row.ActionOptions, 3)
	assert.True(t, row.ActionOptions[2].Selected)

	require.NotNil(t, row.UpdateOrderItem)
	assert.Equal(t, int64(7), row.UpdateOrderItem.ID)
	assert.Equal(t, "Accept return request", row.UpdateOrderItem.Caption)
	assert.Equal(t, "/admin/ReturnRequest/Accept", row.UpdateOrderItem.PostURL)
	assert.True(t, row.UpdateOrderItem.ShowUpdateTotals)
	assert.True(t, row.UpdateOrderItem.UpdateTotals)
	assert.False(t, row.UpdateOrderItem.ShowUpdateRewardPoints)

	require.NotNil(t, row.MaxRefundAmount)
	assert.Equal(t, "39.98", row.MaxRefundAmount.StringFixed(2))
	assert.Equal(t, "%s incl. tax", row.MaxRefundAmount.PostFormat())
	assert.True(t, row.MaxRefundAmount.TaxIncluded())
	assert.Equal(t, "39.98 EUR incl. tax", row.MaxRefundAmountFormatted)
	assert.Equal(t, "Order totals updated", row.ReturnRequestInfo)

	f.settings.AssertExpectations(t)
	f.messages.AssertExpectations(t)
}

func TestProjector_DetailRowWithoutOrderItem(t *testing.T) {
	p, f := newTestProjector()

	// no order means no customer language; the store is still known
	f.settings.On("GetLocalizedSetting", mock.Anything, mock.Anything, int64(0), int64(1)).Return("", nil)
	f.messages.On("TakeOnce", mock.Anything, "sess-9:"+InfoMessageKey).Return("", false, nil)

	row := p.ProjectDetailRow(WithSessionID(context.Background(), "sess-9"), RowInput{
		Request:  sampleRequest(),
		Customer: sampleCustomer(),
		Stores:   singleStore(),
	})

	require.NotNil(t, row.UpdateOrderItem)
	assert.False(t, row.UpdateOrderItem.ShowUpdateTotals)
	assert.False(t, row.UpdateOrderItem.UpdateTotals)
	assert.False(t, row.UpdateOrderItem.ShowUpdateRewardPoints)
	assert.False(t, row.UpdateOrderItem.UpdateRewardPoints)
	assert.Nil(t, row.MaxRefundAmount)
	assert.Empty(t, row.MaxRefundAmountFormatted)
	assert.Len(t, row.ReasonOptions, 1)
	assert.Empty(t, row.ReturnRequestInfo)
}

func TestProjector_DetailRowDegradesOnBackingFailures(t *testing.T) {
	p, f := newTestProjector()

	f.settings.On("GetLocalizedSetting", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("db down"))
	f.messages.On("TakeOnce", mock.Anything, mock.Anything).Return("", false, errors.New("redis down"))

	row := p.ProjectDetailRow(WithSessionID(context.Background(), "sess-1"), RowInput{
		Request:   sampleRequest(),
		OrderItem: sampleItem(returns.OrderStatusComplete),
		Customer:  sampleCustomer(),
		Stores:    singleStore(),
	})

	assert.Len(t, row.ReasonOptions, 1)
	assert.Len(t, row.ActionOptions, 1)
	assert.Empty(t, row.ReturnRequestInfo)
	assert.Equal(t, 2, f.metrics.degraded["setting_unavailable"])
	assert.Equal(t, 1, f.metrics.degraded["message_store_unavailable"])
	assert.False(t, row.UpdateOrderItem.ShowUpdateTotals)
}

func TestProjector_InfoMessageNeedsSession(t *testing.T) {
	p, f := newTestProjector()
	f.settings.On("GetLocalizedSetting", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", nil)

	row := p.ProjectDetailRow(context.Background(), RowInput{
		Request:   sampleRequest(),
		OrderItem: sampleItem(returns.OrderStatusPending),
		Stores:    singleStore(),
	})

	assert.Empty(t, row.ReturnRequestInfo)
	f.messages.AssertNotCalled(t, "TakeOnce", mock.Anything, mock.Anything)
}

func TestSessionInfoMessageKey(t *testing.T) {
	key, ok := SessionInfoMessageKey("sess-1")
	assert.True(t, ok)
	assert.Equal(t, "sess-1:"+InfoMessageKey, key)

	_, ok = SessionInfoMessageKey("")
	assert.False(t, ok)
}

func TestProjector_ZeroPriceHasNoRefundAmount(t *testing.T) {
	p, f := newTestProjector()
	f.settings.On("GetLocalizedSetting", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", nil)
	f.messages.On("TakeOnce", mock.Anything, mock.Anything).Return("", false, nil)

	item := sampleItem(returns.OrderStatusPending)
	item.UnitPriceInclTax = decimal.Zero

	row := p.ProjectDetailRow(context.Background(), RowInput{Request: sampleRequest(), OrderItem: item, Stores: singleStore()})
	assert.Nil(t, row.MaxRefundAmount)
}
