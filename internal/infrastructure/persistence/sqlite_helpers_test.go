package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/erp/backoffice/internal/domain/returns"
	"github.com/erp/backoffice/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupGridTestDB opens an in-memory sqlite database with the grid schema
func setupGridTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	require.NoError(t, (&Database{DB: db}).AutoMigrate())
	return db
}

// seedReturnRequests inserts n requests with ids 1..n. Statuses cycle
// through Pending, Received and ItemsRefunded; stores alternate 1 and 2.
func seedReturnRequests(t *testing.T, db *gorm.DB, n int) {
	t.Helper()
	statuses := []returns.ReturnRequestStatus{
		returns.ReturnRequestStatusPending,
		returns.ReturnRequestStatusReceived,
		returns.ReturnRequestStatusItemsRefunded,
	}
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= n; i++ {
		rr := models.ReturnRequestModel{
			StoreID:               int64(1 + (i-1)%2),
			OrderItemID:           int64(100 + i),
			CustomerID:            int64(200 + i),
			Quantity:              1,
			ReturnRequestStatusID: statuses[(i-1)%len(statuses)],
		}
		rr.ID = int64(i)
		rr.CreatedOnUtc = base.Add(time.Duration(i) * time.Hour)
		rr.UpdatedOnUtc = rr.CreatedOnUtc
		require.NoError(t, db.Create(&rr).Error)
	}
}

func seedOrderItem(t *testing.T, db *gorm.DB, itemID, orderID, productID int64, price string) {
	t.Helper()
	item := models.OrderItemModel{OrderID: orderID, ProductID: productID, UnitPriceInclTax: decimal.RequireFromString(price)}
	item.ID = itemID
	require.NoError(t, db.Create(&item).Error)
}

func testCtx() context.Context {
	return context.Background()
}
