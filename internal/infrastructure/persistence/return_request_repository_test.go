package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/erp/backoffice/internal/domain/returns"
	"github.com/erp/backoffice/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockReturnRequestRepository creates a repository over a mocked postgres connection
func newMockReturnRequestRepository(t *testing.T) (*GormReturnRequestRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormReturnRequestRepository(gormDB), mock, mockDB
}

var returnRequestColumns = []string{"id", "store_id", "order_item_id", "customer_id", "quantity", "return_request_status_id", "reason_for_return", "created_on_utc", "updated_on_utc"}

func TestGormReturnRequestRepository_FindPage(t *testing.T) {
	t.Run("ands all clauses in field order", func(t *testing.T) {
		repo, mock, mockDB := newMockReturnRequestRepository(t)
		defer mockDB.Close()

		now := time.Now().UTC()
		rows := sqlmock.NewRows(returnRequestColumns).
			AddRow(int64(8), int64(1), int64(11), int64(21), 2, 10, "Too small", now, now)

		mock.ExpectQuery(`SELECT \* FROM "return_requests" WHERE return_request_status_id = \$1 AND store_id = \$2 ORDER BY id ASC LIMIT \$3 OFFSET \$4`).
			WithArgs(int64(10), int64(1), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(rows)

		// store clause added first: clause order must not matter
		predicate := returns.Predicate{}.
			And(returns.Clause{Field: returns.FieldStoreID, Operator: returns.OpEqual, Value: int64(1)}).
			And(returns.Clause{Field: returns.FieldStatusID, Operator: returns.OpEqual, Value: int64(10)})

		result, err := repo.FindPage(context.Background(), predicate, returns.DefaultSort, 25, 25)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, int64(8), result[0].ID)
		assert.Equal(t, returns.ReturnRequestStatusReceived, result[0].Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("whitelisted sort gets an id tie-breaker", func(t *testing.T) {
		repo, mock, mockDB := newMockReturnRequestRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "return_requests" ORDER BY created_on_utc DESC,id ASC LIMIT \$1`).
			WillReturnRows(sqlmock.NewRows(returnRequestColumns))

		result, err := repo.FindPage(context.Background(), returns.Predicate{},
			returns.SortSpec{Field: "created_on_utc", Direction: returns.SortDesc}, 0, 10)
		require.NoError(t, err)
		assert.Empty(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown sort column falls back to id", func(t *testing.T) {
		repo, mock, mockDB := newMockReturnRequestRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "return_requests" ORDER BY id ASC LIMIT \$1`).
			WillReturnRows(sqlmock.NewRows(returnRequestColumns))

		_, err := repo.FindPage(context.Background(), returns.Predicate{},
			returns.SortSpec{Field: "staff_notes; --", Direction: "sideways"}, 0, 10)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects unknown fields without querying", func(t *testing.T) {
		repo, mock, mockDB := newMockReturnRequestRepository(t)
		defer mockDB.Close()

		predicate := returns.Predicate{}.And(returns.Clause{Field: "staff_notes", Operator: returns.OpEqual, Value: "x"})
		_, err := repo.FindPage(context.Background(), predicate, returns.DefaultSort, 0, 10)
		assert.ErrorIs(t, err, shared.ErrInvalidArgument)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates driver errors", func(t *testing.T) {
		repo, mock, mockDB := newMockReturnRequestRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "return_requests"`).WillReturnError(errors.New("connection reset"))

		_, err := repo.FindPage(context.Background(), returns.Predicate{}, returns.DefaultSort, 0, 10)
		assert.EqualError(t, err, "connection reset")
	})
}

func TestGormReturnRequestRepository_Count(t *testing.T) {
	repo, mock, mockDB := newMockReturnRequestRepository(t)
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "return_requests" WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	predicate := returns.Predicate{}.And(returns.Clause{Field: returns.FieldID, Operator: returns.OpEqual, Value: int64(42)})
	total, err := repo.Count(context.Background(), predicate)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormReturnRequestRepository_FindByID(t *testing.T) {
	t.Run("finds existing request", func(t *testing.T) {
		repo, mock, mockDB := newMockReturnRequestRepository(t)
		defer mockDB.Close()

		now := time.Now().UTC()
		mock.ExpectQuery(`SELECT \* FROM "return_requests" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(7), 1).
			WillReturnRows(sqlmock.NewRows(returnRequestColumns).
				AddRow(int64(7), int64(1), int64(11), int64(21), 2, 0, "", now, now))

		rr, err := repo.FindByID(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), rr.ID)
		assert.Equal(t, returns.ReturnRequestStatusPending, rr.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps record not found", func(t *testing.T) {
		repo, mock, mockDB := newMockReturnRequestRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "return_requests" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(99), 1).
			WillReturnError(gorm.ErrRecordNotFound)

		rr, err := repo.FindByID(context.Background(), 99)
		assert.Nil(t, rr)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
