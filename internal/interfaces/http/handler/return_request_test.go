package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	appreturns "github.com/erp/backoffice/internal/application/returns"
	"github.com/erp/backoffice/internal/domain/returns"
	"github.com/erp/backoffice/internal/domain/shared"
	"github.com/erp/backoffice/internal/interfaces/http/dto"
	"github.com/erp/backoffice/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockGrid struct {
	mock.Mock
}

func (m *mockGrid) List(ctx context.Context, q returns.GridQuery) (*appreturns.GridResult, error) {
	args := m.Called(ctx, q)
	if r := args.Get(0); r != nil {
		return r.(*appreturns.GridResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGrid) GetDetail(ctx context.Context, id int64) (*appreturns.DetailRow, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*appreturns.DetailRow), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGrid) FilterOptions(ctx context.Context) (*appreturns.FilterOptions, error) {
	args := m.Called(ctx)
	if r := args.Get(0); r != nil {
		return r.(*appreturns.FilterOptions), args.Error(1)
	}
	return nil, args.Error(1)
}

func newReturnRequestRouter(t *testing.T, grid ReturnRequestGrid) *gin.Engine {
	t.Helper()
	require.NoError(t, middleware.SetupValidator())
	h := NewReturnRequestHandler(grid, 15, 100)

	router := gin.New()
	router.Use(middleware.RequestID())
	g := router.Group("/return-requests")
	g.GET("", h.List)
	g.GET("/filters", h.Filters)
	g.GET("/:id", h.Get)
	return router
}

func serve(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }

func TestReturnRequestHandler_List(t *testing.T) {
	t.Run("binds filters, paging and sort", func(t *testing.T) {
		grid := &mockGrid{}
		want := returns.GridQuery{
			SearchStatusID: intPtr(10),
			SearchStoreID:  int64Ptr(2),
			Page:           2,
			PageSize:       4,
			Sort:           &returns.SortSpec{Field: "created_on_utc", Direction: returns.SortDesc},
		}
		grid.On("List", mock.Anything, want).Return(&appreturns.GridResult{
			Rows:       []appreturns.ListRow{{ID: 5}, {ID: 6}},
			TotalCount: 9,
		}, nil)

		w := serve(newReturnRequestRouter(t, grid),
			"/return-requests?search_status_id=10&search_store_id=2&page=2&page_size=4&order_by=created_on_utc&order_dir=desc")

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		assert.True(t, resp.Success)
		require.NotNil(t, resp.Meta)
		assert.Equal(t, int64(9), resp.Meta.Total)
		assert.Equal(t, 3, resp.Meta.TotalPages)
		assert.Len(t, resp.Data, 2)
		grid.AssertExpectations(t)
	})

	t.Run("applies defaults", func(t *testing.T) {
		grid := &mockGrid{}
		grid.On("List", mock.Anything, returns.GridQuery{Page: 1, PageSize: 15}).
			Return(&appreturns.GridResult{Rows: []appreturns.ListRow{}}, nil)

		w := serve(newReturnRequestRouter(t, grid), "/return-requests")

		assert.Equal(t, http.StatusOK, w.Code)
		grid.AssertExpectations(t)
	})

	t.Run("search id without match is an empty page", func(t *testing.T) {
		grid := &mockGrid{}
		grid.On("List", mock.Anything, returns.GridQuery{SearchID: int64Ptr(42), Page: 1, PageSize: 15}).
			Return(&appreturns.GridResult{Rows: []appreturns.ListRow{}, TotalCount: 0}, nil)

		w := serve(newReturnRequestRouter(t, grid), "/return-requests?search_id=42")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"data":[],"meta":{"total":0,"page":1,"page_size":15,"total_pages":0}}`, w.Body.String())
	})

	t.Run("rejects page size above the configured maximum", func(t *testing.T) {
		grid := &mockGrid{}
		w := serve(newReturnRequestRouter(t, grid), "/return-requests?page_size=200")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeInvalidArgument, decodeResponse(t, w).Error.Code)
		grid.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("rejects malformed parameters", func(t *testing.T) {
		grid := &mockGrid{}
		w := serve(newReturnRequestRouter(t, grid), "/return-requests?order_dir=up")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeValidation, decodeResponse(t, w).Error.Code)
	})

	t.Run("explicit zero or negative paging is invalid", func(t *testing.T) {
		for _, target := range []string{
			"/return-requests?page_size=0",
			"/return-requests?page=0",
			"/return-requests?page_size=0&page=0",
			"/return-requests?page=-3",
			"/return-requests?page=4611686018427387904&page_size=4",
		} {
			grid := &mockGrid{}
			w := serve(newReturnRequestRouter(t, grid), target)

			assert.Equal(t, http.StatusBadRequest, w.Code, target)
			assert.Equal(t, dto.ErrCodeInvalidArgument, decodeResponse(t, w).Error.Code, target)
			grid.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
		}
	})

	t.Run("maximum follows the configured limit", func(t *testing.T) {
		grid := &mockGrid{}
		grid.On("List", mock.Anything, returns.GridQuery{Page: 1, PageSize: 800}).
			Return(&appreturns.GridResult{Rows: []appreturns.ListRow{}}, nil)

		h := NewReturnRequestHandler(grid, 15, 1000)
		router := gin.New()
		router.GET("/return-requests", h.List)

		w := serve(router, "/return-requests?page_size=800")

		assert.Equal(t, http.StatusOK, w.Code)
		grid.AssertExpectations(t)
	})

	t.Run("maps domain errors", func(t *testing.T) {
		grid := &mockGrid{}
		grid.On("List", mock.Anything, mock.Anything).
			Return(nil, shared.InvalidArgument("unknown return request status 7"))

		w := serve(newReturnRequestRouter(t, grid), "/return-requests?search_status_id=7")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeInvalidArgument, decodeResponse(t, w).Error.Code)
	})

	t.Run("store failure is unavailable", func(t *testing.T) {
		grid := &mockGrid{}
		grid.On("List", mock.Anything, mock.Anything).
			Return(nil, shared.DataUnavailable("failed to load stores", errors.New("timeout")))

		w := serve(newReturnRequestRouter(t, grid), "/return-requests")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestReturnRequestHandler_Get(t *testing.T) {
	t.Run("returns the detail row", func(t *testing.T) {
		grid := &mockGrid{}
		grid.On("GetDetail", mock.Anything, int64(7)).Return(&appreturns.DetailRow{
			ListRow:      appreturns.ListRow{ID: 7, Quantity: 2},
			DetailFields: appreturns.DetailFields{ReasonForReturn: "Wrong size"},
		}, nil)

		w := serve(newReturnRequestRouter(t, grid), "/return-requests/7")

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(7), data["id"])
		assert.Equal(t, "Wrong size", data["reason_for_return"])
	})

	t.Run("not found", func(t *testing.T) {
		grid := &mockGrid{}
		grid.On("GetDetail", mock.Anything, int64(99)).Return(nil, shared.ErrNotFound)

		w := serve(newReturnRequestRouter(t, grid), "/return-requests/99")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		grid := &mockGrid{}
		for _, target := range []string{"/return-requests/abc", "/return-requests/-1"} {
			w := serve(newReturnRequestRouter(t, grid), target)
			assert.Equal(t, http.StatusBadRequest, w.Code, target)
		}
		grid.AssertNotCalled(t, "GetDetail", mock.Anything, mock.Anything)
	})
}

func TestReturnRequestHandler_Filters(t *testing.T) {
	grid := &mockGrid{}
	grid.On("FilterOptions", mock.Anything).Return(&appreturns.FilterOptions{
		Stores:   []appreturns.SelectOption{{Text: "Main", Value: "1"}},
		Statuses: []appreturns.SelectOption{{Text: "Pending", Value: "0"}},
	}, nil)

	w := serve(newReturnRequestRouter(t, grid), "/return-requests/filters")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{
		"stores":[{"text":"Main","value":"1","selected":false}],
		"statuses":[{"text":"Pending","value":"0","selected":false}]}}`, w.Body.String())
}
