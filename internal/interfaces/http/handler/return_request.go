package handler

import (
	"context"
	"fmt"
	"strings"

	appreturns "github.com/erp/backoffice/internal/application/returns"
	"github.com/erp/backoffice/internal/domain/returns"
	"github.com/erp/backoffice/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// ReturnRequestGrid is the grid service used by ReturnRequestHandler
type ReturnRequestGrid interface {
	List(ctx context.Context, q returns.GridQuery) (*appreturns.GridResult, error)
	GetDetail(ctx context.Context, id int64) (*appreturns.DetailRow, error)
	FilterOptions(ctx context.Context) (*appreturns.FilterOptions, error)
}

// ReturnRequestHandler serves the admin return request grid
type ReturnRequestHandler struct {
	BaseHandler
	grid            ReturnRequestGrid
	defaultPageSize int
	maxPageSize     int
}

// NewReturnRequestHandler creates a new ReturnRequestHandler
func NewReturnRequestHandler(grid ReturnRequestGrid, defaultPageSize, maxPageSize int) *ReturnRequestHandler {
	if defaultPageSize <= 0 {
		defaultPageSize = 15
	}
	if maxPageSize < defaultPageSize {
		maxPageSize = defaultPageSize
	}
	return &ReturnRequestHandler{
		grid:            grid,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// ListReturnRequestsQuery holds the grid filter and paging parameters
type ListReturnRequestsQuery struct {
	SearchID       *int64 `form:"search_id"`
	SearchStatusID *int   `form:"search_status_id"`
	SearchStoreID  *int64 `form:"search_store_id"`
	dto.ListRequest
}

// toGridQuery applies the paging defaults to absent parameters only
func (q ListReturnRequestsQuery) toGridQuery(defaultPageSize int) returns.GridQuery {
	gq := returns.GridQuery{
		SearchID:       q.SearchID,
		SearchStatusID: q.SearchStatusID,
		SearchStoreID:  q.SearchStoreID,
		Page:           1,
		PageSize:       defaultPageSize,
	}
	if q.Page != nil {
		gq.Page = *q.Page
	}
	if q.PageSize != nil {
		gq.PageSize = *q.PageSize
	}
	if q.OrderBy != "" {
		dir := returns.SortAsc
		if strings.EqualFold(q.OrderDir, "desc") {
			dir = returns.SortDesc
		}
		gq.Sort = &returns.SortSpec{Field: q.OrderBy, Direction: dir}
	}
	return gq
}

// List godoc
// @ID           listReturnRequests
// @Summary      List return requests
// @Description  Returns one page of the return request grid. Filters are combined with AND.
// @Tags         return-requests
// @Produce      json
// @Param        search_id         query int    false "Return request id"
// @Param        search_status_id  query int    false "Return request status id"
// @Param        search_store_id   query int    false "Store id"
// @Param        page              query int    false "Page number" default(1)
// @Param        page_size         query int    false "Page size" default(15)
// @Param        order_by          query string false "Sort column" Enums(id, created_on_utc, updated_on_utc, store_id, customer_id, quantity, return_request_status_id)
// @Param        order_dir         query string false "Sort direction" Enums(asc, desc)
// @Param        Accept-Language   header string false "Display language"
// @Success      200 {object} APIResponse[[]appreturns.ListRow]
// @Failure      400 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Router       /admin/return-requests [get]
func (h *ReturnRequestHandler) List(c *gin.Context) {
	var q ListReturnRequestsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.ValidationError(c, err)
		return
	}

	gq := q.toGridQuery(h.defaultPageSize)
	if err := gq.Validate(); err != nil {
		h.HandleError(c, err)
		return
	}
	if gq.PageSize > h.maxPageSize {
		h.ErrorWithCode(c, dto.ErrCodeInvalidArgument, fmt.Sprintf("page_size must be at most %d", h.maxPageSize))
		return
	}
	result, err := h.grid.List(c.Request.Context(), gq)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Rows, result.TotalCount, gq.Page, gq.PageSize)
}

// Get godoc
// @ID           getReturnRequest
// @Summary      Get a return request for editing
// @Description  Returns the detail row with dropdowns, accept dialog data and the refundable amount
// @Tags         return-requests
// @Produce      json
// @Param        id               path   int    true  "Return request id"
// @Param        Accept-Language  header string false "Display language"
// @Param        X-Session-ID     header string false "Admin session scoping one-shot messages"
// @Success      200 {object} APIResponse[appreturns.DetailRow]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Router       /admin/return-requests/{id} [get]
func (h *ReturnRequestHandler) Get(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	row, err := h.grid.GetDetail(c.Request.Context(), req.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, row)
}

// Filters godoc
// @ID           getReturnRequestFilters
// @Summary      Get grid filter options
// @Description  Returns the store and status dropdown entries of the grid
// @Tags         return-requests
// @Produce      json
// @Param        Accept-Language  header string false "Display language"
// @Success      200 {object} APIResponse[appreturns.FilterOptions]
// @Failure      503 {object} ErrorResponse
// @Router       /admin/return-requests/filters [get]
func (h *ReturnRequestHandler) Filters(c *gin.Context) {
	opts, err := h.grid.FilterOptions(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, opts)
}
