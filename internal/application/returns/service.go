package returns

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/erp/backoffice/internal/domain/returns"
	"github.com/erp/backoffice/internal/domain/shared"
	"github.com/erp/backoffice/internal/infrastructure/telemetry"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultProjectionWorkers = 8

// GridService serves the return request grid and edit data
type GridService struct {
	engine          *GridQueryEngine
	repo            returns.ReturnRequestRepository
	orderItems      returns.OrderItemRepository
	customers       returns.CustomerRepository
	stores          StoreDirectory
	projector       *Projector
	localizer       Localizer
	metrics         Metrics
	logger          *zap.Logger
	workers         int
	defaultLanguage int64
}

// GridServiceOption configures a GridService
type GridServiceOption func(*GridService)

// WithProjectionWorkers bounds the number of rows projected in parallel
func WithProjectionWorkers(n int) GridServiceOption {
	return func(s *GridService) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithDefaultLanguage sets the language used when the context carries none
func WithDefaultLanguage(languageID int64) GridServiceOption {
	return func(s *GridService) {
		s.defaultLanguage = languageID
	}
}

// WithMetrics sets the metrics recorder
func WithMetrics(m Metrics) GridServiceOption {
	return func(s *GridService) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithLogger sets the service logger
func WithLogger(l *zap.Logger) GridServiceOption {
	return func(s *GridService) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewGridService creates a new GridService
func NewGridService(
	repo returns.ReturnRequestRepository,
	orderItems returns.OrderItemRepository,
	customers returns.CustomerRepository,
	stores StoreDirectory,
	projector *Projector,
	localizer Localizer,
	opts ...GridServiceOption,
) *GridService {
	s := &GridService{
		engine:          NewGridQueryEngine(repo),
		repo:            repo,
		orderItems:      orderItems,
		customers:       customers,
		stores:          stores,
		projector:       projector,
		localizer:       localizer,
		metrics:         NopMetrics(),
		logger:          zap.NewNop(),
		workers:         defaultProjectionWorkers,
		defaultLanguage: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns one page of grid rows. Row order follows the query order.
func (s *GridService) List(ctx context.Context, q returns.GridQuery) (result *GridResult, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "return_request", "list")
	defer span.End()
	start := time.Now()
	defer func() {
		s.metrics.ObserveQuery("list", time.Since(start), err)
		telemetry.RecordError(span, err)
	}()

	qr, err := s.engine.Execute(ctx, q)
	if err != nil {
		return nil, err
	}

	stores, err := s.loadStores(ctx)
	if err != nil {
		return nil, err
	}
	items, customers, err := s.resolveReferences(ctx, qr.Requests)
	if err != nil {
		return nil, err
	}

	languageID := s.languageID(ctx)
	rows := make([]ListRow, len(qr.Requests))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := range qr.Requests {
		req := &qr.Requests[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows[i] = s.projector.ProjectListRow(gctx, RowInput{
				Request:    req,
				OrderItem:  items[req.OrderItemID],
				Customer:   customers[req.CustomerID],
				Stores:     stores,
				LanguageID: languageID,
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	telemetry.SetAttributes(span,
		telemetry.SpanAttrPage, q.Page,
		telemetry.SpanAttrPageSize, q.PageSize,
		telemetry.SpanAttrRows, len(rows),
		telemetry.SpanAttrTotal, qr.TotalCount,
		telemetry.SpanAttrPredicate, q.Predicate().String(),
	)
	s.logger.Debug("return request grid loaded",
		zap.Int("page", q.Page),
		zap.Int("page_size", q.PageSize),
		zap.Int("rows", len(rows)),
		zap.Int64("total", qr.TotalCount),
	)

	return &GridResult{Rows: rows, TotalCount: qr.TotalCount}, nil
}

// GetDetail returns the edit row of a single return request
func (s *GridService) GetDetail(ctx context.Context, id int64) (row *DetailRow, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "return_request", "get_detail")
	defer span.End()
	telemetry.SetAttributes(span, telemetry.SpanAttrReturnRequestID, id)
	start := time.Now()
	defer func() {
		s.metrics.ObserveQuery("detail", time.Since(start), err)
		if !errors.Is(err, shared.ErrNotFound) {
			telemetry.RecordError(span, err)
		}
	}()

	if id <= 0 {
		return nil, shared.InvalidArgument("return request id must be positive")
	}

	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		return nil, shared.DataUnavailable("failed to load return request "+strconv.FormatInt(id, 10), err)
	}

	stores, err := s.loadStores(ctx)
	if err != nil {
		return nil, err
	}
	items, customers, err := s.resolveReferences(ctx, []returns.ReturnRequest{*req})
	if err != nil {
		return nil, err
	}

	detail := s.projector.ProjectDetailRow(ctx, RowInput{
		Request:    req,
		OrderItem:  items[req.OrderItemID],
		Customer:   customers[req.CustomerID],
		Stores:     stores,
		LanguageID: s.languageID(ctx),
	})
	return &detail, nil
}

// FilterOptions returns the store and status dropdown entries of the grid
func (s *GridService) FilterOptions(ctx context.Context) (*FilterOptions, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "return_request", "filter_options")
	defer span.End()

	all, err := s.stores.GetAllStores(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, shared.DataUnavailable("failed to load stores", err)
	}

	languageID := s.languageID(ctx)
	opts := &FilterOptions{
		Stores:   make([]SelectOption, 0, len(all)),
		Statuses: make([]SelectOption, 0, len(returns.AllReturnRequestStatuses)),
	}
	for _, st := range all {
		opts.Stores = append(opts.Stores, SelectOption{Text: st.Name, Value: strconv.FormatInt(st.ID, 10)})
	}
	for _, status := range returns.AllReturnRequestStatuses {
		opts.Statuses = append(opts.Statuses, SelectOption{
			Text:  s.localizer.GetLocalizedEnum(ctx, languageID, status),
			Value: strconv.Itoa(int(status)),
		})
	}
	return opts, nil
}

func (s *GridService) loadStores(ctx context.Context) (returns.StoreMap, error) {
	all, err := s.stores.GetAllStores(ctx)
	if err != nil {
		return nil, shared.DataUnavailable("failed to load stores", err)
	}
	return returns.NewStoreMap(all), nil
}

// resolveReferences loads the order items and customers of a page with one
// batched lookup each
func (s *GridService) resolveReferences(ctx context.Context, requests []returns.ReturnRequest) (map[int64]*returns.OrderItem, map[int64]*returns.Customer, error) {
	itemIDs := returns.DistinctIDs(requests, func(r returns.ReturnRequest) int64 { return r.OrderItemID })
	customerIDs := returns.DistinctIDs(requests, func(r returns.ReturnRequest) int64 { return r.CustomerID })

	items := map[int64]*returns.OrderItem{}
	customers := map[int64]*returns.Customer{}
	if len(itemIDs) == 0 && len(customerIDs) == 0 {
		return items, customers, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if len(itemIDs) > 0 {
		g.Go(func() error {
			found, err := s.orderItems.FindByIDs(gctx, itemIDs)
			if err != nil {
				return shared.DataUnavailable("failed to load order items", err)
			}
			items = found
			return nil
		})
	}
	if len(customerIDs) > 0 {
		g.Go(func() error {
			found, err := s.customers.FindByIDs(gctx, customerIDs)
			if err != nil {
				return shared.DataUnavailable("failed to load customers", err)
			}
			customers = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return items, customers, nil
}

func (s *GridService) languageID(ctx context.Context) int64 {
	if id, ok := LanguageIDFromContext(ctx); ok && id > 0 {
		return id
	}
	return s.defaultLanguage
}
