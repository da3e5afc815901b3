package returns

import (
	"context"

	"github.com/erp/backoffice/internal/domain/returns"
	"github.com/erp/backoffice/internal/domain/shared"
	"golang.org/x/sync/errgroup"
)

// QueryResult is one page of return requests plus the unpaged total
type QueryResult struct {
	Requests   []returns.ReturnRequest
	TotalCount int64
}

// GridQueryEngine filters, sorts and pages return requests
type GridQueryEngine struct {
	repo returns.ReturnRequestRepository
}

// NewGridQueryEngine creates a new GridQueryEngine
func NewGridQueryEngine(repo returns.ReturnRequestRepository) *GridQueryEngine {
	return &GridQueryEngine{repo: repo}
}

// Execute validates the query, then loads the page and the total count.
// The count uses the same predicate and ignores paging.
func (e *GridQueryEngine) Execute(ctx context.Context, q returns.GridQuery) (*QueryResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	predicate := q.Predicate()
	sort := q.SortOrDefault()

	var (
		requests []returns.ReturnRequest
		total    int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		requests, err = e.repo.FindPage(gctx, predicate, sort, q.Skip(), q.PageSize)
		if err != nil {
			return shared.DataUnavailable("failed to load return requests", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		total, err = e.repo.Count(gctx, predicate)
		if err != nil {
			return shared.DataUnavailable("failed to count return requests", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if requests == nil {
		requests = []returns.ReturnRequest{}
	}
	return &QueryResult{Requests: requests, TotalCount: total}, nil
}
