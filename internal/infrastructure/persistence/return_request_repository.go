package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/erp/backoffice/internal/domain/returns"
	"github.com/erp/backoffice/internal/domain/shared"
	"github.com/erp/backoffice/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// predicateColumns maps filterable fields to their columns
var predicateColumns = map[returns.Field]string{
	returns.FieldID:       "id",
	returns.FieldStatusID: "return_request_status_id",
	returns.FieldStoreID:  "store_id",
}

// GormReturnRequestRepository implements returns.ReturnRequestRepository using GORM
type GormReturnRequestRepository struct {
	db *gorm.DB
}

// NewGormReturnRequestRepository creates a new GormReturnRequestRepository
func NewGormReturnRequestRepository(db *gorm.DB) *GormReturnRequestRepository {
	return &GormReturnRequestRepository{db: db}
}

// FindPage returns one page of requests matching the predicate
func (r *GormReturnRequestRepository) FindPage(ctx context.Context, predicate returns.Predicate, sort returns.SortSpec, skip, take int) ([]returns.ReturnRequest, error) {
	query, err := applyPredicate(r.db.WithContext(ctx).Model(&models.ReturnRequestModel{}), predicate)
	if err != nil {
		return nil, err
	}

	field := ValidateSortField(sort.Field, ReturnRequestSortFields, returns.DefaultSort.Field)
	dir := ValidateSortOrder(string(sort.Direction), string(returns.DefaultSort.Direction))
	query = query.Order(fmt.Sprintf("%s %s", field, dir))
	if field != "id" {
		// id breaks ties so pages never overlap
		query = query.Order("id ASC")
	}

	var rows []models.ReturnRequestModel
	if err := query.Offset(skip).Limit(take).Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]returns.ReturnRequest, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Count returns the number of requests matching the predicate
func (r *GormReturnRequestRepository) Count(ctx context.Context, predicate returns.Predicate) (int64, error) {
	query, err := applyPredicate(r.db.WithContext(ctx).Model(&models.ReturnRequestModel{}), predicate)
	if err != nil {
		return 0, err
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// FindByID finds a return request by its ID
func (r *GormReturnRequestRepository) FindByID(ctx context.Context, id int64) (*returns.ReturnRequest, error) {
	var model models.ReturnRequestModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

func applyPredicate(query *gorm.DB, predicate returns.Predicate) (*gorm.DB, error) {
	for _, c := range predicate.Clauses() {
		column, ok := predicateColumns[c.Field]
		if !ok {
			return nil, shared.InvalidArgument(fmt.Sprintf("field %q cannot be filtered", c.Field))
		}
		switch c.Operator {
		case returns.OpEqual:
			query = query.Where(column+" = ?", c.Value)
		case returns.OpIn:
			query = query.Where(column+" IN ?", c.Value)
		default:
			return nil, shared.InvalidArgument(fmt.Sprintf("operator %q is not supported", c.Operator))
		}
	}
	return query, nil
}

var _ returns.ReturnRequestRepository = (*GormReturnRequestRepository)(nil)
