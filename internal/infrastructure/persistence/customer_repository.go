package persistence

import (
	"context"

	"github.com/erp/backoffice/internal/domain/returns"
	"github.com/erp/backoffice/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCustomerRepository resolves customers with their addresses
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByIDs loads all customers and both addresses in a single joined query
func (r *GormCustomerRepository) FindByIDs(ctx context.Context, ids []int64) (map[int64]*returns.Customer, error) {
	out := make(map[int64]*returns.Customer, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []models.CustomerModel
	if err := r.db.WithContext(ctx).
		Joins("BillingAddress").
		Joins("ShippingAddress").
		Where("customers.id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	for i := range rows {
		out[rows[i].ID] = rows[i].ToDomain()
	}
	return out, nil
}

var _ returns.CustomerRepository = (*GormCustomerRepository)(nil)
