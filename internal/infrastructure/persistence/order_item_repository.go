package persistence

import (
	"context"

	"github.com/erp/backoffice/internal/domain/returns"
	"github.com/erp/backoffice/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormOrderItemRepository resolves order items with their order and product
type GormOrderItemRepository struct {
	db *gorm.DB
}

// NewGormOrderItemRepository creates a new GormOrderItemRepository
func NewGormOrderItemRepository(db *gorm.DB) *GormOrderItemRepository {
	return &GormOrderItemRepository{db: db}
}

// FindByIDs loads all items and their associations in a single joined query
func (r *GormOrderItemRepository) FindByIDs(ctx context.Context, ids []int64) (map[int64]*returns.OrderItem, error) {
	out := make(map[int64]*returns.OrderItem, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []models.OrderItemModel
	if err := r.db.WithContext(ctx).
		Joins("Order").
		Joins("Product").
		Where("order_items.id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	for i := range rows {
		out[rows[i].ID] = rows[i].ToDomain()
	}
	return out, nil
}

var _ returns.OrderItemRepository = (*GormOrderItemRepository)(nil)
