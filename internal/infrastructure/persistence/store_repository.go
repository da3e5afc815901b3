package persistence

import (
	"context"

	"github.com/erp/backoffice/internal/domain/returns"
	"github.com/erp/backoffice/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormStoreRepository lists storefronts
type GormStoreRepository struct {
	db *gorm.DB
}

// NewGormStoreRepository creates a new GormStoreRepository
func NewGormStoreRepository(db *gorm.DB) *GormStoreRepository {
	return &GormStoreRepository{db: db}
}

// FindAll returns all stores in display order
func (r *GormStoreRepository) FindAll(ctx context.Context) ([]returns.Store, error) {
	var rows []models.StoreModel
	if err := r.db.WithContext(ctx).Order("display_order ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]returns.Store, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, nil
}

var _ returns.StoreRepository = (*GormStoreRepository)(nil)
