package persistence

import (
	"context"

	"github.com/erp/backoffice/internal/domain/returns"
	"github.com/erp/backoffice/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormSettingRepository reads store and language scoped settings
type GormSettingRepository struct {
	db *gorm.DB
}

// NewGormSettingRepository creates a new GormSettingRepository
func NewGormSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{db: db}
}

// GetLocalizedSetting loads every candidate scope in one query and returns
// the most specific: (store, language), (store, any), (all stores, language),
// then the global value.
func (r *GormSettingRepository) GetLocalizedSetting(ctx context.Context, key string, languageID, storeID int64) (string, error) {
	var rows []models.SettingModel
	if err := r.db.WithContext(ctx).
		Where("name = ?", key).
		Where("store_id IN ?", []int64{storeID, 0}).
		Where("language_id IN ?", []int64{languageID, 0}).
		Find(&rows).Error; err != nil {
		return "", err
	}

	var best *models.SettingModel
	for i := range rows {
		if best == nil || rows[i].Specificity() > best.Specificity() {
			best = &rows[i]
		}
	}
	if best == nil {
		return "", nil
	}
	return best.Value, nil
}

var _ returns.SettingRepository = (*GormSettingRepository)(nil)
