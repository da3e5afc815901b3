package models

import "github.com/erp/backoffice/internal/domain/returns"

// StoreModel is the persistence model of a storefront
type StoreModel struct {
	BaseModel
	Name         string `gorm:"type:varchar(400);not null"`
	DisplayOrder int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (StoreModel) TableName() string {
	return "stores"
}

// ToDomain converts the model to a domain store
func (m *StoreModel) ToDomain() returns.Store {
	return returns.Store{ID: m.ID, Name: m.Name}
}

// SettingModel is a configuration value. StoreID 0 applies to all stores
// and LanguageID 0 is the unlocalized value.
type SettingModel struct {
	BaseModel
	Name       string `gorm:"type:varchar(200);not null;uniqueIndex:idx_setting_scope,priority:1"`
	Value      string `gorm:"type:text;not null"`
	StoreID    int64  `gorm:"not null;default:0;uniqueIndex:idx_setting_scope,priority:2"`
	LanguageID int64  `gorm:"not null;default:0;uniqueIndex:idx_setting_scope,priority:3"`
}

// TableName returns the table name for GORM
func (SettingModel) TableName() string {
	return "settings"
}

// Specificity ranks the setting scope: store beats language beats global
func (m *SettingModel) Specificity() int {
	rank := 0
	if m.StoreID != 0 {
		rank += 2
	}
	if m.LanguageID != 0 {
		rank++
	}
	return rank
}
