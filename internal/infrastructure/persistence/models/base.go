package models

import "time"

// BaseModel provides the integer primary key shared by all tables
type BaseModel struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`
}

// AuditModel adds the UTC creation and update timestamps
type AuditModel struct {
	BaseModel
	CreatedOnUtc time.Time `gorm:"column:created_on_utc;not null"`
	UpdatedOnUtc time.Time `gorm:"column:updated_on_utc;not null"`
}
