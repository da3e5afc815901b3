package models

import (
	"time"

	"github.com/erp/backoffice/internal/domain/returns"
)

// ReturnRequestModel is the persistence model of a return request
type ReturnRequestModel struct {
	AuditModel
	StoreID                     int64                       `gorm:"not null;index"`
	OrderItemID                 int64                       `gorm:"not null;index"`
	CustomerID                  int64                       `gorm:"not null;index"`
	Quantity                    int                         `gorm:"not null"`
	ReturnRequestStatusID       returns.ReturnRequestStatus `gorm:"column:return_request_status_id;not null;index"`
	ReasonForReturn             string                      `gorm:"type:text"`
	RequestedAction             string                      `gorm:"type:text"`
	RequestedActionUpdatedOnUtc *time.Time                  `gorm:"column:requested_action_updated_on_utc"`
	CustomerComments            string                      `gorm:"type:text"`
	StaffNotes                  string                      `gorm:"type:text"`
	AdminComment                string                      `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ReturnRequestModel) TableName() string {
	return "return_requests"
}

// ToDomain converts the model to a domain return request
func (m *ReturnRequestModel) ToDomain() *returns.ReturnRequest {
	return &returns.ReturnRequest{
		ID:                          m.ID,
		StoreID:                     m.StoreID,
		OrderItemID:                 m.OrderItemID,
		CustomerID:                  m.CustomerID,
		Quantity:                    m.Quantity,
		Status:                      m.ReturnRequestStatusID,
		ReasonForReturn:             m.ReasonForReturn,
		RequestedAction:             m.RequestedAction,
		RequestedActionUpdatedOnUtc: m.RequestedActionUpdatedOnUtc,
		CustomerComments:            m.CustomerComments,
		StaffNotes:                  m.StaffNotes,
		AdminComment:                m.AdminComment,
		CreatedOnUtc:                m.CreatedOnUtc,
		UpdatedOnUtc:                m.UpdatedOnUtc,
	}
}
