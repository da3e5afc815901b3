package models

import "github.com/erp/backoffice/internal/domain/returns"

// AddressModel is the persistence model of a customer address
type AddressModel struct {
	BaseModel
	FirstName string `gorm:"type:varchar(200)"`
	LastName  string `gorm:"type:varchar(200)"`
	Email     string `gorm:"type:varchar(320)"`
	Company   string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (AddressModel) TableName() string {
	return "addresses"
}

// ToDomain converts the model to a domain address, nil for an empty join
func (m *AddressModel) ToDomain() *returns.Address {
	if m == nil || m.ID == 0 {
		return nil
	}
	return &returns.Address{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Company:   m.Company,
	}
}

// CustomerModel is the persistence model of a customer
type CustomerModel struct {
	BaseModel
	Username          string        `gorm:"type:varchar(200)"`
	Email             string        `gorm:"type:varchar(320)"`
	FirstName         string        `gorm:"type:varchar(200)"`
	LastName          string        `gorm:"type:varchar(200)"`
	BillingAddressID  *int64        `gorm:"index"`
	ShippingAddressID *int64        `gorm:"index"`
	BillingAddress    *AddressModel `gorm:"foreignKey:BillingAddressID"`
	ShippingAddress   *AddressModel `gorm:"foreignKey:ShippingAddressID"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the model to a domain customer
func (m *CustomerModel) ToDomain() *returns.Customer {
	return &returns.Customer{
		ID:              m.ID,
		Username:        m.Username,
		Email:           m.Email,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		BillingAddress:  m.BillingAddress.ToDomain(),
		ShippingAddress: m.ShippingAddress.ToDomain(),
	}
}
