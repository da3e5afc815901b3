package models

import (
	"github.com/erp/backoffice/internal/domain/returns"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model of an order
type OrderModel struct {
	AuditModel
	CustomOrderNumber     string              `gorm:"type:varchar(64)"`
	OrderStatusID         returns.OrderStatus `gorm:"column:order_status_id;not null"`
	CustomerLanguageID    int64               `gorm:"not null;default:0"`
	RewardPointsWereAdded bool                `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the model to a domain order
func (m *OrderModel) ToDomain() *returns.Order {
	return &returns.Order{
		ID:                    m.ID,
		OrderNumber:           m.CustomOrderNumber,
		OrderStatus:           m.OrderStatusID,
		CustomerLanguageID:    m.CustomerLanguageID,
		RewardPointsWereAdded: m.RewardPointsWereAdded,
	}
}

// ProductModel is the persistence model of a catalog product
type ProductModel struct {
	BaseModel
	Name                 string              `gorm:"type:varchar(400);not null"`
	Sku                  string              `gorm:"type:varchar(400);index"`
	ProductTypeID        returns.ProductType `gorm:"column:product_type_id;not null"`
	ProductTypeLabelHint string              `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the model to a domain product
func (m *ProductModel) ToDomain() *returns.Product {
	return &returns.Product{
		ID:                   m.ID,
		Name:                 m.Name,
		Sku:                  m.Sku,
		ProductType:          m.ProductTypeID,
		ProductTypeLabelHint: m.ProductTypeLabelHint,
	}
}

// OrderItemModel is the persistence model of an order line.
// Order and Product are loaded by join and stay nil when the row is gone.
type OrderItemModel struct {
	BaseModel
	OrderID              int64           `gorm:"not null;index"`
	ProductID            int64           `gorm:"not null;index"`
	UnitPriceInclTax     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	AttributeDescription string          `gorm:"type:text"`
	Order                *OrderModel     `gorm:"foreignKey:OrderID"`
	Product              *ProductModel   `gorm:"foreignKey:ProductID"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the model to a domain order item
func (m *OrderItemModel) ToDomain() *returns.OrderItem {
	item := &returns.OrderItem{
		ID:                   m.ID,
		OrderID:              m.OrderID,
		ProductID:            m.ProductID,
		UnitPriceInclTax:     m.UnitPriceInclTax,
		AttributeDescription: m.AttributeDescription,
	}
	// A left join yields a zero-valued association for missing rows.
	if m.Order != nil && m.Order.ID != 0 {
		item.Order = m.Order.ToDomain()
	}
	if m.Product != nil && m.Product.ID != 0 {
		item.Product = m.Product.ToDomain()
	}
	return item
}
