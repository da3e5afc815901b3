package returns

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// OrderStatus is the ordered lifecycle status of an order
type OrderStatus int

const (
	OrderStatusPending    OrderStatus = 10
	OrderStatusProcessing OrderStatus = 20
	OrderStatusComplete   OrderStatus = 30
	OrderStatusCancelled  OrderStatus = 40
)

// ProductType distinguishes simple, grouped and bundled products
type ProductType int

const (
	ProductTypeSimple  ProductType = 5
	ProductTypeGrouped ProductType = 10
	ProductTypeBundled ProductType = 15
)

// String returns the enum member name
func (t ProductType) String() string {
	switch t {
	case ProductTypeSimple:
		return "SimpleProduct"
	case ProductTypeGrouped:
		return "GroupedProduct"
	case ProductTypeBundled:
		return "BundledProduct"
	}
	return "UnknownProduct"
}

// LabelResourceKey returns the localization key for the product type label
func (t ProductType) LabelResourceKey() string {
	return "Admin.Catalog.Products.ProductType." + t.String() + ".Label"
}

// Product is the catalog product an order item was bought as
type Product struct {
	ID                   int64
	Name                 string
	Sku                  string
	ProductType          ProductType
	ProductTypeLabelHint string
}

// Order is the order an order item belongs to
type Order struct {
	ID                    int64
	OrderNumber           string
	OrderStatus           OrderStatus
	CustomerLanguageID    int64
	RewardPointsWereAdded bool
}

// GetOrderNumber returns the display order number, falling back to the id
func (o *Order) GetOrderNumber() string {
	if o == nil {
		return ""
	}
	if o.OrderNumber != "" {
		return o.OrderNumber
	}
	return strconv.FormatInt(o.ID, 10)
}

// OrderItem is a purchased line of an order, resolved together with its
// product and order
type OrderItem struct {
	ID                   int64
	OrderID              int64
	ProductID            int64
	UnitPriceInclTax     decimal.Decimal
	AttributeDescription string
	Product              *Product
	Order                *Order
}
