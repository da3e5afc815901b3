package returns

import (
	"time"

	"github.com/erp/backoffice/internal/domain/shared/valueobject"
)

// ListRow is a return request as shown in the grid
type ListRow struct {
	ID                        int64     `json:"id"`
	ProductID                 int64     `json:"product_id"`
	ProductSku                string    `json:"product_sku"`
	ProductName               string    `json:"product_name"`
	ProductTypeName           string    `json:"product_type_name"`
	ProductTypeLabelHint      string    `json:"product_type_label_hint"`
	AttributeInfo             string    `json:"attribute_info"`
	OrderID                   int64     `json:"order_id"`
	OrderNumber               string    `json:"order_number"`
	CustomerID                int64     `json:"customer_id"`
	CustomerFullName          string    `json:"customer_full_name"`
	CanSendEmailToCustomer    bool      `json:"can_send_email_to_customer"`
	Quantity                  int       `json:"quantity"`
	ReturnRequestStatusString string    `json:"return_request_status_string"`
	StoreName                 string    `json:"store_name,omitempty"`
	CreatedOn                 time.Time `json:"created_on"`
	UpdatedOn                 time.Time `json:"updated_on"`
	EditURL                   string    `json:"edit_url"`
	CustomerEditURL           string    `json:"customer_edit_url"`
	OrderEditURL              string    `json:"order_edit_url,omitempty"`
	ProductEditURL            string    `json:"product_edit_url,omitempty"`
}

// DetailFields are the editable free-text fields of a return request
type DetailFields struct {
	ReasonForReturn        string     `json:"reason_for_return"`
	RequestedAction        string     `json:"requested_action"`
	RequestedActionUpdated *time.Time `json:"requested_action_updated,omitempty"`
	CustomerComments       string     `json:"customer_comments"`
	StaffNotes             string     `json:"staff_notes"`
	AdminComment           string     `json:"admin_comment"`
	ReturnRequestStatusID  int        `json:"return_request_status_id"`
}

// SelectOption is an entry of a dropdown
type SelectOption struct {
	Text     string `json:"text"`
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
}

// UpdateOrderItemModel drives the accept dialog of a return request
type UpdateOrderItemModel struct {
	ID                     int64  `json:"id"`
	Caption                string `json:"caption"`
	PostURL                string `json:"post_url"`
	UpdateTotals           bool   `json:"update_totals"`
	ShowUpdateTotals       bool   `json:"show_update_totals"`
	UpdateRewardPoints     bool   `json:"update_reward_points"`
	ShowUpdateRewardPoints bool   `json:"show_update_reward_points"`
}

// DetailRow is a return request prepared for editing
type DetailRow struct {
	ListRow
	DetailFields
	ReasonOptions            []SelectOption        `json:"reason_options,omitempty"`
	ActionOptions            []SelectOption        `json:"action_options,omitempty"`
	UpdateOrderItem          *UpdateOrderItemModel `json:"update_order_item,omitempty"`
	MaxRefundAmount          *valueobject.Money    `json:"max_refund_amount,omitempty"`
	MaxRefundAmountFormatted string                `json:"max_refund_amount_formatted,omitempty"`
	ReturnRequestInfo        string                `json:"return_request_info,omitempty"`
}

// GridResult is one page of list rows plus the unpaged total
type GridResult struct {
	Rows       []ListRow `json:"rows"`
	TotalCount int64     `json:"total_count"`
}

// FilterOptions holds the grid filter dropdown data
type FilterOptions struct {
	Stores   []SelectOption `json:"stores"`
	Statuses []SelectOption `json:"statuses"`
}
