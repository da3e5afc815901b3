package returns

import (
	"context"

	"github.com/erp/backoffice/internal/domain/returns"
	"github.com/erp/backoffice/internal/domain/shared/valueobject"
	"go.uber.org/zap"
)

// Resource keys used by the projector
const (
	ResourceUnspecified   = "Common.Unspecified"
	ResourceAcceptCaption = "Admin.ReturnRequests.Accept.Caption"
)

// ProjectOptions selects which parts of a row are populated
type ProjectOptions struct {
	// ExcludeDetailFields omits the free-text and raw status fields
	ExcludeDetailFields bool
	// ForList omits dropdown options, refund policy and the info message
	ForList bool
}

var (
	listOptions   = ProjectOptions{ExcludeDetailFields: true, ForList: true}
	detailOptions = ProjectOptions{}
)

// RowInput is a return request together with its resolved references.
// OrderItem and Customer are nil when the referenced record is gone.
type RowInput struct {
	Request    *returns.ReturnRequest
	OrderItem  *returns.OrderItem
	Customer   *returns.Customer
	Stores     returns.StoreMap
	LanguageID int64
}

// Projector turns return requests into grid and edit rows
type Projector struct {
	localizer Localizer
	dates     DateTimeHelper
	currency  CurrencyService
	urls      URLBuilder
	messages  TransientMessageStore
	settings  returns.SettingRepository
	metrics   Metrics
	logger    *zap.Logger
}

// ProjectorDeps bundles the projector collaborators
type ProjectorDeps struct {
	Localizer Localizer
	Dates     DateTimeHelper
	Currency  CurrencyService
	URLs      URLBuilder
	Messages  TransientMessageStore
	Settings  returns.SettingRepository
	Metrics   Metrics
	Logger    *zap.Logger
}

// NewProjector creates a new Projector
func NewProjector(deps ProjectorDeps) *Projector {
	p := &Projector{
		localizer: deps.Localizer,
		dates:     deps.Dates,
		currency:  deps.Currency,
		urls:      deps.URLs,
		messages:  deps.Messages,
		settings:  deps.Settings,
		metrics:   deps.Metrics,
		logger:    deps.Logger,
	}
	if p.metrics == nil {
		p.metrics = NopMetrics()
	}
	if p.logger == nil {
		p.logger = zap.NewNop()
	}
	return p
}

// ProjectListRow builds the grid row of a request
func (p *Projector) ProjectListRow(ctx context.Context, in RowInput) ListRow {
	return p.Project(ctx, in, listOptions).ListRow
}

// ProjectDetailRow builds the edit row of a request
func (p *Projector) ProjectDetailRow(ctx context.Context, in RowInput) DetailRow {
	return p.Project(ctx, in, detailOptions)
}

// Project builds a row with the parts selected by opts. Missing references
// degrade to empty values and never fail the row.
func (p *Projector) Project(ctx context.Context, in RowInput, opts ProjectOptions) DetailRow {
	req := in.Request
	item := in.OrderItem
	var order *returns.Order
	var product *returns.Product
	if item != nil {
		order = item.Order
		product = item.Product
	}
	store, hasStore := in.Stores.Get(req.StoreID)

	log := p.logger.With(zap.Int64("return_request_id", req.ID))
	if item == nil {
		log.Debug("order item not found", zap.Int64("order_item_id", req.OrderItemID))
		p.metrics.IncDegradedRow("order_item_missing")
	}
	if in.Customer == nil {
		log.Debug("customer not found", zap.Int64("customer_id", req.CustomerID))
		p.metrics.IncDegradedRow("customer_missing")
	}

	row := DetailRow{}
	row.ID = req.ID
	row.CustomerID = req.CustomerID
	row.CustomerFullName = returns.NaIfEmpty(in.Customer.FullName())
	row.CanSendEmailToCustomer = in.Customer.FindEmail() != ""
	row.Quantity = req.Quantity
	row.ReturnRequestStatusString = p.localizer.GetLocalizedEnum(ctx, in.LanguageID, req.Status)
	row.CreatedOn = p.dates.ToDisplayTime(req.CreatedOnUtc)
	row.UpdatedOn = p.dates.ToDisplayTime(req.UpdatedOnUtc)
	row.EditURL = p.urls.Action("Edit", "ReturnRequest", req.ID)
	row.CustomerEditURL = p.urls.Action("Edit", "Customer", req.CustomerID)

	if item != nil {
		row.ProductID = item.ProductID
		row.AttributeInfo = item.AttributeDescription
		row.OrderID = item.OrderID
		row.OrderEditURL = p.urls.Action("Edit", "Order", item.OrderID)
		row.ProductEditURL = p.urls.Action("Edit", "Product", item.ProductID)
	}
	if product != nil {
		row.ProductSku = product.Sku
		row.ProductName = product.Name
		row.ProductTypeName = p.localizer.T(ctx, in.LanguageID, product.ProductType.LabelResourceKey())
		row.ProductTypeLabelHint = product.ProductTypeLabelHint
	}
	row.OrderNumber = order.GetOrderNumber()

	if in.Stores.IsMultiStore() && hasStore {
		row.StoreName = store.Name
	}

	if !opts.ExcludeDetailFields {
		row.ReasonForReturn = req.ReasonForReturn
		row.RequestedAction = req.RequestedAction
		if req.RequestedActionUpdatedOnUtc != nil {
			updated := p.dates.ToDisplayTime(*req.RequestedActionUpdatedOnUtc)
			row.RequestedActionUpdated = &updated
		}
		row.CustomerComments = req.CustomerComments
		row.StaffNotes = req.StaffNotes
		row.AdminComment = req.AdminComment
		row.ReturnRequestStatusID = int(req.Status)
	}

	if !opts.ForList {
		var storeID, customerLanguageID int64
		if hasStore {
			storeID = store.ID
		}
		if order != nil {
			customerLanguageID = order.CustomerLanguageID
		}
		unspecified := p.localizer.T(ctx, in.LanguageID, ResourceUnspecified)
		reasons := p.setting(ctx, log, returns.SettingReturnRequestReasons, customerLanguageID, storeID)
		actions := p.setting(ctx, log, returns.SettingReturnRequestActions, customerLanguageID, storeID)
		row.ReasonOptions = buildSelectOptions(reasons, req.ReasonForReturn, unspecified)
		row.ActionOptions = buildSelectOptions(actions, req.RequestedAction, unspecified)

		policy := returns.EvaluateRefundPolicy(order, item, req.Quantity)
		row.UpdateOrderItem = &UpdateOrderItemModel{
			ID:                     req.ID,
			Caption:                p.localizer.T(ctx, in.LanguageID, ResourceAcceptCaption),
			PostURL:                p.urls.Action("Accept", "ReturnRequest", 0),
			UpdateTotals:           policy.UpdateTotals,
			ShowUpdateTotals:       policy.ShowUpdateTotals,
			UpdateRewardPoints:     policy.UpdateRewardPoints,
			ShowUpdateRewardPoints: policy.ShowUpdateRewardPoints,
		}

		if policy.MaxRefundAmount != nil {
			money, err := valueobject.NewMoney(*policy.MaxRefundAmount, p.currency.PrimaryCurrency())
			if err != nil {
				log.Warn("primary currency not configured", zap.Error(err))
			} else {
				money = money.WithTaxIncluded(true)
				money = money.WithPostFormat(p.currency.TaxFormat(in.LanguageID, true, money.TaxIncluded()))
				row.MaxRefundAmount = &money
				row.MaxRefundAmountFormatted = p.currency.Format(in.LanguageID, money)
			}
		}

		row.ReturnRequestInfo = p.takeInfoMessage(ctx, log)
	}

	return row
}

func (p *Projector) setting(ctx context.Context, log *zap.Logger, key string, languageID, storeID int64) string {
	if p.settings == nil {
		return ""
	}
	value, err := p.settings.GetLocalizedSetting(ctx, key, languageID, storeID)
	if err != nil {
		log.Warn("failed to load setting", zap.String("key", key), zap.Error(err))
		p.metrics.IncDegradedRow("setting_unavailable")
		return ""
	}
	return value
}

func (p *Projector) takeInfoMessage(ctx context.Context, log *zap.Logger) string {
	if p.messages == nil {
		return ""
	}
	key, ok := SessionInfoMessageKey(SessionIDFromContext(ctx))
	if !ok {
		return ""
	}
	msg, ok, err := p.messages.TakeOnce(ctx, key)
	if err != nil {
		log.Warn("failed to read info message", zap.Error(err))
		p.metrics.IncDegradedRow("message_store_unavailable")
		return ""
	}
	if !ok {
		return ""
	}
	return msg
}
