package returns

import "github.com/shopspring/decimal"

// RefundPolicy holds the accept/refund UI defaults of a return request
type RefundPolicy struct {
	ShowUpdateTotals       bool
	UpdateTotals           bool
	ShowUpdateRewardPoints bool
	UpdateRewardPoints     bool
	// MaxRefundAmount is nil unless the computed amount is strictly positive.
	// Refunds already issued for the request are not deducted.
	MaxRefundAmount *decimal.Decimal
}

// EvaluateRefundPolicy derives the refund controls for a request of the
// given quantity. Both order and item may be nil.
func EvaluateRefundPolicy(order *Order, item *OrderItem, quantity int) RefundPolicy {
	var policy RefundPolicy

	if order != nil {
		policy.ShowUpdateTotals = order.OrderStatus <= OrderStatusPending
		policy.ShowUpdateRewardPoints = order.OrderStatus > OrderStatusPending && order.RewardPointsWereAdded
		policy.UpdateRewardPoints = order.RewardPointsWereAdded
	}
	policy.UpdateTotals = policy.ShowUpdateTotals

	if item != nil {
		amount := decimal.Max(item.UnitPriceInclTax.Mul(decimal.NewFromInt(int64(quantity))), decimal.Zero)
		if amount.IsPositive() {
			policy.MaxRefundAmount = &amount
		}
	}

	return policy
}
