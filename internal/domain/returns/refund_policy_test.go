package returns

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateRefundPolicy_UpdateControls(t *testing.T) {
	tests := []struct {
		name                   string
		order                  *Order
		wantShowUpdateTotals   bool
		wantShowRewardPoints   bool
		wantUpdateRewardPoints bool
	}{
		{"no order", nil, false, false, false},
		{"pending without points", &Order{OrderStatus: OrderStatusPending}, true, false, false},
		{"pending with points", &Order{OrderStatus: OrderStatusPending, RewardPointsWereAdded: true}, true, false, true},
		{"processing without points", &Order{OrderStatus: OrderStatusProcessing}, false, false, false},
		{"processing with points", &Order{OrderStatus: OrderStatusProcessing, RewardPointsWereAdded: true}, false, true, true},
		{"complete with points", &Order{OrderStatus: OrderStatusComplete, RewardPointsWereAdded: true}, false, true, true},
		{"cancelled without points", &Order{OrderStatus: OrderStatusCancelled}, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := EvaluateRefundPolicy(tt.order, nil, 1)
			assert.Equal(t, tt.wantShowUpdateTotals, policy.ShowUpdateTotals)
			assert.Equal(t, tt.wantShowUpdateTotals, policy.UpdateTotals)
			assert.Equal(t, tt.wantShowRewardPoints, policy.ShowUpdateRewardPoints)
			assert.Equal(t, tt.wantUpdateRewardPoints, policy.UpdateRewardPoints)
		})
	}
}

func TestEvaluateRefundPolicy_MaxRefundAmount(t *testing.T) {
	t.Run("price times quantity", func(t *testing.T) {
		item := &OrderItem{UnitPriceInclTax: decimal.RequireFromString("19.99")}
		policy := EvaluateRefundPolicy(&Order{OrderStatus: OrderStatusPending}, item, 2)
		require.NotNil(t, policy.MaxRefundAmount)
		assert.Equal(t, "39.98", policy.MaxRefundAmount.StringFixed(2))
	})

	t.Run("absent without order item", func(t *testing.T) {
		policy := EvaluateRefundPolicy(&Order{}, nil, 2)
		assert.Nil(t, policy.MaxRefundAmount)
	})

	t.Run("absent for zero price", func(t *testing.T) {
		item := &OrderItem{UnitPriceInclTax: decimal.Zero}
		assert.Nil(t, EvaluateRefundPolicy(nil, item, 3).MaxRefundAmount)
	})

	t.Run("absent for negative price", func(t *testing.T) {
		item := &OrderItem{UnitPriceInclTax: decimal.RequireFromString("-5.00")}
		assert.Nil(t, EvaluateRefundPolicy(nil, item, 3).MaxRefundAmount)
	})
}
