package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name   string
		status OrderStatus
		action OrderAction
		want   bool
	}{
		{"mark paid from pending_payment", StatusPendingPayment, ActionMarkPaid, true},
		{"mark paid from pending", StatusPending, ActionMarkPaid, false},
		{"accept from pending", StatusPending, ActionAccept, true},
		{"accept from accepted", StatusAccepted, ActionAccept, false},
		{"reject from pending", StatusPending, ActionReject, true},
		{"reject after accept", StatusAccepted, ActionReject, false},
		{"cancel before payment", StatusPendingPayment, ActionCancel, true},
		{"cancel from pending", StatusPending, ActionCancel, true},
		{"cancel after accept", StatusAccepted, ActionCancel, false},
		{"ship from accepted", StatusAccepted, ActionShip, true},
		{"ship from pending", StatusPending, ActionShip, false},
		{"mark delivered from shipped", StatusShipped, ActionMarkDelivered, true},
		{"confirm from shipped", StatusShipped, ActionConfirmDelivery, true},
		{"confirm from delivered", StatusDelivered, ActionConfirmDelivery, true},
		{"confirm from accepted", StatusAccepted, ActionConfirmDelivery, false},
		{"dispute from pending", StatusPending, ActionOpenDispute, true},
		{"dispute from accepted", StatusAccepted, ActionOpenDispute, true},
		{"dispute from shipped", StatusShipped, ActionOpenDispute, true},
		{"dispute from delivered", StatusDelivered, ActionOpenDispute, true},
		{"dispute from completed", StatusCompleted, ActionOpenDispute, false},
		{"resolve from disputed", StatusDisputed, ActionResolveDispute, true},
		{"resolve from shipped", StatusShipped, ActionResolveDispute, false},
		{"auto release from shipped", StatusShipped, ActionAutoRelease, true},
		{"auto release from delivered", StatusDelivered, ActionAutoRelease, false},
		{"nothing from completed", StatusCompleted, ActionCancel, false},
		{"nothing from cancelled", StatusCancelled, ActionAccept, false},
		{"nothing from refunded", StatusRefunded, ActionShip, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.status, tt.action))
		})
	}
}

func TestTerminalStatusesAllowNoAction(t *testing.T) {
	actions := []OrderAction{
		ActionMarkPaid, ActionAccept, ActionReject, ActionCancel, ActionShip,
		ActionMarkDelivered, ActionConfirmDelivery, ActionOpenDispute,
		ActionResolveDispute, ActionAutoRelease,
	}
	for _, status := range []OrderStatus{StatusCompleted, StatusCancelled, StatusRefunded} {
		require.True(t, status.Terminal())
		for _, action := range actions {
			assert.Falsef(t, CanTransition(status, action), "%s allowed from %s", action, status)
		}
	}
}

func TestComputeFees(t *testing.T) {
	rate := decimal.RequireFromString("0.05")

	tests := []struct {
		amount     string
		wantFee    string
		wantPayout string
	}{
		{"100.00", "5.00", "95.00"},
		{"10.00", "0.50", "9.50"},
		{"0.99", "0.05", "0.94"},
		{"33.33", "1.67", "31.66"},
		{"1999.99", "100.00", "1899.99"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			fee, payout := ComputeFees(amount, rate)

			assert.True(t, fee.Equal(decimal.RequireFromString(tt.wantFee)), "fee = %s", fee)
			assert.True(t, payout.Equal(decimal.RequireFromString(tt.wantPayout)), "payout = %s", payout)
			assert.True(t, fee.Add(payout).Equal(amount), "fee + payout must equal amount")
		})
	}
}

func TestComputeFeesZeroRate(t *testing.T) {
	amount := decimal.RequireFromString("42.50")
	fee, payout := ComputeFees(amount, decimal.Zero)

	assert.True(t, fee.IsZero())
	assert.True(t, payout.Equal(amount))
}

func TestBuyerGuest(t *testing.T) {
	assert.True(t, Buyer{Name: "Walk-in"}.Guest())
	assert.False(t, Buyer{BuyerID: "buyer-1", Name: "Amina"}.Guest())
}
