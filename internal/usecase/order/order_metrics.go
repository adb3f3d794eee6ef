package usecase

import (
	"github.com/dukalink/dukalink-escrow-service/internal/domain"
)

// All recorders tolerate a nil Metrics bundle so tests can run without a
// prometheus registry.

func (uc *DefaultOrderUsecase) recordOrderCreated(order *domain.Order, channel string) {
	if uc.Metrics == nil {
		return
	}
	amount, _ := order.Amount.Float64()
	uc.Metrics.RecordOrderCreated(order.StoreID, channel, order.Currency, amount)
}

func (uc *DefaultOrderUsecase) recordOrderCompleted(order *domain.Order) {
	if uc.Metrics == nil {
		return
	}
	amount, _ := order.Amount.Float64()
	fee, _ := order.PlatformFee.Float64()
	payout, _ := order.SellerPayout.Float64()
	uc.Metrics.RecordOrderCompleted(order.StoreID, order.Currency, amount, fee, payout)

	if order.CompletedAt != nil && !order.CreatedAt.IsZero() {
		uc.Metrics.RecordSettlementDuration(
			string(domain.StatusCompleted),
			order.CompletedAt.Sub(order.CreatedAt).Seconds(),
		)
	}
}

func (uc *DefaultOrderUsecase) recordOrderCancelled(order *domain.Order, action string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordOrderCancelled(order.StoreID, action)

	if order.CancelledAt != nil && !order.CreatedAt.IsZero() {
		uc.Metrics.RecordSettlementDuration(
			string(domain.StatusCancelled),
			order.CancelledAt.Sub(order.CreatedAt).Seconds(),
		)
	}
}

func (uc *DefaultOrderUsecase) recordAutoRelease(order *domain.Order) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordAutoRelease(order.Currency)
}

func (uc *DefaultOrderUsecase) recordPaymentExpired(order *domain.Order) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordPaymentExpired(order.StoreID)
}

func (uc *DefaultOrderUsecase) recordTransition(action, fromStatus, toStatus string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordTransition(action, fromStatus, toStatus)
}

func (uc *DefaultOrderUsecase) recordConflict(action string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordConflict(action)
}

func (uc *DefaultOrderUsecase) recordWalletCall(operation string, seconds float64) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordWalletCall(operation, seconds)
}

func (uc *DefaultOrderUsecase) recordSweep(sweep string, seconds float64) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordSweep(sweep, seconds)
}

func (uc *DefaultOrderUsecase) recordError(action, errorType string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordError(action, errorType)
}
