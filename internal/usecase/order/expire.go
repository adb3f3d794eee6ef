package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
)

// CancelExpiredOrders cancels orders that outlived their deadline: link
// checkouts whose payment never arrived, and paid orders the seller never
// answered. The latter are refunded inside the cancelling transaction.
func (uc *DefaultOrderUsecase) CancelExpiredOrders(ctx context.Context) (int, error) {
	start := time.Now()
	defer func() {
		uc.recordSweep("expire", time.Since(start).Seconds())
	}()

	expired, err := uc.OrderRepo.FindExpiredOrders(ctx, start)
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, order := range expired {
		op := &domain.TransitionOp{
			Action: domain.ActionCancel,
			To:     domain.StatusCancelled,
			Actor:  domain.SystemActor(),
		}
		if order.PaidAt != nil {
			op.Note = "seller response window expired"
			op.Wallet = uc.refundFunds(ctx, order)
		} else {
			op.Note = "payment window expired"
		}

		done, err := uc.applyTransition(ctx, order, op)
		if err != nil {
			var invalid *domain.InvalidTransitionError
			if errors.Is(err, domain.ErrOrderConflict) || errors.As(err, &invalid) {
				continue
			}
			slog.Error("expiry cancel failed", "order_id", order.ID, "error", err.Error())
			continue
		}
		cancelled++
		if order.PaidAt == nil {
			uc.recordPaymentExpired(done)
		}
		uc.recordOrderCancelled(done, string(domain.ActionCancel))
	}

	if cancelled > 0 {
		slog.Info("expiry sweep finished", "cancelled", cancelled, "expired", len(expired))
	}
	return cancelled, nil
}
