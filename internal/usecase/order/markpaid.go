package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
)

// MarkOrderPaid confirms a payment for a pending_payment order: the order
// moves to pending and the amount is held in escrow inside the same
// transaction. Payment confirmations are delivered at least once, so a
// redelivery for an already paid order is a silent no-op.
func (uc *DefaultOrderUsecase) MarkOrderPaid(ctx context.Context, orderID, paymentRef string) error {
	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.PaidAt != nil {
		slog.Info("payment confirmation for already paid order",
			"order_id", orderID, "payment_ref", paymentRef)
		return nil
	}

	expiresAt := time.Now().Add(uc.Rules.PendingTTL)
	op := &domain.TransitionOp{
		Action:     domain.ActionMarkPaid,
		To:         domain.StatusPending,
		Actor:      domain.SystemActor(),
		PaymentRef: paymentRef,
		ExpiresAt:  &expiresAt,
		Wallet:     uc.holdFunds(ctx, order),
	}
	_, err = uc.applyTransition(ctx, order, op)
	return err
}
