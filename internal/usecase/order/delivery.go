package usecase

import (
	"context"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
)

// MarkDelivered is the buyer acknowledging the package arrived. It is an
// optional step: ConfirmDelivery works straight from shipped too.
func (uc *DefaultOrderUsecase) MarkDelivered(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := buyerOwns(actor, order, "mark delivered"); err != nil {
		return nil, err
	}

	op := &domain.TransitionOp{
		Action: domain.ActionMarkDelivered,
		To:     domain.StatusDelivered,
		Actor:  actor,
	}
	return uc.applyTransition(ctx, order, op)
}

// ConfirmDelivery completes the order: the payout moves to the seller's
// available balance and the platform keeps its fee, atomically with the
// status change. Skipping the delivered step fills deliveredAt with the
// confirmation instant.
func (uc *DefaultOrderUsecase) ConfirmDelivery(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := buyerOwns(actor, order, "confirm delivery"); err != nil {
		return nil, err
	}

	op := &domain.TransitionOp{
		Action: domain.ActionConfirmDelivery,
		To:     domain.StatusCompleted,
		Actor:  actor,
		Wallet: uc.releaseFunds(ctx, order),
	}
	completed, err := uc.applyTransition(ctx, order, op)
	if err != nil {
		return nil, err
	}
	uc.recordOrderCompleted(completed)
	return completed, nil
}
