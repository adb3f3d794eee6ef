package usecase

import (
	"context"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
)

// AcceptOrder is the seller committing to fulfil. The pending deadline is
// cleared by the transition; the held funds stay where they are.
func (uc *DefaultOrderUsecase) AcceptOrder(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := sellerOwns(actor, order, "accept order"); err != nil {
		return nil, err
	}

	op := &domain.TransitionOp{
		Action: domain.ActionAccept,
		To:     domain.StatusAccepted,
		Actor:  actor,
	}
	return uc.applyTransition(ctx, order, op)
}
