package usecase

import (
	"context"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
)

// CancelOrder terminates an order before fulfilment. Buyers may cancel
// their own orders while the seller has not yet accepted; the system actor
// cancels on behalf of expiry sweeps. Paid orders are refunded in the same
// transaction, unpaid ones just flip status.
func (uc *DefaultOrderUsecase) CancelOrder(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleSystem {
		if err := buyerOwns(actor, order, "cancel order"); err != nil {
			return nil, err
		}
	}

	op := &domain.TransitionOp{
		Action: domain.ActionCancel,
		To:     domain.StatusCancelled,
		Actor:  actor,
	}
	if order.PaidAt != nil {
		op.Wallet = uc.refundFunds(ctx, order)
	}

	cancelled, err := uc.applyTransition(ctx, order, op)
	if err != nil {
		return nil, err
	}
	uc.recordOrderCancelled(cancelled, string(domain.ActionCancel))
	return cancelled, nil
}
