package usecase

import (
	"context"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
)

// RejectOrder declines a pending order. The buyer's money leaves escrow in
// the same transaction as the status change.
func (uc *DefaultOrderUsecase) RejectOrder(ctx context.Context, actor domain.Actor, orderID, reason string) (*domain.Order, error) {
	if reason == "" {
		return nil, &domain.ValidationError{Field: "reason", Reason: "required"}
	}

	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := sellerOwns(actor, order, "reject order"); err != nil {
		return nil, err
	}

	op := &domain.TransitionOp{
		Action:          domain.ActionReject,
		To:              domain.StatusCancelled,
		Actor:           actor,
		RejectionReason: reason,
		Wallet:          uc.refundFunds(ctx, order),
	}
	rejected, err := uc.applyTransition(ctx, order, op)
	if err != nil {
		return nil, err
	}
	uc.recordOrderCancelled(rejected, string(domain.ActionReject))
	return rejected, nil
}
