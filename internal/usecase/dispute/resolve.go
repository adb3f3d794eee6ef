package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/kafka"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/notifier"
	disputedto "github.com/dukalink/dukalink-escrow-service/internal/usecase/dto/dispute"
)

// ResolveDispute adjudicates a dispute in favour of the buyer or the seller.
// The dispute row, the order transition and the wallet settlement commit
// together; if the settlement fails nothing changes.
func (disputeUc *DefaultDisputeUsecase) ResolveDispute(ctx context.Context, actor domain.Actor, input *disputedto.ResolveDisputeInput) (*domain.Dispute, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, &domain.UnauthorizedActionError{Action: "resolve dispute", Reason: "admin only"}
	}
	winner := domain.DisputeWinner(input.Winner)
	if winner != domain.WinnerBuyer && winner != domain.WinnerSeller {
		return nil, &domain.ValidationError{Field: "winner", Reason: "must be buyer or seller"}
	}

	dispute, err := disputeUc.DisputeRepo.GetDisputeByID(ctx, input.DisputeID)
	if err != nil {
		return nil, err
	}
	if dispute.Status.Resolved() {
		return nil, domain.ErrDisputeResolved
	}

	order, err := disputeUc.OrderRepo.GetOrderByID(ctx, dispute.OrderID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(order.Status, domain.ActionResolveDispute) {
		return nil, &domain.InvalidTransitionError{OrderID: order.ID, Status: order.Status, Action: domain.ActionResolveDispute}
	}

	now := time.Now()
	op := &domain.TransitionOp{
		OrderID: order.ID,
		Action:  domain.ActionResolveDispute,
		From:    order.Status,
		At:      now,
		Actor:   actor,
		Note:    input.Resolution,
	}

	var disputeStatus domain.DisputeStatus
	if winner == domain.WinnerSeller {
		disputeStatus = domain.DisputeResolvedSeller
		op.To = domain.StatusCompleted
		op.Wallet = disputeUc.releaseFunds(ctx, order)
	} else {
		disputeStatus = domain.DisputeResolvedBuyer
		op.To = domain.StatusRefunded
		op.Wallet = disputeUc.refundFunds(ctx, order)
	}

	err = disputeUc.DisputeRepo.ResolveDispute(ctx, &domain.ResolutionOp{
		DisputeID:     dispute.ID,
		DisputeStatus: disputeStatus,
		Resolution:    input.Resolution,
		ResolvedBy:    actor.ID,
		At:            now,
		OrderOp:       op,
	})
	if err != nil {
		return nil, fmt.Errorf("resolve dispute %s: %w", dispute.ID, err)
	}

	disputeUc.recordDisputeResolved(string(winner))
	disputeUc.recordSettlement(order, winner)

	resolved, err := disputeUc.DisputeRepo.GetDisputeByID(ctx, dispute.ID)
	if err != nil {
		return nil, err
	}

	disputeUc.publishDisputeEvent(kafka.DisputeEvent{
		DisputeID: resolved.ID,
		OrderID:   resolved.OrderID,
		SellerID:  order.SellerID,
		OpenedBy:  string(resolved.OpenedByRole),
		Reason:    resolved.Reason,
		Status:    string(resolved.Status),
	})
	disputeUc.Notifier.Notify(notifier.Event{
		Kind:       notifier.KindDisputeResolved,
		OrderID:    order.ID,
		Status:     string(op.To),
		SellerID:   order.SellerID,
		BuyerID:    order.Buyer.BuyerID,
		BuyerPhone: order.Buyer.Phone,
		BuyerEmail: order.Buyer.Email,
		ItemName:   order.ItemName,
		Amount:     order.Amount.StringFixed(2),
		Currency:   order.Currency,
		OccurredAt: now,
	})

	slog.Info("dispute resolved",
		"dispute_id", resolved.ID,
		"order_id", order.ID,
		"winner", winner,
		"resolved_by", actor.ID)

	return resolved, nil
}

func (disputeUc *DefaultDisputeUsecase) releaseFunds(ctx context.Context, order *domain.Order) func() error {
	return func() error {
		return disputeUc.walletCall("release", func() error {
			return disputeUc.Wallet.Release(ctx, &domain.ReleaseFundsRequest{
				SellerID:    order.SellerID,
				OrderID:     order.ID,
				Payout:      order.SellerPayout,
				PlatformFee: order.PlatformFee,
				Currency:    order.Currency,
			})
		})
	}
}

func (disputeUc *DefaultDisputeUsecase) refundFunds(ctx context.Context, order *domain.Order) func() error {
	return func() error {
		return disputeUc.walletCall("refund", func() error {
			return disputeUc.Wallet.Refund(ctx, order.SellerID, order.ID, order.Amount, order.Currency)
		})
	}
}

func (disputeUc *DefaultDisputeUsecase) walletCall(operation string, call func() error) error {
	start := time.Now()
	err := call()
	if disputeUc.Metrics != nil {
		disputeUc.Metrics.RecordWalletCall(operation, time.Since(start).Seconds())
	}
	return err
}

func (disputeUc *DefaultDisputeUsecase) recordSettlement(order *domain.Order, winner domain.DisputeWinner) {
	if disputeUc.Metrics == nil {
		return
	}
	amount, _ := order.Amount.Float64()
	if winner == domain.WinnerSeller {
		fee, _ := order.PlatformFee.Float64()
		payout, _ := order.SellerPayout.Float64()
		disputeUc.Metrics.RecordOrderCompleted(order.StoreID, order.Currency, amount, fee, payout)
		return
	}
	disputeUc.Metrics.RecordOrderRefunded(order.StoreID, order.Currency, amount)
}
