package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/kafka"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/notifier"
)

// applyTransition runs one guarded status change end to end: legality check
// against the loaded snapshot, the repository critical section, then the
// non-critical fanout (metrics, kafka, notifications). The returned order is
// re-read after the commit so milestone timestamps are filled in.
func (uc *DefaultOrderUsecase) applyTransition(ctx context.Context, order *domain.Order, op *domain.TransitionOp) (*domain.Order, error) {
	if !domain.CanTransition(order.Status, op.Action) {
		uc.recordError(string(op.Action), "invalid_transition")
		return nil, &domain.InvalidTransitionError{OrderID: order.ID, Status: order.Status, Action: op.Action}
	}
	op.OrderID = order.ID
	op.From = order.Status
	if op.At.IsZero() {
		op.At = time.Now()
	}

	if err := uc.OrderRepo.ApplyTransition(ctx, op); err != nil {
		if errors.Is(err, domain.ErrOrderConflict) {
			uc.recordConflict(string(op.Action))
		} else {
			uc.recordError(string(op.Action), "transition_failed")
		}
		return nil, err
	}
	uc.recordTransition(string(op.Action), string(op.From), string(op.To))

	updated, err := uc.OrderRepo.GetOrderByID(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	uc.publishOrderEvent(updated, string(op.Action))
	uc.notifyOrderStatus(updated)
	return updated, nil
}

func (uc *DefaultOrderUsecase) publishOrderEvent(order *domain.Order, action string) {
	if uc.Publisher == nil {
		return
	}
	go func(event kafka.OrderEvent) {
		if err := uc.Publisher.PublishOrder(uc.OrderTopic, event); err != nil {
			slog.Error("failed to publish order event",
				"order_id", event.OrderID, "action", event.Action, "error", err.Error())
		}
	}(kafka.OrderEvent{
		OrderID:  order.ID,
		SellerID: order.SellerID,
		BuyerID:  order.Buyer.BuyerID,
		Action:   action,
		Status:   string(order.Status),
		Amount:   order.Amount.StringFixed(2),
		Currency: order.Currency,
	})
}

func (uc *DefaultOrderUsecase) notifyOrderStatus(order *domain.Order) {
	uc.Notifier.Notify(notifier.Event{
		Kind:       notifier.KindOrderStatus,
		OrderID:    order.ID,
		Status:     string(order.Status),
		SellerID:   order.SellerID,
		BuyerID:    order.Buyer.BuyerID,
		BuyerPhone: order.Buyer.Phone,
		BuyerEmail: order.Buyer.Email,
		ItemName:   order.ItemName,
		Amount:     order.Amount.StringFixed(2),
		Currency:   order.Currency,
		OccurredAt: time.Now(),
	})
}

// walletCall times one wallet service round trip. The call itself usually
// runs inside the transition transaction.
func (uc *DefaultOrderUsecase) walletCall(operation string, call func() error) error {
	start := time.Now()
	err := call()
	uc.recordWalletCall(operation, time.Since(start).Seconds())
	return err
}

func (uc *DefaultOrderUsecase) holdFunds(ctx context.Context, order *domain.Order) func() error {
	return func() error {
		return uc.walletCall("hold", func() error {
			return uc.Wallet.Hold(ctx, order.SellerID, order.ID, order.Amount, order.Currency)
		})
	}
}

func (uc *DefaultOrderUsecase) releaseFunds(ctx context.Context, order *domain.Order) func() error {
	return func() error {
		return uc.walletCall("release", func() error {
			return uc.Wallet.Release(ctx, &domain.ReleaseFundsRequest{
				SellerID:    order.SellerID,
				OrderID:     order.ID,
				Payout:      order.SellerPayout,
				PlatformFee: order.PlatformFee,
				Currency:    order.Currency,
			})
		})
	}
}

func (uc *DefaultOrderUsecase) refundFunds(ctx context.Context, order *domain.Order) func() error {
	return func() error {
		return uc.walletCall("refund", func() error {
			return uc.Wallet.Refund(ctx, order.SellerID, order.ID, order.Amount, order.Currency)
		})
	}
}

func sellerOwns(actor domain.Actor, order *domain.Order, action string) error {
	if actor.Role == domain.RoleSeller && actor.ID == order.SellerID {
		return nil
	}
	return &domain.UnauthorizedActionError{Action: action, Reason: "only the order's seller may do this"}
}

func buyerOwns(actor domain.Actor, order *domain.Order, action string) error {
	if actor.Role == domain.RoleBuyer && actor.ID != "" && actor.ID == order.Buyer.BuyerID {
		return nil
	}
	return &domain.UnauthorizedActionError{Action: action, Reason: "only the order's buyer may do this"}
}
