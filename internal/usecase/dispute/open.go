package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/kafka"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/notifier"
	disputedto "github.com/dukalink/dukalink-escrow-service/internal/usecase/dto/dispute"
	"github.com/jaevor/go-nanoid"
)

// OpenDispute escalates an order. Either party may open one while the order
// is live between payment and completion; the order flips to disputed in
// the same transaction that creates the dispute row, freezing any fund
// release until an admin rules.
func (disputeUc *DefaultDisputeUsecase) OpenDispute(ctx context.Context, actor domain.Actor, input *disputedto.OpenDisputeInput) (*domain.Dispute, error) {
	if input.Reason == "" {
		return nil, &domain.ValidationError{Field: "reason", Reason: "required"}
	}

	order, err := disputeUc.OrderRepo.GetOrderByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if err := partyOf(actor, order, "open dispute"); err != nil {
		return nil, err
	}
	if !domain.CanTransition(order.Status, domain.ActionOpenDispute) {
		return nil, &domain.InvalidTransitionError{OrderID: order.ID, Status: order.Status, Action: domain.ActionOpenDispute}
	}

	if _, err := disputeUc.DisputeRepo.GetDisputeByOrderID(ctx, order.ID); err == nil {
		return nil, domain.ErrDisputeAlreadyOpen
	} else if !errors.Is(err, domain.ErrDisputeNotFound) {
		return nil, err
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dispute := &domain.Dispute{
		ID:           idGenerator(),
		OrderID:      order.ID,
		OpenedByID:   actor.ID,
		OpenedByRole: actor.Role,
		Reason:       input.Reason,
		Description:  input.Description,
		EvidenceURLs: input.EvidenceURLs,
		Status:       domain.DisputeOpen,
		OpenedAt:     now,
		UpdatedAt:    now,
	}

	if err := disputeUc.DisputeRepo.OpenDispute(ctx, dispute, order.Status); err != nil {
		return nil, err
	}
	disputeUc.recordDisputeOpened(string(actor.Role))

	disputeUc.publishDisputeEvent(kafka.DisputeEvent{
		DisputeID: dispute.ID,
		OrderID:   dispute.OrderID,
		SellerID:  order.SellerID,
		OpenedBy:  string(dispute.OpenedByRole),
		Reason:    dispute.Reason,
		Status:    string(dispute.Status),
	})
	disputeUc.Notifier.Notify(notifier.Event{
		Kind:       notifier.KindDisputeOpened,
		OrderID:    order.ID,
		Status:     string(domain.StatusDisputed),
		SellerID:   order.SellerID,
		BuyerID:    order.Buyer.BuyerID,
		BuyerPhone: order.Buyer.Phone,
		BuyerEmail: order.Buyer.Email,
		ItemName:   order.ItemName,
		Amount:     order.Amount.StringFixed(2),
		Currency:   order.Currency,
		OccurredAt: now,
	})

	slog.Info("dispute opened", "dispute_id", dispute.ID, "order_id", order.ID, "opened_by", actor.Role)
	return dispute, nil
}

func (disputeUc *DefaultDisputeUsecase) publishDisputeEvent(event kafka.DisputeEvent) {
	if disputeUc.Publisher == nil {
		return
	}
	go func() {
		if err := disputeUc.Publisher.PublishDispute(disputeUc.DisputeTopic, event); err != nil {
			slog.Error("failed to publish dispute event",
				"dispute_id", event.DisputeID, "error", err.Error())
		}
	}()
}

func partyOf(actor domain.Actor, order *domain.Order, action string) error {
	switch actor.Role {
	case domain.RoleBuyer:
		if actor.ID != "" && actor.ID == order.Buyer.BuyerID {
			return nil
		}
	case domain.RoleSeller:
		if actor.ID == order.SellerID {
			return nil
		}
	}
	return &domain.UnauthorizedActionError{Action: action, Reason: "not a party to this order"}
}

func (disputeUc *DefaultDisputeUsecase) recordDisputeOpened(role string) {
	if disputeUc.Metrics == nil {
		return
	}
	disputeUc.Metrics.RecordDisputeOpened(role)
}

func (disputeUc *DefaultDisputeUsecase) recordDisputeResolved(winner string) {
	if disputeUc.Metrics == nil {
		return
	}
	disputeUc.Metrics.RecordDisputeResolved(winner)
}
