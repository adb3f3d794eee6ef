package usecase

import (
	"context"
	"time"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	disputedto "github.com/dukalink/dukalink-escrow-service/internal/usecase/dto/dispute"
)

// PostMessage appends to a dispute's conversation thread. Both parties and
// admins may post until the dispute is closed.
func (disputeUc *DefaultDisputeUsecase) PostMessage(ctx context.Context, actor domain.Actor, input *disputedto.PostMessageInput) (*domain.DisputeMessage, error) {
	if input.Body == "" {
		return nil, &domain.ValidationError{Field: "body", Reason: "required"}
	}

	dispute, err := disputeUc.DisputeRepo.GetDisputeByID(ctx, input.DisputeID)
	if err != nil {
		return nil, err
	}
	if err := disputeUc.canAccessDispute(ctx, actor, dispute, "post dispute message"); err != nil {
		return nil, err
	}
	if dispute.Status == domain.DisputeClosed {
		return nil, &domain.ValidationError{Field: "dispute", Reason: "closed disputes do not accept messages"}
	}

	message := &domain.DisputeMessage{
		DisputeID:  dispute.ID,
		SenderID:   actor.ID,
		SenderRole: actor.Role,
		Body:       input.Body,
		CreatedAt:  time.Now(),
	}
	if err := disputeUc.DisputeRepo.AppendMessage(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (disputeUc *DefaultDisputeUsecase) GetMessages(ctx context.Context, actor domain.Actor, disputeID string) ([]*domain.DisputeMessage, error) {
	dispute, err := disputeUc.DisputeRepo.GetDisputeByID(ctx, disputeID)
	if err != nil {
		return nil, err
	}
	if err := disputeUc.canAccessDispute(ctx, actor, dispute, "view dispute messages"); err != nil {
		return nil, err
	}
	return disputeUc.DisputeRepo.GetMessages(ctx, disputeID)
}

// canAccessDispute admits admins and the two parties of the disputed order.
func (disputeUc *DefaultDisputeUsecase) canAccessDispute(ctx context.Context, actor domain.Actor, dispute *domain.Dispute, action string) error {
	if actor.Role == domain.RoleAdmin {
		return nil
	}
	order, err := disputeUc.OrderRepo.GetOrderByID(ctx, dispute.OrderID)
	if err != nil {
		return err
	}
	return partyOf(actor, order, action)
}
