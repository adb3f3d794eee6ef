package usecase

import (
	"context"
	"log/slog"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
)

// AssignAdmin claims a dispute for the calling admin and moves it to
// under_review.
func (disputeUc *DefaultDisputeUsecase) AssignAdmin(ctx context.Context, actor domain.Actor, disputeID string) error {
	if actor.Role != domain.RoleAdmin {
		return &domain.UnauthorizedActionError{Action: "assign dispute", Reason: "admin only"}
	}

	dispute, err := disputeUc.DisputeRepo.GetDisputeByID(ctx, disputeID)
	if err != nil {
		return err
	}
	if dispute.Status.Resolved() {
		return domain.ErrDisputeResolved
	}

	if err := disputeUc.DisputeRepo.AssignAdmin(ctx, disputeID, actor.ID); err != nil {
		return err
	}
	slog.Info("dispute assigned", "dispute_id", disputeID, "admin_id", actor.ID)
	return nil
}

// UpdateDisputeStatus moves a dispute between review states. Verdict states
// are set only by ResolveDispute; closed is reachable only from a verdict.
func (disputeUc *DefaultDisputeUsecase) UpdateDisputeStatus(ctx context.Context, actor domain.Actor, disputeID, status string) error {
	if actor.Role != domain.RoleAdmin {
		return &domain.UnauthorizedActionError{Action: "update dispute status", Reason: "admin only"}
	}

	target := domain.DisputeStatus(status)
	if !validDisputeStatuses[target] {
		return &domain.ValidationError{Field: "status", Reason: "unknown dispute status"}
	}
	if target == domain.DisputeResolvedBuyer || target == domain.DisputeResolvedSeller {
		return &domain.ValidationError{Field: "status", Reason: "verdicts are set through resolution"}
	}

	dispute, err := disputeUc.DisputeRepo.GetDisputeByID(ctx, disputeID)
	if err != nil {
		return err
	}

	if target == domain.DisputeClosed {
		if dispute.Status != domain.DisputeResolvedBuyer && dispute.Status != domain.DisputeResolvedSeller {
			return &domain.ValidationError{Field: "status", Reason: "only resolved disputes can be closed"}
		}
	} else if dispute.Status.Resolved() {
		return domain.ErrDisputeResolved
	}

	if err := disputeUc.DisputeRepo.UpdateDisputeStatus(ctx, disputeID, target); err != nil {
		return err
	}
	slog.Info("dispute status updated", "dispute_id", disputeID, "status", target, "admin_id", actor.ID)
	return nil
}
