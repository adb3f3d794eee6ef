package usecase

import (
	"context"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	disputedto "github.com/dukalink/dukalink-escrow-service/internal/usecase/dto/dispute"
)

var validDisputeStatuses = map[domain.DisputeStatus]bool{
	domain.DisputeOpen:           true,
	domain.DisputeUnderReview:    true,
	domain.DisputeAwaitingSeller: true,
	domain.DisputeAwaitingBuyer:  true,
	domain.DisputeResolvedBuyer:  true,
	domain.DisputeResolvedSeller: true,
	domain.DisputeClosed:         true,
}

func (disputeUc *DefaultDisputeUsecase) GetDisputeByID(ctx context.Context, actor domain.Actor, disputeID string) (*domain.Dispute, error) {
	dispute, err := disputeUc.DisputeRepo.GetDisputeByID(ctx, disputeID)
	if err != nil {
		return nil, err
	}
	if err := disputeUc.canAccessDispute(ctx, actor, dispute, "view dispute"); err != nil {
		return nil, err
	}
	return dispute, nil
}

func (disputeUc *DefaultDisputeUsecase) GetDisputeByOrderID(ctx context.Context, actor domain.Actor, orderID string) (*domain.Dispute, error) {
	dispute, err := disputeUc.DisputeRepo.GetDisputeByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := disputeUc.canAccessDispute(ctx, actor, dispute, "view dispute"); err != nil {
		return nil, err
	}
	return dispute, nil
}

// GetDisputes lists disputes for the admin queue, newest first.
func (disputeUc *DefaultDisputeUsecase) GetDisputes(ctx context.Context, input *disputedto.GetDisputesInput) (*disputedto.DisputesOutput, error) {
	filter := &domain.DisputesFilter{AssignedAdminID: input.AssignedAdminID}
	if input.Status != "" {
		status := domain.DisputeStatus(input.Status)
		if !validDisputeStatuses[status] {
			return nil, &domain.ValidationError{Field: "status", Reason: "unknown dispute status"}
		}
		filter.Status = status
	}

	page, limit := input.Page, input.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}

	disputes, total, err := disputeUc.DisputeRepo.GetDisputes(ctx, filter, page, limit)
	if err != nil {
		return nil, err
	}

	totalPages := int32(total) / limit
	if int32(total)%limit != 0 {
		totalPages++
	}

	return &disputedto.DisputesOutput{
		Disputes: disputes,
		Pagination: disputedto.Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalItems:   int32(total),
			ItemsPerPage: limit,
		},
	}, nil
}
