package mappers

import (
	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/postgres/models"
)

func ToDomainDispute(model *models.DisputeModel) *domain.Dispute {
	return &domain.Dispute{
		ID:              model.ID,
		OrderID:         model.OrderID,
		OpenedByID:      model.OpenedByID,
		OpenedByRole:    domain.Role(model.OpenedByRole),
		Reason:          model.Reason,
		Description:     model.Description,
		EvidenceURLs:    model.EvidenceURLs,
		Status:          domain.DisputeStatus(model.Status),
		AssignedAdminID: model.AssignedAdminID,
		Resolution:      model.Resolution,
		ResolvedBy:      model.ResolvedBy,
		OpenedAt:        model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
		ResolvedAt:      model.ResolvedAt,
	}
}

func ToGORMDispute(dispute *domain.Dispute) *models.DisputeModel {
	return &models.DisputeModel{
		ID:              dispute.ID,
		OrderID:         dispute.OrderID,
		OpenedByID:      dispute.OpenedByID,
		OpenedByRole:    string(dispute.OpenedByRole),
		Reason:          dispute.Reason,
		Description:     dispute.Description,
		EvidenceURLs:    dispute.EvidenceURLs,
		Status:          string(dispute.Status),
		AssignedAdminID: dispute.AssignedAdminID,
		Resolution:      dispute.Resolution,
		ResolvedBy:      dispute.ResolvedBy,
		CreatedAt:       dispute.OpenedAt,
		UpdatedAt:       dispute.UpdatedAt,
		ResolvedAt:      dispute.ResolvedAt,
	}
}

func ToDomainDisputeMessage(model *models.DisputeMessageModel) *domain.DisputeMessage {
	return &domain.DisputeMessage{
		ID:         model.ID,
		DisputeID:  model.DisputeID,
		SenderID:   model.SenderID,
		SenderRole: domain.Role(model.SenderRole),
		Body:       model.Body,
		CreatedAt:  model.CreatedAt,
	}
}

func ToGORMDisputeMessage(message *domain.DisputeMessage) *models.DisputeMessageModel {
	return &models.DisputeMessageModel{
		ID:         message.ID,
		DisputeID:  message.DisputeID,
		SenderID:   message.SenderID,
		SenderRole: string(message.SenderRole),
		Body:       message.Body,
		CreatedAt:  message.CreatedAt,
	}
}
