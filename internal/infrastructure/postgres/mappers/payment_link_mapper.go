package mappers

import (
	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/postgres/models"
)

func ToDomainPaymentLink(model *models.PaymentLinkModel) *domain.PaymentLink {
	return &domain.PaymentLink{
		ID:        model.ID,
		Code:      model.Code,
		StoreID:   model.StoreID,
		SellerID:  model.SellerID,
		ProductID: model.ProductID,
		ItemName:  model.ItemName,
		Amount:    model.Amount,
		Currency:  model.Currency,
		Active:    model.IsActive,
		ExpiresAt: model.ExpiresAt,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMPaymentLink(link *domain.PaymentLink) *models.PaymentLinkModel {
	return &models.PaymentLinkModel{
		ID:        link.ID,
		Code:      link.Code,
		StoreID:   link.StoreID,
		SellerID:  link.SellerID,
		ProductID: link.ProductID,
		ItemName:  link.ItemName,
		Amount:    link.Amount,
		Currency:  link.Currency,
		IsActive:  link.Active,
		ExpiresAt: link.ExpiresAt,
		CreatedAt: link.CreatedAt,
		UpdatedAt: link.UpdatedAt,
	}
}
