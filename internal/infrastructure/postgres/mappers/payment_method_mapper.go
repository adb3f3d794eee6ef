package mappers

import (
	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/postgres/models"
)

func ToDomainPaymentMethod(model *models.PaymentMethodModel) *domain.PaymentMethod {
	return &domain.PaymentMethod{
		ID:            model.ID,
		SellerID:      model.SellerID,
		Type:          domain.PaymentMethodType(model.Type),
		Provider:      model.Provider,
		AccountNumber: model.AccountNumber,
		AccountName:   model.AccountName,
		Default:       model.IsDefault,
		Active:        model.IsActive,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func ToGORMPaymentMethod(method *domain.PaymentMethod) *models.PaymentMethodModel {
	return &models.PaymentMethodModel{
		ID:            method.ID,
		SellerID:      method.SellerID,
		Type:          string(method.Type),
		Provider:      method.Provider,
		AccountNumber: method.AccountNumber,
		AccountName:   method.AccountName,
		IsDefault:     method.Default,
		IsActive:      method.Active,
		CreatedAt:     method.CreatedAt,
		UpdatedAt:     method.UpdatedAt,
	}
}
