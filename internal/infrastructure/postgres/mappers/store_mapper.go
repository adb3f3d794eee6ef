package mappers

import (
	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/postgres/models"
)

func ToDomainStore(model *models.StoreModel) *domain.Store {
	return &domain.Store{
		ID:          model.ID,
		SellerID:    model.SellerID,
		Name:        model.Name,
		Slug:        model.Slug,
		Description: model.Description,
		Category:    model.Category,
		Currency:    model.Currency,
		LogoURL:     model.LogoURL,
		Active:      model.IsActive,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func ToGORMStore(store *domain.Store) *models.StoreModel {
	return &models.StoreModel{
		ID:          store.ID,
		SellerID:    store.SellerID,
		Name:        store.Name,
		Slug:        store.Slug,
		Description: store.Description,
		Category:    store.Category,
		Currency:    store.Currency,
		LogoURL:     store.LogoURL,
		IsActive:    store.Active,
		CreatedAt:   store.CreatedAt,
		UpdatedAt:   store.UpdatedAt,
	}
}
