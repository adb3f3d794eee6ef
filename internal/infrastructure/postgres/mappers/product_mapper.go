package mappers

import (
	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/postgres/models"
)

func ToDomainProduct(model *models.ProductModel) *domain.Product {
	return &domain.Product{
		ID:          model.ID,
		StoreID:     model.StoreID,
		Name:        model.Name,
		Description: model.Description,
		Price:       model.Price,
		Currency:    model.Currency,
		ImageURLs:   model.ImageURLs,
		Source:      domain.ProductSource(model.Source),
		SourceURL:   model.SourceURL,
		Active:      model.IsActive,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func ToGORMProduct(product *domain.Product) *models.ProductModel {
	return &models.ProductModel{
		ID:          product.ID,
		StoreID:     product.StoreID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Currency:    product.Currency,
		ImageURLs:   product.ImageURLs,
		Source:      string(product.Source),
		SourceURL:   product.SourceURL,
		IsActive:    product.Active,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}
