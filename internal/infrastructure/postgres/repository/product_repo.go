package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/postgres/mappers"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultProductRepository struct {
	db *gorm.DB
}

func NewDefaultProductRepository(db *gorm.DB) *DefaultProductRepository {
	return &DefaultProductRepository{db: db}
}

func (r *DefaultProductRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	productModel := mappers.ToGORMProduct(product)
	if err := r.db.WithContext(ctx).Create(productModel).Error; err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (r *DefaultProductRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	productModel := mappers.ToGORMProduct(product)
	res := r.db.WithContext(ctx).Model(&models.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":        productModel.Name,
			"description": productModel.Description,
			"price":       productModel.Price,
			"currency":    productModel.Currency,
			"image_urls":  productModel.ImageURLs,
			"updated_at":  productModel.UpdatedAt,
		})
	if res.Error != nil {
		return fmt.Errorf("update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *DefaultProductRepository) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	var productModel models.ProductModel
	if err := r.db.WithContext(ctx).First(&productModel, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return mappers.ToDomainProduct(&productModel), nil
}

func (r *DefaultProductRepository) GetProductsByStoreID(ctx context.Context, storeID string, activeOnly bool) ([]*domain.Product, error) {
	query := r.db.WithContext(ctx).Where("store_id = ?", storeID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var productModels []models.ProductModel
	if err := query.Order("created_at DESC").Find(&productModels).Error; err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}

	products := make([]*domain.Product, len(productModels))
	for i, productModel := range productModels {
		products[i] = mappers.ToDomainProduct(&productModel)
	}
	return products, nil
}

func (r *DefaultProductRepository) SetProductActive(ctx context.Context, productID string, active bool) error {
	res := r.db.WithContext(ctx).Model(&models.ProductModel{}).
		Where("id = ?", productID).
		Update("is_active", active)
	if res.Error != nil {
		return fmt.Errorf("set product active: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
