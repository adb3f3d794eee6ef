package usecase

import (
	"context"
	"time"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/redis"
	productdto "github.com/dukalink/dukalink-escrow-service/internal/usecase/dto/product"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductUsecase interface {
	CreateProduct(ctx context.Context, actor domain.Actor, input *productdto.CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, actor domain.Actor, input *productdto.UpdateProductInput) (*domain.Product, error)
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)
	GetStoreProducts(ctx context.Context, actor domain.Actor, storeID string) ([]*domain.Product, error)
}

type DefaultProductUsecase struct {
	ProductRepo domain.ProductRepository
	StoreRepo   domain.StoreRepository
	Cache       *redis.Cache
}

func NewDefaultProductUsecase(
	productRepo domain.ProductRepository,
	storeRepo domain.StoreRepository,
	cache *redis.Cache,
) *DefaultProductUsecase {
	return &DefaultProductUsecase{
		ProductRepo: productRepo,
		StoreRepo:   storeRepo,
		Cache:       cache,
	}
}

// CreateProduct lists an item in the seller's store. Imported products carry
// the URL they were sourced from; the price is fixed in the store currency.
func (uc *DefaultProductUsecase) CreateProduct(ctx context.Context, actor domain.Actor, input *productdto.CreateProductInput) (*domain.Product, error) {
	if input.Name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "required"}
	}

	store, err := uc.ownedStore(ctx, actor, input.StoreID, "create product")
	if err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(input.Price)
	if err != nil || !price.IsPositive() {
		return nil, &domain.ValidationError{Field: "price", Reason: "must be a positive amount"}
	}
	if input.Currency != "" && input.Currency != store.Currency {
		return nil, &domain.ValidationError{Field: "currency", Reason: "must match the store currency"}
	}

	source := domain.ProductManual
	switch input.Source {
	case "", string(domain.ProductManual):
	case string(domain.ProductImported):
		source = domain.ProductImported
		if input.SourceURL == "" {
			return nil, &domain.ValidationError{Field: "source_url", Reason: "required for imported products"}
		}
	default:
		return nil, &domain.ValidationError{Field: "source", Reason: "must be manual or imported"}
	}

	now := time.Now()
	product := &domain.Product{
		ID:          uuid.New().String(),
		StoreID:     store.ID,
		Name:        input.Name,
		Description: input.Description,
		Price:       price,
		Currency:    store.Currency,
		ImageURLs:   input.ImageURLs,
		Source:      source,
		SourceURL:   input.SourceURL,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.ProductRepo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	uc.Cache.Invalidate(ctx, storefrontKey(store.Slug))
	return product, nil
}

func (uc *DefaultProductUsecase) UpdateProduct(ctx context.Context, actor domain.Actor, input *productdto.UpdateProductInput) (*domain.Product, error) {
	product, err := uc.ProductRepo.GetProductByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	store, err := uc.ownedStore(ctx, actor, product.StoreID, "update product")
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		product.Name = input.Name
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	if input.Price != "" {
		price, err := decimal.NewFromString(input.Price)
		if err != nil || !price.IsPositive() {
			return nil, &domain.ValidationError{Field: "price", Reason: "must be a positive amount"}
		}
		product.Price = price
	}
	if input.ImageURLs != nil {
		product.ImageURLs = input.ImageURLs
	}
	if input.Active != nil {
		product.Active = *input.Active
	}
	product.UpdatedAt = time.Now()

	if err := uc.ProductRepo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	uc.Cache.Invalidate(ctx, storefrontKey(store.Slug))
	return product, nil
}

func (uc *DefaultProductUsecase) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	return uc.ProductRepo.GetProductByID(ctx, productID)
}

// GetStoreProducts lists a store's catalog. The owner and admins see
// inactive items too; everyone else gets only what is purchasable.
func (uc *DefaultProductUsecase) GetStoreProducts(ctx context.Context, actor domain.Actor, storeID string) ([]*domain.Product, error) {
	store, err := uc.StoreRepo.GetStoreByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	activeOnly := actor.Role != domain.RoleAdmin && actor.ID != store.SellerID
	return uc.ProductRepo.GetProductsByStoreID(ctx, storeID, activeOnly)
}

func (uc *DefaultProductUsecase) ownedStore(ctx context.Context, actor domain.Actor, storeID, action string) (*domain.Store, error) {
	if storeID == "" {
		return nil, &domain.ValidationError{Field: "store_id", Reason: "required"}
	}
	store, err := uc.StoreRepo.GetStoreByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleAdmin && store.SellerID != actor.ID {
		return nil, &domain.UnauthorizedActionError{Action: action, Reason: "not the store owner"}
	}
	return store, nil
}
