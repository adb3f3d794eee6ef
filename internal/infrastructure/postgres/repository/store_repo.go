package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/postgres/mappers"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultStoreRepository struct {
	db *gorm.DB
}

func NewDefaultStoreRepository(db *gorm.DB) *DefaultStoreRepository {
	return &DefaultStoreRepository{db: db}
}

func (r *DefaultStoreRepository) CreateStore(ctx context.Context, store *domain.Store) error {
	storeModel := mappers.ToGORMStore(store)
	if err := r.db.WithContext(ctx).Create(storeModel).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("create store: %w", err)
	}
	return nil
}

func (r *DefaultStoreRepository) UpdateStore(ctx context.Context, store *domain.Store) error {
	storeModel := mappers.ToGORMStore(store)
	res := r.db.WithContext(ctx).Model(&models.StoreModel{}).
		Where("id = ?", store.ID).
		Updates(map[string]interface{}{
			"name":        storeModel.Name,
			"description": storeModel.Description,
			"category":    storeModel.Category,
			"currency":    storeModel.Currency,
			"logo_url":    storeModel.LogoURL,
			"updated_at":  storeModel.UpdatedAt,
		})
	if res.Error != nil {
		return fmt.Errorf("update store: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrStoreNotFound
	}
	return nil
}

func (r *DefaultStoreRepository) GetStoreByID(ctx context.Context, storeID string) (*domain.Store, error) {
	var storeModel models.StoreModel
	if err := r.db.WithContext(ctx).First(&storeModel, "id = ?", storeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, err
	}
	return mappers.ToDomainStore(&storeModel), nil
}

func (r *DefaultStoreRepository) GetStoreBySlug(ctx context.Context, slug string) (*domain.Store, error) {
	var storeModel models.StoreModel
	if err := r.db.WithContext(ctx).First(&storeModel, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, err
	}
	return mappers.ToDomainStore(&storeModel), nil
}

func (r *DefaultStoreRepository) GetStoresBySellerID(ctx context.Context, sellerID string) ([]*domain.Store, error) {
	var storeModels []models.StoreModel
	if err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&storeModels).Error; err != nil {
		return nil, fmt.Errorf("find stores: %w", err)
	}
	return toDomainStores(storeModels), nil
}

func (r *DefaultStoreRepository) GetStores(ctx context.Context, page, limit int32) ([]*domain.Store, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.StoreModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count stores: %w", err)
	}

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	var storeModels []models.StoreModel
	if err := query.
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&storeModels).Error; err != nil {
		return nil, 0, fmt.Errorf("find stores: %w", err)
	}
	return toDomainStores(storeModels), total, nil
}

func (r *DefaultStoreRepository) SetStoreActive(ctx context.Context, storeID string, active bool) error {
	res := r.db.WithContext(ctx).Model(&models.StoreModel{}).
		Where("id = ?", storeID).
		Update("is_active", active)
	if res.Error != nil {
		return fmt.Errorf("set store active: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrStoreNotFound
	}
	return nil
}

func toDomainStores(storeModels []models.StoreModel) []*domain.Store {
	stores := make([]*domain.Store, len(storeModels))
	for i, storeModel := range storeModels {
		stores[i] = mappers.ToDomainStore(&storeModel)
	}
	return stores
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}
