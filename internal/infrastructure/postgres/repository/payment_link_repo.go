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

type DefaultPaymentLinkRepository struct {
	db *gorm.DB
}

func NewDefaultPaymentLinkRepository(db *gorm.DB) *DefaultPaymentLinkRepository {
	return &DefaultPaymentLinkRepository{db: db}
}

func (r *DefaultPaymentLinkRepository) CreatePaymentLink(ctx context.Context, link *domain.PaymentLink) error {
	linkModel := mappers.ToGORMPaymentLink(link)
	if err := r.db.WithContext(ctx).Create(linkModel).Error; err != nil {
		return fmt.Errorf("create payment link: %w", err)
	}
	return nil
}

func (r *DefaultPaymentLinkRepository) GetPaymentLinkByCode(ctx context.Context, code string) (*domain.PaymentLink, error) {
	var linkModel models.PaymentLinkModel
	if err := r.db.WithContext(ctx).First(&linkModel, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentLinkNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPaymentLink(&linkModel), nil
}

func (r *DefaultPaymentLinkRepository) GetPaymentLinkByID(ctx context.Context, linkID string) (*domain.PaymentLink, error) {
	var linkModel models.PaymentLinkModel
	if err := r.db.WithContext(ctx).First(&linkModel, "id = ?", linkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentLinkNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPaymentLink(&linkModel), nil
}

func (r *DefaultPaymentLinkRepository) GetPaymentLinksBySellerID(ctx context.Context, sellerID string) ([]*domain.PaymentLink, error) {
	var linkModels []models.PaymentLinkModel
	if err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&linkModels).Error; err != nil {
		return nil, fmt.Errorf("find payment links: %w", err)
	}

	links := make([]*domain.PaymentLink, len(linkModels))
	for i, linkModel := range linkModels {
		links[i] = mappers.ToDomainPaymentLink(&linkModel)
	}
	return links, nil
}

func (r *DefaultPaymentLinkRepository) SetPaymentLinkActive(ctx context.Context, linkID string, active bool) error {
	res := r.db.WithContext(ctx).Model(&models.PaymentLinkModel{}).
		Where("id = ?", linkID).
		Update("is_active", active)
	if res.Error != nil {
		return fmt.Errorf("set payment link active: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrPaymentLinkNotFound
	}
	return nil
}
