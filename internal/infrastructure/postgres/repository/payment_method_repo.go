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

type DefaultPaymentMethodRepository struct {
	db *gorm.DB
}

func NewDefaultPaymentMethodRepository(db *gorm.DB) *DefaultPaymentMethodRepository {
	return &DefaultPaymentMethodRepository{db: db}
}

func (r *DefaultPaymentMethodRepository) CreatePaymentMethod(ctx context.Context, method *domain.PaymentMethod) error {
	methodModel := mappers.ToGORMPaymentMethod(method)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if methodModel.IsDefault {
			if err := clearDefault(tx, method.SellerID); err != nil {
				return err
			}
		}
		if err := tx.Create(methodModel).Error; err != nil {
			return fmt.Errorf("create payment method: %w", err)
		}
		return nil
	})
}

func (r *DefaultPaymentMethodRepository) UpdatePaymentMethod(ctx context.Context, method *domain.PaymentMethod) error {
	methodModel := mappers.ToGORMPaymentMethod(method)
	res := r.db.WithContext(ctx).Model(&models.PaymentMethodModel{}).
		Where("id = ? AND seller_id = ?", method.ID, method.SellerID).
		Updates(map[string]interface{}{
			"type":           methodModel.Type,
			"provider":       methodModel.Provider,
			"account_number": methodModel.AccountNumber,
			"account_name":   methodModel.AccountName,
			"updated_at":     methodModel.UpdatedAt,
		})
	if res.Error != nil {
		return fmt.Errorf("update payment method: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrPaymentMethodNotFound
	}
	return nil
}

func (r *DefaultPaymentMethodRepository) GetPaymentMethodByID(ctx context.Context, methodID string) (*domain.PaymentMethod, error) {
	var methodModel models.PaymentMethodModel
	if err := r.db.WithContext(ctx).First(&methodModel, "id = ?", methodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentMethodNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPaymentMethod(&methodModel), nil
}

func (r *DefaultPaymentMethodRepository) GetPaymentMethodsBySellerID(ctx context.Context, sellerID string) ([]*domain.PaymentMethod, error) {
	var methodModels []models.PaymentMethodModel
	if err := r.db.WithContext(ctx).
		Where("seller_id = ? AND is_active = ?", sellerID, true).
		Order("is_default DESC, created_at DESC").
		Find(&methodModels).Error; err != nil {
		return nil, fmt.Errorf("find payment methods: %w", err)
	}

	methods := make([]*domain.PaymentMethod, len(methodModels))
	for i, methodModel := range methodModels {
		methods[i] = mappers.ToDomainPaymentMethod(&methodModel)
	}
	return methods, nil
}

func (r *DefaultPaymentMethodRepository) GetDefaultPaymentMethod(ctx context.Context, sellerID string) (*domain.PaymentMethod, error) {
	var methodModel models.PaymentMethodModel
	if err := r.db.WithContext(ctx).
		Where("seller_id = ? AND is_default = ? AND is_active = ?", sellerID, true, true).
		First(&methodModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentMethodNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPaymentMethod(&methodModel), nil
}

// SetDefaultPaymentMethod clears the seller's previous default and promotes
// the given method in one transaction, keeping at most one default per
// seller.
func (r *DefaultPaymentMethodRepository) SetDefaultPaymentMethod(ctx context.Context, sellerID, methodID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := clearDefault(tx, sellerID); err != nil {
			return err
		}

		res := tx.Model(&models.PaymentMethodModel{}).
			Where("id = ? AND seller_id = ? AND is_active = ?", methodID, sellerID, true).
			Update("is_default", true)
		if res.Error != nil {
			return fmt.Errorf("set default payment method: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrPaymentMethodNotFound
		}
		return nil
	})
}

func (r *DefaultPaymentMethodRepository) DeactivatePaymentMethod(ctx context.Context, methodID string) error {
	res := r.db.WithContext(ctx).Model(&models.PaymentMethodModel{}).
		Where("id = ?", methodID).
		Updates(map[string]interface{}{
			"is_active":  false,
			"is_default": false,
		})
	if res.Error != nil {
		return fmt.Errorf("deactivate payment method: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrPaymentMethodNotFound
	}
	return nil
}

func clearDefault(tx *gorm.DB, sellerID string) error {
	if err := tx.Model(&models.PaymentMethodModel{}).
		Where("seller_id = ? AND is_default = ?", sellerID, true).
		Update("is_default", false).Error; err != nil {
		return fmt.Errorf("clear default payment method: %w", err)
	}
	return nil
}
