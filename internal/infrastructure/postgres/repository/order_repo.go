package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/postgres/mappers"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/postgres/models"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	orderModel := mappers.ToGORMOrder(order)
	if err := r.DB.WithContext(ctx).Create(orderModel).Error; err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

func (r *DefaultOrderRepository) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	var orderModel models.OrderModel
	if err := r.DB.WithContext(ctx).First(&orderModel, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrder(&orderModel), nil
}

// ApplyTransition performs the guarded status change. The UPDATE matches
// only while the row still holds op.From, so a concurrent writer makes
// RowsAffected come back 0 and the whole transaction, wallet call included,
// is rolled back.
func (r *DefaultOrderRepository) ApplyTransition(ctx context.Context, op *domain.TransitionOp) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.OrderModel{}).
			Where("id = ? AND status = ?", op.OrderID, op.From).
			Updates(transitionUpdates(op))
		if res.Error != nil {
			return fmt.Errorf("update order %s: %w", op.OrderID, res.Error)
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.OrderModel{}).Where("id = ?", op.OrderID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return domain.ErrOrderNotFound
			}
			return domain.ErrOrderConflict
		}

		event := models.OrderEventModel{
			OrderID:    op.OrderID,
			Action:     string(op.Action),
			FromStatus: string(op.From),
			ToStatus:   string(op.To),
			ActorID:    op.Actor.ID,
			ActorRole:  string(op.Actor.Role),
			Note:       op.Note,
			CreatedAt:  op.At,
		}
		if err := tx.Create(&event).Error; err != nil {
			return fmt.Errorf("record order event: %w", err)
		}

		if op.Wallet != nil {
			if err := op.Wallet(); err != nil {
				return fmt.Errorf("wallet operation: %w", err)
			}
		}
		return nil
	})
}

// transitionUpdates maps an action onto the columns it may touch. Milestone
// timestamps are only ever set together with the status that introduces
// them, so a column filled once is never overwritten later.
func transitionUpdates(op *domain.TransitionOp) map[string]interface{} {
	updates := map[string]interface{}{
		"status":     op.To,
		"updated_at": op.At,
	}

	switch op.Action {
	case domain.ActionMarkPaid:
		updates["paid_at"] = op.At
		updates["expires_at"] = op.ExpiresAt
		if op.PaymentRef != "" {
			updates["payment_ref"] = op.PaymentRef
		}
	case domain.ActionAccept:
		updates["accepted_at"] = op.At
		updates["expires_at"] = nil
	case domain.ActionReject:
		updates["cancelled_at"] = op.At
		updates["rejection_reason"] = op.RejectionReason
	case domain.ActionCancel:
		updates["cancelled_at"] = op.At
	case domain.ActionShip:
		updates["shipped_at"] = op.At
		updates["release_at"] = op.ReleaseAt
		if op.ShippingInfo != nil {
			updates["courier_name"] = op.ShippingInfo.CourierName
			updates["tracking_number"] = op.ShippingInfo.TrackingNumber
			updates["estimated_delivery_date"] = op.ShippingInfo.EstimatedDeliveryDate
			updates["shipping_notes"] = op.ShippingInfo.Notes
			if len(op.ShippingInfo.ProofImages) > 0 {
				updates["proof_images"] = pq.StringArray(op.ShippingInfo.ProofImages)
			}
		}
	case domain.ActionMarkDelivered:
		updates["delivered_at"] = op.At
	case domain.ActionConfirmDelivery, domain.ActionAutoRelease:
		updates["delivered_at"] = gorm.Expr("COALESCE(delivered_at, ?)", op.At)
		updates["completed_at"] = op.At
	case domain.ActionOpenDispute:
		updates["disputed_at"] = op.At
	case domain.ActionResolveDispute:
		if op.To == domain.StatusRefunded {
			updates["refunded_at"] = op.At
		} else {
			updates["delivered_at"] = gorm.Expr("COALESCE(delivered_at, ?)", op.At)
			updates["completed_at"] = op.At
		}
	}

	return updates
}

func (r *DefaultOrderRepository) AppendShippingProof(ctx context.Context, orderID, imageURL string) error {
	res := r.DB.WithContext(ctx).Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Update("proof_images", gorm.Expr("array_append(COALESCE(proof_images, '{}'), ?)", imageURL))
	if res.Error != nil {
		return fmt.Errorf("append shipping proof: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *DefaultOrderRepository) GetOrdersBySellerID(ctx context.Context, sellerID string) ([]*domain.Order, error) {
	return r.findOrders(ctx, "seller_id = ?", sellerID)
}

func (r *DefaultOrderRepository) GetOrdersByBuyerID(ctx context.Context, buyerID string) ([]*domain.Order, error) {
	return r.findOrders(ctx, "buyer_id = ?", buyerID)
}

func (r *DefaultOrderRepository) GetOrdersByStoreID(ctx context.Context, storeID string) ([]*domain.Order, error) {
	return r.findOrders(ctx, "store_id = ?", storeID)
}

func (r *DefaultOrderRepository) findOrders(ctx context.Context, query string, arg interface{}) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	if err := r.DB.WithContext(ctx).
		Where(query, arg).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}
	return orders, nil
}

func (r *DefaultOrderRepository) GetAllOrders(
	ctx context.Context,
	filter *domain.AdminOrdersFilter,
	page, limit int32,
) ([]*domain.Order, int64, error) {
	query := r.DB.WithContext(ctx).Model(&models.OrderModel{})

	if filter != nil {
		if len(filter.Statuses) > 0 {
			query = query.Where("status IN (?)", filter.Statuses)
		}
		if filter.StoreID != nil {
			query = query.Where("store_id = ?", *filter.StoreID)
		}
		if filter.SellerID != nil {
			query = query.Where("seller_id = ?", *filter.SellerID)
		}
		if filter.MinAmount != nil {
			query = query.Where("amount >= ?", *filter.MinAmount)
		}
		if filter.MaxAmount != nil {
			query = query.Where("amount <= ?", *filter.MaxAmount)
		}
		if filter.DateFrom != nil {
			query = query.Where("created_at >= ?", *filter.DateFrom)
		}
		if filter.DateTo != nil {
			query = query.Where("created_at <= ?", *filter.DateTo)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	var orderModels []models.OrderModel
	if err := query.
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&orderModels).Error; err != nil {
		return nil, 0, fmt.Errorf("find orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}
	return orders, total, nil
}

func (r *DefaultOrderRepository) FindExpiredOrders(ctx context.Context, now time.Time) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	if err := r.DB.WithContext(ctx).
		Where("status IN (?)", []domain.OrderStatus{domain.StatusPendingPayment, domain.StatusPending}).
		Where("expires_at IS NOT NULL AND expires_at < ?", now).
		Find(&orderModels).Error; err != nil {
		return nil, fmt.Errorf("find expired orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}
	return orders, nil
}

func (r *DefaultOrderRepository) FindReleaseDueOrders(ctx context.Context, now time.Time) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	if err := r.DB.WithContext(ctx).
		Where("status = ?", domain.StatusShipped).
		Where("release_at IS NOT NULL AND release_at <= ?", now).
		Find(&orderModels).Error; err != nil {
		return nil, fmt.Errorf("find release-due orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}
	return orders, nil
}
