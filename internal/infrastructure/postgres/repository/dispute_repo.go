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

type DefaultDisputeRepository struct {
	db *gorm.DB
}

func NewDefaultDisputeRepository(db *gorm.DB) *DefaultDisputeRepository {
	return &DefaultDisputeRepository{db: db}
}

// OpenDispute creates the dispute and flips its order to disputed in one
// transaction. The order update is guarded on orderFrom, so racing writers
// cannot both dispute the same snapshot.
func (r *DefaultDisputeRepository) OpenDispute(ctx context.Context, dispute *domain.Dispute, orderFrom domain.OrderStatus) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		disputeModel := mappers.ToGORMDispute(dispute)
		if err := tx.Create(disputeModel).Error; err != nil {
			return fmt.Errorf("create dispute: %w", err)
		}

		res := tx.Model(&models.OrderModel{}).
			Where("id = ? AND status = ?", dispute.OrderID, orderFrom).
			Updates(map[string]interface{}{
				"status":      domain.StatusDisputed,
				"disputed_at": dispute.OpenedAt,
				"updated_at":  dispute.OpenedAt,
			})
		if res.Error != nil {
			return fmt.Errorf("mark order disputed: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrOrderConflict
		}

		event := models.OrderEventModel{
			OrderID:    dispute.OrderID,
			Action:     string(domain.ActionOpenDispute),
			FromStatus: string(orderFrom),
			ToStatus:   string(domain.StatusDisputed),
			ActorID:    dispute.OpenedByID,
			ActorRole:  string(dispute.OpenedByRole),
			Note:       dispute.Reason,
			CreatedAt:  dispute.OpenedAt,
		}
		if err := tx.Create(&event).Error; err != nil {
			return fmt.Errorf("record order event: %w", err)
		}
		return nil
	})
}

func (r *DefaultDisputeRepository) GetDisputeByID(ctx context.Context, disputeID string) (*domain.Dispute, error) {
	var disputeModel models.DisputeModel
	if err := r.db.WithContext(ctx).Where("id = ?", disputeID).First(&disputeModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDisputeNotFound
		}
		return nil, err
	}
	return mappers.ToDomainDispute(&disputeModel), nil
}

func (r *DefaultDisputeRepository) GetDisputeByOrderID(ctx context.Context, orderID string) (*domain.Dispute, error) {
	var disputeModel models.DisputeModel
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&disputeModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDisputeNotFound
		}
		return nil, err
	}
	return mappers.ToDomainDispute(&disputeModel), nil
}

func (r *DefaultDisputeRepository) UpdateDisputeStatus(ctx context.Context, disputeID string, status domain.DisputeStatus) error {
	res := r.db.WithContext(ctx).Model(&models.DisputeModel{}).
		Where("id = ?", disputeID).
		Update("status", string(status))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrDisputeNotFound
	}
	return nil
}

func (r *DefaultDisputeRepository) AssignAdmin(ctx context.Context, disputeID, adminID string) error {
	res := r.db.WithContext(ctx).Model(&models.DisputeModel{}).
		Where("id = ?", disputeID).
		Updates(map[string]interface{}{
			"assigned_admin_id": adminID,
			"status":            string(domain.DisputeUnderReview),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrDisputeNotFound
	}
	return nil
}

// ResolveDispute settles the dispute and its order together. The order part
// reuses the guarded-transition rules, so the wallet call and both row
// updates commit or roll back as one.
func (r *DefaultDisputeRepository) ResolveDispute(ctx context.Context, op *domain.ResolutionOp) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.DisputeModel{}).
			Where("id = ? AND status NOT IN (?)", op.DisputeID, []string{
				string(domain.DisputeResolvedBuyer),
				string(domain.DisputeResolvedSeller),
				string(domain.DisputeClosed),
			}).
			Updates(map[string]interface{}{
				"status":      string(op.DisputeStatus),
				"resolution":  op.Resolution,
				"resolved_by": op.ResolvedBy,
				"resolved_at": op.At,
				"updated_at":  op.At,
			})
		if res.Error != nil {
			return fmt.Errorf("update dispute %s: %w", op.DisputeID, res.Error)
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.DisputeModel{}).Where("id = ?", op.DisputeID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return domain.ErrDisputeNotFound
			}
			return domain.ErrOrderConflict
		}

		if op.OrderOp == nil {
			return nil
		}

		orderRes := tx.Model(&models.OrderModel{}).
			Where("id = ? AND status = ?", op.OrderOp.OrderID, op.OrderOp.From).
			Updates(transitionUpdates(op.OrderOp))
		if orderRes.Error != nil {
			return fmt.Errorf("update order %s: %w", op.OrderOp.OrderID, orderRes.Error)
		}
		if orderRes.RowsAffected == 0 {
			return domain.ErrOrderConflict
		}

		event := models.OrderEventModel{
			OrderID:    op.OrderOp.OrderID,
			Action:     string(op.OrderOp.Action),
			FromStatus: string(op.OrderOp.From),
			ToStatus:   string(op.OrderOp.To),
			ActorID:    op.OrderOp.Actor.ID,
			ActorRole:  string(op.OrderOp.Actor.Role),
			Note:       op.OrderOp.Note,
			CreatedAt:  op.At,
		}
		if err := tx.Create(&event).Error; err != nil {
			return fmt.Errorf("record order event: %w", err)
		}

		if op.OrderOp.Wallet != nil {
			if err := op.OrderOp.Wallet(); err != nil {
				return fmt.Errorf("wallet operation: %w", err)
			}
		}
		return nil
	})
}

func (r *DefaultDisputeRepository) AppendMessage(ctx context.Context, message *domain.DisputeMessage) error {
	messageModel := mappers.ToGORMDisputeMessage(message)
	if err := r.db.WithContext(ctx).Create(messageModel).Error; err != nil {
		return fmt.Errorf("append dispute message: %w", err)
	}
	message.ID = messageModel.ID
	message.CreatedAt = messageModel.CreatedAt
	return nil
}

func (r *DefaultDisputeRepository) GetMessages(ctx context.Context, disputeID string) ([]*domain.DisputeMessage, error) {
	var messageModels []models.DisputeMessageModel
	if err := r.db.WithContext(ctx).
		Where("dispute_id = ?", disputeID).
		Order("created_at ASC").
		Find(&messageModels).Error; err != nil {
		return nil, fmt.Errorf("find dispute messages: %w", err)
	}

	messages := make([]*domain.DisputeMessage, len(messageModels))
	for i, messageModel := range messageModels {
		messages[i] = mappers.ToDomainDisputeMessage(&messageModel)
	}
	return messages, nil
}

func (r *DefaultDisputeRepository) GetDisputes(
	ctx context.Context,
	filter *domain.DisputesFilter,
	page, limit int32,
) ([]*domain.Dispute, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.DisputeModel{})

	if filter != nil {
		if filter.Status != "" {
			query = query.Where("status = ?", string(filter.Status))
		}
		if filter.AssignedAdminID != nil {
			query = query.Where("assigned_admin_id = ?", *filter.AssignedAdminID)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count disputes: %w", err)
	}

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	var disputeModels []models.DisputeModel
	if err := query.
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&disputeModels).Error; err != nil {
		return nil, 0, fmt.Errorf("find disputes: %w", err)
	}

	disputes := make([]*domain.Dispute, len(disputeModels))
	for i, disputeModel := range disputeModels {
		disputes[i] = mappers.ToDomainDispute(&disputeModel)
	}
	return disputes, total, nil
}
