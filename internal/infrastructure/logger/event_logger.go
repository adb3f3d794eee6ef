package logger

import (
	"context"
	"fmt"
	"time"

	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

// OrderAuditEntry is one applied transition as recorded in the audit trail.
// Rows are written inside the transition transaction; this package only
// reads them back.
type OrderAuditEntry struct {
	Action     string
	FromStatus string
	ToStatus   string
	ActorID    string
	ActorRole  string
	Note       string
	At         time.Time
}

type OrderAuditLog interface {
	ListOrderEvents(ctx context.Context, orderID string) ([]OrderAuditEntry, error)
}

type PGOrderAuditLog struct {
	db *gorm.DB
}

func NewPGOrderAuditLog(db *gorm.DB) *PGOrderAuditLog {
	return &PGOrderAuditLog{db: db}
}

func (l *PGOrderAuditLog) ListOrderEvents(ctx context.Context, orderID string) ([]OrderAuditEntry, error) {
	var eventModels []models.OrderEventModel
	if err := l.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC, id ASC").
		Find(&eventModels).Error; err != nil {
		return nil, fmt.Errorf("list order events: %w", err)
	}

	entries := make([]OrderAuditEntry, len(eventModels))
	for i, eventModel := range eventModels {
		entries[i] = OrderAuditEntry{
			Action:     eventModel.Action,
			FromStatus: eventModel.FromStatus,
			ToStatus:   eventModel.ToStatus,
			ActorID:    eventModel.ActorID,
			ActorRole:  eventModel.ActorRole,
			Note:       eventModel.Note,
			At:         eventModel.CreatedAt,
		}
	}
	return entries, nil
}
