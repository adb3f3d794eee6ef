package models

import (
	"time"

	"github.com/lib/pq"
)

type DisputeModel struct {
	ID              string `gorm:"primaryKey"`
	OrderID         string `gorm:"type:uuid;not null;uniqueIndex:idx_disputes_order"`
	OpenedByID      string
	OpenedByRole    string `gorm:"not null"`
	Reason          string `gorm:"not null"`
	Description     string
	EvidenceURLs    pq.StringArray `gorm:"type:text[]"`
	Status          string         `gorm:"index:idx_disputes_status;not null"`
	AssignedAdminID string
	Resolution      string
	ResolvedBy      string
	Order           OrderModel `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ResolvedAt      *time.Time
}

func (DisputeModel) TableName() string {
	return "disputes"
}

type DisputeMessageModel struct {
	ID         uint   `gorm:"primaryKey"`
	DisputeID  string `gorm:"index;not null"`
	SenderID   string
	SenderRole string    `gorm:"not null"`
	Body       string    `gorm:"not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (DisputeMessageModel) TableName() string {
	return "dispute_messages"
}
