package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentLinkModel struct {
	ID        string          `gorm:"primaryKey;type:uuid"`
	Code      string          `gorm:"uniqueIndex:idx_payment_links_code;not null"`
	StoreID   string          `gorm:"type:uuid;index:idx_payment_links_store"`
	SellerID  string          `gorm:"index:idx_payment_links_seller;not null"`
	ProductID string          `gorm:"type:uuid"`
	ItemName  string          `gorm:"not null"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency  string          `gorm:"not null"`
	IsActive  bool            `gorm:"default:true"`
	ExpiresAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PaymentLinkModel) TableName() string {
	return "payment_links"
}
