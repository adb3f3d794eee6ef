package models

import "time"

type PaymentMethodModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	SellerID      string `gorm:"index:idx_payment_methods_seller;not null"`
	Type          string `gorm:"not null"`
	Provider      string `gorm:"not null"`
	AccountNumber string `gorm:"not null"`
	AccountName   string
	IsDefault     bool `gorm:"default:false"`
	IsActive      bool `gorm:"default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (PaymentMethodModel) TableName() string {
	return "payment_methods"
}
