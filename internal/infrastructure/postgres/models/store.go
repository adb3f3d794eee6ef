package models

import (
	"time"

	"gorm.io/gorm"
)

type StoreModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	SellerID    string `gorm:"index:idx_stores_seller;not null"`
	Name        string `gorm:"not null"`
	Slug        string `gorm:"uniqueIndex:idx_stores_slug;not null"`
	Description string
	Category    string `gorm:"index:idx_stores_category"`
	Currency    string
	LogoURL     string
	IsActive    bool `gorm:"default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (StoreModel) TableName() string {
	return "stores"
}
