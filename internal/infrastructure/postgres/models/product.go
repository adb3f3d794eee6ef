package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductModel struct {
	ID          string          `gorm:"primaryKey;type:uuid"`
	StoreID     string          `gorm:"type:uuid;index:idx_products_store;not null"`
	Name        string          `gorm:"not null"`
	Description string
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency    string          `gorm:"not null"`
	ImageURLs   pq.StringArray  `gorm:"type:text[]"`
	Source      string          `gorm:"not null;default:'manual'"`
	SourceURL   string
	IsActive    bool `gorm:"default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (ProductModel) TableName() string {
	return "products"
}
