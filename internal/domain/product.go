package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type ProductSource string

const (
	ProductManual   ProductSource = "manual"
	ProductImported ProductSource = "imported"
)

type Product struct {
	ID          string
	StoreID     string
	Name        string
	Description string
	Price       decimal.Decimal
	Currency    string
	ImageURLs   []string
	Source      ProductSource
	SourceURL   string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *Product) error
	UpdateProduct(ctx context.Context, product *Product) error
	GetProductByID(ctx context.Context, productID string) (*Product, error)
	GetProductsByStoreID(ctx context.Context, storeID string, activeOnly bool) ([]*Product, error)
	SetProductActive(ctx context.Context, productID string, active bool) error
}
