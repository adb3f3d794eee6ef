package domain

import (
	"context"
	"time"
)

type Store struct {
	ID          string
	SellerID    string
	Name        string
	Slug        string
	Description string
	Category    string
	Currency    string
	LogoURL     string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type StoreRepository interface {
	CreateStore(ctx context.Context, store *Store) error
	UpdateStore(ctx context.Context, store *Store) error
	GetStoreByID(ctx context.Context, storeID string) (*Store, error)
	GetStoreBySlug(ctx context.Context, slug string) (*Store, error)
	GetStoresBySellerID(ctx context.Context, sellerID string) ([]*Store, error)
	GetStores(ctx context.Context, page, limit int32) ([]*Store, int64, error)
	SetStoreActive(ctx context.Context, storeID string, active bool) error
}
