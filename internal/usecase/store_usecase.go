package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/redis"
	storedto "github.com/dukalink/dukalink-escrow-service/internal/usecase/dto/store"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

type StoreUsecase interface {
	CreateStore(ctx context.Context, actor domain.Actor, input *storedto.CreateStoreInput) (*domain.Store, error)
	UpdateStore(ctx context.Context, actor domain.Actor, input *storedto.UpdateStoreInput) (*domain.Store, error)
	GetStorefront(ctx context.Context, slug string) (*storedto.StorefrontOutput, error)
	GetMyStores(ctx context.Context, actor domain.Actor) ([]*domain.Store, error)
	GetStores(ctx context.Context, page, limit int32) ([]*domain.Store, int64, error)
	SuspendStore(ctx context.Context, actor domain.Actor, storeID string) error
	ActivateStore(ctx context.Context, actor domain.Actor, storeID string) error
}

type DefaultStoreUsecase struct {
	StoreRepo   domain.StoreRepository
	ProductRepo domain.ProductRepository
	Cache       *redis.Cache
}

func NewDefaultStoreUsecase(
	storeRepo domain.StoreRepository,
	productRepo domain.ProductRepository,
	cache *redis.Cache,
) *DefaultStoreUsecase {
	return &DefaultStoreUsecase{
		StoreRepo:   storeRepo,
		ProductRepo: productRepo,
		Cache:       cache,
	}
}

// CreateStore opens a storefront for the calling seller. The public slug is
// derived from the name; on a collision a short random suffix is appended
// once before giving up.
func (uc *DefaultStoreUsecase) CreateStore(ctx context.Context, actor domain.Actor, input *storedto.CreateStoreInput) (*domain.Store, error) {
	if actor.Role != domain.RoleSeller {
		return nil, &domain.UnauthorizedActionError{Action: "create store", Reason: "seller only"}
	}
	if input.Name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "required"}
	}
	if input.Currency == "" {
		return nil, &domain.ValidationError{Field: "currency", Reason: "required"}
	}

	slug := slugify(input.Name)
	if slug == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "must contain letters or digits"}
	}

	now := time.Now()
	store := &domain.Store{
		ID:          uuid.New().String(),
		SellerID:    actor.ID,
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		Category:    input.Category,
		Currency:    strings.ToUpper(input.Currency),
		LogoURL:     input.LogoURL,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := uc.StoreRepo.CreateStore(ctx, store)
	if errors.Is(err, domain.ErrSlugTaken) {
		suffix, genErr := nanoid.CustomASCII("0123456789abcdefghijklmnopqrstuvwxyz", 4)
		if genErr != nil {
			return nil, genErr
		}
		store.Slug = slug + "-" + suffix()
		err = uc.StoreRepo.CreateStore(ctx, store)
	}
	if err != nil {
		return nil, err
	}

	slog.Info("store created", "store_id", store.ID, "seller_id", actor.ID, "slug", store.Slug)
	return store, nil
}

func (uc *DefaultStoreUsecase) UpdateStore(ctx context.Context, actor domain.Actor, input *storedto.UpdateStoreInput) (*domain.Store, error) {
	store, err := uc.StoreRepo.GetStoreByID(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleAdmin && store.SellerID != actor.ID {
		return nil, &domain.UnauthorizedActionError{Action: "update store", Reason: "not the store owner"}
	}

	if input.Name != "" {
		store.Name = input.Name
	}
	if input.Description != "" {
		store.Description = input.Description
	}
	if input.Category != "" {
		store.Category = input.Category
	}
	if input.LogoURL != "" {
		store.LogoURL = input.LogoURL
	}
	store.UpdatedAt = time.Now()

	if err := uc.StoreRepo.UpdateStore(ctx, store); err != nil {
		return nil, err
	}
	uc.Cache.Invalidate(ctx, storefrontKey(store.Slug))
	return store, nil
}

// GetStorefront serves the public store page: the store plus its active
// products, cached under the slug for a short TTL.
func (uc *DefaultStoreUsecase) GetStorefront(ctx context.Context, slug string) (*storedto.StorefrontOutput, error) {
	key := storefrontKey(slug)

	var cached storedto.StorefrontOutput
	if uc.Cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	store, err := uc.StoreRepo.GetStoreBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !store.Active {
		return nil, domain.ErrStoreNotFound
	}

	products, err := uc.ProductRepo.GetProductsByStoreID(ctx, store.ID, true)
	if err != nil {
		return nil, err
	}

	out := &storedto.StorefrontOutput{Store: store, Products: products}
	uc.Cache.Set(ctx, key, out)
	return out, nil
}

func (uc *DefaultStoreUsecase) GetMyStores(ctx context.Context, actor domain.Actor) ([]*domain.Store, error) {
	return uc.StoreRepo.GetStoresBySellerID(ctx, actor.ID)
}

func (uc *DefaultStoreUsecase) GetStores(ctx context.Context, page, limit int32) ([]*domain.Store, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}
	return uc.StoreRepo.GetStores(ctx, page, limit)
}

func (uc *DefaultStoreUsecase) SuspendStore(ctx context.Context, actor domain.Actor, storeID string) error {
	return uc.setStoreActive(ctx, actor, storeID, false)
}

func (uc *DefaultStoreUsecase) ActivateStore(ctx context.Context, actor domain.Actor, storeID string) error {
	return uc.setStoreActive(ctx, actor, storeID, true)
}

func (uc *DefaultStoreUsecase) setStoreActive(ctx context.Context, actor domain.Actor, storeID string, active bool) error {
	if actor.Role != domain.RoleAdmin {
		return &domain.UnauthorizedActionError{Action: "moderate store", Reason: "admin only"}
	}
	store, err := uc.StoreRepo.GetStoreByID(ctx, storeID)
	if err != nil {
		return err
	}
	if err := uc.StoreRepo.SetStoreActive(ctx, storeID, active); err != nil {
		return err
	}
	uc.Cache.Invalidate(ctx, storefrontKey(store.Slug))
	slog.Info("store moderation", "store_id", storeID, "active", active, "admin_id", actor.ID)
	return nil
}

func storefrontKey(slug string) string {
	return "storefront:" + slug
}

// slugify lowercases the name and keeps letters and digits, joining runs
// of anything else with a single hyphen.
func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
