package usecase

import (
	"context"
	"time"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/redis"
	linkdto "github.com/dukalink/dukalink-escrow-service/internal/usecase/dto/link"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/shopspring/decimal"
)

type PaymentLinkUsecase interface {
	CreatePaymentLink(ctx context.Context, actor domain.Actor, input *linkdto.CreatePaymentLinkInput) (*domain.PaymentLink, error)
	GetLinkByCode(ctx context.Context, code string) (*domain.PaymentLink, error)
	GetMyLinks(ctx context.Context, actor domain.Actor) ([]*domain.PaymentLink, error)
	DisableLink(ctx context.Context, actor domain.Actor, linkID string) error
}

type DefaultPaymentLinkUsecase struct {
	LinkRepo    domain.PaymentLinkRepository
	StoreRepo   domain.StoreRepository
	ProductRepo domain.ProductRepository
	Cache       *redis.Cache
}

func NewDefaultPaymentLinkUsecase(
	linkRepo domain.PaymentLinkRepository,
	storeRepo domain.StoreRepository,
	productRepo domain.ProductRepository,
	cache *redis.Cache,
) *DefaultPaymentLinkUsecase {
	return &DefaultPaymentLinkUsecase{
		LinkRepo:    linkRepo,
		StoreRepo:   storeRepo,
		ProductRepo: productRepo,
		Cache:       cache,
	}
}

// CreatePaymentLink mints a shareable checkout code. The link either points
// at a listed product, inheriting its name and price, or carries an ad-hoc
// item name and amount. Prices are frozen at creation.
func (uc *DefaultPaymentLinkUsecase) CreatePaymentLink(ctx context.Context, actor domain.Actor, input *linkdto.CreatePaymentLinkInput) (*domain.PaymentLink, error) {
	if input.StoreID == "" {
		return nil, &domain.ValidationError{Field: "store_id", Reason: "required"}
	}
	store, err := uc.StoreRepo.GetStoreByID(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}
	if store.SellerID != actor.ID {
		return nil, &domain.UnauthorizedActionError{Action: "create payment link", Reason: "not the store owner"}
	}
	if input.ExpiresAt != nil && !input.ExpiresAt.After(time.Now()) {
		return nil, &domain.ValidationError{Field: "expires_at", Reason: "must be in the future"}
	}

	itemName := input.ItemName
	var amount decimal.Decimal
	if input.ProductID != "" {
		product, err := uc.ProductRepo.GetProductByID(ctx, input.ProductID)
		if err != nil {
			return nil, err
		}
		if product.StoreID != store.ID {
			return nil, &domain.ValidationError{Field: "product_id", Reason: "product belongs to another store"}
		}
		if !product.Active {
			return nil, &domain.ValidationError{Field: "product_id", Reason: "product is not active"}
		}
		itemName = product.Name
		amount = product.Price
	} else {
		if itemName == "" {
			return nil, &domain.ValidationError{Field: "item_name", Reason: "required without a product"}
		}
		amount, err = decimal.NewFromString(input.Amount)
		if err != nil || !amount.IsPositive() {
			return nil, &domain.ValidationError{Field: "amount", Reason: "must be a positive amount"}
		}
	}

	codeGenerator, err := nanoid.Standard(10)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	link := &domain.PaymentLink{
		ID:        uuid.New().String(),
		Code:      codeGenerator(),
		StoreID:   store.ID,
		SellerID:  store.SellerID,
		ProductID: input.ProductID,
		ItemName:  itemName,
		Amount:    amount,
		Currency:  store.Currency,
		Active:    true,
		ExpiresAt: input.ExpiresAt,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.LinkRepo.CreatePaymentLink(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// GetLinkByCode serves the public checkout page for a code. Only usable
// links are cached so a disabled link never lingers behind the TTL.
func (uc *DefaultPaymentLinkUsecase) GetLinkByCode(ctx context.Context, code string) (*domain.PaymentLink, error) {
	key := paymentLinkKey(code)

	var cached domain.PaymentLink
	if uc.Cache.Get(ctx, key, &cached) && cached.Usable(time.Now()) {
		return &cached, nil
	}

	link, err := uc.LinkRepo.GetPaymentLinkByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if !link.Usable(time.Now()) {
		return nil, domain.ErrLinkInactive
	}
	uc.Cache.Set(ctx, key, link)
	return link, nil
}

func (uc *DefaultPaymentLinkUsecase) GetMyLinks(ctx context.Context, actor domain.Actor) ([]*domain.PaymentLink, error) {
	return uc.LinkRepo.GetPaymentLinksBySellerID(ctx, actor.ID)
}

func (uc *DefaultPaymentLinkUsecase) DisableLink(ctx context.Context, actor domain.Actor, linkID string) error {
	link, err := uc.LinkRepo.GetPaymentLinkByID(ctx, linkID)
	if err != nil {
		return err
	}
	if actor.Role != domain.RoleAdmin && link.SellerID != actor.ID {
		return &domain.UnauthorizedActionError{Action: "disable payment link", Reason: "not the link owner"}
	}
	if err := uc.LinkRepo.SetPaymentLinkActive(ctx, linkID, false); err != nil {
		return err
	}
	uc.Cache.Invalidate(ctx, paymentLinkKey(link.Code))
	return nil
}

func paymentLinkKey(code string) string {
	return "paylink:" + code
}
