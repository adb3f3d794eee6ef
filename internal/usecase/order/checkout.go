package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	orderdto "github.com/dukalink/dukalink-escrow-service/internal/usecase/dto/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Checkout places a storefront order. The buyer has already paid through
// the gateway, so the order enters at pending with the amount held in
// escrow right away. A failed hold cancels the freshly created order.
func (uc *DefaultOrderUsecase) Checkout(ctx context.Context, actor domain.Actor, input *orderdto.CheckoutInput) (*domain.Order, error) {
	start := time.Now()
	slog.Info("checkout started", "store_id", input.StoreID, "product_id", input.ProductID)

	if input.StoreID == "" {
		return nil, &domain.ValidationError{Field: "store_id", Reason: "required"}
	}
	if input.ProductID == "" {
		return nil, &domain.ValidationError{Field: "product_id", Reason: "required"}
	}
	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, &domain.ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}

	store, err := uc.StoreRepo.GetStoreByID(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}
	if !store.Active {
		return nil, &domain.ValidationError{Field: "store_id", Reason: "store is not accepting orders"}
	}

	product, err := uc.ProductRepo.GetProductByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product.StoreID != store.ID {
		return nil, &domain.ValidationError{Field: "product_id", Reason: "product does not belong to this store"}
	}
	if !product.Active {
		return nil, &domain.ValidationError{Field: "product_id", Reason: "product is not available"}
	}

	buyerName := input.Buyer.Name
	if buyerName == "" {
		buyerName = actor.Name
	}

	now := time.Now()
	amount := product.Price.Mul(decimal.NewFromInt32(quantity))
	fee, payout := domain.ComputeFees(amount, uc.Rules.FeeRate)
	expiresAt := now.Add(uc.Rules.PendingTTL)

	order := &domain.Order{
		ID:       uuid.New().String(),
		StoreID:  store.ID,
		SellerID: store.SellerID,
		Buyer: domain.Buyer{
			BuyerID: actor.ID,
			Name:    buyerName,
			Phone:   input.Buyer.Phone,
			Email:   input.Buyer.Email,
		},
		ProductID:    product.ID,
		PaymentRef:   input.PaymentRef,
		ItemName:     product.Name,
		Quantity:     quantity,
		Amount:       amount,
		Currency:     product.Currency,
		PlatformFee:  fee,
		SellerPayout: payout,
		Status:       domain.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
		PaidAt:       &now,
		ExpiresAt:    &expiresAt,
	}

	if err := uc.OrderRepo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	uc.recordOrderCreated(order, "storefront")

	if err := uc.walletCall("hold", func() error {
		return uc.Wallet.Hold(ctx, order.SellerID, order.ID, order.Amount, order.Currency)
	}); err != nil {
		uc.cancelAfterHoldFailure(ctx, order, err)
		return nil, fmt.Errorf("hold funds for order %s: %w", order.ID, err)
	}

	uc.publishOrderEvent(order, "created")
	uc.notifyOrderStatus(order)

	slog.Info("checkout finished", "order_id", order.ID, "elapsed", time.Since(start))
	return order, nil
}

// cancelAfterHoldFailure compensates a checkout whose wallet hold failed:
// the order row exists but no funds are escrowed, so it is cancelled under
// the system actor. The buyer's charge is reversed upstream.
func (uc *DefaultOrderUsecase) cancelAfterHoldFailure(ctx context.Context, order *domain.Order, holdErr error) {
	slog.Error("wallet hold failed after order creation, cancelling",
		"order_id", order.ID, "error", holdErr.Error())

	op := &domain.TransitionOp{
		Action: domain.ActionCancel,
		To:     domain.StatusCancelled,
		Actor:  domain.SystemActor(),
		Note:   "wallet hold failed",
	}
	cancelled, err := uc.applyTransition(ctx, order, op)
	if err != nil {
		slog.Error("failed to cancel order after hold failure", "order_id", order.ID, "error", err.Error())
		return
	}
	uc.recordOrderCancelled(cancelled, string(domain.ActionCancel))
}
