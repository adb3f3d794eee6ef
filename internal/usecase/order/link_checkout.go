package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	orderdto "github.com/dukalink/dukalink-escrow-service/internal/usecase/dto/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutViaLink places an order through a shareable payment link. Guests
// are allowed, so no actor is required, but the buyer must leave a name and
// a way to reach them. The order waits in pending_payment until the payment
// provider confirms the charge; nothing is held yet.
func (uc *DefaultOrderUsecase) CheckoutViaLink(ctx context.Context, input *orderdto.LinkCheckoutInput) (*domain.Order, error) {
	if input.Code == "" {
		return nil, &domain.ValidationError{Field: "code", Reason: "required"}
	}
	if input.Buyer.Name == "" {
		return nil, &domain.ValidationError{Field: "buyer.name", Reason: "required"}
	}
	if input.Buyer.Phone == "" && input.Buyer.Email == "" {
		return nil, &domain.ValidationError{Field: "buyer", Reason: "phone or email required"}
	}
	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, &domain.ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}

	link, err := uc.LinkRepo.GetPaymentLinkByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if !link.Usable(now) {
		return nil, domain.ErrLinkInactive
	}

	amount := link.Amount.Mul(decimal.NewFromInt32(quantity))
	fee, payout := domain.ComputeFees(amount, uc.Rules.FeeRate)
	expiresAt := now.Add(uc.Rules.PaymentTTL)

	order := &domain.Order{
		ID:       uuid.New().String(),
		StoreID:  link.StoreID,
		SellerID: link.SellerID,
		Buyer: domain.Buyer{
			BuyerID: input.Buyer.BuyerID,
			Name:    input.Buyer.Name,
			Phone:   input.Buyer.Phone,
			Email:   input.Buyer.Email,
		},
		ProductID:     link.ProductID,
		PaymentLinkID: link.ID,
		ItemName:      link.ItemName,
		Quantity:      quantity,
		Amount:        amount,
		Currency:      link.Currency,
		PlatformFee:   fee,
		SellerPayout:  payout,
		Status:        domain.StatusPendingPayment,
		CreatedAt:     now,
		UpdatedAt:     now,
		ExpiresAt:     &expiresAt,
	}

	if err := uc.OrderRepo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	uc.recordOrderCreated(order, "payment_link")
	uc.publishOrderEvent(order, "created")

	slog.Info("link checkout created", "order_id", order.ID, "link_code", link.Code)
	return order, nil
}
