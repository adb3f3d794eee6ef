package usecase

import (
	"context"
	"time"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	orderdto "github.com/dukalink/dukalink-escrow-service/internal/usecase/dto/order"
)

// ShipOrder records the handover to a courier. Shipping starts the release
// window: releaseAt = shippedAt + the configured window, after which the
// sweep completes the order on its own.
func (uc *DefaultOrderUsecase) ShipOrder(ctx context.Context, actor domain.Actor, input *orderdto.ShipOrderInput) (*domain.Order, error) {
	if input.CourierName == "" {
		return nil, &domain.ValidationError{Field: "courier_name", Reason: "required"}
	}
	if input.TrackingNumber == "" {
		return nil, &domain.ValidationError{Field: "tracking_number", Reason: "required"}
	}

	order, err := uc.OrderRepo.GetOrderByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if err := sellerOwns(actor, order, "ship order"); err != nil {
		return nil, err
	}

	op := &domain.TransitionOp{
		Action: domain.ActionShip,
		To:     domain.StatusShipped,
		Actor:  actor,
		ShippingInfo: &domain.ShippingInfo{
			CourierName:           input.CourierName,
			TrackingNumber:        input.TrackingNumber,
			EstimatedDeliveryDate: input.EstimatedDeliveryDate,
			Notes:                 input.Notes,
			ProofImages:           input.ProofImages,
		},
	}
	// releaseAt counts from the same instant stamped on shippedAt.
	op.At = time.Now()
	releaseAt := op.At.Add(uc.Rules.ReleaseWindow)
	op.ReleaseAt = &releaseAt
	return uc.applyTransition(ctx, order, op)
}

// AppendShippingProof adds one proof image to an order already on its way.
// This is not a status transition; it only grows the proof list.
func (uc *DefaultOrderUsecase) AppendShippingProof(ctx context.Context, actor domain.Actor, orderID, imageURL string) error {
	if imageURL == "" {
		return &domain.ValidationError{Field: "image_url", Reason: "required"}
	}

	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := sellerOwns(actor, order, "append shipping proof"); err != nil {
		return err
	}
	if order.Status != domain.StatusShipped && order.Status != domain.StatusDelivered {
		return &domain.ValidationError{Field: "status", Reason: "proof images can only be added while shipped or delivered"}
	}

	return uc.OrderRepo.AppendShippingProof(ctx, orderID, imageURL)
}
