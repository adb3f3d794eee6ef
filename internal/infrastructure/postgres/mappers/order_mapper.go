package mappers

import (
	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	order := &domain.Order{
		ID:      model.ID,
		StoreID: model.StoreID,
		SellerID: model.SellerID,
		Buyer: domain.Buyer{
			BuyerID: model.BuyerID,
			Name:    model.BuyerName,
			Phone:   model.BuyerPhone,
			Email:   model.BuyerEmail,
		},
		ProductID:       model.ProductID,
		PaymentLinkID:   model.PaymentLinkID,
		PaymentRef:      model.PaymentRef,
		ItemName:        model.ItemName,
		Quantity:        model.Quantity,
		Amount:          model.Amount,
		Currency:        model.Currency,
		PlatformFee:     model.PlatformFee,
		SellerPayout:    model.SellerPayout,
		Status:          model.Status,
		RejectionReason: model.RejectionReason,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
		PaidAt:          model.PaidAt,
		AcceptedAt:      model.AcceptedAt,
		ShippedAt:       model.ShippedAt,
		DeliveredAt:     model.DeliveredAt,
		CompletedAt:     model.CompletedAt,
		DisputedAt:      model.DisputedAt,
		CancelledAt:     model.CancelledAt,
		RefundedAt:      model.RefundedAt,
		ExpiresAt:       model.ExpiresAt,
		ReleaseAt:       model.ReleaseAt,
	}

	if model.CourierName != "" || model.TrackingNumber != "" {
		order.ShippingInfo = &domain.ShippingInfo{
			CourierName:           model.CourierName,
			TrackingNumber:        model.TrackingNumber,
			EstimatedDeliveryDate: model.EstimatedDeliveryDate,
			Notes:                 model.ShippingNotes,
			ProofImages:           model.ProofImages,
		}
	}

	return order
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	model := &models.OrderModel{
		ID:              order.ID,
		StoreID:         order.StoreID,
		SellerID:        order.SellerID,
		BuyerID:         order.Buyer.BuyerID,
		BuyerName:       order.Buyer.Name,
		BuyerPhone:      order.Buyer.Phone,
		BuyerEmail:      order.Buyer.Email,
		ProductID:       order.ProductID,
		PaymentLinkID:   order.PaymentLinkID,
		PaymentRef:      order.PaymentRef,
		ItemName:        order.ItemName,
		Quantity:        order.Quantity,
		Amount:          order.Amount,
		Currency:        order.Currency,
		PlatformFee:     order.PlatformFee,
		SellerPayout:    order.SellerPayout,
		Status:          order.Status,
		RejectionReason: order.RejectionReason,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
		PaidAt:          order.PaidAt,
		AcceptedAt:      order.AcceptedAt,
		ShippedAt:       order.ShippedAt,
		DeliveredAt:     order.DeliveredAt,
		CompletedAt:     order.CompletedAt,
		DisputedAt:      order.DisputedAt,
		CancelledAt:     order.CancelledAt,
		RefundedAt:      order.RefundedAt,
		ExpiresAt:       order.ExpiresAt,
		ReleaseAt:       order.ReleaseAt,
	}

	if order.ShippingInfo != nil {
		model.CourierName = order.ShippingInfo.CourierName
		model.TrackingNumber = order.ShippingInfo.TrackingNumber
		model.EstimatedDeliveryDate = order.ShippingInfo.EstimatedDeliveryDate
		model.ShippingNotes = order.ShippingInfo.Notes
		model.ProofImages = order.ShippingInfo.ProofImages
	}

	return model
}
