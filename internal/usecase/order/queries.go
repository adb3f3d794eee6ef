package usecase

import (
	"context"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/logger"
	orderdto "github.com/dukalink/dukalink-escrow-service/internal/usecase/dto/order"
)

var validStatuses = map[domain.OrderStatus]bool{
	domain.StatusPendingPayment: true,
	domain.StatusPending:        true,
	domain.StatusAccepted:       true,
	domain.StatusShipped:        true,
	domain.StatusDelivered:      true,
	domain.StatusCompleted:      true,
	domain.StatusDisputed:       true,
	domain.StatusCancelled:      true,
	domain.StatusRefunded:       true,
}

func (uc *DefaultOrderUsecase) GetOrderByID(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := canViewOrder(actor, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (uc *DefaultOrderUsecase) GetOrderTimeline(ctx context.Context, actor domain.Actor, orderID string) ([]domain.TimelineEvent, error) {
	order, err := uc.GetOrderByID(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}
	return domain.Timeline(order), nil
}

// GetOrderEvents returns the audit trail of applied transitions. Admin only.
func (uc *DefaultOrderUsecase) GetOrderEvents(ctx context.Context, actor domain.Actor, orderID string) ([]logger.OrderAuditEntry, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, &domain.UnauthorizedActionError{Action: "list order events", Reason: "admin only"}
	}
	if _, err := uc.OrderRepo.GetOrderByID(ctx, orderID); err != nil {
		return nil, err
	}
	return uc.AuditLog.ListOrderEvents(ctx, orderID)
}

func (uc *DefaultOrderUsecase) GetBuyerOrders(ctx context.Context, actor domain.Actor) ([]*domain.Order, error) {
	return uc.OrderRepo.GetOrdersByBuyerID(ctx, actor.ID)
}

// GetSellerOrders backs the seller dashboard. The repository narrows to the
// seller's orders; status, date range, free-text search and sorting run
// through the pure helpers, then the result is paged.
func (uc *DefaultOrderUsecase) GetSellerOrders(ctx context.Context, actor domain.Actor, input *orderdto.SellerOrdersInput) (*orderdto.OrdersOutput, error) {
	filter := domain.OrderFilter{
		DateFrom:   input.DateFrom,
		DateTo:     input.DateTo,
		SearchText: input.Search,
	}
	if input.Status != "" {
		status := domain.OrderStatus(input.Status)
		if !validStatuses[status] {
			return nil, &domain.ValidationError{Field: "status", Reason: "unknown status"}
		}
		filter.Status = status
	}

	orders, err := uc.OrderRepo.GetOrdersBySellerID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	matched := domain.FilterOrders(orders, filter)
	sorted := domain.SortOrders(matched, domain.SortKey(input.SortBy))

	page, limit := normalizePage(input.Page, input.Limit)
	total := int64(len(sorted))
	from := (page - 1) * limit
	if from > int32(len(sorted)) {
		from = int32(len(sorted))
	}
	to := from + limit
	if to > int32(len(sorted)) {
		to = int32(len(sorted))
	}

	return &orderdto.OrdersOutput{
		Orders:     sorted[from:to],
		Pagination: orderdto.NewPagination(page, limit, total),
	}, nil
}

// GetAllOrders is the admin cross-seller listing; narrowing and paging
// happen in SQL.
func (uc *DefaultOrderUsecase) GetAllOrders(ctx context.Context, input *orderdto.AdminOrdersInput) (*orderdto.OrdersOutput, error) {
	filter := &domain.AdminOrdersFilter{
		StoreID:   input.StoreID,
		SellerID:  input.SellerID,
		MinAmount: input.MinAmount,
		MaxAmount: input.MaxAmount,
		DateFrom:  input.DateFrom,
		DateTo:    input.DateTo,
	}
	for _, s := range input.Statuses {
		status := domain.OrderStatus(s)
		if !validStatuses[status] {
			return nil, &domain.ValidationError{Field: "status", Reason: "unknown status"}
		}
		filter.Statuses = append(filter.Statuses, status)
	}

	page, limit := normalizePage(input.Page, input.Limit)
	orders, total, err := uc.OrderRepo.GetAllOrders(ctx, filter, page, limit)
	if err != nil {
		return nil, err
	}

	return &orderdto.OrdersOutput{
		Orders:     orders,
		Pagination: orderdto.NewPagination(page, limit, total),
	}, nil
}

func normalizePage(page, limit int32) (int32, int32) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}
	return page, limit
}

func canViewOrder(actor domain.Actor, order *domain.Order) error {
	switch actor.Role {
	case domain.RoleAdmin, domain.RoleSystem:
		return nil
	case domain.RoleSeller:
		if actor.ID == order.SellerID {
			return nil
		}
	case domain.RoleBuyer:
		if actor.ID != "" && actor.ID == order.Buyer.BuyerID {
			return nil
		}
	}
	return &domain.UnauthorizedActionError{Action: "view order", Reason: "not a party to this order"}
}
