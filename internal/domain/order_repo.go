package domain

import (
	"context"
	"time"
)

// TransitionOp describes one guarded status change. The update applies only
// while the row still holds From; Wallet, when set, runs inside the same
// transaction and rolls the status change back on failure.
type TransitionOp struct {
	OrderID         string
	Action          OrderAction
	From            OrderStatus
	To              OrderStatus
	At              time.Time
	Actor           Actor
	Note            string
	PaymentRef      string
	RejectionReason string
	ShippingInfo    *ShippingInfo
	ReleaseAt       *time.Time
	ExpiresAt       *time.Time
	Wallet          func() error
}

// AdminOrdersFilter narrows the admin order listing. Nil fields match
// everything.
type AdminOrdersFilter struct {
	Statuses  []OrderStatus
	StoreID   *string
	SellerID  *string
	MinAmount *float64
	MaxAmount *float64
	DateFrom  *time.Time
	DateTo    *time.Time
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) error
	GetOrderByID(ctx context.Context, orderID string) (*Order, error)
	ApplyTransition(ctx context.Context, op *TransitionOp) error
	AppendShippingProof(ctx context.Context, orderID, imageURL string) error
	GetOrdersBySellerID(ctx context.Context, sellerID string) ([]*Order, error)
	GetOrdersByBuyerID(ctx context.Context, buyerID string) ([]*Order, error)
	GetOrdersByStoreID(ctx context.Context, storeID string) ([]*Order, error)
	GetAllOrders(ctx context.Context, filter *AdminOrdersFilter, page, limit int32) ([]*Order, int64, error)
	FindExpiredOrders(ctx context.Context, now time.Time) ([]*Order, error)
	FindReleaseDueOrders(ctx context.Context, now time.Time) ([]*Order, error)
}
