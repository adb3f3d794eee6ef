package models

import (
	"time"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type OrderModel struct {
	ID                    string             `gorm:"primaryKey;type:uuid"`
	StoreID               string             `gorm:"type:uuid;index:idx_orders_store"`
	SellerID              string             `gorm:"index:idx_orders_seller;not null"`
	BuyerID               string             `gorm:"index:idx_orders_buyer"`
	BuyerName             string
	BuyerPhone            string
	BuyerEmail            string
	ProductID             string             `gorm:"type:uuid"`
	PaymentLinkID         string             `gorm:"type:uuid"`
	PaymentRef            string             `gorm:"index:idx_orders_payment_ref"`
	ItemName              string             `gorm:"not null"`
	Quantity              int32              `gorm:"not null;default:1"`
	Amount                decimal.Decimal    `gorm:"type:numeric(12,2);not null"`
	Currency              string             `gorm:"not null"`
	PlatformFee           decimal.Decimal    `gorm:"type:numeric(12,2);not null"`
	SellerPayout          decimal.Decimal    `gorm:"type:numeric(12,2);not null"`
	Status                domain.OrderStatus `gorm:"index:idx_status_expires;index:idx_orders_status;not null"`
	RejectionReason       string
	CourierName           string
	TrackingNumber        string
	EstimatedDeliveryDate *time.Time
	ShippingNotes         string
	ProofImages           pq.StringArray `gorm:"type:text[]"`
	CreatedAt             time.Time      `gorm:"index:idx_orders_created_at"`
	UpdatedAt             time.Time
	PaidAt                *time.Time
	AcceptedAt            *time.Time
	ShippedAt             *time.Time
	DeliveredAt           *time.Time
	CompletedAt           *time.Time
	DisputedAt            *time.Time
	CancelledAt           *time.Time
	RefundedAt            *time.Time
	ExpiresAt             *time.Time `gorm:"index:idx_status_expires"`
	ReleaseAt             *time.Time `gorm:"index:idx_orders_release_at"`
}

func (OrderModel) TableName() string {
	return "orders"
}

// OrderEventModel is the append-only audit trail. One row per applied
// transition, written in the same transaction as the status change.
type OrderEventModel struct {
	ID         uint   `gorm:"primaryKey"`
	OrderID    string `gorm:"type:uuid;index;not null"`
	Action     string `gorm:"not null"`
	FromStatus string `gorm:"not null"`
	ToStatus   string `gorm:"not null"`
	ActorID    string
	ActorRole  string
	Note       string
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (OrderEventModel) TableName() string {
	return "order_events"
}
