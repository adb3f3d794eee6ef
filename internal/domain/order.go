package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPendingPayment OrderStatus = "pending_payment"
	StatusPending        OrderStatus = "pending"
	StatusAccepted       OrderStatus = "accepted"
	StatusShipped        OrderStatus = "shipped"
	StatusDelivered      OrderStatus = "delivered"
	StatusCompleted      OrderStatus = "completed"
	StatusDisputed       OrderStatus = "disputed"
	StatusCancelled      OrderStatus = "cancelled"
	StatusRefunded       OrderStatus = "refunded"
)

// Terminal statuses accept no further actions.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusRefunded
}

type OrderAction string

const (
	ActionMarkPaid        OrderAction = "mark_paid"
	ActionAccept          OrderAction = "accept"
	ActionReject          OrderAction = "reject"
	ActionCancel          OrderAction = "cancel"
	ActionShip            OrderAction = "ship"
	ActionMarkDelivered   OrderAction = "mark_delivered"
	ActionConfirmDelivery OrderAction = "confirm_delivery"
	ActionOpenDispute     OrderAction = "open_dispute"
	ActionResolveDispute  OrderAction = "resolve_dispute"
	ActionAutoRelease     OrderAction = "auto_release"
)

// allowedFrom maps each action to the statuses it may fire from. Every status
// change in the service goes through this table.
var allowedFrom = map[OrderAction][]OrderStatus{
	ActionMarkPaid:        {StatusPendingPayment},
	ActionAccept:          {StatusPending},
	ActionReject:          {StatusPending},
	ActionCancel:          {StatusPendingPayment, StatusPending},
	ActionShip:            {StatusAccepted},
	ActionMarkDelivered:   {StatusShipped},
	ActionConfirmDelivery: {StatusShipped, StatusDelivered},
	ActionOpenDispute:     {StatusPending, StatusAccepted, StatusShipped, StatusDelivered},
	ActionResolveDispute:  {StatusDisputed},
	ActionAutoRelease:     {StatusShipped},
}

func CanTransition(status OrderStatus, action OrderAction) bool {
	for _, from := range allowedFrom[action] {
		if from == status {
			return true
		}
	}
	return false
}

// Buyer identifies who placed the order. BuyerID is empty for guest
// checkouts through a payment link.
type Buyer struct {
	BuyerID string
	Name    string
	Phone   string
	Email   string
}

func (b Buyer) Guest() bool {
	return b.BuyerID == ""
}

type ShippingInfo struct {
	CourierName           string
	TrackingNumber        string
	EstimatedDeliveryDate *time.Time
	Notes                 string
	ProofImages           []string
}

type Order struct {
	ID              string
	StoreID         string
	SellerID        string
	Buyer           Buyer
	ProductID       string
	PaymentLinkID   string
	PaymentRef      string
	ItemName        string
	Quantity        int32
	Amount          decimal.Decimal
	Currency        string
	PlatformFee     decimal.Decimal
	SellerPayout    decimal.Decimal
	Status          OrderStatus
	RejectionReason string
	ShippingInfo    *ShippingInfo
	CreatedAt       time.Time
	UpdatedAt       time.Time
	PaidAt          *time.Time
	AcceptedAt      *time.Time
	ShippedAt       *time.Time
	DeliveredAt     *time.Time
	CompletedAt     *time.Time
	DisputedAt      *time.Time
	CancelledAt     *time.Time
	RefundedAt      *time.Time
	ExpiresAt       *time.Time
	ReleaseAt       *time.Time
}

// ComputeFees splits a gross amount into the platform fee and the seller
// payout. The fee is rounded half-up to 2 decimal places and the payout is
// the exact remainder, so fee + payout always equals amount.
func ComputeFees(amount, feeRate decimal.Decimal) (fee, payout decimal.Decimal) {
	fee = amount.Mul(feeRate).Round(2)
	payout = amount.Sub(fee)
	return fee, payout
}
