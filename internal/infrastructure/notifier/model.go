package notifier

import "time"

// Event kinds understood by the notification service.
const (
	KindOrderStatus     = "order_status"
	KindDisputeOpened   = "dispute_opened"
	KindDisputeResolved = "dispute_resolved"
)

type Event struct {
	Kind       string    `json:"kind"`
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	SellerID   string    `json:"seller_id,omitempty"`
	BuyerID    string    `json:"buyer_id,omitempty"`
	BuyerPhone string    `json:"buyer_phone,omitempty"`
	BuyerEmail string    `json:"buyer_email,omitempty"`
	ItemName   string    `json:"item_name,omitempty"`
	Amount     string    `json:"amount,omitempty"`
	Currency   string    `json:"currency,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
