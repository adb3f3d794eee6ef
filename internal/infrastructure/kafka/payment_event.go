package kafka

// PaymentEvent arrives from the payments service when a charge settles.
// OrderID carries the order the checkout page created; Status is either
// "confirmed" or "failed".
type PaymentEvent struct {
	PaymentRef string `json:"payment_ref"`
	OrderID    string `json:"order_id"`
	Amount     string `json:"amount"`
	Currency   string `json:"currency"`
	Status     string `json:"status"`
}
