package kafka

// OrderEvent is the message emitted to the order topic on every applied
// transition. Amount is the decimal string form to keep cents exact.
type OrderEvent struct {
	OrderID  string `json:"order_id"`
	SellerID string `json:"seller_id"`
	BuyerID  string `json:"buyer_id,omitempty"`
	Action   string `json:"action"`
	Status   string `json:"status"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}
