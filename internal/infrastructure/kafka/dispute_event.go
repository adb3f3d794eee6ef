package kafka

type DisputeEvent struct {
	DisputeID string `json:"dispute_id"`
	OrderID   string `json:"order_id"`
	SellerID  string `json:"seller_id"`
	OpenedBy  string `json:"opened_by,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Status    string `json:"status"`
}
