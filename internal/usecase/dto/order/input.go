package orderdto

import "time"

// BuyerParams identifies the buyer on a checkout. BuyerID stays empty for
// guest checkouts through a payment link.
type BuyerParams struct {
	BuyerID string
	Name    string
	Phone   string
	Email   string
}

type CheckoutInput struct {
	StoreID    string
	ProductID  string
	Quantity   int32
	PaymentRef string
	Buyer      BuyerParams
}

type LinkCheckoutInput struct {
	Code     string
	Quantity int32
	Buyer    BuyerParams
}

type ShipOrderInput struct {
	OrderID               string
	CourierName           string
	TrackingNumber        string
	EstimatedDeliveryDate *time.Time
	Notes                 string
	ProofImages           []string
}

type SellerOrdersInput struct {
	Status   string
	DateFrom *time.Time
	DateTo   *time.Time
	Search   string
	SortBy   string
	Page     int32
	Limit    int32
}

type AdminOrdersInput struct {
	Statuses  []string
	StoreID   *string
	SellerID  *string
	MinAmount *float64
	MaxAmount *float64
	DateFrom  *time.Time
	DateTo    *time.Time
	Page      int32
	Limit     int32
}
