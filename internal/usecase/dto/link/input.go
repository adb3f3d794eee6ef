package linkdto

import "time"

// CreatePaymentLinkInput describes a shareable checkout. Either ProductID
// points at a listed product, or ItemName and Amount describe an ad-hoc
// item priced at link creation.
type CreatePaymentLinkInput struct {
	StoreID   string
	ProductID string
	ItemName  string
	Amount    string
	ExpiresAt *time.Time
}
