package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentLink is a shareable checkout for a fixed item and price. Orders
// created through a link start in pending_payment until the payment
// provider confirms the charge.
type PaymentLink struct {
	ID        string
	Code      string
	StoreID   string
	SellerID  string
	ProductID string
	ItemName  string
	Amount    decimal.Decimal
	Currency  string
	Active    bool
	ExpiresAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (l *PaymentLink) Usable(now time.Time) bool {
	if !l.Active {
		return false
	}
	return l.ExpiresAt == nil || l.ExpiresAt.After(now)
}

type PaymentLinkRepository interface {
	CreatePaymentLink(ctx context.Context, link *PaymentLink) error
	GetPaymentLinkByCode(ctx context.Context, code string) (*PaymentLink, error)
	GetPaymentLinkByID(ctx context.Context, linkID string) (*PaymentLink, error)
	GetPaymentLinksBySellerID(ctx context.Context, sellerID string) ([]*PaymentLink, error)
	SetPaymentLinkActive(ctx context.Context, linkID string, active bool) error
}
