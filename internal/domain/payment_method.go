package domain

import (
	"context"
	"time"
)

type PaymentMethodType string

const (
	MethodMobileMoney PaymentMethodType = "mobile_money"
	MethodBankAccount PaymentMethodType = "bank_account"
)

// PaymentMethod is a seller payout destination. At most one method per
// seller is the default; withdrawals without an explicit method use it.
type PaymentMethod struct {
	ID            string
	SellerID      string
	Type          PaymentMethodType
	Provider      string
	AccountNumber string
	AccountName   string
	Default       bool
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type PaymentMethodRepository interface {
	CreatePaymentMethod(ctx context.Context, method *PaymentMethod) error
	UpdatePaymentMethod(ctx context.Context, method *PaymentMethod) error
	GetPaymentMethodByID(ctx context.Context, methodID string) (*PaymentMethod, error)
	GetPaymentMethodsBySellerID(ctx context.Context, sellerID string) ([]*PaymentMethod, error)
	GetDefaultPaymentMethod(ctx context.Context, sellerID string) (*PaymentMethod, error)
	SetDefaultPaymentMethod(ctx context.Context, sellerID, methodID string) error
	DeactivatePaymentMethod(ctx context.Context, methodID string) error
}
