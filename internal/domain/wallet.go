package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// ReleaseFundsRequest moves an order's escrowed amount out of pending:
// the payout lands in the seller's available balance and the platform fee
// is collected.
type ReleaseFundsRequest struct {
	SellerID    string
	OrderID     string
	Payout      decimal.Decimal
	PlatformFee decimal.Decimal
	Currency    string
}

type SellerBalance struct {
	SellerID  string
	Currency  string
	Available decimal.Decimal
	Pending   decimal.Decimal
}

type WithdrawalRequest struct {
	SellerID        string
	PaymentMethodID string
	Amount          decimal.Decimal
	Currency        string
}

type Withdrawal struct {
	ID       string
	SellerID string
	Amount   decimal.Decimal
	Currency string
	Status   string
}

// WalletService is the balance ledger. Hold, Release and Refund are keyed by
// order ID on the remote side, so retrying a settled order is a no-op there.
type WalletService interface {
	Hold(ctx context.Context, sellerID, orderID string, amount decimal.Decimal, currency string) error
	Release(ctx context.Context, req *ReleaseFundsRequest) error
	Refund(ctx context.Context, sellerID, orderID string, amount decimal.Decimal, currency string) error
	GetSellerBalance(ctx context.Context, sellerID string) (*SellerBalance, error)
	RequestWithdrawal(ctx context.Context, req *WithdrawalRequest) (*Withdrawal, error)
}
