package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	methoddto "github.com/dukalink/dukalink-escrow-service/internal/usecase/dto/method"
	"github.com/shopspring/decimal"
)

type WalletUsecase interface {
	GetSellerWallet(ctx context.Context, actor domain.Actor) (*domain.SellerBalance, error)
	RequestWithdrawal(ctx context.Context, actor domain.Actor, input *methoddto.WithdrawInput) (*domain.Withdrawal, error)
}

// DefaultWalletUsecase fronts the wallet service for seller-facing reads and
// withdrawals. Balances live remotely; only payout destinations are local.
type DefaultWalletUsecase struct {
	Wallet     domain.WalletService
	MethodRepo domain.PaymentMethodRepository
}

func NewDefaultWalletUsecase(wallet domain.WalletService, methodRepo domain.PaymentMethodRepository) *DefaultWalletUsecase {
	return &DefaultWalletUsecase{Wallet: wallet, MethodRepo: methodRepo}
}

func (uc *DefaultWalletUsecase) GetSellerWallet(ctx context.Context, actor domain.Actor) (*domain.SellerBalance, error) {
	return uc.Wallet.GetSellerBalance(ctx, actor.ID)
}

// RequestWithdrawal moves available balance to one of the seller's payout
// methods. Without an explicit method the seller's default is used.
func (uc *DefaultWalletUsecase) RequestWithdrawal(ctx context.Context, actor domain.Actor, input *methoddto.WithdrawInput) (*domain.Withdrawal, error) {
	amount, err := decimal.NewFromString(input.Amount)
	if err != nil || !amount.IsPositive() {
		return nil, &domain.ValidationError{Field: "amount", Reason: "must be a positive amount"}
	}

	var method *domain.PaymentMethod
	if input.PaymentMethodID != "" {
		method, err = uc.MethodRepo.GetPaymentMethodByID(ctx, input.PaymentMethodID)
		if err != nil {
			return nil, err
		}
		if method.SellerID != actor.ID {
			return nil, &domain.UnauthorizedActionError{Action: "withdraw", Reason: "not the method owner"}
		}
		if !method.Active {
			return nil, &domain.ValidationError{Field: "payment_method_id", Reason: "method is deactivated"}
		}
	} else {
		method, err = uc.MethodRepo.GetDefaultPaymentMethod(ctx, actor.ID)
		if errors.Is(err, domain.ErrPaymentMethodNotFound) {
			return nil, &domain.ValidationError{Field: "payment_method_id", Reason: "no default payment method configured"}
		}
		if err != nil {
			return nil, err
		}
	}

	balance, err := uc.Wallet.GetSellerBalance(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if amount.GreaterThan(balance.Available) {
		return nil, &domain.ValidationError{Field: "amount", Reason: "exceeds available balance"}
	}

	withdrawal, err := uc.Wallet.RequestWithdrawal(ctx, &domain.WithdrawalRequest{
		SellerID:        actor.ID,
		PaymentMethodID: method.ID,
		Amount:          amount,
		Currency:        balance.Currency,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("withdrawal requested",
		"withdrawal_id", withdrawal.ID,
		"seller_id", actor.ID,
		"amount", amount.StringFixed(2),
		"method_id", method.ID)
	return withdrawal, nil
}
