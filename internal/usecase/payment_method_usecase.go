package usecase

import (
	"context"
	"time"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	methoddto "github.com/dukalink/dukalink-escrow-service/internal/usecase/dto/method"
	"github.com/google/uuid"
)

type PaymentMethodUsecase interface {
	CreatePaymentMethod(ctx context.Context, actor domain.Actor, input *methoddto.CreatePaymentMethodInput) (*domain.PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, actor domain.Actor, input *methoddto.UpdatePaymentMethodInput) (*domain.PaymentMethod, error)
	GetMyPaymentMethods(ctx context.Context, actor domain.Actor) ([]*domain.PaymentMethod, error)
	SetDefaultMethod(ctx context.Context, actor domain.Actor, methodID string) error
	DeactivateMethod(ctx context.Context, actor domain.Actor, methodID string) error
}

type DefaultPaymentMethodUsecase struct {
	MethodRepo domain.PaymentMethodRepository
}

func NewDefaultPaymentMethodUsecase(methodRepo domain.PaymentMethodRepository) *DefaultPaymentMethodUsecase {
	return &DefaultPaymentMethodUsecase{MethodRepo: methodRepo}
}

// CreatePaymentMethod registers a payout destination for the calling seller.
// The seller's first method becomes the default automatically.
func (uc *DefaultPaymentMethodUsecase) CreatePaymentMethod(ctx context.Context, actor domain.Actor, input *methoddto.CreatePaymentMethodInput) (*domain.PaymentMethod, error) {
	methodType := domain.PaymentMethodType(input.Type)
	if methodType != domain.MethodMobileMoney && methodType != domain.MethodBankAccount {
		return nil, &domain.ValidationError{Field: "type", Reason: "must be mobile_money or bank_account"}
	}
	if input.Provider == "" {
		return nil, &domain.ValidationError{Field: "provider", Reason: "required"}
	}
	if input.AccountNumber == "" {
		return nil, &domain.ValidationError{Field: "account_number", Reason: "required"}
	}
	if input.AccountName == "" {
		return nil, &domain.ValidationError{Field: "account_name", Reason: "required"}
	}

	existing, err := uc.MethodRepo.GetPaymentMethodsBySellerID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	method := &domain.PaymentMethod{
		ID:            uuid.New().String(),
		SellerID:      actor.ID,
		Type:          methodType,
		Provider:      input.Provider,
		AccountNumber: input.AccountNumber,
		AccountName:   input.AccountName,
		Default:       input.Default || len(existing) == 0,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.MethodRepo.CreatePaymentMethod(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

func (uc *DefaultPaymentMethodUsecase) UpdatePaymentMethod(ctx context.Context, actor domain.Actor, input *methoddto.UpdatePaymentMethodInput) (*domain.PaymentMethod, error) {
	method, err := uc.ownedMethod(ctx, actor, input.MethodID, "update payment method")
	if err != nil {
		return nil, err
	}

	if input.Provider != "" {
		method.Provider = input.Provider
	}
	if input.AccountNumber != "" {
		method.AccountNumber = input.AccountNumber
	}
	if input.AccountName != "" {
		method.AccountName = input.AccountName
	}
	method.UpdatedAt = time.Now()

	if err := uc.MethodRepo.UpdatePaymentMethod(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

func (uc *DefaultPaymentMethodUsecase) GetMyPaymentMethods(ctx context.Context, actor domain.Actor) ([]*domain.PaymentMethod, error) {
	return uc.MethodRepo.GetPaymentMethodsBySellerID(ctx, actor.ID)
}

func (uc *DefaultPaymentMethodUsecase) SetDefaultMethod(ctx context.Context, actor domain.Actor, methodID string) error {
	if _, err := uc.ownedMethod(ctx, actor, methodID, "set default payment method"); err != nil {
		return err
	}
	return uc.MethodRepo.SetDefaultPaymentMethod(ctx, actor.ID, methodID)
}

func (uc *DefaultPaymentMethodUsecase) DeactivateMethod(ctx context.Context, actor domain.Actor, methodID string) error {
	if _, err := uc.ownedMethod(ctx, actor, methodID, "deactivate payment method"); err != nil {
		return err
	}
	return uc.MethodRepo.DeactivatePaymentMethod(ctx, methodID)
}

func (uc *DefaultPaymentMethodUsecase) ownedMethod(ctx context.Context, actor domain.Actor, methodID, action string) (*domain.PaymentMethod, error) {
	method, err := uc.MethodRepo.GetPaymentMethodByID(ctx, methodID)
	if err != nil {
		return nil, err
	}
	if method.SellerID != actor.ID {
		return nil, &domain.UnauthorizedActionError{Action: action, Reason: "not the method owner"}
	}
	return method, nil
}
