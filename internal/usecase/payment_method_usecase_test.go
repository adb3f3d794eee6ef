package usecase

import (
	"context"
	"testing"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	methoddto "github.com/dukalink/dukalink-escrow-service/internal/usecase/dto/method"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMethodRepo struct {
	methods map[string]*domain.PaymentMethod
}

func newFakeMethodRepo() *fakeMethodRepo {
	return &fakeMethodRepo{methods: make(map[string]*domain.PaymentMethod)}
}

func (r *fakeMethodRepo) CreatePaymentMethod(_ context.Context, method *domain.PaymentMethod) error {
	if method.Default {
		for _, m := range r.methods {
			if m.SellerID == method.SellerID {
				m.Default = false
			}
		}
	}
	cp := *method
	r.methods[method.ID] = &cp
	return nil
}

func (r *fakeMethodRepo) UpdatePaymentMethod(_ context.Context, method *domain.PaymentMethod) error {
	if _, ok := r.methods[method.ID]; !ok {
		return domain.ErrPaymentMethodNotFound
	}
	cp := *method
	r.methods[method.ID] = &cp
	return nil
}

func (r *fakeMethodRepo) GetPaymentMethodByID(_ context.Context, methodID string) (*domain.PaymentMethod, error) {
	method, ok := r.methods[methodID]
	if !ok {
		return nil, domain.ErrPaymentMethodNotFound
	}
	cp := *method
	return &cp, nil
}

func (r *fakeMethodRepo) GetPaymentMethodsBySellerID(_ context.Context, sellerID string) ([]*domain.PaymentMethod, error) {
	var out []*domain.PaymentMethod
	for _, method := range r.methods {
		if method.SellerID == sellerID {
			cp := *method
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMethodRepo) GetDefaultPaymentMethod(_ context.Context, sellerID string) (*domain.PaymentMethod, error) {
	for _, method := range r.methods {
		if method.SellerID == sellerID && method.Default {
			cp := *method
			return &cp, nil
		}
	}
	return nil, domain.ErrPaymentMethodNotFound
}

func (r *fakeMethodRepo) SetDefaultPaymentMethod(_ context.Context, sellerID, methodID string) error {
	for _, method := range r.methods {
		if method.SellerID == sellerID {
			method.Default = method.ID == methodID
		}
	}
	return nil
}

func (r *fakeMethodRepo) DeactivatePaymentMethod(_ context.Context, methodID string) error {
	method, ok := r.methods[methodID]
	if !ok {
		return domain.ErrPaymentMethodNotFound
	}
	method.Active = false
	return nil
}

var methodSeller = domain.Actor{ID: "seller-1", Role: domain.RoleSeller}

func mpesaInput() *methoddto.CreatePaymentMethodInput {
	return &methoddto.CreatePaymentMethodInput{
		Type:          "mobile_money",
		Provider:      "M-Pesa",
		AccountNumber: "+254700000000",
		AccountName:   "Duka Wear",
	}
}

func TestFirstPaymentMethodBecomesDefault(t *testing.T) {
	uc := NewDefaultPaymentMethodUsecase(newFakeMethodRepo())
	ctx := context.Background()

	first, err := uc.CreatePaymentMethod(ctx, methodSeller, mpesaInput())
	require.NoError(t, err)
	assert.True(t, first.Default)
	assert.True(t, first.Active)
	assert.Equal(t, methodSeller.ID, first.SellerID)

	second, err := uc.CreatePaymentMethod(ctx, methodSeller, &methoddto.CreatePaymentMethodInput{
		Type:          "bank_account",
		Provider:      "Equity",
		AccountNumber: "0123456789",
		AccountName:   "Duka Wear Ltd",
	})
	require.NoError(t, err)
	assert.False(t, second.Default)
}

func TestCreatePaymentMethodValidation(t *testing.T) {
	uc := NewDefaultPaymentMethodUsecase(newFakeMethodRepo())
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*methoddto.CreatePaymentMethodInput)
	}{
		{"unknown type", func(in *methoddto.CreatePaymentMethodInput) { in.Type = "paypal" }},
		{"missing provider", func(in *methoddto.CreatePaymentMethodInput) { in.Provider = "" }},
		{"missing account number", func(in *methoddto.CreatePaymentMethodInput) { in.AccountNumber = "" }},
		{"missing account name", func(in *methoddto.CreatePaymentMethodInput) { in.AccountName = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := mpesaInput()
			tt.mutate(input)
			_, err := uc.CreatePaymentMethod(ctx, methodSeller, input)
			var validation *domain.ValidationError
			require.ErrorAs(t, err, &validation)
		})
	}
}

func TestSetDefaultMovesTheFlag(t *testing.T) {
	repo := newFakeMethodRepo()
	uc := NewDefaultPaymentMethodUsecase(repo)
	ctx := context.Background()

	first, err := uc.CreatePaymentMethod(ctx, methodSeller, mpesaInput())
	require.NoError(t, err)
	second, err := uc.CreatePaymentMethod(ctx, methodSeller, &methoddto.CreatePaymentMethodInput{
		Type:          "bank_account",
		Provider:      "Equity",
		AccountNumber: "0123456789",
		AccountName:   "Duka Wear Ltd",
	})
	require.NoError(t, err)

	require.NoError(t, uc.SetDefaultMethod(ctx, methodSeller, second.ID))

	assert.False(t, repo.methods[first.ID].Default)
	assert.True(t, repo.methods[second.ID].Default)
}

func TestPaymentMethodOwnershipChecks(t *testing.T) {
	uc := NewDefaultPaymentMethodUsecase(newFakeMethodRepo())
	ctx := context.Background()

	method, err := uc.CreatePaymentMethod(ctx, methodSeller, mpesaInput())
	require.NoError(t, err)

	intruder := domain.Actor{ID: "seller-2", Role: domain.RoleSeller}
	var unauthorized *domain.UnauthorizedActionError

	_, err = uc.UpdatePaymentMethod(ctx, intruder, &methoddto.UpdatePaymentMethodInput{
		MethodID: method.ID, Provider: "Airtel Money",
	})
	require.ErrorAs(t, err, &unauthorized)

	err = uc.SetDefaultMethod(ctx, intruder, method.ID)
	require.ErrorAs(t, err, &unauthorized)

	err = uc.DeactivateMethod(ctx, intruder, method.ID)
	require.ErrorAs(t, err, &unauthorized)

	err = uc.DeactivateMethod(ctx, methodSeller, method.ID)
	require.NoError(t, err)
}

func TestUpdatePaymentMethodKeepsUnsetFields(t *testing.T) {
	uc := NewDefaultPaymentMethodUsecase(newFakeMethodRepo())
	ctx := context.Background()

	method, err := uc.CreatePaymentMethod(ctx, methodSeller, mpesaInput())
	require.NoError(t, err)

	updated, err := uc.UpdatePaymentMethod(ctx, methodSeller, &methoddto.UpdatePaymentMethodInput{
		MethodID: method.ID,
		Provider: "Airtel Money",
	})
	require.NoError(t, err)
	assert.Equal(t, "Airtel Money", updated.Provider)
	assert.Equal(t, method.AccountNumber, updated.AccountNumber)
	assert.Equal(t, method.AccountName, updated.AccountName)
}
