package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	orderdto "github.com/dukalink/dukalink-escrow-service/internal/usecase/dto/order"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOrderRepo keeps orders in memory and mirrors the repository's guarded
// update: a transition applies only while the row still holds op.From, and
// the wallet call runs inside the "transaction" so its failure leaves the
// order untouched.
type fakeOrderRepo struct {
	orders map[string]*domain.Order
	// conflictNext forces the next ApplyTransition to lose the race.
	conflictNext bool
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *fakeOrderRepo) CreateOrder(_ context.Context, order *domain.Order) error {
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetOrderByID(_ context.Context, orderID string) (*domain.Order, error) {
	order, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	cp := *order
	return &cp, nil
}

func (r *fakeOrderRepo) ApplyTransition(_ context.Context, op *domain.TransitionOp) error {
	order, ok := r.orders[op.OrderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if r.conflictNext {
		r.conflictNext = false
		return domain.ErrOrderConflict
	}
	if order.Status != op.From {
		return domain.ErrOrderConflict
	}
	if op.Wallet != nil {
		if err := op.Wallet(); err != nil {
			return err
		}
	}

	order.Status = op.To
	order.UpdatedAt = op.At
	at := op.At
	switch op.Action {
	case domain.ActionMarkPaid:
		order.PaidAt = &at
		order.ExpiresAt = op.ExpiresAt
		if op.PaymentRef != "" {
			order.PaymentRef = op.PaymentRef
		}
	case domain.ActionAccept:
		order.AcceptedAt = &at
		order.ExpiresAt = nil
	case domain.ActionReject:
		order.CancelledAt = &at
		order.RejectionReason = op.RejectionReason
	case domain.ActionCancel:
		order.CancelledAt = &at
	case domain.ActionShip:
		order.ShippedAt = &at
		order.ReleaseAt = op.ReleaseAt
		order.ShippingInfo = op.ShippingInfo
	case domain.ActionMarkDelivered:
		order.DeliveredAt = &at
	case domain.ActionConfirmDelivery, domain.ActionAutoRelease:
		if order.DeliveredAt == nil {
			order.DeliveredAt = &at
		}
		order.CompletedAt = &at
	case domain.ActionOpenDispute:
		order.DisputedAt = &at
	case domain.ActionResolveDispute:
		if op.To == domain.StatusRefunded {
			order.RefundedAt = &at
		} else {
			if order.DeliveredAt == nil {
				order.DeliveredAt = &at
			}
			order.CompletedAt = &at
		}
	}
	return nil
}

func (r *fakeOrderRepo) AppendShippingProof(_ context.Context, orderID, imageURL string) error {
	order, ok := r.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if order.ShippingInfo != nil {
		order.ShippingInfo.ProofImages = append(order.ShippingInfo.ProofImages, imageURL)
	}
	return nil
}

func (r *fakeOrderRepo) GetOrdersBySellerID(_ context.Context, sellerID string) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, order := range r.orders {
		if order.SellerID == sellerID {
			cp := *order
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) GetOrdersByBuyerID(_ context.Context, buyerID string) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, order := range r.orders {
		if order.Buyer.BuyerID == buyerID {
			cp := *order
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) GetOrdersByStoreID(_ context.Context, storeID string) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, order := range r.orders {
		if order.StoreID == storeID {
			cp := *order
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) GetAllOrders(_ context.Context, _ *domain.AdminOrdersFilter, _, _ int32) ([]*domain.Order, int64, error) {
	var out []*domain.Order
	for _, order := range r.orders {
		cp := *order
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) FindExpiredOrders(_ context.Context, now time.Time) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, order := range r.orders {
		if (order.Status == domain.StatusPendingPayment || order.Status == domain.StatusPending) &&
			order.ExpiresAt != nil && order.ExpiresAt.Before(now) {
			cp := *order
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) FindReleaseDueOrders(_ context.Context, now time.Time) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, order := range r.orders {
		if order.Status == domain.StatusShipped && order.ReleaseAt != nil && !order.ReleaseAt.After(now) {
			cp := *order
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeWallet struct {
	holds    int
	releases int
	refunds  int

	lastRelease *domain.ReleaseFundsRequest

	holdErr    error
	releaseErr error
	refundErr  error
}

func (w *fakeWallet) Hold(context.Context, string, string, decimal.Decimal, string) error {
	if w.holdErr != nil {
		return w.holdErr
	}
	w.holds++
	return nil
}

func (w *fakeWallet) Release(_ context.Context, req *domain.ReleaseFundsRequest) error {
	if w.releaseErr != nil {
		return w.releaseErr
	}
	w.releases++
	w.lastRelease = req
	return nil
}

func (w *fakeWallet) Refund(context.Context, string, string, decimal.Decimal, string) error {
	if w.refundErr != nil {
		return w.refundErr
	}
	w.refunds++
	return nil
}

func (w *fakeWallet) GetSellerBalance(context.Context, string) (*domain.SellerBalance, error) {
	return &domain.SellerBalance{}, nil
}

func (w *fakeWallet) RequestWithdrawal(context.Context, *domain.WithdrawalRequest) (*domain.Withdrawal, error) {
	return &domain.Withdrawal{}, nil
}

type fakeStoreRepo struct {
	stores map[string]*domain.Store
}

func (r *fakeStoreRepo) CreateStore(context.Context, *domain.Store) error { return nil }
func (r *fakeStoreRepo) UpdateStore(context.Context, *domain.Store) error { return nil }
func (r *fakeStoreRepo) GetStoreByID(_ context.Context, storeID string) (*domain.Store, error) {
	store, ok := r.stores[storeID]
	if !ok {
		return nil, domain.ErrStoreNotFound
	}
	return store, nil
}
func (r *fakeStoreRepo) GetStoreBySlug(context.Context, string) (*domain.Store, error) {
	return nil, domain.ErrStoreNotFound
}
func (r *fakeStoreRepo) GetStoresBySellerID(context.Context, string) ([]*domain.Store, error) {
	return nil, nil
}
func (r *fakeStoreRepo) GetStores(context.Context, int32, int32) ([]*domain.Store, int64, error) {
	return nil, 0, nil
}
func (r *fakeStoreRepo) SetStoreActive(context.Context, string, bool) error { return nil }

type fakeProductRepo struct {
	products map[string]*domain.Product
}

func (r *fakeProductRepo) CreateProduct(context.Context, *domain.Product) error { return nil }
func (r *fakeProductRepo) UpdateProduct(context.Context, *domain.Product) error { return nil }
func (r *fakeProductRepo) GetProductByID(_ context.Context, productID string) (*domain.Product, error) {
	product, ok := r.products[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}
func (r *fakeProductRepo) GetProductsByStoreID(context.Context, string, bool) ([]*domain.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) SetProductActive(context.Context, string, bool) error { return nil }

type fakeLinkRepo struct {
	links map[string]*domain.PaymentLink
}

func (r *fakeLinkRepo) CreatePaymentLink(context.Context, *domain.PaymentLink) error { return nil }
func (r *fakeLinkRepo) GetPaymentLinkByCode(_ context.Context, code string) (*domain.PaymentLink, error) {
	link, ok := r.links[code]
	if !ok {
		return nil, domain.ErrPaymentLinkNotFound
	}
	return link, nil
}
func (r *fakeLinkRepo) GetPaymentLinkByID(context.Context, string) (*domain.PaymentLink, error) {
	return nil, domain.ErrPaymentLinkNotFound
}
func (r *fakeLinkRepo) GetPaymentLinksBySellerID(context.Context, string) ([]*domain.PaymentLink, error) {
	return nil, nil
}
func (r *fakeLinkRepo) SetPaymentLinkActive(context.Context, string, bool) error { return nil }

func testRules() EscrowRules {
	return EscrowRules{
		FeeRate:       decimal.NewFromFloat(0.05),
		ReleaseWindow: 7 * 24 * time.Hour,
		PaymentTTL:    time.Hour,
		PendingTTL:    72 * time.Hour,
	}
}

type testEnv struct {
	uc     *DefaultOrderUsecase
	orders *fakeOrderRepo
	wallet *fakeWallet
	links  *fakeLinkRepo
}

func newTestEnv() *testEnv {
	orders := newFakeOrderRepo()
	wallet := &fakeWallet{}
	stores := &fakeStoreRepo{stores: map[string]*domain.Store{
		"store-1": {ID: "store-1", SellerID: "seller-1", Name: "Duka", Currency: "KES", Active: true},
	}}
	products := &fakeProductRepo{products: map[string]*domain.Product{
		"prod-1": {ID: "prod-1", StoreID: "store-1", Name: "Jacket", Price: decimal.NewFromInt(5000), Currency: "KES", Active: true},
	}}
	links := &fakeLinkRepo{links: map[string]*domain.PaymentLink{}}

	uc := NewDefaultOrderUsecase(orders, stores, products, links, wallet, nil, nil, nil, nil, testRules(), "escrow.orders")
	return &testEnv{uc: uc, orders: orders, wallet: wallet, links: links}
}

var (
	buyer  = domain.Actor{ID: "buyer-1", Role: domain.RoleBuyer, Name: "Amina"}
	seller = domain.Actor{ID: "seller-1", Role: domain.RoleSeller, Name: "Duka"}
)

func (e *testEnv) checkout(t *testing.T) *domain.Order {
	t.Helper()
	order, err := e.uc.Checkout(context.Background(), buyer, &orderdto.CheckoutInput{
		StoreID:    "store-1",
		ProductID:  "prod-1",
		Quantity:   1,
		PaymentRef: "pay-1",
		Buyer:      orderdto.BuyerParams{BuyerID: buyer.ID, Name: buyer.Name, Phone: "+254700000000"},
	})
	require.NoError(t, err)
	return order
}

func TestCheckoutComputesFees(t *testing.T) {
	env := newTestEnv()
	order := env.checkout(t)

	assert.Equal(t, domain.StatusPending, order.Status)
	assert.True(t, order.Amount.Equal(decimal.NewFromInt(5000)))
	assert.True(t, order.PlatformFee.Equal(decimal.NewFromInt(250)), "fee %s", order.PlatformFee)
	assert.True(t, order.SellerPayout.Equal(decimal.NewFromInt(4750)), "payout %s", order.SellerPayout)
	assert.True(t, order.PlatformFee.Add(order.SellerPayout).Equal(order.Amount))
	assert.NotNil(t, order.PaidAt)
	assert.Equal(t, 1, env.wallet.holds)
}

func TestCheckoutFeeInvariantAcrossAmounts(t *testing.T) {
	rate := decimal.NewFromFloat(0.05)
	for _, raw := range []string{"0.01", "1", "99.99", "5000", "123456.78", "0.10"} {
		amount := decimal.RequireFromString(raw)
		fee, payout := domain.ComputeFees(amount, rate)
		assert.True(t, fee.Add(payout).Equal(amount), "amount %s: fee %s + payout %s", raw, fee, payout)
		assert.True(t, fee.Equal(amount.Mul(rate).Round(2)), "amount %s", raw)
	}
}

func TestCheckoutHoldFailureCancelsOrder(t *testing.T) {
	env := newTestEnv()
	env.wallet.holdErr = errors.New("wallet down")

	_, err := env.uc.Checkout(context.Background(), buyer, &orderdto.CheckoutInput{
		StoreID:   "store-1",
		ProductID: "prod-1",
		Buyer:     orderdto.BuyerParams{BuyerID: buyer.ID, Name: buyer.Name},
	})
	require.Error(t, err)

	require.Len(t, env.orders.orders, 1)
	for _, order := range env.orders.orders {
		assert.Equal(t, domain.StatusCancelled, order.Status)
	}
}

func TestHappyPathToCompletion(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	order := env.checkout(t)

	accepted, err := env.uc.AcceptOrder(ctx, seller, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, accepted.Status)
	require.NotNil(t, accepted.AcceptedAt)

	shipped, err := env.uc.ShipOrder(ctx, seller, &orderdto.ShipOrderInput{
		OrderID:        order.ID,
		CourierName:    "G4S",
		TrackingNumber: "TRK123",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, shipped.Status)
	require.NotNil(t, shipped.ShippedAt)
	require.NotNil(t, shipped.ReleaseAt)
	assert.Equal(t, shipped.ShippedAt.Add(testRules().ReleaseWindow), *shipped.ReleaseAt)
	require.NotNil(t, shipped.ShippingInfo)
	assert.Equal(t, "TRK123", shipped.ShippingInfo.TrackingNumber)

	completed, err := env.uc.ConfirmDelivery(ctx, buyer, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, completed.Status)
	require.NotNil(t, completed.DeliveredAt)
	require.NotNil(t, completed.CompletedAt)

	assert.Equal(t, 1, env.wallet.releases)
	require.NotNil(t, env.wallet.lastRelease)
	assert.True(t, env.wallet.lastRelease.Payout.Equal(decimal.NewFromInt(4750)))
	assert.True(t, env.wallet.lastRelease.PlatformFee.Equal(decimal.NewFromInt(250)))
}

func TestShipFromPendingIsInvalid(t *testing.T) {
	env := newTestEnv()
	order := env.checkout(t)

	_, err := env.uc.ShipOrder(context.Background(), seller, &orderdto.ShipOrderInput{
		OrderID:        order.ID,
		CourierName:    "G4S",
		TrackingNumber: "TRK123",
	})

	var invalid *domain.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, domain.StatusPending, invalid.Status)
	assert.Equal(t, domain.ActionShip, invalid.Action)

	unchanged, getErr := env.orders.GetOrderByID(context.Background(), order.ID)
	require.NoError(t, getErr)
	assert.Equal(t, domain.StatusPending, unchanged.Status)
	assert.Nil(t, unchanged.ShippedAt)
}

func TestShipRequiresCourierAndTracking(t *testing.T) {
	env := newTestEnv()
	order := env.checkout(t)
	_, err := env.uc.AcceptOrder(context.Background(), seller, order.ID)
	require.NoError(t, err)

	tests := []struct {
		name  string
		input *orderdto.ShipOrderInput
	}{
		{"missing courier", &orderdto.ShipOrderInput{OrderID: order.ID, TrackingNumber: "TRK123"}},
		{"missing tracking", &orderdto.ShipOrderInput{OrderID: order.ID, CourierName: "G4S"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.uc.ShipOrder(context.Background(), seller, tt.input)
			var validation *domain.ValidationError
			require.ErrorAs(t, err, &validation)
		})
	}
}

func TestRoleChecks(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	order := env.checkout(t)

	_, err := env.uc.AcceptOrder(ctx, buyer, order.ID)
	var unauthorized *domain.UnauthorizedActionError
	require.ErrorAs(t, err, &unauthorized)

	otherSeller := domain.Actor{ID: "seller-2", Role: domain.RoleSeller}
	_, err = env.uc.AcceptOrder(ctx, otherSeller, order.ID)
	require.ErrorAs(t, err, &unauthorized)

	_, err = env.uc.AcceptOrder(ctx, seller, order.ID)
	require.NoError(t, err)

	_, err = env.uc.ConfirmDelivery(ctx, seller, order.ID)
	require.ErrorAs(t, err, &unauthorized)
}

func TestRejectRefundsEscrow(t *testing.T) {
	env := newTestEnv()
	order := env.checkout(t)

	rejected, err := env.uc.RejectOrder(context.Background(), seller, order.ID, "out of stock")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, rejected.Status)
	assert.Equal(t, "out of stock", rejected.RejectionReason)
	require.NotNil(t, rejected.CancelledAt)
	assert.Equal(t, 1, env.wallet.refunds)
}

func TestTimestampsAreWriteOnce(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	order := env.checkout(t)

	accepted, err := env.uc.AcceptOrder(ctx, seller, order.ID)
	require.NoError(t, err)
	firstAcceptedAt := *accepted.AcceptedAt

	shipped, err := env.uc.ShipOrder(ctx, seller, &orderdto.ShipOrderInput{
		OrderID: order.ID, CourierName: "G4S", TrackingNumber: "TRK123",
	})
	require.NoError(t, err)
	require.NotNil(t, shipped.AcceptedAt)
	assert.Equal(t, firstAcceptedAt, *shipped.AcceptedAt)

	completed, err := env.uc.ConfirmDelivery(ctx, buyer, order.ID)
	require.NoError(t, err)
	firstCompletedAt := *completed.CompletedAt

	_, err = env.uc.ConfirmDelivery(ctx, buyer, order.ID)
	var invalid *domain.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)

	final, err := env.orders.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, firstCompletedAt, *final.CompletedAt)
	assert.Equal(t, firstAcceptedAt, *final.AcceptedAt)
}

func TestAutoReleaseIsIdempotent(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	order := env.checkout(t)
	_, err := env.uc.AcceptOrder(ctx, seller, order.ID)
	require.NoError(t, err)
	_, err = env.uc.ShipOrder(ctx, seller, &orderdto.ShipOrderInput{
		OrderID: order.ID, CourierName: "G4S", TrackingNumber: "TRK123",
	})
	require.NoError(t, err)

	// Push the release deadline into the past.
	past := time.Now().Add(-time.Minute)
	env.orders.orders[order.ID].ReleaseAt = &past

	released, err := env.uc.ReleaseDueOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, released)
	assert.Equal(t, 1, env.wallet.releases)

	released, err = env.uc.ReleaseDueOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, released)
	assert.Equal(t, 1, env.wallet.releases, "second sweep must not double-credit")

	final, err := env.orders.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, final.Status)
}

func TestSweepSkipsOrdersLostToARace(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	order := env.checkout(t)
	_, err := env.uc.AcceptOrder(ctx, seller, order.ID)
	require.NoError(t, err)
	_, err = env.uc.ShipOrder(ctx, seller, &orderdto.ShipOrderInput{
		OrderID: order.ID, CourierName: "G4S", TrackingNumber: "TRK123",
	})
	require.NoError(t, err)

	past := time.Now().Add(-time.Minute)
	env.orders.orders[order.ID].ReleaseAt = &past
	env.orders.conflictNext = true

	released, err := env.uc.ReleaseDueOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, released)
	assert.Equal(t, 0, env.wallet.releases)
}

func TestConcurrentTransitionLosesWithConflict(t *testing.T) {
	env := newTestEnv()
	order := env.checkout(t)
	env.orders.conflictNext = true

	_, err := env.uc.AcceptOrder(context.Background(), seller, order.ID)
	require.ErrorIs(t, err, domain.ErrOrderConflict)
}

func TestLinkCheckoutAndMarkPaid(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.links.links["abc123"] = &domain.PaymentLink{
		ID: "link-1", Code: "abc123", StoreID: "store-1", SellerID: "seller-1",
		ItemName: "Jacket", Amount: decimal.NewFromInt(5000), Currency: "KES", Active: true,
	}

	order, err := env.uc.CheckoutViaLink(ctx, &orderdto.LinkCheckoutInput{
		Code:     "abc123",
		Quantity: 1,
		Buyer:    orderdto.BuyerParams{Name: "Guest", Phone: "+254711111111"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendingPayment, order.Status)
	assert.Empty(t, order.Buyer.BuyerID)
	assert.Nil(t, order.PaidAt)
	assert.Equal(t, 0, env.wallet.holds, "nothing held before payment confirmation")

	require.NoError(t, env.uc.MarkOrderPaid(ctx, order.ID, "mpesa-001"))
	paid, err := env.orders.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, paid.Status)
	require.NotNil(t, paid.PaidAt)
	assert.Equal(t, "mpesa-001", paid.PaymentRef)
	assert.Equal(t, 1, env.wallet.holds)

	// Redelivered confirmation is a no-op.
	require.NoError(t, env.uc.MarkOrderPaid(ctx, order.ID, "mpesa-001"))
	assert.Equal(t, 1, env.wallet.holds)
}

func TestLinkCheckoutRejectsInactiveLink(t *testing.T) {
	env := newTestEnv()
	expired := time.Now().Add(-time.Hour)
	env.links.links["dead"] = &domain.PaymentLink{
		ID: "link-2", Code: "dead", StoreID: "store-1", SellerID: "seller-1",
		ItemName: "Jacket", Amount: decimal.NewFromInt(100), Currency: "KES",
		Active: true, ExpiresAt: &expired,
	}

	_, err := env.uc.CheckoutViaLink(context.Background(), &orderdto.LinkCheckoutInput{
		Code:  "dead",
		Buyer: orderdto.BuyerParams{Name: "Guest", Phone: "+254711111111"},
	})
	require.ErrorIs(t, err, domain.ErrLinkInactive)
}

func TestExpirySweepRefundsOnlyPaidOrders(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.links.links["abc123"] = &domain.PaymentLink{
		ID: "link-1", Code: "abc123", StoreID: "store-1", SellerID: "seller-1",
		ItemName: "Jacket", Amount: decimal.NewFromInt(500), Currency: "KES", Active: true,
	}

	paidOrder := env.checkout(t)
	unpaidOrder, err := env.uc.CheckoutViaLink(ctx, &orderdto.LinkCheckoutInput{
		Code:  "abc123",
		Buyer: orderdto.BuyerParams{Name: "Guest", Email: "guest@example.com"},
	})
	require.NoError(t, err)

	past := time.Now().Add(-time.Minute)
	env.orders.orders[paidOrder.ID].ExpiresAt = &past
	env.orders.orders[unpaidOrder.ID].ExpiresAt = &past

	cancelled, err := env.uc.CancelExpiredOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, cancelled)
	assert.Equal(t, 1, env.wallet.refunds, "only the paid order is refunded")

	for _, id := range []string{paidOrder.ID, unpaidOrder.ID} {
		order, err := env.orders.GetOrderByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, order.Status)
	}
}

func TestSellerOrdersFilterAndSort(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	now := time.Now()
	amounts := []int64{100, 500, 250}
	for i, amount := range amounts {
		fee, payout := domain.ComputeFees(decimal.NewFromInt(amount), testRules().FeeRate)
		env.orders.orders[orderID(i)] = &domain.Order{
			ID:           orderID(i),
			StoreID:      "store-1",
			SellerID:     seller.ID,
			Buyer:        domain.Buyer{BuyerID: "buyer-1", Name: "Amina"},
			ItemName:     "Jacket",
			Quantity:     1,
			Amount:       decimal.NewFromInt(amount),
			Currency:     "KES",
			PlatformFee:  fee,
			SellerPayout: payout,
			Status:       domain.StatusPending,
			CreatedAt:    now.Add(time.Duration(i) * time.Minute),
		}
	}

	output, err := env.uc.GetSellerOrders(ctx, seller, &orderdto.SellerOrdersInput{SortBy: "amount-high"})
	require.NoError(t, err)
	require.Len(t, output.Orders, 3)
	assert.True(t, output.Orders[0].Amount.Equal(decimal.NewFromInt(500)))
	assert.True(t, output.Orders[1].Amount.Equal(decimal.NewFromInt(250)))
	assert.True(t, output.Orders[2].Amount.Equal(decimal.NewFromInt(100)))

	_, err = env.uc.GetSellerOrders(ctx, seller, &orderdto.SellerOrdersInput{Status: "bogus"})
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
}

func orderID(i int) string {
	return []string{"order-a", "order-b", "order-c"}[i]
}
