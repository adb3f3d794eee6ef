package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	disputedto "github.com/dukalink/dukalink-escrow-service/internal/usecase/dto/dispute"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOrderRepo keeps orders in memory and mirrors the repository's guarded
// update: a transition applies only while the row still holds op.From, and
// the wallet call runs before any state changes.
type fakeOrderRepo struct {
	orders map[string]*domain.Order
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

func (r *fakeOrderRepo) AppendShippingProof(context.Context, string, string) error { return nil }

func (r *fakeOrderRepo) GetOrdersBySellerID(context.Context, string) ([]*domain.Order, error) {
	return nil, nil
}

func (r *fakeOrderRepo) GetOrdersByBuyerID(context.Context, string) ([]*domain.Order, error) {
	return nil, nil
}

func (r *fakeOrderRepo) GetOrdersByStoreID(context.Context, string) ([]*domain.Order, error) {
	return nil, nil
}

func (r *fakeOrderRepo) GetAllOrders(context.Context, *domain.AdminOrdersFilter, int32, int32) ([]*domain.Order, int64, error) {
	return nil, 0, nil
}

func (r *fakeOrderRepo) FindExpiredOrders(context.Context, time.Time) ([]*domain.Order, error) {
	return nil, nil
}

func (r *fakeOrderRepo) FindReleaseDueOrders(context.Context, time.Time) ([]*domain.Order, error) {
	return nil, nil
}

type fakeWallet struct {
	releases    int
	refunds     int
	lastRelease *domain.ReleaseFundsRequest
}

func (w *fakeWallet) Hold(context.Context, string, string, decimal.Decimal, string) error {
	return nil
}

func (w *fakeWallet) Release(_ context.Context, req *domain.ReleaseFundsRequest) error {
	w.releases++
	w.lastRelease = req
	return nil
}

func (w *fakeWallet) Refund(context.Context, string, string, decimal.Decimal, string) error {
	w.refunds++
	return nil
}

func (w *fakeWallet) GetSellerBalance(context.Context, string) (*domain.SellerBalance, error) {
	return &domain.SellerBalance{}, nil
}

func (w *fakeWallet) RequestWithdrawal(context.Context, *domain.WithdrawalRequest) (*domain.Withdrawal, error) {
	return &domain.Withdrawal{}, nil
}

// fakeDisputeRepo keeps disputes in memory. OpenDispute and ResolveDispute
// mirror the real repository's transactional coupling with the order row:
// the order flips status only while it still holds the expected one, and a
// failing wallet call rolls everything back.
type fakeDisputeRepo struct {
	disputes map[string]*domain.Dispute
	byOrder  map[string]string
	messages map[string][]*domain.DisputeMessage
	orders   *fakeOrderRepo
}

func newFakeDisputeRepo(orders *fakeOrderRepo) *fakeDisputeRepo {
	return &fakeDisputeRepo{
		disputes: make(map[string]*domain.Dispute),
		byOrder:  make(map[string]string),
		messages: make(map[string][]*domain.DisputeMessage),
		orders:   orders,
	}
}

func (r *fakeDisputeRepo) OpenDispute(ctx context.Context, dispute *domain.Dispute, orderFrom domain.OrderStatus) error {
	err := r.orders.ApplyTransition(ctx, &domain.TransitionOp{
		OrderID: dispute.OrderID,
		Action:  domain.ActionOpenDispute,
		From:    orderFrom,
		To:      domain.StatusDisputed,
		At:      dispute.OpenedAt,
	})
	if err != nil {
		return err
	}
	cp := *dispute
	r.disputes[dispute.ID] = &cp
	r.byOrder[dispute.OrderID] = dispute.ID
	return nil
}

func (r *fakeDisputeRepo) GetDisputeByID(_ context.Context, disputeID string) (*domain.Dispute, error) {
	dispute, ok := r.disputes[disputeID]
	if !ok {
		return nil, domain.ErrDisputeNotFound
	}
	cp := *dispute
	return &cp, nil
}

func (r *fakeDisputeRepo) GetDisputeByOrderID(_ context.Context, orderID string) (*domain.Dispute, error) {
	id, ok := r.byOrder[orderID]
	if !ok {
		return nil, domain.ErrDisputeNotFound
	}
	cp := *r.disputes[id]
	return &cp, nil
}

func (r *fakeDisputeRepo) UpdateDisputeStatus(_ context.Context, disputeID string, status domain.DisputeStatus) error {
	dispute, ok := r.disputes[disputeID]
	if !ok {
		return domain.ErrDisputeNotFound
	}
	dispute.Status = status
	dispute.UpdatedAt = time.Now()
	return nil
}

func (r *fakeDisputeRepo) AssignAdmin(_ context.Context, disputeID, adminID string) error {
	dispute, ok := r.disputes[disputeID]
	if !ok {
		return domain.ErrDisputeNotFound
	}
	dispute.AssignedAdminID = adminID
	dispute.Status = domain.DisputeUnderReview
	dispute.UpdatedAt = time.Now()
	return nil
}

func (r *fakeDisputeRepo) ResolveDispute(ctx context.Context, op *domain.ResolutionOp) error {
	dispute, ok := r.disputes[op.DisputeID]
	if !ok {
		return domain.ErrDisputeNotFound
	}
	if err := r.orders.ApplyTransition(ctx, op.OrderOp); err != nil {
		return err
	}
	dispute.Status = op.DisputeStatus
	dispute.Resolution = op.Resolution
	dispute.ResolvedBy = op.ResolvedBy
	at := op.At
	dispute.ResolvedAt = &at
	dispute.UpdatedAt = at
	return nil
}

func (r *fakeDisputeRepo) AppendMessage(_ context.Context, message *domain.DisputeMessage) error {
	message.ID = uint(len(r.messages[message.DisputeID]) + 1)
	r.messages[message.DisputeID] = append(r.messages[message.DisputeID], message)
	return nil
}

func (r *fakeDisputeRepo) GetMessages(_ context.Context, disputeID string) ([]*domain.DisputeMessage, error) {
	return r.messages[disputeID], nil
}

func (r *fakeDisputeRepo) GetDisputes(_ context.Context, filter *domain.DisputesFilter, _, _ int32) ([]*domain.Dispute, int64, error) {
	var out []*domain.Dispute
	for _, dispute := range r.disputes {
		if filter != nil && filter.Status != "" && dispute.Status != filter.Status {
			continue
		}
		cp := *dispute
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

var (
	disputeBuyer  = domain.Actor{ID: "buyer-1", Role: domain.RoleBuyer, Name: "Amina"}
	disputeSeller = domain.Actor{ID: "seller-1", Role: domain.RoleSeller, Name: "Duka"}
	admin         = domain.Actor{ID: "admin-1", Role: domain.RoleAdmin, Name: "Ops"}
)

type disputeEnv struct {
	uc       *DefaultDisputeUsecase
	orders   *fakeOrderRepo
	disputes *fakeDisputeRepo
	wallet   *fakeWallet
}

func newDisputeEnv() *disputeEnv {
	orders := newFakeOrderRepo()
	disputes := newFakeDisputeRepo(orders)
	wallet := &fakeWallet{}
	uc := NewDefaultDisputeUsecase(disputes, orders, wallet, nil, nil, nil, "escrow.disputes")
	return &disputeEnv{uc: uc, orders: orders, disputes: disputes, wallet: wallet}
}

func (e *disputeEnv) seedOrder(status domain.OrderStatus) *domain.Order {
	amount := decimal.NewFromInt(2000)
	fee, payout := domain.ComputeFees(amount, decimal.NewFromFloat(0.05))
	now := time.Now()
	order := &domain.Order{
		ID:           "order-1",
		StoreID:      "store-1",
		SellerID:     disputeSeller.ID,
		Buyer:        domain.Buyer{BuyerID: disputeBuyer.ID, Name: "Amina", Phone: "+254700000000"},
		ItemName:     "Jacket",
		Quantity:     1,
		Amount:       amount,
		Currency:     "KES",
		PlatformFee:  fee,
		SellerPayout: payout,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
		PaidAt:       &now,
	}
	e.orders.orders[order.ID] = order
	return order
}

func (e *disputeEnv) openDispute(t *testing.T, actor domain.Actor) *domain.Dispute {
	t.Helper()
	dispute, err := e.uc.OpenDispute(context.Background(), actor, &disputedto.OpenDisputeInput{
		OrderID: "order-1",
		Reason:  "item not as described",
	})
	require.NoError(t, err)
	return dispute
}

func TestOpenDisputeFreezesOrder(t *testing.T) {
	env := newDisputeEnv()
	env.seedOrder(domain.StatusShipped)

	dispute := env.openDispute(t, disputeBuyer)
	assert.Equal(t, domain.DisputeOpen, dispute.Status)
	assert.Equal(t, disputeBuyer.ID, dispute.OpenedByID)
	assert.Equal(t, domain.RoleBuyer, dispute.OpenedByRole)
	assert.Len(t, dispute.ID, 15)

	order, err := env.orders.GetOrderByID(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDisputed, order.Status)
	require.NotNil(t, order.DisputedAt)
}

func TestSellerMayOpenDispute(t *testing.T) {
	env := newDisputeEnv()
	env.seedOrder(domain.StatusDelivered)

	dispute := env.openDispute(t, disputeSeller)
	assert.Equal(t, domain.RoleSeller, dispute.OpenedByRole)
}

func TestOpenDisputeTwiceFails(t *testing.T) {
	env := newDisputeEnv()
	env.seedOrder(domain.StatusShipped)
	env.openDispute(t, disputeBuyer)

	_, err := env.uc.OpenDispute(context.Background(), disputeBuyer, &disputedto.OpenDisputeInput{
		OrderID: "order-1",
		Reason:  "still unhappy",
	})
	require.ErrorIs(t, err, domain.ErrDisputeAlreadyOpen)
}

func TestOpenDisputeOnCompletedOrderFails(t *testing.T) {
	env := newDisputeEnv()
	env.seedOrder(domain.StatusCompleted)

	_, err := env.uc.OpenDispute(context.Background(), disputeBuyer, &disputedto.OpenDisputeInput{
		OrderID: "order-1",
		Reason:  "too late",
	})
	var invalid *domain.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
}

func TestOpenDisputeRequiresParty(t *testing.T) {
	env := newDisputeEnv()
	env.seedOrder(domain.StatusShipped)

	stranger := domain.Actor{ID: "buyer-9", Role: domain.RoleBuyer}
	_, err := env.uc.OpenDispute(context.Background(), stranger, &disputedto.OpenDisputeInput{
		OrderID: "order-1",
		Reason:  "not mine",
	})
	var unauthorized *domain.UnauthorizedActionError
	require.ErrorAs(t, err, &unauthorized)
}

func TestResolveForBuyerRefunds(t *testing.T) {
	env := newDisputeEnv()
	env.seedOrder(domain.StatusShipped)
	dispute := env.openDispute(t, disputeBuyer)

	resolved, err := env.uc.ResolveDispute(context.Background(), admin, &disputedto.ResolveDisputeInput{
		DisputeID:  dispute.ID,
		Winner:     "buyer",
		Resolution: "seller shipped the wrong item",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DisputeResolvedBuyer, resolved.Status)
	assert.Equal(t, admin.ID, resolved.ResolvedBy)
	require.NotNil(t, resolved.ResolvedAt)

	order, err := env.orders.GetOrderByID(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRefunded, order.Status)
	require.NotNil(t, order.RefundedAt)
	assert.Equal(t, 1, env.wallet.refunds)
	assert.Equal(t, 0, env.wallet.releases)
}

func TestResolveForSellerReleases(t *testing.T) {
	env := newDisputeEnv()
	env.seedOrder(domain.StatusShipped)
	dispute := env.openDispute(t, disputeSeller)

	resolved, err := env.uc.ResolveDispute(context.Background(), admin, &disputedto.ResolveDisputeInput{
		DisputeID:  dispute.ID,
		Winner:     "seller",
		Resolution: "evidence supports delivery",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DisputeResolvedSeller, resolved.Status)

	order, err := env.orders.GetOrderByID(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, order.Status)
	require.NotNil(t, order.CompletedAt)
	require.NotNil(t, order.DeliveredAt)
	assert.Equal(t, 1, env.wallet.releases)
	require.NotNil(t, env.wallet.lastRelease)
	assert.True(t, env.wallet.lastRelease.Payout.Equal(order.SellerPayout))
}

func TestResolveRequiresAdmin(t *testing.T) {
	env := newDisputeEnv()
	env.seedOrder(domain.StatusShipped)
	dispute := env.openDispute(t, disputeBuyer)

	for _, actor := range []domain.Actor{disputeBuyer, disputeSeller} {
		_, err := env.uc.ResolveDispute(context.Background(), actor, &disputedto.ResolveDisputeInput{
			DisputeID: dispute.ID,
			Winner:    "buyer",
		})
		var unauthorized *domain.UnauthorizedActionError
		require.ErrorAs(t, err, &unauthorized)
	}
}

func TestResolveTwiceFails(t *testing.T) {
	env := newDisputeEnv()
	env.seedOrder(domain.StatusShipped)
	dispute := env.openDispute(t, disputeBuyer)

	_, err := env.uc.ResolveDispute(context.Background(), admin, &disputedto.ResolveDisputeInput{
		DisputeID: dispute.ID, Winner: "buyer", Resolution: "refund",
	})
	require.NoError(t, err)

	_, err = env.uc.ResolveDispute(context.Background(), admin, &disputedto.ResolveDisputeInput{
		DisputeID: dispute.ID, Winner: "seller", Resolution: "changed my mind",
	})
	require.ErrorIs(t, err, domain.ErrDisputeResolved)
	assert.Equal(t, 1, env.wallet.refunds)
	assert.Equal(t, 0, env.wallet.releases)
}

func TestResolveRejectsUnknownWinner(t *testing.T) {
	env := newDisputeEnv()
	env.seedOrder(domain.StatusShipped)
	dispute := env.openDispute(t, disputeBuyer)

	_, err := env.uc.ResolveDispute(context.Background(), admin, &disputedto.ResolveDisputeInput{
		DisputeID: dispute.ID, Winner: "platform",
	})
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestAssignAdminClaimsDispute(t *testing.T) {
	env := newDisputeEnv()
	env.seedOrder(domain.StatusShipped)
	dispute := env.openDispute(t, disputeBuyer)

	require.NoError(t, env.uc.AssignAdmin(context.Background(), admin, dispute.ID))

	updated, err := env.disputes.GetDisputeByID(context.Background(), dispute.ID)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, updated.AssignedAdminID)
	assert.Equal(t, domain.DisputeUnderReview, updated.Status)

	err = env.uc.AssignAdmin(context.Background(), disputeSeller, dispute.ID)
	var unauthorized *domain.UnauthorizedActionError
	require.ErrorAs(t, err, &unauthorized)
}

func TestUpdateDisputeStatusRules(t *testing.T) {
	env := newDisputeEnv()
	env.seedOrder(domain.StatusShipped)
	dispute := env.openDispute(t, disputeBuyer)
	ctx := context.Background()

	require.NoError(t, env.uc.UpdateDisputeStatus(ctx, admin, dispute.ID, "awaiting_seller"))

	err := env.uc.UpdateDisputeStatus(ctx, admin, dispute.ID, "resolved_buyer")
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation, "verdicts must go through resolution")

	err = env.uc.UpdateDisputeStatus(ctx, admin, dispute.ID, "closed")
	require.ErrorAs(t, err, &validation, "cannot close before a verdict")

	_, err = env.uc.ResolveDispute(ctx, admin, &disputedto.ResolveDisputeInput{
		DisputeID: dispute.ID, Winner: "buyer", Resolution: "refund",
	})
	require.NoError(t, err)

	require.NoError(t, env.uc.UpdateDisputeStatus(ctx, admin, dispute.ID, "closed"))

	err = env.uc.UpdateDisputeStatus(ctx, admin, dispute.ID, "under_review")
	require.ErrorIs(t, err, domain.ErrDisputeResolved)
}

func TestDisputeMessages(t *testing.T) {
	env := newDisputeEnv()
	env.seedOrder(domain.StatusShipped)
	dispute := env.openDispute(t, disputeBuyer)
	ctx := context.Background()

	_, err := env.uc.PostMessage(ctx, disputeBuyer, &disputedto.PostMessageInput{
		DisputeID: dispute.ID, Body: "The jacket arrived torn.",
	})
	require.NoError(t, err)
	_, err = env.uc.PostMessage(ctx, disputeSeller, &disputedto.PostMessageInput{
		DisputeID: dispute.ID, Body: "It left the store intact, photos attached.",
	})
	require.NoError(t, err)

	messages, err := env.uc.GetMessages(ctx, admin, dispute.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, domain.RoleBuyer, messages[0].SenderRole)
	assert.Equal(t, domain.RoleSeller, messages[1].SenderRole)

	stranger := domain.Actor{ID: "buyer-9", Role: domain.RoleBuyer}
	_, err = env.uc.GetMessages(ctx, stranger, dispute.ID)
	var unauthorized *domain.UnauthorizedActionError
	require.ErrorAs(t, err, &unauthorized)

	_, err = env.uc.PostMessage(ctx, disputeBuyer, &disputedto.PostMessageInput{DisputeID: dispute.ID})
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
}
