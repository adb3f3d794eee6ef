package usecase

import (
	"context"
	"time"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/kafka"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/logger"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/metrics"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/notifier"
	orderdto "github.com/dukalink/dukalink-escrow-service/internal/usecase/dto/order"
	"github.com/shopspring/decimal"
)

type OrderUsecase interface {
	Checkout(ctx context.Context, actor domain.Actor, input *orderdto.CheckoutInput) (*domain.Order, error)
	CheckoutViaLink(ctx context.Context, input *orderdto.LinkCheckoutInput) (*domain.Order, error)

	MarkOrderPaid(ctx context.Context, orderID, paymentRef string) error
	AcceptOrder(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error)
	RejectOrder(ctx context.Context, actor domain.Actor, orderID, reason string) (*domain.Order, error)
	CancelOrder(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error)
	ShipOrder(ctx context.Context, actor domain.Actor, input *orderdto.ShipOrderInput) (*domain.Order, error)
	AppendShippingProof(ctx context.Context, actor domain.Actor, orderID, imageURL string) error
	MarkDelivered(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error)
	ConfirmDelivery(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error)

	ReleaseDueOrders(ctx context.Context) (int, error)
	CancelExpiredOrders(ctx context.Context) (int, error)

	GetOrderByID(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error)
	GetOrderTimeline(ctx context.Context, actor domain.Actor, orderID string) ([]domain.TimelineEvent, error)
	GetOrderEvents(ctx context.Context, actor domain.Actor, orderID string) ([]logger.OrderAuditEntry, error)
	GetBuyerOrders(ctx context.Context, actor domain.Actor) ([]*domain.Order, error)
	GetSellerOrders(ctx context.Context, actor domain.Actor, input *orderdto.SellerOrdersInput) (*orderdto.OrdersOutput, error)
	GetAllOrders(ctx context.Context, input *orderdto.AdminOrdersInput) (*orderdto.OrdersOutput, error)
}

// EscrowRules are the money and timing knobs applied to every order. FeeRate
// is converted from config once so all fee math runs on decimals.
type EscrowRules struct {
	FeeRate       decimal.Decimal
	ReleaseWindow time.Duration
	PaymentTTL    time.Duration
	PendingTTL    time.Duration
}

type DefaultOrderUsecase struct {
	OrderRepo   domain.OrderRepository
	StoreRepo   domain.StoreRepository
	ProductRepo domain.ProductRepository
	LinkRepo    domain.PaymentLinkRepository
	Wallet      domain.WalletService
	AuditLog    logger.OrderAuditLog
	Publisher   kafka.OrderEventPublisher
	Notifier    *notifier.Notifier
	Metrics     *metrics.EscrowMetrics
	Rules       EscrowRules
	OrderTopic  string
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	storeRepo domain.StoreRepository,
	productRepo domain.ProductRepository,
	linkRepo domain.PaymentLinkRepository,
	wallet domain.WalletService,
	auditLog logger.OrderAuditLog,
	kafkaPublisher kafka.OrderEventPublisher,
	eventNotifier *notifier.Notifier,
	escrowMetrics *metrics.EscrowMetrics,
	rules EscrowRules,
	orderTopic string) *DefaultOrderUsecase {

	return &DefaultOrderUsecase{
		OrderRepo:   orderRepo,
		StoreRepo:   storeRepo,
		ProductRepo: productRepo,
		LinkRepo:    linkRepo,
		Wallet:      wallet,
		AuditLog:    auditLog,
		Publisher:   kafkaPublisher,
		Notifier:    eventNotifier,
		Metrics:     escrowMetrics,
		Rules:       rules,
		OrderTopic:  orderTopic,
	}
}
