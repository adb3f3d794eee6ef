package setup

import (
	httpdelivery "github.com/dukalink/dukalink-escrow-service/internal/delivery/http"
	"github.com/dukalink/dukalink-escrow-service/internal/delivery/http/handlers"
	"github.com/dukalink/dukalink-escrow-service/internal/delivery/http/middleware"
	"github.com/dukalink/dukalink-escrow-service/internal/usecase"
	disputeusecase "github.com/dukalink/dukalink-escrow-service/internal/usecase/dispute"
	orderusecase "github.com/dukalink/dukalink-escrow-service/internal/usecase/order"
	"github.com/shopspring/decimal"
)

type UseCases struct {
	Orders         orderusecase.OrderUsecase
	Disputes       disputeusecase.DisputeUsecase
	Stores         usecase.StoreUsecase
	Products       usecase.ProductUsecase
	PaymentLinks   usecase.PaymentLinkUsecase
	PaymentMethods usecase.PaymentMethodUsecase
	Wallet         usecase.WalletUsecase
}

func InitializeUseCases(deps *Dependencies) *UseCases {
	cfg := deps.Config
	repos := deps.Repositories

	rules := orderusecase.EscrowRules{
		FeeRate:       decimal.NewFromFloat(cfg.Escrow.FeeRate),
		ReleaseWindow: cfg.Escrow.ReleaseWindow,
		PaymentTTL:    cfg.Escrow.PaymentTTL,
		PendingTTL:    cfg.Escrow.PendingTTL,
	}

	orders := orderusecase.NewDefaultOrderUsecase(
		repos.OrderRepo,
		repos.StoreRepo,
		repos.ProductRepo,
		repos.LinkRepo,
		deps.Wallet,
		deps.AuditLog,
		deps.Publisher,
		deps.Notifier,
		deps.Metrics,
		rules,
		cfg.KafkaService.OrderTopic,
	)

	disputes := disputeusecase.NewDefaultDisputeUsecase(
		repos.DisputeRepo,
		repos.OrderRepo,
		deps.Wallet,
		deps.Publisher,
		deps.Notifier,
		deps.Metrics,
		cfg.KafkaService.DisputeTopic,
	)

	return &UseCases{
		Orders:         orders,
		Disputes:       disputes,
		Stores:         usecase.NewDefaultStoreUsecase(repos.StoreRepo, repos.ProductRepo, deps.Cache),
		Products:       usecase.NewDefaultProductUsecase(repos.ProductRepo, repos.StoreRepo, deps.Cache),
		PaymentLinks:   usecase.NewDefaultPaymentLinkUsecase(repos.LinkRepo, repos.StoreRepo, repos.ProductRepo, deps.Cache),
		PaymentMethods: usecase.NewDefaultPaymentMethodUsecase(repos.MethodRepo),
		Wallet:         usecase.NewDefaultWalletUsecase(deps.Wallet, repos.MethodRepo),
	}
}

// InitializeServer assembles the HTTP delivery layer on top of the
// usecases.
func InitializeServer(deps *Dependencies, ucs *UseCases) *httpdelivery.Server {
	auth := middleware.NewAuth(deps.Config.Auth.JWTSecret)
	return httpdelivery.NewServer(&httpdelivery.Handlers{
		Orders:         handlers.NewOrderHandler(ucs.Orders),
		Disputes:       handlers.NewDisputeHandler(ucs.Disputes),
		Stores:         handlers.NewStoreHandler(ucs.Stores),
		Products:       handlers.NewProductHandler(ucs.Products),
		PaymentLinks:   handlers.NewPaymentLinkHandler(ucs.PaymentLinks),
		PaymentMethods: handlers.NewPaymentMethodHandler(ucs.PaymentMethods),
		Wallet:         handlers.NewWalletHandler(ucs.Wallet),
	}, auth)
}
