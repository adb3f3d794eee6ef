package setup

import (
	"fmt"
	"log"

	"github.com/dukalink/dukalink-escrow-service/internal/client/wallet"
	"github.com/dukalink/dukalink-escrow-service/internal/config"
	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/kafka"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/logger"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/metrics"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/migrate"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/notifier"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/postgres"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/postgres/repository"
	redisinfra "github.com/dukalink/dukalink-escrow-service/internal/infrastructure/redis"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config     *config.EscrowConfig
	DB         *gorm.DB
	Publisher  *kafka.DefaultKafkaPublisher
	Subscriber *kafka.DefaultKafkaSubscriber
	Cache      *redisinfra.Cache
	Wallet     domain.WalletService
	Notifier   *notifier.Notifier
	AuditLog   logger.OrderAuditLog
	Metrics    *metrics.EscrowMetrics

	Repositories *Repositories
}

type Repositories struct {
	OrderRepo   domain.OrderRepository
	DisputeRepo domain.DisputeRepository
	StoreRepo   domain.StoreRepository
	ProductRepo domain.ProductRepository
	LinkRepo    domain.PaymentLinkRepository
	MethodRepo  domain.PaymentMethodRepository
}

// InitializeDependencies brings up everything below the usecases: database
// with migrations applied, kafka, redis, the wallet and notifier clients,
// and the repository set.
func InitializeDependencies(cfg *config.EscrowConfig) (*Dependencies, error) {
	db := postgres.MustInitDB(cfg)
	if err := migrate.RunMigrations(db, cfg.Migrations.Path); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	log.Println("migrations applied")

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := kafka.NewDefaultKafkaPublisher(brokers)
	sub := kafka.NewDefaultKafkaSubscriber(brokers)

	cache := redisinfra.NewCache(redisinfra.NewClient(cfg.Redis), cfg.Escrow.StorefrontCacheTTL)

	repos := &Repositories{
		OrderRepo:   repository.NewDefaultOrderRepository(db),
		DisputeRepo: repository.NewDefaultDisputeRepository(db),
		StoreRepo:   repository.NewDefaultStoreRepository(db),
		ProductRepo: repository.NewDefaultProductRepository(db),
		LinkRepo:    repository.NewDefaultPaymentLinkRepository(db),
		MethodRepo:  repository.NewDefaultPaymentMethodRepository(db),
	}

	return &Dependencies{
		Config:       cfg,
		DB:           db,
		Publisher:    pub,
		Subscriber:   sub,
		Cache:        cache,
		Wallet:       wallet.NewClient(cfg.WalletService.BaseURL),
		Notifier:     notifier.New(cfg.NotifierService.BaseURL),
		AuditLog:     logger.NewPGOrderAuditLog(db),
		Metrics:      metrics.NewEscrowMetrics(),
		Repositories: repos,
	}, nil
}
