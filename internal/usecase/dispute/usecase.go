package usecase

import (
	"context"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/kafka"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/metrics"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/notifier"
	disputedto "github.com/dukalink/dukalink-escrow-service/internal/usecase/dto/dispute"
)

type DisputeUsecase interface {
	OpenDispute(ctx context.Context, actor domain.Actor, input *disputedto.OpenDisputeInput) (*domain.Dispute, error)
	ResolveDispute(ctx context.Context, actor domain.Actor, input *disputedto.ResolveDisputeInput) (*domain.Dispute, error)
	AssignAdmin(ctx context.Context, actor domain.Actor, disputeID string) error
	UpdateDisputeStatus(ctx context.Context, actor domain.Actor, disputeID, status string) error
	PostMessage(ctx context.Context, actor domain.Actor, input *disputedto.PostMessageInput) (*domain.DisputeMessage, error)
	GetMessages(ctx context.Context, actor domain.Actor, disputeID string) ([]*domain.DisputeMessage, error)
	GetDisputeByID(ctx context.Context, actor domain.Actor, disputeID string) (*domain.Dispute, error)
	GetDisputeByOrderID(ctx context.Context, actor domain.Actor, orderID string) (*domain.Dispute, error)
	GetDisputes(ctx context.Context, input *disputedto.GetDisputesInput) (*disputedto.DisputesOutput, error)
}

type DefaultDisputeUsecase struct {
	DisputeRepo  domain.DisputeRepository
	OrderRepo    domain.OrderRepository
	Wallet       domain.WalletService
	Publisher    kafka.DisputeEventPublisher
	Notifier     *notifier.Notifier
	Metrics      *metrics.EscrowMetrics
	DisputeTopic string
}

func NewDefaultDisputeUsecase(
	disputeRepo domain.DisputeRepository,
	orderRepo domain.OrderRepository,
	wallet domain.WalletService,
	kafkaPublisher kafka.DisputeEventPublisher,
	eventNotifier *notifier.Notifier,
	escrowMetrics *metrics.EscrowMetrics,
	disputeTopic string) *DefaultDisputeUsecase {

	return &DefaultDisputeUsecase{
		DisputeRepo:  disputeRepo,
		OrderRepo:    orderRepo,
		Wallet:       wallet,
		Publisher:    kafkaPublisher,
		Notifier:     eventNotifier,
		Metrics:      escrowMetrics,
		DisputeTopic: disputeTopic,
	}
}
