package background

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/dukalink/dukalink-escrow-service/internal/config"
	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	"github.com/dukalink/dukalink-escrow-service/internal/infrastructure/kafka"
	orderusecase "github.com/dukalink/dukalink-escrow-service/internal/usecase/order"
)

type BackgroundTasks struct {
	OrderUsecase orderusecase.OrderUsecase
	Subscriber   *kafka.DefaultKafkaSubscriber
	Kafka        config.KafkaService
	Escrow       config.Escrow
}

func NewBackgroundTasks(orderUC orderusecase.OrderUsecase, subscriber *kafka.DefaultKafkaSubscriber, cfg *config.EscrowConfig) *BackgroundTasks {
	return &BackgroundTasks{
		OrderUsecase: orderUC,
		Subscriber:   subscriber,
		Kafka:        cfg.KafkaService,
		Escrow:       cfg.Escrow,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startAutoRelease(ctx)
	go bt.startExpirySweep(ctx)
	go bt.startPaymentConsumer(ctx)
}

// startAutoRelease completes shipped orders whose release window has
// elapsed. The sweep is idempotent, so a crash between ticks loses nothing.
func (bt *BackgroundTasks) startAutoRelease(ctx context.Context) {
	ticker := time.NewTicker(bt.Escrow.ReleaseSweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := bt.OrderUsecase.ReleaseDueOrders(ctx); err != nil {
				log.Printf("auto-release sweep error: %v\n", err)
			}
		}
	}
}

func (bt *BackgroundTasks) startExpirySweep(ctx context.Context) {
	ticker := time.NewTicker(bt.Escrow.ExpireSweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := bt.OrderUsecase.CancelExpiredOrders(ctx); err != nil {
				log.Printf("expiry sweep error: %v\n", err)
			}
		}
	}
}

// startPaymentConsumer bridges the payment gateway: confirmed charges move
// pending_payment orders to pending, failed ones cancel them. Confirmations
// arrive at least once; MarkOrderPaid absorbs redeliveries.
func (bt *BackgroundTasks) startPaymentConsumer(ctx context.Context) {
	messages, err := bt.Subscriber.Subscribe(ctx, bt.Kafka.PaymentTopic, bt.Kafka.ConsumerGroup)
	if err != nil {
		log.Printf("payment consumer failed to subscribe: %v\n", err)
		return
	}

	for msg := range messages {
		var event kafka.PaymentEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Printf("payment consumer: bad event: %v\n", err)
			continue
		}
		if event.OrderID == "" {
			continue
		}

		switch event.Status {
		case "confirmed":
			if err := bt.OrderUsecase.MarkOrderPaid(ctx, event.OrderID, event.PaymentRef); err != nil {
				log.Printf("payment consumer: mark paid %s: %v\n", event.OrderID, err)
			}
		case "failed":
			if _, err := bt.OrderUsecase.CancelOrder(ctx, domain.SystemActor(), event.OrderID); err != nil {
				log.Printf("payment consumer: cancel %s: %v\n", event.OrderID, err)
			}
		default:
			log.Printf("payment consumer: unknown status %q for order %s\n", event.Status, event.OrderID)
		}
	}
}
