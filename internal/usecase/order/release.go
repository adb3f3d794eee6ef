package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
)

// ReleaseDueOrders completes every shipped order whose release window has
// elapsed. Each order rides the status-guarded transition, so a buyer
// confirming or disputing mid-sweep simply wins the race and the sweep
// moves on. Running the sweep twice cannot release twice.
func (uc *DefaultOrderUsecase) ReleaseDueOrders(ctx context.Context) (int, error) {
	start := time.Now()
	defer func() {
		uc.recordSweep("auto_release", time.Since(start).Seconds())
	}()

	due, err := uc.OrderRepo.FindReleaseDueOrders(ctx, start)
	if err != nil {
		return 0, err
	}

	released := 0
	for _, order := range due {
		op := &domain.TransitionOp{
			Action: domain.ActionAutoRelease,
			To:     domain.StatusCompleted,
			Actor:  domain.SystemActor(),
			Note:   "release window elapsed",
			Wallet: uc.releaseFunds(ctx, order),
		}
		completed, err := uc.applyTransition(ctx, order, op)
		if err != nil {
			var invalid *domain.InvalidTransitionError
			if errors.Is(err, domain.ErrOrderConflict) || errors.As(err, &invalid) {
				slog.Info("auto release skipped, order moved concurrently", "order_id", order.ID)
				continue
			}
			slog.Error("auto release failed", "order_id", order.ID, "error", err.Error())
			continue
		}
		released++
		uc.recordAutoRelease(completed)
		uc.recordOrderCompleted(completed)
	}

	if released > 0 {
		slog.Info("auto release sweep finished", "released", released, "due", len(due))
	}
	return released, nil
}
