package domain

import "time"

type TimelineEvent struct {
	Title       string
	Completed   bool
	CompletedAt *time.Time
}

// Timeline projects an order snapshot into its milestone list. It reads the
// order only, so two calls on the same snapshot produce the same result.
//
// Cancelled orders stop after the cancellation event. Disputed and refunded
// orders carry a dispute event after the fulfilment milestones reached so
// far.
func Timeline(order *Order) []TimelineEvent {
	placedAt := order.CreatedAt
	events := []TimelineEvent{
		{Title: "Order placed", Completed: true, CompletedAt: &placedAt},
		{Title: "Payment confirmed", Completed: order.PaidAt != nil, CompletedAt: order.PaidAt},
	}

	if order.Status == StatusCancelled {
		events = append(events, TimelineEvent{
			Title:       "Order cancelled",
			Completed:   order.CancelledAt != nil,
			CompletedAt: order.CancelledAt,
		})
		return events
	}

	events = append(events,
		TimelineEvent{Title: "Seller accepted", Completed: order.AcceptedAt != nil, CompletedAt: order.AcceptedAt},
		TimelineEvent{Title: "Shipped", Completed: order.ShippedAt != nil, CompletedAt: order.ShippedAt},
		TimelineEvent{Title: "Delivered", Completed: order.DeliveredAt != nil, CompletedAt: order.DeliveredAt},
	)

	if order.DisputedAt != nil {
		events = append(events, TimelineEvent{
			Title:       "Dispute opened",
			Completed:   true,
			CompletedAt: order.DisputedAt,
		})
	}

	if order.Status == StatusRefunded {
		events = append(events, TimelineEvent{
			Title:       "Refunded",
			Completed:   order.RefundedAt != nil,
			CompletedAt: order.RefundedAt,
		})
		return events
	}

	events = append(events, TimelineEvent{
		Title:       "Funds released",
		Completed:   order.CompletedAt != nil,
		CompletedAt: order.CompletedAt,
	})
	return events
}
