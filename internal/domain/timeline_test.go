package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(day int, hour int) *time.Time {
	t := time.Date(2025, time.March, day, hour, 0, 0, 0, time.UTC)
	return &t
}

func TestTimelineCompletedOrder(t *testing.T) {
	order := &Order{
		Status:      StatusCompleted,
		CreatedAt:   *ts(1, 9),
		PaidAt:      ts(1, 9),
		AcceptedAt:  ts(1, 12),
		ShippedAt:   ts(2, 10),
		DeliveredAt: ts(4, 16),
		CompletedAt: ts(4, 17),
	}

	events := Timeline(order)
	require.Len(t, events, 6)

	titles := make([]string, 0, len(events))
	for _, e := range events {
		titles = append(titles, e.Title)
		assert.True(t, e.Completed, e.Title)
		require.NotNil(t, e.CompletedAt, e.Title)
	}
	assert.Equal(t, []string{
		"Order placed", "Payment confirmed", "Seller accepted",
		"Shipped", "Delivered", "Funds released",
	}, titles)
}

func TestTimelinePendingOrder(t *testing.T) {
	order := &Order{
		Status:    StatusPending,
		CreatedAt: *ts(1, 9),
		PaidAt:    ts(1, 9),
	}

	events := Timeline(order)
	require.Len(t, events, 6)

	assert.True(t, events[0].Completed)
	assert.True(t, events[1].Completed)
	for _, e := range events[2:] {
		assert.False(t, e.Completed, e.Title)
		assert.Nil(t, e.CompletedAt, e.Title)
	}
}

func TestTimelineCancelledBeforePayment(t *testing.T) {
	order := &Order{
		Status:      StatusCancelled,
		CreatedAt:   *ts(1, 9),
		CancelledAt: ts(1, 10),
	}

	events := Timeline(order)
	require.Len(t, events, 3)

	assert.Equal(t, "Payment confirmed", events[1].Title)
	assert.False(t, events[1].Completed)
	assert.Equal(t, "Order cancelled", events[2].Title)
	assert.True(t, events[2].Completed)
}

func TestTimelineDisputedOrder(t *testing.T) {
	order := &Order{
		Status:     StatusDisputed,
		CreatedAt:  *ts(1, 9),
		PaidAt:     ts(1, 9),
		AcceptedAt: ts(1, 12),
		ShippedAt:  ts(2, 10),
		DisputedAt: ts(3, 8),
	}

	events := Timeline(order)
	require.Len(t, events, 7)

	assert.Equal(t, "Dispute opened", events[5].Title)
	assert.True(t, events[5].Completed)
	assert.Equal(t, "Delivered", events[4].Title)
	assert.False(t, events[4].Completed)
	assert.Equal(t, "Funds released", events[6].Title)
	assert.False(t, events[6].Completed)
}

func TestTimelineRefundedOrder(t *testing.T) {
	order := &Order{
		Status:     StatusRefunded,
		CreatedAt:  *ts(1, 9),
		PaidAt:     ts(1, 9),
		AcceptedAt: ts(1, 12),
		DisputedAt: ts(2, 8),
		RefundedAt: ts(3, 15),
	}

	events := Timeline(order)
	last := events[len(events)-1]

	assert.Equal(t, "Refunded", last.Title)
	assert.True(t, last.Completed)
	for _, e := range events {
		assert.NotEqual(t, "Funds released", e.Title)
	}
}

func TestTimelineIsReadOnly(t *testing.T) {
	order := &Order{
		Status:    StatusPending,
		CreatedAt: *ts(1, 9),
		PaidAt:    ts(1, 9),
	}
	snapshot := *order

	first := Timeline(order)
	second := Timeline(order)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, *order)
}
