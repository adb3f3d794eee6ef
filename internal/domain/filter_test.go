package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterFixtures() []*Order {
	return []*Order{
		{
			ID:        "ord-alpha",
			Status:    StatusPending,
			Buyer:     Buyer{Name: "Amina Yusuf"},
			ItemName:  "Leather bag",
			Amount:    decimal.RequireFromString("120.00"),
			CreatedAt: time.Date(2025, time.March, 10, 18, 30, 0, 0, time.UTC),
		},
		{
			ID:        "ord-bravo",
			Status:    StatusShipped,
			Buyer:     Buyer{Name: "Kwame Mensah"},
			ItemName:  "Sneakers",
			Amount:    decimal.RequireFromString("80.00"),
			CreatedAt: time.Date(2025, time.March, 12, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:        "ord-charlie",
			Status:    StatusCompleted,
			Buyer:     Buyer{Name: "Ngozi Eze"},
			ItemName:  "Phone case",
			Amount:    decimal.RequireFromString("80.00"),
			CreatedAt: time.Date(2025, time.March, 15, 14, 0, 0, 0, time.UTC),
		},
	}
}

func TestFilterOrdersByStatus(t *testing.T) {
	got := FilterOrders(filterFixtures(), OrderFilter{Status: StatusShipped})

	require.Len(t, got, 1)
	assert.Equal(t, "ord-bravo", got[0].ID)
}

func TestFilterOrdersDateToIncludesWholeDay(t *testing.T) {
	// ord-alpha was created at 18:30 on March 10; a DateTo of midnight
	// March 10 must still match it.
	to := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	got := FilterOrders(filterFixtures(), OrderFilter{DateTo: &to})

	require.Len(t, got, 1)
	assert.Equal(t, "ord-alpha", got[0].ID)
}

func TestFilterOrdersDateRange(t *testing.T) {
	from := time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	got := FilterOrders(filterFixtures(), OrderFilter{DateFrom: &from, DateTo: &to})

	require.Len(t, got, 1)
	assert.Equal(t, "ord-bravo", got[0].ID)
}

func TestFilterOrdersSearch(t *testing.T) {
	tests := []struct {
		name    string
		search  string
		wantIDs []string
	}{
		{"buyer name, case-insensitive", "kwAME", []string{"ord-bravo"}},
		{"order id fragment", "charlie", []string{"ord-charlie"}},
		{"item name", "leather", []string{"ord-alpha"}},
		{"shared id prefix", "ord-", []string{"ord-alpha", "ord-bravo", "ord-charlie"}},
		{"no match", "zanzibar", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterOrders(filterFixtures(), OrderFilter{SearchText: tt.search})

			ids := make([]string, 0, len(got))
			for _, o := range got {
				ids = append(ids, o.ID)
			}
			if tt.wantIDs == nil {
				assert.Empty(t, ids)
				return
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterOrdersCombined(t *testing.T) {
	from := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	got := FilterOrders(filterFixtures(), OrderFilter{
		Status:     StatusCompleted,
		DateFrom:   &from,
		SearchText: "ngozi",
	})

	require.Len(t, got, 1)
	assert.Equal(t, "ord-charlie", got[0].ID)
}

func TestSortOrders(t *testing.T) {
	tests := []struct {
		name    string
		key     SortKey
		wantIDs []string
	}{
		{"newest first", SortNewest, []string{"ord-charlie", "ord-bravo", "ord-alpha"}},
		{"oldest first", SortOldest, []string{"ord-alpha", "ord-bravo", "ord-charlie"}},
		{"amount high keeps ties stable", SortAmountHigh, []string{"ord-alpha", "ord-bravo", "ord-charlie"}},
		{"amount low keeps ties stable", SortAmountLow, []string{"ord-bravo", "ord-charlie", "ord-alpha"}},
		{"unknown key falls back to newest", SortKey("bogus"), []string{"ord-charlie", "ord-bravo", "ord-alpha"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := filterFixtures()
			got := SortOrders(orders, tt.key)

			ids := make([]string, 0, len(got))
			for _, o := range got {
				ids = append(ids, o.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			// input order untouched
			assert.Equal(t, "ord-alpha", orders[0].ID)
		})
	}
}
