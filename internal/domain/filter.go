package domain

import (
	"sort"
	"strings"
	"time"
)

type SortKey string

const (
	SortNewest     SortKey = "newest"
	SortOldest     SortKey = "oldest"
	SortAmountHigh SortKey = "amount-high"
	SortAmountLow  SortKey = "amount-low"
)

// OrderFilter narrows an in-memory order list. Zero values match everything.
// DateTo is treated as inclusive of the whole day it falls on.
type OrderFilter struct {
	Status     OrderStatus
	DateFrom   *time.Time
	DateTo     *time.Time
	SearchText string
}

// FilterOrders returns the orders matching every set criterion, in the input
// order. The input slice is not modified.
func FilterOrders(orders []*Order, f OrderFilter) []*Order {
	var dateTo time.Time
	if f.DateTo != nil {
		dateTo = endOfDay(*f.DateTo)
	}
	search := strings.ToLower(strings.TrimSpace(f.SearchText))

	out := make([]*Order, 0, len(orders))
	for _, order := range orders {
		if f.Status != "" && order.Status != f.Status {
			continue
		}
		if f.DateFrom != nil && order.CreatedAt.Before(*f.DateFrom) {
			continue
		}
		if f.DateTo != nil && order.CreatedAt.After(dateTo) {
			continue
		}
		if search != "" && !matchesSearch(order, search) {
			continue
		}
		out = append(out, order)
	}
	return out
}

func matchesSearch(order *Order, search string) bool {
	return strings.Contains(strings.ToLower(order.ID), search) ||
		strings.Contains(strings.ToLower(order.Buyer.Name), search) ||
		strings.Contains(strings.ToLower(order.ItemName), search)
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// SortOrders returns a sorted copy of the list. Orders equal under the key
// keep their relative input positions. An unknown key sorts as SortNewest.
func SortOrders(orders []*Order, key SortKey) []*Order {
	out := make([]*Order, len(orders))
	copy(out, orders)

	switch key {
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	case SortAmountHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Amount.GreaterThan(out[j].Amount)
		})
	case SortAmountLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Amount.LessThan(out[j].Amount)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out
}
