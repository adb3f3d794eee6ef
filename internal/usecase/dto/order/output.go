package orderdto

import "github.com/dukalink/dukalink-escrow-service/internal/domain"

type Pagination struct {
	CurrentPage  int32
	TotalPages   int32
	TotalItems   int32
	ItemsPerPage int32
}

func NewPagination(page, limit int32, total int64) Pagination {
	totalPages := int32(total) / limit
	if int32(total)%limit > 0 {
		totalPages++
	}
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   int32(total),
		ItemsPerPage: limit,
	}
}

type OrdersOutput struct {
	Orders     []*domain.Order
	Pagination Pagination
}
