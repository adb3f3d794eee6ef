package disputedto

import "github.com/dukalink/dukalink-escrow-service/internal/domain"

type Pagination struct {
	CurrentPage  int32
	TotalPages   int32
	TotalItems   int32
	ItemsPerPage int32
}

type DisputesOutput struct {
	Disputes   []*domain.Dispute
	Pagination Pagination
}
