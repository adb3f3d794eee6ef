package storedto

import "github.com/dukalink/dukalink-escrow-service/internal/domain"

// StorefrontOutput is the public storefront page: the store plus its active
// products. This is the shape cached in redis.
type StorefrontOutput struct {
	Store    *domain.Store     `json:"store"`
	Products []*domain.Product `json:"products"`
}
