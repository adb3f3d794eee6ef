package domain

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrDisputeNotFound       = errors.New("dispute not found")
	ErrStoreNotFound         = errors.New("store not found")
	ErrProductNotFound       = errors.New("product not found")
	ErrPaymentLinkNotFound   = errors.New("payment link not found")
	ErrPaymentMethodNotFound = errors.New("payment method not found")

	// ErrOrderConflict reports that the order row changed between the
	// caller's read and its guarded update.
	ErrOrderConflict = errors.New("order was modified concurrently")

	ErrDisputeAlreadyOpen = errors.New("order already has an open dispute")
	ErrDisputeResolved    = errors.New("dispute already resolved")
	ErrSlugTaken          = errors.New("store slug already taken")
	ErrLinkInactive       = errors.New("payment link is inactive or expired")
)

// InvalidTransitionError reports an action fired from a status that does not
// allow it. The order itself is untouched.
type InvalidTransitionError struct {
	OrderID string
	Status  OrderStatus
	Action  OrderAction
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("order %s: cannot %s from status %s", e.OrderID, e.Action, e.Status)
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

type UnauthorizedActionError struct {
	Action string
	Reason string
}

func (e *UnauthorizedActionError) Error() string {
	return fmt.Sprintf("%s forbidden: %s", e.Action, e.Reason)
}
