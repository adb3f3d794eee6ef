package domain

import (
	"context"
	"time"
)

type DisputeStatus string

const (
	DisputeOpen           DisputeStatus = "open"
	DisputeUnderReview    DisputeStatus = "under_review"
	DisputeAwaitingSeller DisputeStatus = "awaiting_seller"
	DisputeAwaitingBuyer  DisputeStatus = "awaiting_buyer"
	DisputeResolvedBuyer  DisputeStatus = "resolved_buyer"
	DisputeResolvedSeller DisputeStatus = "resolved_seller"
	DisputeClosed         DisputeStatus = "closed"
)

func (s DisputeStatus) Resolved() bool {
	return s == DisputeResolvedBuyer || s == DisputeResolvedSeller || s == DisputeClosed
}

type DisputeWinner string

const (
	WinnerBuyer  DisputeWinner = "buyer"
	WinnerSeller DisputeWinner = "seller"
)

type Dispute struct {
	ID              string
	OrderID         string
	OpenedByID      string
	OpenedByRole    Role
	Reason          string
	Description     string
	EvidenceURLs    []string
	Status          DisputeStatus
	AssignedAdminID string
	Resolution      string
	ResolvedBy      string
	OpenedAt        time.Time
	UpdatedAt       time.Time
	ResolvedAt      *time.Time
}

// DisputeMessage is one entry in a dispute's conversation thread.
type DisputeMessage struct {
	ID         uint
	DisputeID  string
	SenderID   string
	SenderRole Role
	Body       string
	CreatedAt  time.Time
}

// ResolutionOp closes a dispute and settles its order in one transaction.
// OrderOp carries the guarded status change; Wallet runs inside the same
// transaction.
type ResolutionOp struct {
	DisputeID     string
	DisputeStatus DisputeStatus
	Resolution    string
	ResolvedBy    string
	At            time.Time
	OrderOp       *TransitionOp
}

type DisputesFilter struct {
	Status          DisputeStatus
	AssignedAdminID *string
}

type DisputeRepository interface {
	OpenDispute(ctx context.Context, dispute *Dispute, orderFrom OrderStatus) error
	GetDisputeByID(ctx context.Context, disputeID string) (*Dispute, error)
	GetDisputeByOrderID(ctx context.Context, orderID string) (*Dispute, error)
	UpdateDisputeStatus(ctx context.Context, disputeID string, status DisputeStatus) error
	AssignAdmin(ctx context.Context, disputeID, adminID string) error
	ResolveDispute(ctx context.Context, op *ResolutionOp) error
	AppendMessage(ctx context.Context, message *DisputeMessage) error
	GetMessages(ctx context.Context, disputeID string) ([]*DisputeMessage, error)
	GetDisputes(ctx context.Context, filter *DisputesFilter, page, limit int32) ([]*Dispute, int64, error)
}
