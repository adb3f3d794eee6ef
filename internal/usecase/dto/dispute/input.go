package disputedto

type OpenDisputeInput struct {
	OrderID      string
	Reason       string
	Description  string
	EvidenceURLs []string
}

type ResolveDisputeInput struct {
	DisputeID  string
	Winner     string
	Resolution string
}

type PostMessageInput struct {
	DisputeID string
	Body      string
}

type GetDisputesInput struct {
	Status          string
	AssignedAdminID *string
	Page            int32
	Limit           int32
}
