package handlers

import (
	"net/http"
	"time"

	"github.com/dukalink/dukalink-escrow-service/internal/delivery/http/middleware"
	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	disputeusecase "github.com/dukalink/dukalink-escrow-service/internal/usecase/dispute"
	disputedto "github.com/dukalink/dukalink-escrow-service/internal/usecase/dto/dispute"
	"github.com/labstack/echo/v4"
)

type DisputeHandler struct {
	uc disputeusecase.DisputeUsecase
}

func NewDisputeHandler(uc disputeusecase.DisputeUsecase) *DisputeHandler {
	return &DisputeHandler{uc: uc}
}

type DisputeResponse struct {
	ID              string   `json:"id"`
	OrderID         string   `json:"orderId"`
	OpenedByID      string   `json:"openedById"`
	OpenedByRole    string   `json:"openedByRole"`
	Reason          string   `json:"reason"`
	Description     string   `json:"description,omitempty"`
	EvidenceURLs    []string `json:"evidenceUrls,omitempty"`
	Status          string   `json:"status"`
	AssignedAdminID string   `json:"assignedAdminId,omitempty"`
	Resolution      string   `json:"resolution,omitempty"`
	ResolvedBy      string   `json:"resolvedBy,omitempty"`
	OpenedAt        string   `json:"openedAt"`
	ResolvedAt      *string  `json:"resolvedAt,omitempty"`
}

func toDisputeResponse(d *domain.Dispute) DisputeResponse {
	return DisputeResponse{
		ID:              d.ID,
		OrderID:         d.OrderID,
		OpenedByID:      d.OpenedByID,
		OpenedByRole:    string(d.OpenedByRole),
		Reason:          d.Reason,
		Description:     d.Description,
		EvidenceURLs:    d.EvidenceURLs,
		Status:          string(d.Status),
		AssignedAdminID: d.AssignedAdminID,
		Resolution:      d.Resolution,
		ResolvedBy:      d.ResolvedBy,
		OpenedAt:        d.OpenedAt.Format(time.RFC3339),
		ResolvedAt:      formatTime(d.ResolvedAt),
	}
}

// Open raises a dispute on an order; the order flips to disputed in the
// same transaction.
func (h *DisputeHandler) Open(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	var body struct {
		Reason       string   `json:"reason"`
		Description  string   `json:"description"`
		EvidenceURLs []string `json:"evidenceUrls"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid request body"))
	}
	dispute, err := h.uc.OpenDispute(c.Request().Context(), actor, &disputedto.OpenDisputeInput{
		OrderID:      c.Param("id"),
		Reason:       body.Reason,
		Description:  body.Description,
		EvidenceURLs: body.EvidenceURLs,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, toDisputeResponse(dispute))
}

func (h *DisputeHandler) Get(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	dispute, err := h.uc.GetDisputeByID(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toDisputeResponse(dispute))
}

func (h *DisputeHandler) GetByOrder(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	dispute, err := h.uc.GetDisputeByOrderID(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toDisputeResponse(dispute))
}

func (h *DisputeHandler) List(c echo.Context) error {
	input := &disputedto.GetDisputesInput{
		Status: c.QueryParam("status"),
		Page:   parseInt32(c.QueryParam("page")),
		Limit:  parseInt32(c.QueryParam("limit")),
	}
	if adminID := c.QueryParam("assignedAdminId"); adminID != "" {
		input.AssignedAdminID = &adminID
	}
	output, err := h.uc.GetDisputes(c.Request().Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	disputes := make([]DisputeResponse, 0, len(output.Disputes))
	for _, d := range output.Disputes {
		disputes = append(disputes, toDisputeResponse(d))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"disputes": disputes,
		"pagination": PaginationResponse{
			CurrentPage:  output.Pagination.CurrentPage,
			TotalPages:   output.Pagination.TotalPages,
			TotalItems:   output.Pagination.TotalItems,
			ItemsPerPage: output.Pagination.ItemsPerPage,
		},
	})
}

func (h *DisputeHandler) Assign(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	if err := h.uc.AssignAdmin(c.Request().Context(), actor, c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *DisputeHandler) UpdateStatus(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid request body"))
	}
	if err := h.uc.UpdateDisputeStatus(c.Request().Context(), actor, c.Param("id"), body.Status); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Resolve is the admin verdict: the dispute status, the order transition
// and the funds disposition commit together.
func (h *DisputeHandler) Resolve(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	var body struct {
		Winner     string `json:"winner"`
		Resolution string `json:"resolution"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid request body"))
	}
	dispute, err := h.uc.ResolveDispute(c.Request().Context(), actor, &disputedto.ResolveDisputeInput{
		DisputeID:  c.Param("id"),
		Winner:     body.Winner,
		Resolution: body.Resolution,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toDisputeResponse(dispute))
}

type DisputeMessageResponse struct {
	ID         uint   `json:"id"`
	DisputeID  string `json:"disputeId"`
	SenderID   string `json:"senderId"`
	SenderRole string `json:"senderRole"`
	Body       string `json:"body"`
	CreatedAt  string `json:"createdAt"`
}

func toDisputeMessageResponse(m *domain.DisputeMessage) DisputeMessageResponse {
	return DisputeMessageResponse{
		ID:         m.ID,
		DisputeID:  m.DisputeID,
		SenderID:   m.SenderID,
		SenderRole: string(m.SenderRole),
		Body:       m.Body,
		CreatedAt:  m.CreatedAt.Format(time.RFC3339),
	}
}

func (h *DisputeHandler) PostMessage(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	var body struct {
		Body string `json:"body"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid request body"))
	}
	message, err := h.uc.PostMessage(c.Request().Context(), actor, &disputedto.PostMessageInput{
		DisputeID: c.Param("id"),
		Body:      body.Body,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, toDisputeMessageResponse(message))
}

func (h *DisputeHandler) ListMessages(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	messages, err := h.uc.GetMessages(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]DisputeMessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, toDisputeMessageResponse(m))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"messages": out})
}
