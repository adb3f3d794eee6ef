package handlers

import (
	"net/http"
	"time"

	"github.com/dukalink/dukalink-escrow-service/internal/delivery/http/middleware"
	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	"github.com/dukalink/dukalink-escrow-service/internal/usecase"
	linkdto "github.com/dukalink/dukalink-escrow-service/internal/usecase/dto/link"
	"github.com/labstack/echo/v4"
)

type PaymentLinkHandler struct {
	uc usecase.PaymentLinkUsecase
}

func NewPaymentLinkHandler(uc usecase.PaymentLinkUsecase) *PaymentLinkHandler {
	return &PaymentLinkHandler{uc: uc}
}

type PaymentLinkResponse struct {
	ID        string  `json:"id"`
	Code      string  `json:"code"`
	StoreID   string  `json:"storeId"`
	ProductID string  `json:"productId,omitempty"`
	ItemName  string  `json:"itemName"`
	Amount    string  `json:"amount"`
	Currency  string  `json:"currency"`
	Active    bool    `json:"active"`
	ExpiresAt *string `json:"expiresAt,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

func toPaymentLinkResponse(l *domain.PaymentLink) PaymentLinkResponse {
	return PaymentLinkResponse{
		ID:        l.ID,
		Code:      l.Code,
		StoreID:   l.StoreID,
		ProductID: l.ProductID,
		ItemName:  l.ItemName,
		Amount:    l.Amount.StringFixed(2),
		Currency:  l.Currency,
		Active:    l.Active,
		ExpiresAt: formatTime(l.ExpiresAt),
		CreatedAt: l.CreatedAt.Format(time.RFC3339),
	}
}

func (h *PaymentLinkHandler) Create(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	var body struct {
		StoreID   string     `json:"storeId"`
		ProductID string     `json:"productId"`
		ItemName  string     `json:"itemName"`
		Amount    string     `json:"amount"`
		ExpiresAt *time.Time `json:"expiresAt"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid request body"))
	}
	link, err := h.uc.CreatePaymentLink(c.Request().Context(), actor, &linkdto.CreatePaymentLinkInput{
		StoreID:   body.StoreID,
		ProductID: body.ProductID,
		ItemName:  body.ItemName,
		Amount:    body.Amount,
		ExpiresAt: body.ExpiresAt,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, toPaymentLinkResponse(link))
}

// Resolve serves the public checkout page behind a link code. Expired and
// disabled links come back as not found.
func (h *PaymentLinkHandler) Resolve(c echo.Context) error {
	link, err := h.uc.GetLinkByCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toPaymentLinkResponse(link))
}

func (h *PaymentLinkHandler) ListMine(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	links, err := h.uc.GetMyLinks(c.Request().Context(), actor)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]PaymentLinkResponse, 0, len(links))
	for _, l := range links {
		out = append(out, toPaymentLinkResponse(l))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"links": out})
}

func (h *PaymentLinkHandler) Disable(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	if err := h.uc.DisableLink(c.Request().Context(), actor, c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
