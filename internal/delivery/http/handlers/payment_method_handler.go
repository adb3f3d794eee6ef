package handlers

import (
	"net/http"

	"github.com/dukalink/dukalink-escrow-service/internal/delivery/http/middleware"
	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	"github.com/dukalink/dukalink-escrow-service/internal/usecase"
	methoddto "github.com/dukalink/dukalink-escrow-service/internal/usecase/dto/method"
	"github.com/labstack/echo/v4"
)

type PaymentMethodHandler struct {
	uc usecase.PaymentMethodUsecase
}

func NewPaymentMethodHandler(uc usecase.PaymentMethodUsecase) *PaymentMethodHandler {
	return &PaymentMethodHandler{uc: uc}
}

type PaymentMethodResponse struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Provider      string `json:"provider"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
	IsDefault     bool   `json:"isDefault"`
	IsActive      bool   `json:"isActive"`
}

func toPaymentMethodResponse(m *domain.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		ID:            m.ID,
		Type:          string(m.Type),
		Provider:      m.Provider,
		AccountNumber: m.AccountNumber,
		AccountName:   m.AccountName,
		IsDefault:     m.Default,
		IsActive:      m.Active,
	}
}

func (h *PaymentMethodHandler) Create(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	var body struct {
		Type          string `json:"type"`
		Provider      string `json:"provider"`
		AccountNumber string `json:"accountNumber"`
		AccountName   string `json:"accountName"`
		IsDefault     bool   `json:"isDefault"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid request body"))
	}
	method, err := h.uc.CreatePaymentMethod(c.Request().Context(), actor, &methoddto.CreatePaymentMethodInput{
		Type:          body.Type,
		Provider:      body.Provider,
		AccountNumber: body.AccountNumber,
		AccountName:   body.AccountName,
		Default:       body.IsDefault,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, toPaymentMethodResponse(method))
}

func (h *PaymentMethodHandler) Update(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	var body struct {
		Provider      string `json:"provider"`
		AccountNumber string `json:"accountNumber"`
		AccountName   string `json:"accountName"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid request body"))
	}
	method, err := h.uc.UpdatePaymentMethod(c.Request().Context(), actor, &methoddto.UpdatePaymentMethodInput{
		MethodID:      c.Param("id"),
		Provider:      body.Provider,
		AccountNumber: body.AccountNumber,
		AccountName:   body.AccountName,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toPaymentMethodResponse(method))
}

func (h *PaymentMethodHandler) ListMine(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	methods, err := h.uc.GetMyPaymentMethods(c.Request().Context(), actor)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]PaymentMethodResponse, 0, len(methods))
	for _, m := range methods {
		out = append(out, toPaymentMethodResponse(m))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"paymentMethods": out})
}

func (h *PaymentMethodHandler) SetDefault(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	if err := h.uc.SetDefaultMethod(c.Request().Context(), actor, c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PaymentMethodHandler) Deactivate(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	if err := h.uc.DeactivateMethod(c.Request().Context(), actor, c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
