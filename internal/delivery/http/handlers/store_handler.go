package handlers

import (
	"net/http"
	"time"

	"github.com/dukalink/dukalink-escrow-service/internal/delivery/http/middleware"
	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	"github.com/dukalink/dukalink-escrow-service/internal/usecase"
	storedto "github.com/dukalink/dukalink-escrow-service/internal/usecase/dto/store"
	"github.com/labstack/echo/v4"
)

type StoreHandler struct {
	uc usecase.StoreUsecase
}

func NewStoreHandler(uc usecase.StoreUsecase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

type StoreResponse struct {
	ID          string `json:"id"`
	SellerID    string `json:"sellerId"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Currency    string `json:"currency"`
	LogoURL     string `json:"logoUrl,omitempty"`
	Active      bool   `json:"active"`
	CreatedAt   string `json:"createdAt"`
}

func toStoreResponse(s *domain.Store) StoreResponse {
	return StoreResponse{
		ID:          s.ID,
		SellerID:    s.SellerID,
		Name:        s.Name,
		Slug:        s.Slug,
		Description: s.Description,
		Category:    s.Category,
		Currency:    s.Currency,
		LogoURL:     s.LogoURL,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
	}
}

func toStoreResponses(stores []*domain.Store) []StoreResponse {
	out := make([]StoreResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, toStoreResponse(s))
	}
	return out
}

func (h *StoreHandler) Create(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Category    string `json:"category"`
		Currency    string `json:"currency"`
		LogoURL     string `json:"logoUrl"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid request body"))
	}
	store, err := h.uc.CreateStore(c.Request().Context(), actor, &storedto.CreateStoreInput{
		Name:        body.Name,
		Description: body.Description,
		Category:    body.Category,
		Currency:    body.Currency,
		LogoURL:     body.LogoURL,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, toStoreResponse(store))
}

func (h *StoreHandler) Update(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Category    string `json:"category"`
		LogoURL     string `json:"logoUrl"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid request body"))
	}
	store, err := h.uc.UpdateStore(c.Request().Context(), actor, &storedto.UpdateStoreInput{
		StoreID:     c.Param("id"),
		Name:        body.Name,
		Description: body.Description,
		Category:    body.Category,
		LogoURL:     body.LogoURL,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toStoreResponse(store))
}

// GetStorefront is the public store page, cached behind a short TTL.
func (h *StoreHandler) GetStorefront(c echo.Context) error {
	storefront, err := h.uc.GetStorefront(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"store":    toStoreResponse(storefront.Store),
		"products": toProductResponses(storefront.Products),
	})
}

func (h *StoreHandler) ListMine(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	stores, err := h.uc.GetMyStores(c.Request().Context(), actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"stores": toStoreResponses(stores)})
}

func (h *StoreHandler) ListAll(c echo.Context) error {
	page := parseInt32(c.QueryParam("page"))
	limit := parseInt32(c.QueryParam("limit"))
	stores, total, err := h.uc.GetStores(c.Request().Context(), page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"stores": toStoreResponses(stores),
		"total":  total,
	})
}

func (h *StoreHandler) Suspend(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	if err := h.uc.SuspendStore(c.Request().Context(), actor, c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *StoreHandler) Activate(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	if err := h.uc.ActivateStore(c.Request().Context(), actor, c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
