package handlers

import (
	"net/http"
	"time"

	"github.com/dukalink/dukalink-escrow-service/internal/delivery/http/middleware"
	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	"github.com/dukalink/dukalink-escrow-service/internal/usecase"
	productdto "github.com/dukalink/dukalink-escrow-service/internal/usecase/dto/product"
	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	uc usecase.ProductUsecase
}

func NewProductHandler(uc usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

type ProductResponse struct {
	ID          string   `json:"id"`
	StoreID     string   `json:"storeId"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       string   `json:"price"`
	Currency    string   `json:"currency"`
	ImageURLs   []string `json:"imageUrls,omitempty"`
	Source      string   `json:"source"`
	SourceURL   string   `json:"sourceUrl,omitempty"`
	Active      bool     `json:"active"`
	CreatedAt   string   `json:"createdAt"`
}

func toProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		StoreID:     p.StoreID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		Currency:    p.Currency,
		ImageURLs:   p.ImageURLs,
		Source:      string(p.Source),
		SourceURL:   p.SourceURL,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}

func toProductResponses(products []*domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}

func (h *ProductHandler) Create(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	var body struct {
		StoreID     string   `json:"storeId"`
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Price       string   `json:"price"`
		Currency    string   `json:"currency"`
		ImageURLs   []string `json:"imageUrls"`
		Source      string   `json:"source"`
		SourceURL   string   `json:"sourceUrl"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid request body"))
	}
	product, err := h.uc.CreateProduct(c.Request().Context(), actor, &productdto.CreateProductInput{
		StoreID:     body.StoreID,
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		Currency:    body.Currency,
		ImageURLs:   body.ImageURLs,
		Source:      body.Source,
		SourceURL:   body.SourceURL,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, toProductResponse(product))
}

func (h *ProductHandler) Update(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	var body struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Price       string   `json:"price"`
		ImageURLs   []string `json:"imageUrls"`
		Active      *bool    `json:"active"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid request body"))
	}
	product, err := h.uc.UpdateProduct(c.Request().Context(), actor, &productdto.UpdateProductInput{
		ProductID:   c.Param("id"),
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		ImageURLs:   body.ImageURLs,
		Active:      body.Active,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.uc.GetProductByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

func (h *ProductHandler) ListByStore(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	products, err := h.uc.GetStoreProducts(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"products": toProductResponses(products)})
}
