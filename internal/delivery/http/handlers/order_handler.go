package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dukalink/dukalink-escrow-service/internal/delivery/http/middleware"
	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	orderusecase "github.com/dukalink/dukalink-escrow-service/internal/usecase/order"
	orderdto "github.com/dukalink/dukalink-escrow-service/internal/usecase/dto/order"
	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc orderusecase.OrderUsecase
}

func NewOrderHandler(uc orderusecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type ShippingInfoResponse struct {
	CourierName           string   `json:"courierName"`
	TrackingNumber        string   `json:"trackingNumber"`
	EstimatedDeliveryDate *string  `json:"estimatedDeliveryDate,omitempty"`
	Notes                 string   `json:"notes,omitempty"`
	ProofImages           []string `json:"proofImages,omitempty"`
}

type OrderResponse struct {
	ID              string                `json:"id"`
	StoreID         string                `json:"storeId"`
	SellerID        string                `json:"sellerId"`
	BuyerID         string                `json:"buyerId,omitempty"`
	BuyerName       string                `json:"buyerName"`
	ProductID       string                `json:"productId,omitempty"`
	PaymentLinkID   string                `json:"paymentLinkId,omitempty"`
	ItemName        string                `json:"itemName"`
	Quantity        int32                 `json:"quantity"`
	Amount          string                `json:"amount"`
	Currency        string                `json:"currency"`
	PlatformFee     string                `json:"platformFee"`
	SellerPayout    string                `json:"sellerPayout"`
	Status          string                `json:"status"`
	RejectionReason string                `json:"rejectionReason,omitempty"`
	ShippingInfo    *ShippingInfoResponse `json:"shippingInfo,omitempty"`
	CreatedAt       string                `json:"createdAt"`
	PaidAt          *string               `json:"paidAt,omitempty"`
	AcceptedAt      *string               `json:"acceptedAt,omitempty"`
	ShippedAt       *string               `json:"shippedAt,omitempty"`
	DeliveredAt     *string               `json:"deliveredAt,omitempty"`
	CompletedAt     *string               `json:"completedAt,omitempty"`
	DisputedAt      *string               `json:"disputedAt,omitempty"`
	CancelledAt     *string               `json:"cancelledAt,omitempty"`
	RefundedAt      *string               `json:"refundedAt,omitempty"`
	ExpiresAt       *string               `json:"expiresAt,omitempty"`
	ReleaseAt       *string               `json:"releaseAt,omitempty"`
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	val := t.Format(time.RFC3339)
	return &val
}

func toOrderResponse(order *domain.Order) OrderResponse {
	resp := OrderResponse{
		ID:              order.ID,
		StoreID:         order.StoreID,
		SellerID:        order.SellerID,
		BuyerID:         order.Buyer.BuyerID,
		BuyerName:       order.Buyer.Name,
		ProductID:       order.ProductID,
		PaymentLinkID:   order.PaymentLinkID,
		ItemName:        order.ItemName,
		Quantity:        order.Quantity,
		Amount:          order.Amount.StringFixed(2),
		Currency:        order.Currency,
		PlatformFee:     order.PlatformFee.StringFixed(2),
		SellerPayout:    order.SellerPayout.StringFixed(2),
		Status:          string(order.Status),
		RejectionReason: order.RejectionReason,
		CreatedAt:       order.CreatedAt.Format(time.RFC3339),
		PaidAt:          formatTime(order.PaidAt),
		AcceptedAt:      formatTime(order.AcceptedAt),
		ShippedAt:       formatTime(order.ShippedAt),
		DeliveredAt:     formatTime(order.DeliveredAt),
		CompletedAt:     formatTime(order.CompletedAt),
		DisputedAt:      formatTime(order.DisputedAt),
		CancelledAt:     formatTime(order.CancelledAt),
		RefundedAt:      formatTime(order.RefundedAt),
		ExpiresAt:       formatTime(order.ExpiresAt),
		ReleaseAt:       formatTime(order.ReleaseAt),
	}
	if order.ShippingInfo != nil {
		resp.ShippingInfo = &ShippingInfoResponse{
			CourierName:           order.ShippingInfo.CourierName,
			TrackingNumber:        order.ShippingInfo.TrackingNumber,
			EstimatedDeliveryDate: formatTime(order.ShippingInfo.EstimatedDeliveryDate),
			Notes:                 order.ShippingInfo.Notes,
			ProofImages:           order.ShippingInfo.ProofImages,
		}
	}
	return resp
}

func toOrderResponses(orders []*domain.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderResponse(order))
	}
	return out
}

type OrdersListResponse struct {
	Orders     []OrderResponse    `json:"orders"`
	Pagination PaginationResponse `json:"pagination"`
}

func toOrdersListResponse(output *orderdto.OrdersOutput) OrdersListResponse {
	return OrdersListResponse{
		Orders: toOrderResponses(output.Orders),
		Pagination: PaginationResponse{
			CurrentPage:  output.Pagination.CurrentPage,
			TotalPages:   output.Pagination.TotalPages,
			TotalItems:   output.Pagination.TotalItems,
			ItemsPerPage: output.Pagination.ItemsPerPage,
		},
	}
}

func (h *OrderHandler) Checkout(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	var body struct {
		StoreID    string `json:"storeId"`
		ProductID  string `json:"productId"`
		Quantity   int32  `json:"quantity"`
		PaymentRef string `json:"paymentRef"`
		BuyerName  string `json:"buyerName"`
		BuyerPhone string `json:"buyerPhone"`
		BuyerEmail string `json:"buyerEmail"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid request body"))
	}

	order, err := h.uc.Checkout(c.Request().Context(), actor, &orderdto.CheckoutInput{
		StoreID:    body.StoreID,
		ProductID:  body.ProductID,
		Quantity:   body.Quantity,
		PaymentRef: body.PaymentRef,
		Buyer: orderdto.BuyerParams{
			BuyerID: actor.ID,
			Name:    body.BuyerName,
			Phone:   body.BuyerPhone,
			Email:   body.BuyerEmail,
		},
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, toOrderResponse(order))
}

// LinkCheckout is the public checkout behind a shareable payment link.
// Guests are allowed; the order waits in pending_payment for the gateway
// confirmation.
func (h *OrderHandler) LinkCheckout(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	var body struct {
		Quantity   int32  `json:"quantity"`
		BuyerName  string `json:"buyerName"`
		BuyerPhone string `json:"buyerPhone"`
		BuyerEmail string `json:"buyerEmail"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid request body"))
	}

	order, err := h.uc.CheckoutViaLink(c.Request().Context(), &orderdto.LinkCheckoutInput{
		Code:     c.Param("code"),
		Quantity: body.Quantity,
		Buyer: orderdto.BuyerParams{
			BuyerID: actor.ID,
			Name:    body.BuyerName,
			Phone:   body.BuyerPhone,
			Email:   body.BuyerEmail,
		},
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, toOrderResponse(order))
}

func (h *OrderHandler) Get(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	order, err := h.uc.GetOrderByID(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toOrderResponse(order))
}

type TimelineEventResponse struct {
	Title       string  `json:"title"`
	Completed   bool    `json:"completed"`
	CompletedAt *string `json:"completedAt,omitempty"`
}

func (h *OrderHandler) GetTimeline(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	events, err := h.uc.GetOrderTimeline(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]TimelineEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, TimelineEventResponse{
			Title:       e.Title,
			Completed:   e.Completed,
			CompletedAt: formatTime(e.CompletedAt),
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"timeline": out})
}

type OrderEventResponse struct {
	Action     string `json:"action"`
	FromStatus string `json:"fromStatus"`
	ToStatus   string `json:"toStatus"`
	ActorID    string `json:"actorId,omitempty"`
	ActorRole  string `json:"actorRole"`
	Note       string `json:"note,omitempty"`
	CreatedAt  string `json:"createdAt"`
}

// GetEvents serves the admin-only transition audit trail.
func (h *OrderHandler) GetEvents(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	entries, err := h.uc.GetOrderEvents(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]OrderEventResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, OrderEventResponse{
			Action:     e.Action,
			FromStatus: e.FromStatus,
			ToStatus:   e.ToStatus,
			ActorID:    e.ActorID,
			ActorRole:  e.ActorRole,
			Note:       e.Note,
			CreatedAt:  e.At.Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"events": out})
}

func (h *OrderHandler) Accept(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	order, err := h.uc.AcceptOrder(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) Reject(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid request body"))
	}
	order, err := h.uc.RejectOrder(c.Request().Context(), actor, c.Param("id"), body.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) Ship(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	var body struct {
		CourierName           string     `json:"courierName"`
		TrackingNumber        string     `json:"trackingNumber"`
		EstimatedDeliveryDate *time.Time `json:"estimatedDeliveryDate"`
		Notes                 string     `json:"notes"`
		ProofImages           []string   `json:"proofImages"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid request body"))
	}
	order, err := h.uc.ShipOrder(c.Request().Context(), actor, &orderdto.ShipOrderInput{
		OrderID:               c.Param("id"),
		CourierName:           body.CourierName,
		TrackingNumber:        body.TrackingNumber,
		EstimatedDeliveryDate: body.EstimatedDeliveryDate,
		Notes:                 body.Notes,
		ProofImages:           body.ProofImages,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) AppendProof(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	var body struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid request body"))
	}
	if err := h.uc.AppendShippingProof(c.Request().Context(), actor, c.Param("id"), body.ImageURL); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *OrderHandler) MarkDelivered(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	order, err := h.uc.MarkDelivered(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) ConfirmDelivery(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	order, err := h.uc.ConfirmDelivery(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) Cancel(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	order, err := h.uc.CancelOrder(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) ListBuyerOrders(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	orders, err := h.uc.GetBuyerOrders(c.Request().Context(), actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"orders": toOrderResponses(orders)})
}

// ListSellerOrders backs the seller dashboard: status and date narrowing,
// free-text search over order id and buyer name, and a stable sort.
func (h *OrderHandler) ListSellerOrders(c echo.Context) error {
	actor := middleware.ActorFrom(c)

	input := &orderdto.SellerOrdersInput{
		Status: c.QueryParam("status"),
		Search: c.QueryParam("search"),
		SortBy: c.QueryParam("sort"),
		Page:   parseInt32(c.QueryParam("page")),
		Limit:  parseInt32(c.QueryParam("limit")),
	}
	var err error
	if input.DateFrom, err = parseDate(c.QueryParam("dateFrom")); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid dateFrom"))
	}
	if input.DateTo, err = parseDate(c.QueryParam("dateTo")); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid dateTo"))
	}

	output, err := h.uc.GetSellerOrders(c.Request().Context(), actor, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toOrdersListResponse(output))
}

func (h *OrderHandler) ListAllOrders(c echo.Context) error {
	input := &orderdto.AdminOrdersInput{
		Page:  parseInt32(c.QueryParam("page")),
		Limit: parseInt32(c.QueryParam("limit")),
	}
	if statuses := c.QueryParam("statuses"); statuses != "" {
		input.Statuses = strings.Split(statuses, ",")
	}
	if storeID := c.QueryParam("storeId"); storeID != "" {
		input.StoreID = &storeID
	}
	if sellerID := c.QueryParam("sellerId"); sellerID != "" {
		input.SellerID = &sellerID
	}
	if raw := c.QueryParam("minAmount"); raw != "" {
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid minAmount"))
		}
		input.MinAmount = &val
	}
	if raw := c.QueryParam("maxAmount"); raw != "" {
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid maxAmount"))
		}
		input.MaxAmount = &val
	}
	var err error
	if input.DateFrom, err = parseDate(c.QueryParam("dateFrom")); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid dateFrom"))
	}
	if input.DateTo, err = parseDate(c.QueryParam("dateTo")); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid dateTo"))
	}

	output, err := h.uc.GetAllOrders(c.Request().Context(), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toOrdersListResponse(output))
}

func parseInt32(raw string) int32 {
	val, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0
	}
	return int32(val)
}

// parseDate accepts 2006-01-02 or full RFC3339.
func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
