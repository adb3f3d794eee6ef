package http

import (
	"context"
	"net/http"

	"github.com/dukalink/dukalink-escrow-service/internal/delivery/http/handlers"
	appmw "github.com/dukalink/dukalink-escrow-service/internal/delivery/http/middleware"
	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Orders         *handlers.OrderHandler
	Disputes       *handlers.DisputeHandler
	Stores         *handlers.StoreHandler
	Products       *handlers.ProductHandler
	PaymentLinks   *handlers.PaymentLinkHandler
	PaymentMethods *handlers.PaymentMethodHandler
	Wallet         *handlers.WalletHandler
}

type Server struct {
	e *echo.Echo
}

// NewServer wires the route tree: public storefront and link endpoints,
// authenticated buyer/seller surfaces, and the admin group. Role checks at
// the group level are a first gate; ownership checks live in the usecases.
func NewServer(h *Handlers, auth *appmw.Auth) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	// Public surface: storefront pages and payment-link checkout.
	api.GET("/storefronts/:slug", h.Stores.GetStorefront)
	api.GET("/products/:id", h.Products.Get)
	api.GET("/links/:code", h.PaymentLinks.Resolve)
	api.POST("/links/:code/checkout", h.Orders.LinkCheckout)

	authed := api.Group("", auth.RequireAuth)
	authed.POST("/checkout", h.Orders.Checkout)

	// Shared order surface. Who may see or act on an order is decided per
	// order in the usecase, not by the route.
	authed.GET("/orders/:id", h.Orders.Get)
	authed.GET("/orders/:id/timeline", h.Orders.GetTimeline)
	authed.GET("/orders/:id/dispute", h.Disputes.GetByOrder)
	authed.POST("/orders/:id/confirm", h.Orders.ConfirmDelivery)
	authed.POST("/orders/:id/delivered", h.Orders.MarkDelivered)
	authed.POST("/orders/:id/cancel", h.Orders.Cancel)
	authed.POST("/orders/:id/accept", h.Orders.Accept)
	authed.POST("/orders/:id/reject", h.Orders.Reject)
	authed.POST("/orders/:id/ship", h.Orders.Ship)
	authed.POST("/orders/:id/proofs", h.Orders.AppendProof)
	authed.POST("/orders/:id/disputes", h.Disputes.Open)

	authed.GET("/disputes/:id", h.Disputes.Get)
	authed.GET("/disputes/:id/messages", h.Disputes.ListMessages)
	authed.POST("/disputes/:id/messages", h.Disputes.PostMessage)

	buyer := authed.Group("/buyer", auth.RequireRole(domain.RoleBuyer))
	buyer.GET("/orders", h.Orders.ListBuyerOrders)

	seller := authed.Group("/seller", auth.RequireRole(domain.RoleSeller))
	seller.GET("/orders", h.Orders.ListSellerOrders)
	seller.POST("/stores", h.Stores.Create)
	seller.PUT("/stores/:id", h.Stores.Update)
	seller.GET("/stores", h.Stores.ListMine)
	seller.GET("/stores/:id/products", h.Products.ListByStore)
	seller.POST("/products", h.Products.Create)
	seller.PUT("/products/:id", h.Products.Update)
	seller.POST("/links", h.PaymentLinks.Create)
	seller.GET("/links", h.PaymentLinks.ListMine)
	seller.POST("/links/:id/disable", h.PaymentLinks.Disable)
	seller.POST("/payment-methods", h.PaymentMethods.Create)
	seller.PUT("/payment-methods/:id", h.PaymentMethods.Update)
	seller.GET("/payment-methods", h.PaymentMethods.ListMine)
	seller.POST("/payment-methods/:id/default", h.PaymentMethods.SetDefault)
	seller.POST("/payment-methods/:id/deactivate", h.PaymentMethods.Deactivate)
	seller.GET("/wallet", h.Wallet.GetBalance)
	seller.POST("/withdrawals", h.Wallet.RequestWithdrawal)

	admin := authed.Group("/admin", auth.RequireRole(domain.RoleAdmin))
	admin.GET("/orders", h.Orders.ListAllOrders)
	admin.GET("/orders/:id/events", h.Orders.GetEvents)
	admin.GET("/stores", h.Stores.ListAll)
	admin.POST("/stores/:id/suspend", h.Stores.Suspend)
	admin.POST("/stores/:id/activate", h.Stores.Activate)
	admin.GET("/disputes", h.Disputes.List)
	admin.POST("/disputes/:id/assign", h.Disputes.Assign)
	admin.POST("/disputes/:id/status", h.Disputes.UpdateStatus)
	admin.POST("/disputes/:id/resolve", h.Disputes.Resolve)

	return &Server{e: e}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}
