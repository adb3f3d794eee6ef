package handlers

import (
	"net/http"

	"github.com/dukalink/dukalink-escrow-service/internal/delivery/http/middleware"
	"github.com/dukalink/dukalink-escrow-service/internal/usecase"
	methoddto "github.com/dukalink/dukalink-escrow-service/internal/usecase/dto/method"
	"github.com/labstack/echo/v4"
)

// WalletHandler exposes the seller's view of the escrow ledger: balances
// and withdrawal requests. The ledger itself lives in the wallet service.
type WalletHandler struct {
	uc usecase.WalletUsecase
}

func NewWalletHandler(uc usecase.WalletUsecase) *WalletHandler {
	return &WalletHandler{uc: uc}
}

type BalanceResponse struct {
	SellerID  string `json:"sellerId"`
	Currency  string `json:"currency"`
	Available string `json:"available"`
	Pending   string `json:"pending"`
}

func (h *WalletHandler) GetBalance(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	balance, err := h.uc.GetSellerWallet(c.Request().Context(), actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, BalanceResponse{
		SellerID:  balance.SellerID,
		Currency:  balance.Currency,
		Available: balance.Available.StringFixed(2),
		Pending:   balance.Pending.StringFixed(2),
	})
}

type WithdrawalResponse struct {
	ID       string `json:"id"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

func (h *WalletHandler) RequestWithdrawal(c echo.Context) error {
	actor := middleware.ActorFrom(c)
	var body struct {
		PaymentMethodID string `json:"paymentMethodId"`
		Amount          string `json:"amount"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid request body"))
	}
	withdrawal, err := h.uc.RequestWithdrawal(c.Request().Context(), actor, &methoddto.WithdrawInput{
		PaymentMethodID: body.PaymentMethodID,
		Amount:          body.Amount,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, WithdrawalResponse{
		ID:       withdrawal.ID,
		Amount:   withdrawal.Amount.StringFixed(2),
		Currency: withdrawal.Currency,
		Status:   withdrawal.Status,
	})
}
