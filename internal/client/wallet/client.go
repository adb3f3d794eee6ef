package wallet

import (
	"context"
	"fmt"
	"time"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

// Client talks to the wallet service, the ledger that tracks pending and
// available seller balances. All order-money endpoints are idempotent on
// (seller_id, order_id), so a transition retried after a timeout cannot
// double-move funds.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")
	return &Client{http: client}
}

type errorResponse struct {
	Error string `json:"error"`
}

type holdRequest struct {
	SellerID string `json:"seller_id"`
	OrderID  string `json:"order_id"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

func (c *Client) Hold(ctx context.Context, sellerID, orderID string, amount decimal.Decimal, currency string) error {
	return c.post(ctx, "/api/v1/wallets/hold", holdRequest{
		SellerID: sellerID,
		OrderID:  orderID,
		Amount:   amount.StringFixed(2),
		Currency: currency,
	})
}

type releaseRequest struct {
	SellerID    string `json:"seller_id"`
	OrderID     string `json:"order_id"`
	Payout      string `json:"payout"`
	PlatformFee string `json:"platform_fee"`
	Currency    string `json:"currency"`
}

func (c *Client) Release(ctx context.Context, req *domain.ReleaseFundsRequest) error {
	return c.post(ctx, "/api/v1/wallets/release", releaseRequest{
		SellerID:    req.SellerID,
		OrderID:     req.OrderID,
		Payout:      req.Payout.StringFixed(2),
		PlatformFee: req.PlatformFee.StringFixed(2),
		Currency:    req.Currency,
	})
}

type refundRequest struct {
	SellerID string `json:"seller_id"`
	OrderID  string `json:"order_id"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

func (c *Client) Refund(ctx context.Context, sellerID, orderID string, amount decimal.Decimal, currency string) error {
	return c.post(ctx, "/api/v1/wallets/refund", refundRequest{
		SellerID: sellerID,
		OrderID:  orderID,
		Amount:   amount.StringFixed(2),
		Currency: currency,
	})
}

type balanceResponse struct {
	SellerID  string `json:"seller_id"`
	Currency  string `json:"currency"`
	Available string `json:"available"`
	Pending   string `json:"pending"`
}

func (c *Client) GetSellerBalance(ctx context.Context, sellerID string) (*domain.SellerBalance, error) {
	var (
		body   balanceResponse
		apiErr errorResponse
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&body).
		SetError(&apiErr).
		Get(fmt.Sprintf("/api/v1/wallets/%s/balance", sellerID))
	if err != nil {
		return nil, fmt.Errorf("wallet balance request: %w", err)
	}
	if resp.IsError() {
		return nil, walletError(resp.StatusCode(), apiErr)
	}

	available, err := decimal.NewFromString(body.Available)
	if err != nil {
		return nil, fmt.Errorf("wallet balance: bad available amount %q", body.Available)
	}
	pending, err := decimal.NewFromString(body.Pending)
	if err != nil {
		return nil, fmt.Errorf("wallet balance: bad pending amount %q", body.Pending)
	}

	return &domain.SellerBalance{
		SellerID:  body.SellerID,
		Currency:  body.Currency,
		Available: available,
		Pending:   pending,
	}, nil
}

type withdrawalRequest struct {
	SellerID        string `json:"seller_id"`
	PaymentMethodID string `json:"payment_method_id"`
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
}

type withdrawalResponse struct {
	ID       string `json:"id"`
	SellerID string `json:"seller_id"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

func (c *Client) RequestWithdrawal(ctx context.Context, req *domain.WithdrawalRequest) (*domain.Withdrawal, error) {
	var (
		body   withdrawalResponse
		apiErr errorResponse
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(withdrawalRequest{
			SellerID:        req.SellerID,
			PaymentMethodID: req.PaymentMethodID,
			Amount:          req.Amount.StringFixed(2),
			Currency:        req.Currency,
		}).
		SetResult(&body).
		SetError(&apiErr).
		Post("/api/v1/withdrawals")
	if err != nil {
		return nil, fmt.Errorf("withdrawal request: %w", err)
	}
	if resp.IsError() {
		return nil, walletError(resp.StatusCode(), apiErr)
	}

	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return nil, fmt.Errorf("withdrawal: bad amount %q", body.Amount)
	}

	return &domain.Withdrawal{
		ID:       body.ID,
		SellerID: body.SellerID,
		Amount:   amount,
		Currency: body.Currency,
		Status:   body.Status,
	}, nil
}

func (c *Client) post(ctx context.Context, path string, body interface{}) error {
	var apiErr errorResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetError(&apiErr).
		Post(path)
	if err != nil {
		return fmt.Errorf("wallet request %s: %w", path, err)
	}
	if resp.IsError() {
		return walletError(resp.StatusCode(), apiErr)
	}
	return nil
}

func walletError(status int, apiErr errorResponse) error {
	if apiErr.Error != "" {
		return fmt.Errorf("wallet service: %s", apiErr.Error)
	}
	return fmt.Errorf("wallet service returned status %d", status)
}
