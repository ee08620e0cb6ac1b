package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"holdco-backend/internal/app/config"
)

// Типизированные ошибки коллаборатора: вызывающий различает
// недоступность сети и отказ по бизнес-причине
var (
	ErrUnavailable = errors.New("payment service unavailable")
	ErrRejected    = errors.New("payment service rejected request")
)

// SessionRequest — контракт создания checkout-сессии
type SessionRequest struct {
	OrderID       string   `json:"orderId"`
	Package       string   `json:"package"`
	AddOns        []string `json:"addOns"`
	TotalAmount   int      `json:"totalAmount"`
	CustomerEmail string   `json:"customerEmail"`
	CustomerName  string   `json:"customerName"`
}

type sessionResponse struct {
	URL string `json:"url"`
}

// Client — клиент платежного сервиса
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

func NewClient(cfg config.PaymentConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		secretKey:  cfg.SecretKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// CreateCheckoutSession создает сессию оплаты и возвращает URL
// перенаправления браузера
func (c *Client) CreateCheckoutSession(ctx context.Context, req SessionRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/checkout-sessions", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	}

	var session sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return "", fmt.Errorf("%w: bad response body: %v", ErrRejected, err)
	}
	if session.URL == "" {
		return "", fmt.Errorf("%w: response has no url", ErrRejected)
	}
	return session.URL, nil
}
