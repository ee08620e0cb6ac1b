package payment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"holdco-backend/internal/app/config"
	"holdco-backend/internal/app/payment"

	"github.com/stretchr/testify/require"
)

func newClient(baseURL string) *payment.Client {
	return payment.NewClient(config.PaymentConfig{
		BaseURL:   baseURL,
		SecretKey: "sk_test",
		Timeout:   2 * time.Second,
	})
}

func sessionRequest() payment.SessionRequest {
	return payment.SessionRequest{
		OrderID:       "FC-WY-abc123",
		Package:       "standard",
		AddOns:        []string{"ein"},
		TotalAmount:   600,
		CustomerEmail: "jane@example.com",
		CustomerName:  "Jane Roe",
	}
}

func TestCreateCheckoutSession_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/checkout-sessions", r.URL.Path)
		require.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

		var req payment.SessionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "FC-WY-abc123", req.OrderID)

		_ = json.NewEncoder(w).Encode(map[string]string{"url": "https://pay.example.com/cs_1"})
	}))
	defer srv.Close()

	url, err := newClient(srv.URL).CreateCheckoutSession(context.Background(), sessionRequest())
	require.NoError(t, err)
	require.Equal(t, "https://pay.example.com/cs_1", url)
}

func TestCreateCheckoutSession_TransportErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // соединение откажет

	_, err := newClient(srv.URL).CreateCheckoutSession(context.Background(), sessionRequest())
	require.ErrorIs(t, err, payment.ErrUnavailable)
}

func TestCreateCheckoutSession_Non2xxIsRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).CreateCheckoutSession(context.Background(), sessionRequest())
	require.ErrorIs(t, err, payment.ErrRejected)
	require.NotErrorIs(t, err, payment.ErrUnavailable)
}

func TestCreateCheckoutSession_MissingURLIsRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).CreateCheckoutSession(context.Background(), sessionRequest())
	require.ErrorIs(t, err, payment.ErrRejected)
}
