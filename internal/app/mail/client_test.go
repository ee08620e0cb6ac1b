package mail_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"holdco-backend/internal/app/config"
	"holdco-backend/internal/app/mail"

	"github.com/stretchr/testify/require"
)

func TestSendMagicLink(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/messages", r.URL.Path)
		require.Equal(t, "Bearer mail_key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := mail.NewClient(config.MailConfig{
		BaseURL:   srv.URL,
		APIKey:    "mail_key",
		FromEmail: "no-reply@example.com",
		Timeout:   2 * time.Second,
	})

	err := c.SendMagicLink(context.Background(), "jane@example.com", "https://portal.example.com?token=abc")
	require.NoError(t, err)
	require.Equal(t, "no-reply@example.com", got["from"])
	require.Equal(t, "jane@example.com", got["to"])
	require.Contains(t, got["text"], "https://portal.example.com?token=abc")
}

func TestSendMagicLink_DevModeWithoutBaseURL(t *testing.T) {
	c := mail.NewClient(config.MailConfig{Timeout: time.Second})
	require.NoError(t, c.SendMagicLink(context.Background(), "jane@example.com", "https://portal.example.com?token=abc"))
}

func TestSendMagicLink_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := mail.NewClient(config.MailConfig{BaseURL: srv.URL, Timeout: time.Second})
	require.Error(t, c.SendMagicLink(context.Background(), "jane@example.com", "link"))
}
