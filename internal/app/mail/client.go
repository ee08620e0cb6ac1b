package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"holdco-backend/internal/app/config"

	"github.com/sirupsen/logrus"
)

// Client — клиент почтового сервиса для доставки magic-link.
// Отказ доставки не фатален: вызывающий логирует и продолжает.
type Client struct {
	baseURL    string
	apiKey     string
	fromEmail  string
	httpClient *http.Client
}

func NewClient(cfg config.MailConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		fromEmail:  cfg.FromEmail,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// SendMagicLink отправляет письмо со ссылкой входа. Без настроенного
// сервиса ссылка пишется в лог — режим локальной разработки.
func (c *Client) SendMagicLink(ctx context.Context, email, link string) error {
	if c.baseURL == "" {
		logrus.Infof("mail not configured, magic link for %s: %s", email, link)
		return nil
	}

	payload := sendRequest{
		From:    c.fromEmail,
		To:      email,
		Subject: "Your sign-in link",
		Text:    "Follow this link to sign in to your client portal: " + link + "\n\nThe link is valid for 15 minutes and can be used once.",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mail request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("mail service responded %d", resp.StatusCode)
	}
	return nil
}
