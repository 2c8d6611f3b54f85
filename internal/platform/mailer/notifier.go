// Package mailer delivers verification links to account owners.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
)

const defaultBaseURL = "http://localhost:8080/auth/verify"

// Config holds the delivery settings.
type Config struct {
	// BaseURL is the verify endpoint the link points at; the token is added as ?token=.
	BaseURL string
	// WebhookURL receives a JSON POST per message. Empty means log-only delivery.
	WebhookURL string
}

// LoadConfig reads VERIFICATION_BASE_URL and MAIL_WEBHOOK_URL.
func LoadConfig() Config {
	cfg := Config{
		BaseURL:    os.Getenv("VERIFICATION_BASE_URL"),
		WebhookURL: os.Getenv("MAIL_WEBHOOK_URL"),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return cfg
}

// VerificationLink appends token to baseURL as the token query parameter.
func VerificationLink(baseURL, token string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid verification base url: %w", err)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

type webhookPayload struct {
	Email string `json:"email"`
	Link  string `json:"link"`
}

// WebhookNotifier posts each verification link to a mail relay webhook.
type WebhookNotifier struct {
	client     *http.Client
	webhookURL string
	baseURL    string
}

// NewWebhookNotifier creates a WebhookNotifier using client for outbound calls.
func NewWebhookNotifier(client *http.Client, webhookURL, baseURL string) *WebhookNotifier {
	return &WebhookNotifier{client: client, webhookURL: webhookURL, baseURL: baseURL}
}

// SendVerification posts {email, link}. Any non-2xx answer is an error.
func (n *WebhookNotifier) SendVerification(ctx context.Context, email, token string) error {
	link, err := VerificationLink(n.baseURL, token)
	if err != nil {
		return err
	}
	body, err := json.Marshal(webhookPayload{Email: email, Link: link})
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook responded with status %d", resp.StatusCode)
	}
	slog.Info("verification link sent", "email", email)
	return nil
}

// LogNotifier writes the verification link to the log. Used in development.
type LogNotifier struct {
	baseURL string
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(baseURL string) *LogNotifier {
	return &LogNotifier{baseURL: baseURL}
}

func (n *LogNotifier) SendVerification(ctx context.Context, email, token string) error {
	link, err := VerificationLink(n.baseURL, token)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "verification link issued", "email", email, "link", link)
	return nil
}
