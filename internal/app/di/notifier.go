package di

import (
	"time"

	"adoptamena_backend/internal/feature/auth/usecase"
	infrahttp "adoptamena_backend/internal/platform/http"
	"adoptamena_backend/internal/platform/mailer"
)

const webhookTimeout = 5 * time.Second

// NewVerificationNotifier returns a webhook notifier when MAIL_WEBHOOK_URL is set, else a log notifier.
func NewVerificationNotifier(cfg mailer.Config) usecase.VerificationNotifier {
	if cfg.WebhookURL != "" {
		return mailer.NewWebhookNotifier(infrahttp.NewHTTPClient(webhookTimeout), cfg.WebhookURL, cfg.BaseURL)
	}
	return mailer.NewLogNotifier(cfg.BaseURL)
}
