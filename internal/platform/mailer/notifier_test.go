package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infrahttp "adoptamena_backend/internal/platform/http"
)

func TestVerificationLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		base    string
		want    string
		wantErr bool
	}{
		{"plain", "https://adoptamena.example/auth/verify", "https://adoptamena.example/auth/verify?token=abc-123", false},
		{"keeps existing query", "https://app.example/verify?lang=es", "https://app.example/verify?lang=es&token=abc-123", false},
		{"invalid", "://nope", "", true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := VerificationLink(tt.base, "abc-123")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWebhookNotifier_SendVerification(t *testing.T) {
	t.Parallel()

	var got webhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(infrahttp.NewHTTPClient(time.Second), srv.URL, "http://localhost:8080/auth/verify")
	require.NoError(t, n.SendVerification(context.Background(), "new@example.com", "tok"))

	assert.Equal(t, "new@example.com", got.Email)
	assert.Equal(t, "http://localhost:8080/auth/verify?token=tok", got.Link)
}

func TestWebhookNotifier_ErrorStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(infrahttp.NewHTTPClient(time.Second), srv.URL, defaultBaseURL)
	err := n.SendVerification(context.Background(), "new@example.com", "tok")
	assert.ErrorContains(t, err, "502")
}

func TestLogNotifier(t *testing.T) {
	t.Parallel()

	assert.NoError(t, NewLogNotifier(defaultBaseURL).SendVerification(context.Background(), "a@b.c", "tok"))
	assert.Error(t, NewLogNotifier("://bad").SendVerification(context.Background(), "a@b.c", "tok"))
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("VERIFICATION_BASE_URL", "")
	t.Setenv("MAIL_WEBHOOK_URL", "https://relay.example/hook")

	cfg := LoadConfig()
	assert.Equal(t, defaultBaseURL, cfg.BaseURL)
	assert.Equal(t, "https://relay.example/hook", cfg.WebhookURL)
}
