// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"adoptamena_backend/internal/api"
	"adoptamena_backend/internal/feature/auth/transport/http/dto"
	"adoptamena_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the authentication operations used by the handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	Register(ctx context.Context, email, password, role string) error
	Login(ctx context.Context, email, password string) (string, error)
	Verify(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, email string) error
}

// Recorder receives the outcome of registrations and logins.
type Recorder interface {
	RecordRegistration(outcome string)
	RecordLogin(outcome string)
}

type nopRecorder struct{}

func (nopRecorder) RecordRegistration(string) {}
func (nopRecorder) RecordLogin(string)        {}

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	auth     AuthUsecase
	recorder Recorder
}

// NewAuthHandler creates a new AuthHandler. A nil recorder disables outcome recording.
func NewAuthHandler(auth AuthUsecase, recorder Recorder) *AuthHandler {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &AuthHandler{auth: auth, recorder: recorder}
}

// Register handles POST /auth/register.
//   - 400 on a malformed body, invalid email, short or overlong password, invalid role or taken email
//   - 200 with an acknowledgement message on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		h.recorder.RecordRegistration("invalid")
		c.JSON(http.StatusBadRequest, api.Message("invalid request: a valid email and a password of 8 to 72 characters are required"))
		return
	}

	err := h.auth.Register(c.Request.Context(), req.Email, req.Password, req.Role)
	switch {
	case err == nil:
	case errors.Is(err, usecase.ErrInvalidRole):
		h.recorder.RecordRegistration("invalid")
		c.JSON(http.StatusBadRequest, api.Message(req.Role+" is not a valid role"))
		return
	case errors.Is(err, usecase.ErrWeakPassword):
		h.recorder.RecordRegistration("invalid")
		c.JSON(http.StatusBadRequest, api.Message("password must be at least 8 characters long"))
		return
	case errors.Is(err, usecase.ErrPasswordTooLong):
		h.recorder.RecordRegistration("invalid")
		c.JSON(http.StatusBadRequest, api.Message("password must be at most 72 bytes long"))
		return
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		slog.Warn("register rejected: email taken", "email", req.Email, "remote_addr", c.ClientIP())
		h.recorder.RecordRegistration("duplicate")
		c.JSON(http.StatusBadRequest, api.Message("email is already registered"))
		return
	default:
		slog.Error("register failed", "error", err, "email", req.Email)
		h.recorder.RecordRegistration("error")
		c.JSON(http.StatusInternalServerError, api.Message("internal error"))
		return
	}

	slog.Info("user registered", "email", req.Email, "role", req.Role, "remote_addr", c.ClientIP())
	h.recorder.RecordRegistration("success")
	c.JSON(http.StatusOK, api.Message("registration successful, check your email to verify the account"))
}

// Login handles POST /auth/login.
//   - 400 on a malformed body
//   - 401 on unknown email or wrong password
//   - 403 when the account is not verified yet
//   - 200 with a signed token on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Message("invalid request"))
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, usecase.ErrInvalidCredentials):
		// The message does not reveal whether the email exists.
		slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
		h.recorder.RecordLogin("invalid_credentials")
		c.JSON(http.StatusUnauthorized, api.Message("invalid email or password"))
		return
	case errors.Is(err, usecase.ErrAccountNotVerified):
		slog.Warn("login rejected: account not verified", "email", req.Email, "remote_addr", c.ClientIP())
		h.recorder.RecordLogin("unverified")
		c.JSON(http.StatusForbidden, api.Message("account is not verified"))
		return
	default:
		slog.Error("login failed", "error", err, "email", req.Email)
		h.recorder.RecordLogin("error")
		c.JSON(http.StatusInternalServerError, api.Message("internal error"))
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	h.recorder.RecordLogin("success")
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}

// Verify handles GET /auth/verify?token=...
func (h *AuthHandler) Verify(c *gin.Context) {
	token := c.Query("token")
	if err := h.auth.Verify(c.Request.Context(), token); err != nil {
		if errors.Is(err, usecase.ErrInvalidVerificationToken) {
			c.JSON(http.StatusBadRequest, api.Message("verification link is invalid or has expired"))
			return
		}
		slog.Error("verification failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.Message("internal error"))
		return
	}
	c.JSON(http.StatusOK, api.Message("account verified"))
}

// ResendVerification handles POST /auth/verify/resend.
// The response is identical for known and unknown emails.
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req dto.ResendVerificationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Message("invalid request"))
		return
	}
	if err := h.auth.ResendVerification(c.Request.Context(), req.Email); err != nil {
		slog.Error("resend verification failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, api.Message("internal error"))
		return
	}
	c.JSON(http.StatusOK, api.Message("if the account exists and is pending verification, a new link was sent"))
}
