// Package handler provides HTTP handlers for the profile feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"adoptamena_backend/internal/api"
	"adoptamena_backend/internal/feature/profile/domain/entity"
	"adoptamena_backend/internal/feature/profile/transport/http/dto"
	"adoptamena_backend/internal/feature/profile/usecase"
	jwtmw "adoptamena_backend/internal/platform/jwt"
)

// ProfileUsecase defines the profile operations used by the handler.
type ProfileUsecase interface {
	GetByID(ctx context.Context, id uint) (*entity.Profile, error)
	GetByUserID(ctx context.Context, userID uint) (*entity.Profile, error)
	UpdateByID(ctx context.Context, id uint, in usecase.UpdateInput) (*entity.Profile, error)
	DeleteByID(ctx context.Context, id uint) error
}

// ProfileHandler handles HTTP requests for profiles.
type ProfileHandler struct {
	uc ProfileUsecase
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(uc ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// GetMe handles GET /profiles/me for the authenticated user.
func (h *ProfileHandler) GetMe(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, api.Message("unauthorized"))
		return
	}
	p, err := h.uc.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProfileResponse(p))
}

// GetByID handles GET /profiles/:id.
func (h *ProfileHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := h.uc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProfileResponse(p))
}

// UpdateByID handles PUT /profiles/:id.
//   - 400 on a malformed body, bad birthdate, unknown gender or bad coordinates
//   - 404 when the profile is absent or deleted
func (h *ProfileHandler) UpdateByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Message("invalid request"))
		return
	}
	in, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, api.Message(err.Error()))
		return
	}

	p, err := h.uc.UpdateByID(c.Request.Context(), id, in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProfileResponse(p))
}

// DeleteByID handles DELETE /profiles/:id.
func (h *ProfileHandler) DeleteByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.uc.DeleteByID(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.Message("profile deleted"))
}

func (h *ProfileHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, api.Message("profile not found"))
	case errors.Is(err, usecase.ErrInvalidGender), errors.Is(err, usecase.ErrInvalidCoordinates):
		c.JSON(http.StatusBadRequest, api.Message(err.Error()))
	default:
		slog.Error("profile request failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, api.Message("internal error"))
	}
}

// pathID parses the :id parameter, answering 400 when it is not a positive integer.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, api.Message("invalid id"))
		return 0, false
	}
	return uint(id), true
}
