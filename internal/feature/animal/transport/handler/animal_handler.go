// Package handler provides HTTP handlers for the animal feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"adoptamena_backend/internal/api"
	"adoptamena_backend/internal/feature/animal/domain/entity"
	"adoptamena_backend/internal/feature/animal/transport/http/dto"
	"adoptamena_backend/internal/feature/animal/usecase"
)

// AnimalUsecase defines the animal operations used by the handler.
type AnimalUsecase interface {
	List(ctx context.Context, page usecase.Page) ([]entity.Animal, error)
	GetByID(ctx context.Context, id uint) (*entity.Animal, error)
	Create(ctx context.Context, name string) (*entity.Animal, error)
	UpdateByID(ctx context.Context, id uint, name string) (*entity.Animal, error)
	DeleteByID(ctx context.Context, id uint) error
}

// AnimalHandler handles HTTP requests for animals.
type AnimalHandler struct {
	uc AnimalUsecase
}

// NewAnimalHandler creates a new AnimalHandler.
func NewAnimalHandler(uc AnimalUsecase) *AnimalHandler {
	return &AnimalHandler{uc: uc}
}

// List handles GET /animals?limit=&offset=
func (h *AnimalHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, api.Message("limit and offset must be non-negative integers"))
		return
	}

	animals, err := h.uc.List(c.Request.Context(), usecase.Page{Limit: q.Limit, Offset: q.Offset})
	if err != nil {
		h.fail(c, err)
		return
	}

	out := make([]dto.AnimalResponse, 0, len(animals))
	for i := range animals {
		out = append(out, dto.NewAnimalResponse(&animals[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetByID handles GET /animals/:id.
func (h *AnimalHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	a, err := h.uc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAnimalResponse(a))
}

// Create handles POST /animals and answers 201 with the stored animal.
func (h *AnimalHandler) Create(c *gin.Context) {
	var req dto.AnimalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Message("name is required"))
		return
	}
	a, err := h.uc.Create(c.Request.Context(), req.Name)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAnimalResponse(a))
}

// UpdateByID handles PUT /animals/:id.
func (h *AnimalHandler) UpdateByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.AnimalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Message("name is required"))
		return
	}
	a, err := h.uc.UpdateByID(c.Request.Context(), id, req.Name)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAnimalResponse(a))
}

// DeleteByID handles DELETE /animals/:id.
func (h *AnimalHandler) DeleteByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.uc.DeleteByID(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.Message("animal deleted"))
}

func (h *AnimalHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrAnimalNotFound):
		c.JSON(http.StatusNotFound, api.Message("animal not found"))
	case errors.Is(err, usecase.ErrInvalidName):
		c.JSON(http.StatusBadRequest, api.Message(err.Error()))
	default:
		slog.Error("animal request failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, api.Message("internal error"))
	}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, api.Message("invalid id"))
		return 0, false
	}
	return uint(id), true
}
