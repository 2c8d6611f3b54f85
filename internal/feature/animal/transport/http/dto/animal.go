// Package dto defines data transfer objects for the animal feature's HTTP transport layer.
package dto

import "adoptamena_backend/internal/feature/animal/domain/entity"

// AnimalReq is the body of POST /animals and PUT /animals/:id.
type AnimalReq struct {
	Name string `json:"name" binding:"required"`
}

// ListQuery binds the paging parameters of GET /animals.
type ListQuery struct {
	Limit  int `form:"limit" binding:"omitempty,min=1"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

// AnimalResponse is the JSON representation of an animal.
type AnimalResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewAnimalResponse(a *entity.Animal) AnimalResponse {
	return AnimalResponse{ID: a.ID, Name: a.Name}
}
