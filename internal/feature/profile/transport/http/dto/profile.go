// Package dto defines data transfer objects for the profile feature's HTTP transport layer.
package dto

import (
	"fmt"
	"time"

	"adoptamena_backend/internal/feature/profile/domain/entity"
	"adoptamena_backend/internal/feature/profile/usecase"
)

// DateLayout is the wire format of birthdates.
const DateLayout = "2006-01-02"

// ProfileResponse is the JSON representation of a profile.
type ProfileResponse struct {
	ID               uint     `json:"id"`
	UserID           uint     `json:"userId"`
	OrganizationName *string  `json:"organizationName"`
	Name             *string  `json:"name"`
	LastName         *string  `json:"lastName"`
	Address          *string  `json:"address"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	Description      *string  `json:"description"`
	Gender           *string  `json:"gender"`
	Birthdate        *string  `json:"birthdate"`
	Document         *string  `json:"document"`
	PhoneNumber      *string  `json:"phoneNumber"`
	EarnedPoints     int      `json:"earnedPoints"`
}

// UpdateProfileReq is the body of PUT /profiles/:id. Any id or owner in the payload is ignored.
type UpdateProfileReq struct {
	OrganizationName *string  `json:"organizationName" binding:"omitempty,max=255"`
	Name             *string  `json:"name" binding:"omitempty,max=255"`
	LastName         *string  `json:"lastName" binding:"omitempty,max=255"`
	Address          *string  `json:"address" binding:"omitempty,max=512"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	Description      *string  `json:"description"`
	Gender           *string  `json:"gender"`
	Birthdate        *string  `json:"birthdate"`
	Document         *string  `json:"document" binding:"omitempty,max=64"`
	PhoneNumber      *string  `json:"phoneNumber" binding:"omitempty,max=32"`
	EarnedPoints     *int     `json:"earnedPoints" binding:"omitempty,min=0"`
}

// ToInput converts the request into usecase input.
func (r UpdateProfileReq) ToInput() (usecase.UpdateInput, error) {
	in := usecase.UpdateInput{
		OrganizationName: r.OrganizationName,
		Name:             r.Name,
		LastName:         r.LastName,
		Address:          r.Address,
		Latitude:         r.Latitude,
		Longitude:        r.Longitude,
		Description:      r.Description,
		Gender:           r.Gender,
		Document:         r.Document,
		PhoneNumber:      r.PhoneNumber,
		EarnedPoints:     r.EarnedPoints,
	}
	if r.Birthdate != nil {
		t, err := time.Parse(DateLayout, *r.Birthdate)
		if err != nil {
			return usecase.UpdateInput{}, fmt.Errorf("birthdate must use the %s layout", DateLayout)
		}
		in.Birthdate = &t
	}
	return in, nil
}

// NewProfileResponse converts a profile entity into its JSON form.
func NewProfileResponse(p *entity.Profile) ProfileResponse {
	resp := ProfileResponse{
		ID:               p.ID,
		UserID:           p.UserID,
		OrganizationName: p.OrganizationName,
		Name:             p.Name,
		LastName:         p.LastName,
		Address:          p.Address,
		Latitude:         p.Latitude,
		Longitude:        p.Longitude,
		Description:      p.Description,
		Document:         p.Document,
		PhoneNumber:      p.PhoneNumber,
		EarnedPoints:     p.EarnedPoints,
	}
	if p.Gender != nil {
		g := string(*p.Gender)
		resp.Gender = &g
	}
	if p.Birthdate != nil {
		b := p.Birthdate.UTC().Format(DateLayout)
		resp.Birthdate = &b
	}
	return resp
}
