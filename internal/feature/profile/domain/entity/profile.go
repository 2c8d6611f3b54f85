// Package entity defines the domain entities for the profile feature.
package entity

import "time"

// Profile holds the public information of a user or organization.
// Each user owns exactly one profile; optional fields are nil until filled in.
type Profile struct {
	ID               uint       `gorm:"primaryKey"`
	UserID           uint       `gorm:"uniqueIndex;not null"`
	OrganizationName *string    `gorm:"size:255"`
	Name             *string    `gorm:"size:255"`
	LastName         *string    `gorm:"size:255"`
	Address          *string    `gorm:"size:512"`
	Latitude         *float64   // Address coordinates, both set or both nil
	Longitude        *float64
	Description      *string    `gorm:"type:text"`
	Gender           *Gender    `gorm:"size:16"`
	Birthdate        *time.Time `gorm:"type:date"`
	Document         *string    `gorm:"size:64"`
	PhoneNumber      *string    `gorm:"size:32"`
	EarnedPoints     int        `gorm:"not null;default:0"`
	IsDeleted        bool       `gorm:"not null;default:false;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
