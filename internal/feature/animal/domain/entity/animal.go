// Package entity defines the domain entities for the animal feature.
package entity

import "time"

// MaxNameLength bounds the animal name in characters.
const MaxNameLength = 100

// Animal is a pet listed for adoption.
type Animal struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	IsDeleted bool   `gorm:"not null;default:false;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
