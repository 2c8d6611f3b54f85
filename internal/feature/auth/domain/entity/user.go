// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account.
// Accounts start unverified and are never physically removed.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the login identifier. It stays reserved after a soft delete.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	Password string `gorm:"size:255;not null"`

	// Role decides which write operations the account may perform.
	Role Role `gorm:"size:32;not null"`

	// IsVerified is flipped once the email address has been confirmed.
	IsVerified bool `gorm:"not null;default:false"`

	// IsDeleted excludes the user from every active lookup.
	IsDeleted bool `gorm:"not null;default:false;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
