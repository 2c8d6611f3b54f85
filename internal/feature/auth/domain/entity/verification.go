package entity

import "time"

// VerificationToken is a single-use token that confirms ownership of a user's email.
type VerificationToken struct {
	Token     string    // Opaque random value sent to the user
	UserID    uint      // Account the token verifies
	CreatedAt time.Time // Issue time
	ExpiresAt time.Time // After this instant the token is rejected
}

// IsExpired reports whether the token is past its expiration at now.
func (v *VerificationToken) IsExpired(now time.Time) bool {
	return !now.Before(v.ExpiresAt)
}
