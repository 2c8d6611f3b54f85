package usecase

import (
	"context"

	"adoptamena_backend/internal/feature/auth/domain/entity"
)

// VerificationRepository abstracts the storage of email verification tokens.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type VerificationRepository interface {
	// Create persists a new token.
	Create(ctx context.Context, token *entity.VerificationToken) error

	// Consume atomically loads and removes a token so it can be used only once.
	// Returns ErrVerificationTokenNotFound when the token does not exist.
	Consume(ctx context.Context, token string) (*entity.VerificationToken, error)

	// DeleteByUserID removes every outstanding token for a user.
	DeleteByUserID(ctx context.Context, userID uint) error
}
