package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"adoptamena_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength is the minimum number of characters accepted for a password.
	minPasswordLength = 8

	// maxPasswordBytes is the longest input bcrypt accepts.
	maxPasswordBytes = 72

	// defaultVerificationTTL applies when the caller passes a non-positive TTL.
	defaultVerificationTTL = 24 * time.Hour
)

// dummyHash is compared against when the email is unknown so that both paths cost one bcrypt comparison.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. Returns ErrEmailAlreadyExists on a duplicate email.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail returns the active user with the given email or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID returns the active user with the given ID or ErrUserNotFound.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// MarkVerified flips the verification flag of an active user.
	MarkVerified(ctx context.Context, id uint) error
}

// ProfileCreator creates the default profile that every new account owns.
type ProfileCreator interface {
	Save(ctx context.Context, userID uint) error
}

// Transactor runs fn as one unit of work; every repository call made with the ctx passed
// to fn is committed together or rolled back together.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// JWTGenerator issues signed access tokens.
type JWTGenerator interface {
	GenerateToken(userID uint, email, role string) (string, error)
}

// VerificationNotifier delivers a verification token to the account owner.
type VerificationNotifier interface {
	SendVerification(ctx context.Context, email, token string) error
}

// authUsecase implements registration, verification and login.
type authUsecase struct {
	users           UserRepository
	profiles        ProfileCreator
	tx              Transactor
	verifications   VerificationRepository
	notifier        VerificationNotifier
	jwtGenerator    JWTGenerator
	verificationTTL time.Duration
	now             func() time.Time
	newToken        func() string
}

// NewAuthUsecase creates a new authUsecase.
func NewAuthUsecase(
	users UserRepository,
	profiles ProfileCreator,
	tx Transactor,
	verifications VerificationRepository,
	notifier VerificationNotifier,
	jwtGenerator JWTGenerator,
	verificationTTL time.Duration,
) *authUsecase {
	if verificationTTL <= 0 {
		verificationTTL = defaultVerificationTTL
	}
	return &authUsecase{
		users:           users,
		profiles:        profiles,
		tx:              tx,
		verifications:   verifications,
		notifier:        notifier,
		jwtGenerator:    jwtGenerator,
		verificationTTL: verificationTTL,
		now:             time.Now,
		newToken:        uuid.NewString,
	}
}

// validatePassword checks the password against the length bounds.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters long", ErrWeakPassword, minPasswordLength)
	}
	if len(password) > maxPasswordBytes {
		return fmt.Errorf("%w: must be at most %d bytes long", ErrPasswordTooLong, maxPasswordBytes)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an unverified account together with its default profile
// and sends a verification token to the given email.
func (u *authUsecase) Register(ctx context.Context, email, password, role string) error {
	r, ok := entity.ParseRegistrableRole(role)
	if !ok {
		return ErrInvalidRole
	}
	if err := validatePassword(password); err != nil {
		return err
	}
	email = normalizeEmail(email)

	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return fmt.Errorf("failed to look up email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	// The user and its profile are committed together.
	user := &entity.User{Email: email, Password: string(hashed), Role: r}
	err = u.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := u.users.Create(ctx, user); err != nil {
			return err
		}
		if err := u.profiles.Save(ctx, user.ID); err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// The account exists at this point; a delivery failure is recoverable through resend.
	if err := u.issueVerification(ctx, user); err != nil {
		slog.Warn("verification token not delivered", "error", err, "user_id", user.ID)
	}
	return nil
}

// Login authenticates the user and returns a signed access token.
// The bcrypt comparison runs even when the email is unknown to keep response times uniform.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}
	if !user.IsVerified {
		return "", ErrAccountNotVerified
	}

	token, err := u.jwtGenerator.GenerateToken(user.ID, user.Email, user.Role.String())
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Verify consumes a verification token and marks its account as verified.
func (u *authUsecase) Verify(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrInvalidVerificationToken
	}

	vt, err := u.verifications.Consume(ctx, token)
	if err != nil {
		if errors.Is(err, ErrVerificationTokenNotFound) {
			return ErrInvalidVerificationToken
		}
		return fmt.Errorf("failed to consume verification token: %w", err)
	}
	if vt.IsExpired(u.now()) {
		return ErrInvalidVerificationToken
	}

	if err := u.users.MarkVerified(ctx, vt.UserID); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrInvalidVerificationToken
		}
		return fmt.Errorf("failed to mark user verified: %w", err)
	}
	slog.Info("user verified", "user_id", vt.UserID)
	return nil
}

// ResendVerification issues a fresh token for an unverified account.
// Unknown or already verified emails are ignored so the caller cannot discover accounts.
func (u *authUsecase) ResendVerification(ctx context.Context, email string) error {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user.IsVerified {
		return nil
	}

	if err := u.verifications.DeleteByUserID(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to revoke previous tokens: %w", err)
	}
	return u.issueVerification(ctx, user)
}

func (u *authUsecase) issueVerification(ctx context.Context, user *entity.User) error {
	now := u.now()
	vt := &entity.VerificationToken{
		Token:     u.newToken(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(u.verificationTTL),
	}
	if err := u.verifications.Create(ctx, vt); err != nil {
		return fmt.Errorf("failed to store verification token: %w", err)
	}
	if err := u.notifier.SendVerification(ctx, user.Email, vt.Token); err != nil {
		return fmt.Errorf("failed to send verification: %w", err)
	}
	return nil
}
