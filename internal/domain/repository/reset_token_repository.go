// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"staffdesk/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrResetTokenNotFound is returned when no reset token exists for an account.
var ErrResetTokenNotFound = errors.New("password reset token not found")

// ResetTokenRepository defines the operations for password-reset token persistence.
// Tokens are keyed by account: at most one outstanding token per account, and
// redemption deletes the record so a second redemption finds nothing. Expiry is
// the caller's concern; the repository returns whatever is stored.
type ResetTokenRepository interface {
	// Create persists a new reset token, replacing any outstanding token for
	// the same account.
	Create(ctx context.Context, token *entity.PasswordResetToken) error

	// FindByUserID retrieves the outstanding reset token for an account.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PasswordResetToken, error)

	// DeleteByUserID removes the outstanding reset token for an account,
	// consuming it.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
