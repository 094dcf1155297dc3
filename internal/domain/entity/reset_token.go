// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetToken represents an issued password-recovery credential.
// The raw token value is handed to the caller exactly once; only its
// SHA-256 hash is persisted. A token is bound to one account, redeemable
// at most once, and expires lazily: expiry is checked at redemption, no
// background sweep exists.
type PasswordResetToken struct {
	ID        uuid.UUID // The unique ID for this token record.
	UserID    uuid.UUID // Links the token to the account it can reset.
	TokenHash string    // SHA-256 hash of the raw token for secure comparison.
	ExpiresAt time.Time // The instant after which redemption fails.
	CreatedAt time.Time // Timestamp of when the token was issued.
}

// Expired reports whether the token is past its time bound at the given instant.
func (t *PasswordResetToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
