package usecase

import "context"

// ResetPasswordInput defines the data required to redeem a reset token.
type ResetPasswordInput struct {
	Email       string
	Token       string
	NewPassword string
}

// PasswordResetUsecase defines the password-recovery operations.
type PasswordResetUsecase interface {
	// RequestReset issues a new recovery token for the account behind the
	// email, replacing any outstanding one. Returns the raw token; only its
	// hash is stored.
	RequestReset(ctx context.Context, email string) (string, error)

	// ResetPassword redeems a recovery token: on success the password is
	// rehashed, the token is consumed, and a fresh session token is returned.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) (string, error)
}
