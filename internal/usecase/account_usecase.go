// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"staffdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// The login name is derived from the email; callers cannot set it directly.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	PhotoURL  string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the signed session token after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// AccountUsecase defines the account-facing business operations.
// This is the contract the delivery layer depends on.
type AccountUsecase interface {
	// Register creates a new account with the default Viewer role.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a session token. Unknown email and
	// wrong password are indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetProfile loads the account behind an authenticated subject.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
