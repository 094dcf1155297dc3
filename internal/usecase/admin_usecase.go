package usecase

import (
	"context"

	"staffdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateUserInput defines the account fields an administrator may change.
// Password hash and role set are deliberately absent: the generic update can
// never touch them.
type UpdateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	PhotoURL  string
}

// SalaryOutput returns the derived salary for an account.
type SalaryOutput struct {
	UserID   uuid.UUID
	UserName string
	Salary   float64
}

// AdminUsecase defines the administrator-only account operations.
type AdminUsecase interface {
	// ListUsers returns every account.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// GetUser returns a single account by id.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpdateUser overwrites the mutable profile fields of an account.
	UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)

	// DeleteUser removes an account.
	DeleteUser(ctx context.Context, id uuid.UUID) error

	// UpdateWorkdays sets the workday count of an account, touching nothing else.
	UpdateWorkdays(ctx context.Context, id uuid.UUID, workdays int) (*entity.User, error)

	// CalculateSalary derives the salary from the account's workdays and the
	// configured daily wage.
	CalculateSalary(ctx context.Context, id uuid.UUID) (*SalaryOutput, error)
}
