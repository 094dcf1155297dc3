package impl

import (
	"context"
	"log/slog"

	"staffdesk/config"
	deliverycontext "staffdesk/internal/delivery/context"
	"staffdesk/internal/domain/entity"
	domainerrors "staffdesk/internal/domain/errors"
	"staffdesk/internal/domain/repository"
	"staffdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	dailyWage float64
	logger    *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		dailyWage: params.Config.Payroll.DailyWage,
		logger:    params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns every account.
func (srv *adminService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list accounts", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return users, nil
}

// GetUser returns a single account by id.
func (srv *adminService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "no account for id")
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	return user, nil
}

// UpdateUser overwrites the mutable profile fields of an account. The stored
// password hash, role set and workday count are re-pinned from the existing
// record: this path can never change them.
func (srv *adminService) UpdateUser(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "no account for id")
			}

			return errors.Wrap(err, "failed to load account for update")
		}

		user.FirstName = input.FirstName
		user.LastName = input.LastName
		user.Email = input.Email
		user.UserName = input.Email
		user.PhotoURL = input.PhotoURL

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update account")
		}

		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Account update failed", slog.Any("userID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute account update transaction")
	}

	srv.log(ctx).Debug("Account updated", slog.Any("userID", id))

	return updated, nil
}

// DeleteUser removes an account.
func (srv *adminService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "no account for id")
		}

		srv.log(ctx).Error("Failed to delete account", slog.Any("userID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete account")
	}

	srv.log(ctx).Info("Account deleted", slog.Any("userID", id))

	return nil
}

// UpdateWorkdays sets the workday count of an account, touching nothing else.
func (srv *adminService) UpdateWorkdays(ctx context.Context, id uuid.UUID, workdays int) (*entity.User, error) {
	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "no account for id")
			}

			return errors.Wrap(err, "failed to load account for workday update")
		}

		user.Workdays = workdays

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update workdays")
		}

		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Workday update failed", slog.Any("userID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute workday update transaction")
	}

	return updated, nil
}

// CalculateSalary derives the salary from workdays and the configured daily wage.
func (srv *adminService) CalculateSalary(ctx context.Context, id uuid.UUID) (*usecase.SalaryOutput, error) {
	user, err := srv.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	return &usecase.SalaryOutput{
		UserID:   user.ID,
		UserName: user.UserName,
		Salary:   float64(user.Workdays) * srv.dailyWage,
	}, nil
}
