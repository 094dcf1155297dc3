package impl

import (
	"context"
	"crypto/hmac"
	"log/slog"
	"time"

	"staffdesk/config"
	deliverycontext "staffdesk/internal/delivery/context"
	"staffdesk/internal/domain/entity"
	domainerrors "staffdesk/internal/domain/errors"
	"staffdesk/internal/domain/repository"
	"staffdesk/internal/domain/service"
	"staffdesk/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// passwordResetService implements the PasswordResetUsecase interface.
type passwordResetService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	issuer       service.ResetTokenIssuer
	tokenTTL     time.Duration
	logger       *slog.Logger
}

// PasswordResetServiceParams holds dependencies for passwordResetService, injected by Fx.
type PasswordResetServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Issuer       service.ResetTokenIssuer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewPasswordResetService is the constructor for passwordResetService.
func NewPasswordResetService(params PasswordResetServiceParams) usecase.PasswordResetUsecase {
	return &passwordResetService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		issuer:       params.Issuer,
		tokenTTL:     params.Config.PasswordReset.TokenTTL,
		logger:       params.Logger,
	}
}

func (srv *passwordResetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestReset issues a recovery token for the account, replacing any
// outstanding one. The raw token goes back to the caller; only the SHA-256
// digest is persisted.
func (srv *passwordResetService) RequestReset(ctx context.Context, email string) (string, error) {
	srv.log(ctx).Info("Password reset requested", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", errors.Wrap(domainerrors.ErrUserNotFound, "no account for email")
		}

		return "", errors.Wrap(err, "failed to load account for password reset")
	}

	rawToken, tokenHash, err := srv.issuer.Generate()
	if err != nil {
		srv.log(ctx).Error("Failed to generate reset token", slog.Any("error", err))

		return "", errors.Wrap(err, "failed to generate reset token")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ResetTokenRepo().Create(ctx, &entity.PasswordResetToken{
			UserID:    user.ID,
			TokenHash: tokenHash,
			ExpiresAt: time.Now().Add(srv.tokenTTL),
		})
	})
	if err != nil {
		srv.log(ctx).Error("Failed to store reset token", slog.Any("error", err), slog.Any("userID", user.ID))

		return "", errors.Wrap(err, "failed to execute reset token transaction")
	}

	srv.log(ctx).Debug("Reset token issued", slog.Any("userID", user.ID))

	return rawToken, nil
}

// ResetPassword redeems a recovery token. Hash match, expiry and single use
// are all checked inside one transaction; a consumed token and a token that
// never existed fail identically.
func (srv *passwordResetService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) (string, error) {
	srv.log(ctx).Info("Password reset redemption", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", errors.Wrap(domainerrors.ErrUserNotFound, "no account for email")
		}

		return "", errors.Wrap(err, "failed to load account for password reset")
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash new password", slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	presentedHash := srv.issuer.Hash(input.Token)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		resetRepo := repoFactory.ResetTokenRepo()
		userRepo := repoFactory.UserRepo()

		stored, err := resetRepo.FindByUserID(ctx, user.ID)
		if err != nil {
			if errors.Is(err, repository.ErrResetTokenNotFound) {
				return domainerrors.ErrResetTokenInvalid
			}

			return errors.Wrap(err, "failed to load reset token")
		}

		if !hmac.Equal([]byte(stored.TokenHash), []byte(presentedHash)) {
			return domainerrors.ErrResetTokenInvalid
		}

		if stored.Expired(time.Now()) {
			return domainerrors.ErrResetTokenExpired
		}

		user.PasswordHash = newHash
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to store new password hash")
		}

		// Consume the token so a second redemption finds nothing.
		return resetRepo.DeleteByUserID(ctx, user.ID)
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.Any("userID", user.ID), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to execute password reset transaction")
	}

	sessionToken, err := srv.tokenService.GenerateToken(user)
	if err != nil {
		srv.log(ctx).Error("Failed to generate session token after reset", slog.Any("error", err))

		return "", errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", user.ID))

	return sessionToken, nil
}
