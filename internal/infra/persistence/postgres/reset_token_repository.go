package postgres

import (
	"context"

	"staffdesk/internal/domain/entity"
	"staffdesk/internal/domain/repository"
	"staffdesk/internal/errors"
	"staffdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type resetTokenRepository struct {
	db *gorm.DB
}

// NewResetTokenRepository creates a GORM-backed reset-token repository.
func NewResetTokenRepository(db *gorm.DB) repository.ResetTokenRepository {
	return &resetTokenRepository{db: db}
}

// Create replaces any outstanding token for the account before inserting,
// keeping the one-token-per-account invariant without relying on upsert.
func (r *resetTokenRepository) Create(ctx context.Context, token *entity.PasswordResetToken) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", token.UserID).
			Delete(&model.PasswordResetTokenModel{}).Error; err != nil {
			return err
		}

		record := fromResetTokenDomain(token)

		return tx.Create(record).Error
	})
	if err != nil {
		return errors.Wrap(err, "failed to store reset token")
	}

	return nil
}

func (r *resetTokenRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PasswordResetToken, error) {
	var record model.PasswordResetTokenModel
	err := r.db.WithContext(ctx).First(&record, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find reset token")
	}

	return toResetTokenDomain(&record), nil
}

func (r *resetTokenRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&model.PasswordResetTokenModel{}, "user_id = ?", userID)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete reset token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResetTokenNotFound
	}

	return nil
}

func toResetTokenDomain(record *model.PasswordResetTokenModel) *entity.PasswordResetToken {
	return &entity.PasswordResetToken{
		ID:        record.ID,
		UserID:    record.UserID,
		TokenHash: record.TokenHash,
		ExpiresAt: record.ExpiresAt,
		CreatedAt: record.CreatedAt,
	}
}

func fromResetTokenDomain(token *entity.PasswordResetToken) *model.PasswordResetTokenModel {
	return &model.PasswordResetTokenModel{
		ID:        token.ID,
		UserID:    token.UserID,
		TokenHash: token.TokenHash,
		ExpiresAt: token.ExpiresAt,
		CreatedAt: token.CreatedAt,
	}
}
