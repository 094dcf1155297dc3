package postgres

import (
	"context"

	"staffdesk/internal/domain/entity"
	domainerrors "staffdesk/internal/domain/errors"
	"staffdesk/internal/domain/repository"
	"staffdesk/internal/errors"
	"staffdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a GORM-backed account repository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var record model.UserModel
	err := r.db.WithContext(ctx).
		Preload("Roles").
		First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&record), nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var record model.UserModel
	err := r.db.WithContext(ctx).
		Preload("Roles").
		First(&record, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&record), nil
}

func (r *userRepository) FindByUserName(ctx context.Context, userName string) (*entity.User, error) {
	var record model.UserModel
	err := r.db.WithContext(ctx).
		Preload("Roles").
		First(&record, "user_name = ?", userName).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by user name")
	}

	return toUserDomain(&record), nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var records []model.UserModel
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(records))
	for i := range records {
		users = append(users, toUserDomain(&records[i]))
	}

	return users, nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	record := fromUserDomain(user)
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateAccount
		}

		return errors.Wrap(err, "failed to create user")
	}

	// Surface generated columns back to the caller.
	user.ID = record.ID
	user.CreatedAt = record.CreatedAt
	user.UpdatedAt = record.UpdatedAt

	return nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	record := fromUserDomain(user)

	// Replace the role set explicitly; FullSaveAssociations alone does not
	// remove rows dropped from the association.
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&model.UserRoleModel{}).Error; err != nil {
			return err
		}

		result := tx.Session(&gorm.Session{FullSaveAssociations: true}).
			Where("id = ?", user.ID).
			Save(record)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrUserNotFound
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.ErrUserNotFound
		}
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateAccount
		}

		return errors.Wrap(err, "failed to update user")
	}

	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.UserModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func toUserDomain(record *model.UserModel) *entity.User {
	roles := make([]string, 0, len(record.Roles))
	for _, role := range record.Roles {
		roles = append(roles, role.Role)
	}

	return &entity.User{
		ID:           record.ID,
		Email:        record.Email,
		UserName:     record.UserName,
		FirstName:    record.FirstName,
		LastName:     record.LastName,
		PhotoURL:     record.PhotoURL,
		Workdays:     record.Workdays,
		PasswordHash: record.PasswordHash,
		Roles:        entity.RolesFromStrings(roles),
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
}

func fromUserDomain(user *entity.User) *model.UserModel {
	roles := make([]model.UserRoleModel, 0, len(user.Roles))
	for _, role := range user.Roles {
		roles = append(roles, model.UserRoleModel{
			UserID: user.ID,
			Role:   role.String(),
		})
	}

	return &model.UserModel{
		ID:           user.ID,
		Email:        user.Email,
		UserName:     user.UserName,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		PhotoURL:     user.PhotoURL,
		Workdays:     user.Workdays,
		PasswordHash: user.PasswordHash,
		Roles:        roles,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}
