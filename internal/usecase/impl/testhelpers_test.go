package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"staffdesk/config"
	"staffdesk/internal/domain/entity"
	"staffdesk/internal/domain/repository"
	"staffdesk/internal/domain/service"
	"staffdesk/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// In-memory repository fakes. The services only rely on the documented
// repository contracts, so a map-backed implementation is enough.

type memUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[uuid.UUID]*entity.User{}}
}

func cloneUser(u *entity.User) *entity.User {
	cloned := *u
	cloned.Roles = append(entity.Roles(nil), u.Roles...)

	return &cloned
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) FindByUserName(_ context.Context, userName string) (*entity.User, error) {
	for _, u := range r.users {
		if u.UserName == userName {
			return cloneUser(u), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}

	return out, nil
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = cloneUser(user)

	return nil
}

func (r *memUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	user.UpdatedAt = time.Now()
	r.users[user.ID] = cloneUser(user)

	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.users, id)

	return nil
}

type memResetRepo struct {
	tokens map[uuid.UUID]*entity.PasswordResetToken
}

func newMemResetRepo() *memResetRepo {
	return &memResetRepo{tokens: map[uuid.UUID]*entity.PasswordResetToken{}}
}

func (r *memResetRepo) Create(_ context.Context, token *entity.PasswordResetToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	token.CreatedAt = time.Now()
	cloned := *token
	r.tokens[token.UserID] = &cloned

	return nil
}

func (r *memResetRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.PasswordResetToken, error) {
	if t, ok := r.tokens[userID]; ok {
		cloned := *t

		return &cloned, nil
	}

	return nil, repository.ErrResetTokenNotFound
}

func (r *memResetRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	if _, ok := r.tokens[userID]; !ok {
		return repository.ErrResetTokenNotFound
	}
	delete(r.tokens, userID)

	return nil
}

// fakeFactory hands out the shared in-memory repositories; fakeTxManager runs
// the callback without any real transaction.

type fakeFactory struct {
	users  *memUserRepo
	tokens *memResetRepo
}

func (f *fakeFactory) UserRepo() repository.UserRepository { return f.users }
func (f *fakeFactory) ResetTokenRepo() repository.ResetTokenRepository { return f.tokens }

type fakeTxManager struct {
	factory *fakeFactory
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// Shared test fixture: real bcrypt (low cost) and a real JWT service so the
// issued tokens can be validated end to end.

type testEnv struct {
	users        *memUserRepo
	tokens       *memResetRepo
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	issuer       service.ResetTokenIssuer
	cfg          *config.Config
	logger       *slog.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: 4}
	cfg.JWT = config.JWTConfig{
		Secret:         "test_secret_key_very_long_for_testing",
		Issuer:         "staffdesk-test",
		Audience:       "staffdesk-test-clients",
		AccessTokenTTL: 15 * time.Minute,
	}
	cfg.PasswordReset = config.PasswordResetConfig{TokenTTL: 30 * time.Minute}
	cfg.Payroll = config.PayrollConfig{DailyWage: 100}

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	users := newMemUserRepo()
	tokens := newMemResetRepo()

	return &testEnv{
		users:        users,
		tokens:       tokens,
		txManager:    &fakeTxManager{factory: &fakeFactory{users: users, tokens: tokens}},
		hasher:       auth.NewBcryptHasher(cfg),
		tokenService: tokenService,
		issuer:       auth.NewResetTokenIssuer(),
		cfg:          cfg,
		logger:       slog.New(slog.DiscardHandler),
	}
}

func (env *testEnv) accountService() *accountService {
	return &accountService{
		txManager:    env.txManager,
		userRepo:     env.users,
		hasher:       env.hasher,
		tokenService: env.tokenService,
		logger:       env.logger,
	}
}

func (env *testEnv) passwordResetService() *passwordResetService {
	return &passwordResetService{
		txManager:    env.txManager,
		userRepo:     env.users,
		hasher:       env.hasher,
		tokenService: env.tokenService,
		issuer:       env.issuer,
		tokenTTL:     env.cfg.PasswordReset.TokenTTL,
		logger:       env.logger,
	}
}

func (env *testEnv) adminService() *adminService {
	return &adminService{
		txManager: env.txManager,
		userRepo:  env.users,
		dailyWage: env.cfg.Payroll.DailyWage,
		logger:    env.logger,
	}
}

func (env *testEnv) seedUser(t *testing.T, email, password string, roles entity.Roles) *entity.User {
	t.Helper()

	hash, err := env.hasher.Hash(password)
	require.NoError(t, err)

	user := &entity.User{
		Email:        email,
		UserName:     email,
		FirstName:    "Seed",
		LastName:     "Account",
		PasswordHash: hash,
		Roles:        roles,
	}
	require.NoError(t, env.users.Create(context.Background(), user))

	return user
}
