package impl

import (
	"context"
	"testing"

	domainerrors "staffdesk/internal/domain/errors"
	"staffdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_Register(t *testing.T) {
	env := newTestEnv(t)
	srv := env.accountService()

	output, err := srv.Register(context.Background(), &usecase.RegisterInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "SecurePass1",
		PhotoURL:  "https://example.com/jane.png",
	})
	require.NoError(t, err)
	require.NotNil(t, output.User)

	user := output.User
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "jane@example.com", user.Email)
	// Login name mirrors the email.
	assert.Equal(t, "jane@example.com", user.UserName)
	assert.Equal(t, []string{"Viewer"}, user.Roles.ToStrings())

	// The stored hash is never the plaintext and verifies against it.
	assert.NotEqual(t, "SecurePass1", user.PasswordHash)
	assert.True(t, env.hasher.Check("SecurePass1", user.PasswordHash))
}

func TestAccountService_RegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "taken@example.com", "SecurePass1", nil)
	srv := env.accountService()

	_, err := srv.Register(context.Background(), &usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "AnotherPass1",
	})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateAccount)
}

func TestAccountService_Login(t *testing.T) {
	env := newTestEnv(t)
	seeded := env.seedUser(t, "jane@example.com", "SecurePass1", nil)
	srv := env.accountService()

	output, err := srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "jane@example.com",
		Password: "SecurePass1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, output.AccessToken)

	// The issued token carries the account's claims.
	claims, err := env.tokenService.ValidateToken(output.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, claims.UserID)
	assert.Equal(t, seeded.UserName, claims.UserName)
}

func TestAccountService_LoginFailuresAreIndistinguishable(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "jane@example.com", "SecurePass1", nil)
	srv := env.accountService()

	_, wrongPassword := srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "jane@example.com",
		Password: "WrongPass1",
	})
	_, unknownEmail := srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "SecurePass1",
	})

	assert.ErrorIs(t, wrongPassword, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_GetProfile(t *testing.T) {
	env := newTestEnv(t)
	seeded := env.seedUser(t, "jane@example.com", "SecurePass1", nil)
	srv := env.accountService()

	user, err := srv.GetProfile(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.Email, user.Email)

	_, err = srv.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
