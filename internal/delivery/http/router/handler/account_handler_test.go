package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"staffdesk/internal/delivery/http/validator"
	"staffdesk/internal/domain/entity"
	domainerrors "staffdesk/internal/domain/errors"
	"staffdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAccountUsecase is a hand-written stand-in for the account usecase.
type fakeAccountUsecase struct {
	registerOutput *usecase.RegisterOutput
	registerErr    error
	loginOutput    *usecase.LoginOutput
	loginErr       error
	profileUser    *entity.User
	profileErr     error
}

func (f *fakeAccountUsecase) Register(_ context.Context, _ *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return f.registerOutput, f.registerErr
}

func (f *fakeAccountUsecase) Login(_ context.Context, _ *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return f.loginOutput, f.loginErr
}

func (f *fakeAccountUsecase) GetProfile(_ context.Context, _ uuid.UUID) (*entity.User, error) {
	return f.profileUser, f.profileErr
}

func newAccountHandlerTest(uc usecase.AccountUsecase) *AccountHandler {
	return NewAccountHandler(uc, validator.New(), slog.New(slog.DiscardHandler))
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAccountHandler_RegisterValidationList(t *testing.T) {
	h := newAccountHandlerTest(&fakeAccountUsecase{})
	e := echo.New()

	// Mismatched confirmation, bad email, missing photo.
	c, rec := postJSON(e, "/api/accounts/registration", `{
		"email": "not-an-email",
		"password": "SecurePass1",
		"confirmPassword": "Different1"
	}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code   string   `json:"code"`
			Errors []string `json:"errors"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Contains(t, body.Error.Errors, "The email field must be a valid email address")
	assert.Contains(t, body.Error.Errors, "The password and confirmation password do not match")
	assert.Contains(t, body.Error.Errors, "The photoURL field is required")
}

func TestAccountHandler_RegisterDuplicate(t *testing.T) {
	h := newAccountHandlerTest(&fakeAccountUsecase{registerErr: domainerrors.ErrDuplicateAccount})
	e := echo.New()

	c, rec := postJSON(e, "/api/accounts/registration", `{
		"firstName": "Jane",
		"email": "jane@example.com",
		"password": "SecurePass1",
		"confirmPassword": "SecurePass1",
		"photoUrl": "https://example.com/jane.png"
	}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email or user name is already taken")
}

func TestAccountHandler_RegisterSuccess(t *testing.T) {
	user := &entity.User{
		ID:       uuid.New(),
		Email:    "jane@example.com",
		UserName: "jane@example.com",
		Roles:    entity.Roles{entity.RoleViewer},
	}
	h := newAccountHandlerTest(&fakeAccountUsecase{registerOutput: &usecase.RegisterOutput{User: user}})
	e := echo.New()

	c, rec := postJSON(e, "/api/accounts/registration", `{
		"firstName": "Jane",
		"email": "jane@example.com",
		"password": "SecurePass1",
		"confirmPassword": "SecurePass1",
		"photoUrl": "https://example.com/jane.png"
	}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "jane@example.com")
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestAccountHandler_LoginFailureShape(t *testing.T) {
	h := newAccountHandlerTest(&fakeAccountUsecase{loginErr: domainerrors.ErrInvalidCredentials})
	e := echo.New()

	c, rec := postJSON(e, "/api/accounts/login", `{
		"email": "jane@example.com",
		"password": "WrongPass1"
	}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.IsSuccess)
	assert.Equal(t, "Invalid Authentication", body.ErrorMessage)
	assert.Empty(t, body.Token)
}

func TestAccountHandler_LoginSuccessShape(t *testing.T) {
	h := newAccountHandlerTest(&fakeAccountUsecase{loginOutput: &usecase.LoginOutput{AccessToken: "signed.jwt.token"}})
	e := echo.New()

	c, rec := postJSON(e, "/api/accounts/login", `{
		"email": "jane@example.com",
		"password": "SecurePass1"
	}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.IsSuccess)
	assert.Equal(t, "signed.jwt.token", body.Token)
	assert.Empty(t, body.ErrorMessage)
}

func TestAccountHandler_GetProfile(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "jane@example.com"}
	h := newAccountHandlerTest(&fakeAccountUsecase{profileUser: user})
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/accounts/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", user.ID)

	require.NoError(t, h.GetProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "jane@example.com")
}
