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

type fakeAdminUsecase struct {
	users      []*entity.User
	user       *entity.User
	salary     *usecase.SalaryOutput
	err        error
	lastUpdate *usecase.UpdateUserInput
	lastDays   int
}

func (f *fakeAdminUsecase) ListUsers(_ context.Context) ([]*entity.User, error) {
	return f.users, f.err
}

func (f *fakeAdminUsecase) GetUser(_ context.Context, _ uuid.UUID) (*entity.User, error) {
	return f.user, f.err
}

func (f *fakeAdminUsecase) UpdateUser(_ context.Context, _ uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	f.lastUpdate = input

	return f.user, f.err
}

func (f *fakeAdminUsecase) DeleteUser(_ context.Context, _ uuid.UUID) error {
	return f.err
}

func (f *fakeAdminUsecase) UpdateWorkdays(_ context.Context, _ uuid.UUID, workdays int) (*entity.User, error) {
	f.lastDays = workdays

	return f.user, f.err
}

func (f *fakeAdminUsecase) CalculateSalary(_ context.Context, _ uuid.UUID) (*usecase.SalaryOutput, error) {
	return f.salary, f.err
}

func newAdminHandlerTest(uc usecase.AdminUsecase) *AdminHandler {
	return NewAdminHandler(uc, validator.New(), slog.New(slog.DiscardHandler))
}

func requestWithID(e *echo.Echo, method, body string, id string) (echo.Context, *httptest.ResponseRecorder) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/", reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)

	return c, rec
}

func TestAdminHandler_ListUsers(t *testing.T) {
	uc := &fakeAdminUsecase{users: []*entity.User{
		{ID: uuid.New(), Email: "jane@example.com", Roles: entity.Roles{entity.RoleViewer}},
		{ID: uuid.New(), Email: "john@example.com", Roles: entity.Roles{entity.RoleAdministrator}},
	}}
	h := newAdminHandlerTest(uc)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/accounts/all", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.ListUsers(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "jane@example.com")
	assert.Contains(t, rec.Body.String(), "john@example.com")
}

func TestAdminHandler_GetUserInvalidID(t *testing.T) {
	h := newAdminHandlerTest(&fakeAdminUsecase{})
	e := echo.New()

	c, rec := requestWithID(e, http.MethodGet, "", "not-a-uuid")
	require.NoError(t, h.GetUser(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminHandler_UpdateUserNoContent(t *testing.T) {
	uc := &fakeAdminUsecase{user: &entity.User{ID: uuid.New()}}
	h := newAdminHandlerTest(uc)
	e := echo.New()

	c, rec := requestWithID(e, http.MethodPut, `{
		"firstName": "Janet",
		"email": "janet@example.com",
		"password": "ignored",
		"confirmPassword": "ignored"
	}`, uuid.New().String())

	require.NoError(t, h.UpdateUser(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Password-shaped fields never reach the usecase input.
	require.NotNil(t, uc.lastUpdate)
	assert.Equal(t, "Janet", uc.lastUpdate.FirstName)
	assert.Equal(t, "janet@example.com", uc.lastUpdate.Email)
}

func TestAdminHandler_UpdateUserDuplicateEmail(t *testing.T) {
	h := newAdminHandlerTest(&fakeAdminUsecase{err: domainerrors.ErrDuplicateAccount})
	e := echo.New()

	c, rec := requestWithID(e, http.MethodPut, `{"email": "taken@example.com"}`, uuid.New().String())

	require.NoError(t, h.UpdateUser(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "already taken")
}

func TestAdminHandler_DeleteUserNoContent(t *testing.T) {
	h := newAdminHandlerTest(&fakeAdminUsecase{})
	e := echo.New()

	c, rec := requestWithID(e, http.MethodDelete, "", uuid.New().String())
	require.NoError(t, h.DeleteUser(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAdminHandler_UpdateWorkdays(t *testing.T) {
	uc := &fakeAdminUsecase{user: &entity.User{ID: uuid.New()}}
	h := newAdminHandlerTest(uc)
	e := echo.New()

	c, rec := requestWithID(e, http.MethodPut, `{"workdays": 18}`, uuid.New().String())
	require.NoError(t, h.UpdateWorkdays(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 18, uc.lastDays)
}

func TestAdminHandler_UpdateWorkdaysRejectsNegative(t *testing.T) {
	h := newAdminHandlerTest(&fakeAdminUsecase{})
	e := echo.New()

	c, rec := requestWithID(e, http.MethodPut, `{"workdays": -1}`, uuid.New().String())
	require.NoError(t, h.UpdateWorkdays(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminHandler_CalculateSalary(t *testing.T) {
	userID := uuid.New()
	h := newAdminHandlerTest(&fakeAdminUsecase{salary: &usecase.SalaryOutput{
		UserID:   userID,
		UserName: "jane@example.com",
		Salary:   2000,
	}})
	e := echo.New()

	c, rec := requestWithID(e, http.MethodGet, "", userID.String())
	require.NoError(t, h.CalculateSalary(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data SalaryResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, userID, body.Data.UserID)
	assert.Equal(t, "jane@example.com", body.Data.UserName)
	assert.Equal(t, 2000.0, body.Data.Salary)
}
