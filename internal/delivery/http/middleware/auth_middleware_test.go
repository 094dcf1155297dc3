package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"staffdesk/config"
	"staffdesk/internal/domain/entity"
	"staffdesk/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, func(roles entity.Roles) string) {
	t.Helper()

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:         "test_secret_key_very_long_for_testing",
			Issuer:         "staffdesk-test",
			Audience:       "staffdesk-test-clients",
			AccessTokenTTL: 15 * time.Minute,
		},
	}
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	mint := func(roles entity.Roles) string {
		token, err := tokenService.GenerateToken(&entity.User{
			ID:       uuid.New(),
			UserName: "test@example.com",
			Roles:    roles,
		})
		require.NoError(t, err)

		return token
	}

	return NewAuthMiddleware(tokenService), mint
}

func performRequest(mw *AuthMiddleware, required entity.Roles, authHeader string) *httptest.ResponseRecorder {
	e := echo.New()
	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	wrapped := mw.Authenticate(mw.RequireAnyRole(required...)(handler))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = wrapped(c)

	return rec
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	mw, _ := newTestAuthMiddleware(t)

	rec := performRequest(mw, entity.Roles{entity.RoleViewer}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	mw, mint := newTestAuthMiddleware(t)

	rec := performRequest(mw, entity.Roles{entity.RoleViewer}, mint(entity.Roles{entity.RoleViewer}))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedToken(t *testing.T) {
	mw, _ := newTestAuthMiddleware(t)

	rec := performRequest(mw, entity.Roles{entity.RoleViewer}, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RoleMismatch(t *testing.T) {
	mw, mint := newTestAuthMiddleware(t)

	token := mint(entity.Roles{entity.RoleViewer})
	rec := performRequest(mw, entity.Roles{entity.RoleAdministrator}, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_Authorized(t *testing.T) {
	mw, mint := newTestAuthMiddleware(t)

	token := mint(entity.Roles{entity.RoleAdministrator})
	rec := performRequest(mw, entity.Roles{entity.RoleAdministrator}, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_AnyRoleSuffices(t *testing.T) {
	mw, mint := newTestAuthMiddleware(t)

	token := mint(entity.Roles{entity.RoleViewer})
	rec := performRequest(mw, entity.Roles{entity.RoleViewer, entity.RoleAdministrator}, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_SetsClaimsOnContext(t *testing.T) {
	mw, mint := newTestAuthMiddleware(t)

	e := echo.New()
	var gotRoles entity.Roles
	handler := func(c echo.Context) error {
		gotRoles, _ = c.Get(ContextKeyRoles).(entity.Roles)

		return c.NoContent(http.StatusOK)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+mint(entity.Roles{entity.RoleViewer}))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, mw.Authenticate(handler)(c))
	assert.Equal(t, entity.Roles{entity.RoleViewer}, gotRoles)
}
