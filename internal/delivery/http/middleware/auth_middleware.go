package middleware

import (
	"strings"

	"staffdesk/internal/delivery/http/response"
	"staffdesk/internal/domain/entity"
	"staffdesk/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUserID   = "userID"
	ContextKeyUserName = "userName"
	ContextKeyRoles    = "roles"
	ContextKeyClaims   = "claims"
)

// AuthMiddleware provides middleware for session token authentication and
// role-based authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the embedded claims on
// the request context. Every failure mode is a 401; the gate is stateless and
// decided per request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", unauthorizedMessage(err))
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUserName, claims.UserName)
		c.Set(ContextKeyRoles, entity.RolesFromStrings(claims.Roles))
		c.Set(ContextKeyClaims, claims)

		return next(c)
	}
}

// RequireAnyRole is a middleware factory that passes when the caller holds at
// least one of the required roles. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireAnyRole(required ...entity.Role) echo.MiddlewareFunc {
	requiredRoles := entity.Roles(required)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rolesVal := c.Get(ContextKeyRoles)
			roles, ok := rolesVal.(entity.Roles)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !roles.Intersects(requiredRoles) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: insufficient role")
			}

			return next(c)
		}
	}
}

func unauthorizedMessage(err error) string {
	switch err {
	case service.ErrTokenExpired:
		return "Session token has expired"
	case service.ErrTokenMalformed:
		return "Malformed session token"
	default:
		return "Invalid session token"
	}
}
