// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"staffdesk/internal/delivery/http/middleware"
	"staffdesk/internal/delivery/http/router/handler"
	"staffdesk/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler  *handler.AccountHandler
	AdminHandler    *handler.AdminHandler
	PasswordHandler *handler.PasswordHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// guardedRoute binds one route to the roles allowed to call it. An empty
// role set means the route only needs authentication.
type guardedRoute struct {
	method  string
	path    string
	handler echo.HandlerFunc
	roles   entity.Roles
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler  *handler.AccountHandler
	adminHandler    *handler.AdminHandler
	passwordHandler *handler.PasswordHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:  params.AccountHandler,
		adminHandler:    params.AdminHandler,
		passwordHandler: params.PasswordHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application. Protected
// routes are declared in one table so the role requirements of the whole
// surface are visible in one place.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	accounts := e.Group("/api/accounts")

	// Public routes: no session token required.
	accounts.POST("/registration", r.accountHandler.Register)
	accounts.POST("/login", r.accountHandler.Login)
	accounts.POST("/forgot-password", r.passwordHandler.ForgotPassword)
	accounts.POST("/reset-password", r.passwordHandler.ResetPassword)

	guarded := []guardedRoute{
		{http.MethodGet, "/profile", r.accountHandler.GetProfile, entity.Roles{entity.RoleViewer}},
		{http.MethodGet, "/privacy", r.accountHandler.Privacy, entity.Roles{entity.RoleAdministrator}},
		{http.MethodGet, "/all", r.adminHandler.ListUsers, entity.Roles{entity.RoleAdministrator}},
		{http.MethodGet, "/:id", r.adminHandler.GetUser, entity.Roles{entity.RoleAdministrator}},
		{http.MethodPut, "/:id", r.adminHandler.UpdateUser, entity.Roles{entity.RoleAdministrator}},
		{http.MethodDelete, "/:id", r.adminHandler.DeleteUser, entity.Roles{entity.RoleAdministrator}},
		{http.MethodPut, "/update-workdays/:id", r.adminHandler.UpdateWorkdays, entity.Roles{entity.RoleAdministrator}},
		{http.MethodGet, "/calculate-salary/:id", r.adminHandler.CalculateSalary, entity.Roles{entity.RoleAdministrator}},
	}

	for _, route := range guarded {
		middlewares := []echo.MiddlewareFunc{r.authMiddleware.Authenticate}
		if len(route.roles) > 0 {
			middlewares = append(middlewares, r.authMiddleware.RequireAnyRole(route.roles...))
		}
		accounts.Add(route.method, route.path, route.handler, middlewares...)
	}
}
