// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"staffdesk/internal/delivery/http/response"
	"staffdesk/internal/delivery/http/validator"
	"staffdesk/internal/domain/entity"
	domainerrors "staffdesk/internal/domain/errors"
	"staffdesk/internal/domain/service"
	"staffdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RegistrationRequest is the wire shape of a registration call. The
// confirmation password must echo the password; the login name is derived
// from the email server-side.
type RegistrationRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	PhotoURL        string `json:"photoUrl" validate:"required,url"`
}

// LoginRequest is the wire shape of a login call.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the wire shape of the login result. Failure keeps the
// same shape with isSuccess false and a fixed error message.
type LoginResponse struct {
	IsSuccess    bool   `json:"isSuccess"`
	Token        string `json:"token,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// UserResponse is the outbound account representation. The password hash
// never leaves the service.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	UserName  string    `json:"userName"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	PhotoURL  string    `json:"photoUrl"`
	Workdays  int       `json:"workdays"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
}

// ClaimEntry mirrors one token claim for the privacy endpoint.
type ClaimEntry struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		UserName:  user.UserName,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		PhotoURL:  user.PhotoURL,
		Workdays:  user.Workdays,
		Roles:     user.Roles.ToStrings(),
		CreatedAt: user.CreatedAt,
	}
}

// AccountHandler holds dependencies for account-facing handlers.
type AccountHandler struct {
	uc        usecase.AccountUsecase
	validator *validator.Validator
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, v *validator.Validator, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:        uc,
		validator: v,
		logger:    logger,
	}
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var req RegistrationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if msgs := h.validator.Messages(&req); len(msgs) > 0 {
		return response.ValidationFailed(c, msgs)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		PhotoURL:  req.PhotoURL,
	})
	if err != nil {
		// Duplicate accounts surface in the same list shape as field validation.
		if errors.Is(err, domainerrors.ErrDuplicateAccount) {
			return response.ValidationFailed(c, []string{domainerrors.ErrDuplicateAccount.Message()})
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(output.User), "Account registered successfully")
}

// Login handles the login request. Authentication failure answers with the
// fixed shape regardless of whether the email exists.
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if msgs := h.validator.Messages(&req); len(msgs) > 0 {
		return response.ValidationFailed(c, msgs)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, LoginResponse{
				IsSuccess:    false,
				ErrorMessage: domainerrors.ErrInvalidCredentials.Message(),
			})
		}

		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		IsSuccess: true,
		Token:     output.AccessToken,
	})
}

// GetProfile returns the account behind the authenticated subject.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid user ID in token")
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Profile retrieved successfully")
}

// Privacy echoes the caller's token claims back.
func (h *AccountHandler) Privacy(c echo.Context) error {
	claims, ok := c.Get("claims").(*service.Claims)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid claims in token")
	}

	entries := []ClaimEntry{
		{Type: "uid", Value: claims.UserID.String()},
		{Type: "name", Value: claims.UserName},
		{Type: "sub", Value: claims.Subject},
		{Type: "iss", Value: claims.Issuer},
	}
	for _, role := range claims.Roles {
		entries = append(entries, ClaimEntry{Type: "role", Value: role})
	}

	return response.Success(c, http.StatusOK, entries, "Claims retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
