package handler

import (
	"log/slog"
	"net/http"

	"staffdesk/internal/delivery/http/response"
	"staffdesk/internal/delivery/http/validator"
	domainerrors "staffdesk/internal/domain/errors"
	"staffdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UpdateUserRequest is the wire shape of an account update. Password-shaped
// fields are accepted for wire compatibility but never applied; the stored
// hash is untouchable through this endpoint.
type UpdateUserRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email" validate:"required,email"`
	PhotoURL        string `json:"photoUrl"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// UpdateWorkdaysRequest is the wire shape of a workday update.
type UpdateWorkdaysRequest struct {
	Workdays int `json:"workdays" validate:"gte=0"`
}

// SalaryResponse is the wire shape of the salary calculation.
type SalaryResponse struct {
	UserID   uuid.UUID `json:"userId"`
	UserName string    `json:"userName"`
	Salary   float64   `json:"salary"`
}

// AdminHandler holds dependencies for administrator-only handlers.
type AdminHandler struct {
	uc        usecase.AdminUsecase
	validator *validator.Validator
	logger    *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, v *validator.Validator, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:        uc,
		validator: v,
		logger:    logger,
	}
}

// ListUsers returns every account.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}

	return response.Success(c, http.StatusOK, out, "Accounts retrieved successfully")
}

// GetUser returns a single account by id.
func (h *AdminHandler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account id")
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Account retrieved successfully")
}

// UpdateUser overwrites the mutable profile fields of an account.
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account id")
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}

	if msgs := h.validator.Messages(&req); len(msgs) > 0 {
		return response.ValidationFailed(c, msgs)
	}

	_, err = h.uc.UpdateUser(c.Request().Context(), id, &usecase.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		PhotoURL:  req.PhotoURL,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateAccount) {
			return response.ValidationFailed(c, []string{domainerrors.ErrDuplicateAccount.Message()})
		}

		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteUser removes an account.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account id")
	}

	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateWorkdays sets the workday count of an account.
func (h *AdminHandler) UpdateWorkdays(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account id")
	}

	var req UpdateWorkdaysRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid workdays input")
	}

	if msgs := h.validator.Messages(&req); len(msgs) > 0 {
		return response.ValidationFailed(c, msgs)
	}

	if _, err := h.uc.UpdateWorkdays(c.Request().Context(), id, req.Workdays); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CalculateSalary returns the derived salary for an account.
func (h *AdminHandler) CalculateSalary(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account id")
	}

	salary, err := h.uc.CalculateSalary(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, SalaryResponse{
		UserID:   salary.UserID,
		UserName: salary.UserName,
		Salary:   salary.Salary,
	}, "Salary calculated successfully")
}
