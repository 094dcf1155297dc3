package handler

import (
	"log/slog"
	"net/http"

	"staffdesk/internal/delivery/http/response"
	"staffdesk/internal/delivery/http/validator"
	domainerrors "staffdesk/internal/domain/errors"
	"staffdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ForgotPasswordRequest is the wire shape of a reset-token request.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest is the wire shape of a reset-token redemption.
type ResetPasswordRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Token           string `json:"token" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

// PasswordHandler holds dependencies for password-recovery handlers.
type PasswordHandler struct {
	uc        usecase.PasswordResetUsecase
	validator *validator.Validator
	logger    *slog.Logger
}

// NewPasswordHandler is the constructor for PasswordHandler, injected by Fx.
func NewPasswordHandler(uc usecase.PasswordResetUsecase, v *validator.Validator, logger *slog.Logger) *PasswordHandler {
	return &PasswordHandler{
		uc:        uc,
		validator: v,
		logger:    logger,
	}
}

// ForgotPassword issues a recovery token for the account behind the email.
// The token is returned in the body; there is no mail delivery pipeline.
func (h *PasswordHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid forgot-password input")
	}

	if msgs := h.validator.Messages(&req); len(msgs) > 0 {
		return response.ValidationFailed(c, msgs)
	}

	token, err := h.uc.RequestReset(c.Request().Context(), req.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"resetToken": token,
	}, "Reset token issued")
}

// ResetPassword redeems a recovery token and returns a fresh session token.
func (h *PasswordHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset-password input")
	}

	if msgs := h.validator.Messages(&req); len(msgs) > 0 {
		return response.ValidationFailed(c, msgs)
	}

	sessionToken, err := h.uc.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Email:       req.Email,
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		// Invalid and expired tokens share the validation list shape.
		if errors.Is(err, domainerrors.ErrResetTokenInvalid) {
			return response.ValidationFailed(c, []string{domainerrors.ErrResetTokenInvalid.Message()})
		}
		if errors.Is(err, domainerrors.ErrResetTokenExpired) {
			return response.ValidationFailed(c, []string{domainerrors.ErrResetTokenExpired.Message()})
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"token": sessionToken,
	}, "Password reset successfully")
}
