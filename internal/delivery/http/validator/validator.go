// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"strings"

	domainerrors "staffdesk/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// Validator wraps a playground validator instance for echo.
type Validator struct {
	validate *playground.Validate
}

// New creates the request validator.
func New() *Validator {
	return &Validator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Failures surface as the domain's
// validation error so the error handler picks the right status.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}

// Messages flattens a validation failure into the human-readable list the
// API contract returns alongside a 400.
func (v *Validator) Messages(i any) []string {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var invalid *playground.InvalidValidationError
	if ok := asInvalid(err, &invalid); ok {
		return []string{"invalid request payload"}
	}

	fieldErrs, ok := err.(playground.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fieldMessage(fe))
	}

	return messages
}

func asInvalid(err error, target **playground.InvalidValidationError) bool {
	if cast, ok := err.(*playground.InvalidValidationError); ok {
		*target = cast

		return true
	}

	return false
}

func fieldMessage(fe playground.FieldError) string {
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]

	switch fe.Tag() {
	case "required":
		return "The " + field + " field is required"
	case "email":
		return "The " + field + " field must be a valid email address"
	case "min":
		return "The " + field + " field must be at least " + fe.Param() + " characters long"
	case "max":
		return "The " + field + " field must be at most " + fe.Param() + " characters long"
	case "eqfield":
		return "The password and confirmation password do not match"
	case "url":
		return "The " + field + " field must be a valid URL"
	case "gte":
		return "The " + field + " field must be greater than or equal to " + fe.Param()
	default:
		return "The " + field + " field is invalid"
	}
}
