package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// formatFieldError creates a human-readable message for one failed rule
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}

// HandleValidationError converts binding/validation failures into an
// ErrorDetail with per-field messages
func HandleValidationError(err error) *ErrorDetail {
	detail := NewErrorDetail(ErrorCodeValidationFailed, "Validation failed")

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		messages := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			messages = append(messages, formatFieldError(fe))
		}
		if len(fieldErrs) == 1 {
			detail = detail.WithField(fieldErrs[0].Field())
		}
		return detail.WithDetails(messages)
	}

	return detail.WithDetails(err.Error())
}
