package utils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FormatValidationError formats validation errors into user-friendly messages
func FormatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "url":
		return "Invalid URL"
	case "min":
		return fmt.Sprintf("Minimum length is %s", err.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", err.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", err.Param())
	case "gte":
		return fmt.Sprintf("Must be at least %s", err.Param())
	case "lte":
		return fmt.Sprintf("Must be at most %s", err.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", err.Param())
	default:
		return fmt.Sprintf("Validation failed on %s", err.Tag())
	}
}

// CollectValidationErrors converts validator errors into the response
// detail list used by the error handler.
func CollectValidationErrors(err error) []ErrorDetail {
	var details []ErrorDetail
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, verr := range verrs {
			details = append(details, ErrorDetail{
				Field:   verr.Field(),
				Message: FormatValidationError(verr),
			})
		}
	} else {
		details = append(details, ErrorDetail{Message: err.Error()})
	}
	return details
}
