package exceptions

import (
	"errors"
	"medicare-frontend/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

var tagsWithParams = map[string]bool{
	"oneof": true,
}

// FormatFirstValidationError renders the first failed rule as "<field> <message>".
func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientOperationFailed
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return constvars.ErrClientOperationFailed
	}

	firstErr := validationErrors[0]
	fieldName := strings.ToLower(firstErr.Field())
	tag := firstErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		customMessage = "is invalid"
	}

	if tagsWithParams[tag] {
		customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(firstErr.Param()), ", "), 1)
	}
	return fieldName + " " + customMessage
}
