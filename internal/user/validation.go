package user

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the required fields of a record. The returned error, if
// any, is a validator.ValidationErrors.
func Validate(u User) error {
	return validate.Struct(u)
}

// ValidationMessages turns a validation error into one message per field.
// Errors of other types yield their own text.
func ValidationMessages(err error) []string {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, formatFieldError(fe))
	}
	return messages
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Field '%s' is required", fe.Field())
	case "gte":
		return fmt.Sprintf("Field '%s' must be greater than or equal to %s", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("Field '%s' must be a valid email address", fe.Field())
	default:
		return fmt.Sprintf("Field '%s' failed on the '%s' rule", fe.Field(), fe.Tag())
	}
}
