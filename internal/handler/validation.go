package handler

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validationMessages flattens a binding error into one message per failed
// rule. Non-validator errors (malformed JSON, wrong types) collapse to a
// single message.
func validationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		messages := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			messages = append(messages, fieldMessage(fe))
		}
		return messages
	}
	return []string{err.Error()}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "username":
		return fmt.Sprintf("%s must be at least 5 alphanumeric characters", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on the %s rule", fe.Field(), fe.Tag())
	}
}
