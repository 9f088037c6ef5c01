package common

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct checks the `validate` tags of payload.
func ValidateStruct(payload interface{}) *AppError {
	if err := validate.Struct(payload); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return NewAppError(KindInvalidInput, "Invalid input", validationErrors)
		}
		return NewAppError(KindInvalidInput, "Invalid input", err)
	}
	return nil
}
