package validators

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// TagServerName rejects names with surrounding whitespace or control characters.
const TagServerName = "servername"

// New creates a new validator instance with the project's custom tags registered.
func New() *Validate {
	validate := validator.New()
	_ = validate.RegisterValidation(TagServerName, isServerName)
	return validate
}

func isServerName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" || strings.TrimSpace(name) != name {
		return false
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}
