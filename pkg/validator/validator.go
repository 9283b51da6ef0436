package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(),
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors flattens validator errors into a single message
// suitable for the error envelope.
func (cv *CustomValidator) FormatValidationErrors(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Invalid request payload"
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := toSnakeCase(e.Field())
		switch e.Tag() {
		case "required":
			messages = append(messages, field+" is required")
		case "email":
			messages = append(messages, field+" must be a valid email address")
		case "url":
			messages = append(messages, field+" must be a valid URL")
		case "min":
			messages = append(messages, field+" must be at least "+e.Param())
		case "max":
			messages = append(messages, field+" must be at most "+e.Param())
		case "gte":
			messages = append(messages, field+" must be greater than or equal to "+e.Param())
		case "lte":
			messages = append(messages, field+" must be less than or equal to "+e.Param())
		case "oneof":
			messages = append(messages, field+" must be one of: "+e.Param())
		default:
			messages = append(messages, field+" is invalid")
		}
	}

	return strings.Join(messages, "; ")
}

func toSnakeCase(field string) string {
	var b strings.Builder
	runes := []rune(field)
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && runes[i-1] >= 'a' && runes[i-1] <= 'z' {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
