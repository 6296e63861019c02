// Package validator wraps go-playground struct validation into the
// field-to-failed-tag map the handlers surface as error details.
package validator

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks the struct's validate tags. It returns nil when the
// value passes, otherwise a map from field name to the tag that failed.
func Validate(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
