package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance. Field errors are reported under their JSON names.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// ValidateStruct validates a struct using struct tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationErrors converts validation errors to a field -> message map
func FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["body"] = err.Error()
		return errors
	}

	for _, e := range validationErrs {
		field := fieldPath(e.Namespace())
		switch e.Tag() {
		case "required":
			errors[field] = fmt.Sprintf("%s is required", field)
		case "email":
			errors[field] = "Invalid email format"
		case "url":
			errors[field] = "Invalid URL"
		case "min":
			errors[field] = fmt.Sprintf("%s must be at least %s", field, e.Param())
		case "max":
			errors[field] = fmt.Sprintf("%s must be at most %s", field, e.Param())
		case "gte":
			errors[field] = fmt.Sprintf("%s must be greater than or equal to %s", field, e.Param())
		case "lte":
			errors[field] = fmt.Sprintf("%s must be less than or equal to %s", field, e.Param())
		case "oneof":
			errors[field] = fmt.Sprintf("%s must be one of: %s", field, e.Param())
		default:
			errors[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	return errors
}

// fieldPath drops the top-level struct name, so "CreateQuizRequest.questions[0].question" becomes "questions[0].question".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
