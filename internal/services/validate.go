package services

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"portfolio-backend/internal/models"
)

var validate = newValidator()

// Field names in validation errors follow the JSON wire names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateContact checks a submission before any side effect runs. Failures
// come back as a *ValidationError listing every offending field.
func ValidateContact(sub models.ContactSubmission) error {
	err := validate.Struct(sub)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				fields[fe.Field()] = "Обязательное поле"
			case "oneof":
				fields[fe.Field()] = "Недопустимое значение"
			default:
				fields[fe.Field()] = "Некорректное значение"
			}
		}
	}

	return &ValidationError{Fields: fields}
}
