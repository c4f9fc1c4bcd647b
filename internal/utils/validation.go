package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"bonehealth-backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// FieldError is one rejected request field.
type FieldError struct {
	Field   string `json:"field" example:"languageCode"`
	Message string `json:"message" example:"must be a supported language code"`
}

var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("language", func(fl validator.FieldLevel) bool {
		return models.IsSupportedLanguage(fl.Field().String())
	})
	_ = v.RegisterValidation("review_status", func(fl validator.FieldLevel) bool {
		return models.IsValidStatus(fl.Field().String())
	})
	_ = v.RegisterValidation("project_status", func(fl validator.FieldLevel) bool {
		return models.IsValidProjectStatus(fl.Field().String())
	})

	return v
}

// ValidateStruct runs the struct tags on req and flattens failures into
// field errors. It returns nil when req is valid.
func ValidateStruct(req interface{}) []FieldError {
	err := Validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "language":
		return fmt.Sprintf("unsupported language code %q", fe.Value())
	case "review_status":
		return "must be one of pending, approved, rejected"
	case "project_status":
		return "must be one of active, completed, archived"
	}
	return fmt.Sprintf("failed on %s", fe.Tag())
}
