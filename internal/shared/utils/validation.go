package utils

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/fiberdesk/fiberdesk/internal/shared/biztime"
	"github.com/fiberdesk/fiberdesk/internal/shared/errors"
	"github.com/fiberdesk/fiberdesk/internal/shared/patch"
)

var validate *validator.Validate

// init configures both the standalone validator and the one gin uses for
// binding, so request structs behave the same either way.
func init() {
	validate = validator.New()
	validate.SetTagName("binding")
	configureValidator(validate)

	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		configureValidator(engine)
	}
}

func configureValidator(v *validator.Validate) {
	// Use JSON tag names for validation errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(patchValue,
		patch.Field[string]{},
		patch.Field[*string]{},
		patch.Field[int]{},
		patch.Field[*int]{},
		patch.Field[uint]{},
		patch.Field[*uint]{},
		patch.Field[float64]{},
		patch.Field[*float64]{},
		patch.Field[bool]{},
		patch.Field[biztime.Date]{},
		patch.Field[*biztime.Date]{},
	)
}

func patchValue(field reflect.Value) interface{} {
	if p, ok := field.Interface().(patch.Validatable); ok {
		return p.ValidationValue()
	}
	return nil
}

// ValidateStruct validates a struct against its binding tags and returns a
// user-friendly error
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	return TranslateBindError(err)
}

// TranslateBindError converts a gin binding or validator error into a
// validation AppError with per-field messages.
func TranslateBindError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if stderrors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			messages = append(messages, getFieldErrorMessage(fieldError))
		}
		return errors.NewValidationError(strings.Join(messages, "; "))
	}

	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		return errors.NewValidationError(fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type))
	}

	var syntaxErr *json.SyntaxError
	if stderrors.As(err, &syntaxErr) {
		return errors.NewValidationError("Request body is not valid JSON")
	}

	var parseErr *time.ParseError
	if stderrors.As(err, &parseErr) {
		return errors.NewValidationError(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", parseErr.Value))
	}

	if stderrors.Is(err, patch.ErrNullNotAllowed) {
		return errors.NewValidationError("Validation failed", err.Error())
	}

	return errors.NewValidationError("Invalid request", err.Error())
}

// getFieldErrorMessage returns a user-friendly error message for a field validation error
func getFieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "datetime":
		return fmt.Sprintf("%s must be a date in the format YYYY-MM-DD", field)
	case "hexcolor":
		return fmt.Sprintf("%s must be a hex color", field)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, tag)
	}
}
