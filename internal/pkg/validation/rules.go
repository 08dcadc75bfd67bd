package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/yigit/educa/internal/pkg/apperrors"
	"github.com/yigit/educa/internal/pkg/slugutil"
)

// Field length limits shared by the catalog tables
const (
	TitleMaxLength     = 200
	ItemTitleMaxLength = 250
	URLMaxLength       = 200
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator with the catalog rules registered.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// report json names so errors match request payloads
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		_ = validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == "" || slugutil.IsValid(s)
		})
	})
	return validate
}

// Struct validates v and converts the first failure into a field-bound validation error.
func Struct(v interface{}) error {
	return convert(Validator().Struct(v))
}

// StructExcept is Struct skipping the named Go fields
func StructExcept(v interface{}, fields ...string) error {
	return convert(Validator().StructExcept(v, fields...))
}

func convert(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(fe.Field(), FormatFieldError(fe))
	}

	return fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
}

// FormatFieldError creates a human-readable validation error message
func FormatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "url":
		return e.Field() + " must be a valid URL"
	case "slug":
		return e.Field() + " must contain only lowercase letters, numbers and hyphens"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
