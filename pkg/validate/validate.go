package validate

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	phoneRe = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	zipRe   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

	v = newValidator()
)

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	val.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	val.RegisterValidation("zipcode", func(fl validator.FieldLevel) bool {
		return zipRe.MatchString(fl.Field().String())
	})
	return val
}

// Struct validates the given struct against its validate tags.
func Struct(s interface{}) error {
	return v.Struct(s)
}

// Messages flattens a validation error into field-level messages suitable
// for a 400 response body. Non-validation errors map to a single "error" key.
func Messages(err error) map[string]string {
	out := map[string]string{}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["error"] = err.Error()
		return out
	}
	for _, fieldErr := range errs {
		switch fieldErr.Tag() {
		case "required":
			out[fieldErr.Field()] = fieldErr.Field() + " is required"
		case "email":
			out[fieldErr.Field()] = "invalid email format"
		case "phone":
			out[fieldErr.Field()] = "invalid phone number format"
		case "zipcode":
			out[fieldErr.Field()] = "invalid zip code format"
		case "gt", "gte", "min":
			out[fieldErr.Field()] = fieldErr.Field() + " is below the allowed minimum"
		case "oneof":
			out[fieldErr.Field()] = fieldErr.Field() + " must be one of: " + fieldErr.Param()
		default:
			out[fieldErr.Field()] = "invalid value for " + fieldErr.Field()
		}
	}
	return out
}
