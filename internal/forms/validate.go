package forms

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.Split(f.Tag.Get("json"), ",")[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var fieldMessages = map[string]string{
	"required": "This field is required.",
	"email":    "Enter a valid email address.",
	"max":      "Must be no longer than %s characters.",
	"oneof":    "Choose one of: %s.",
}

// Validate checks form's tags, returning a *ValidationError listing every bad field
func Validate(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	fields := make(map[string]string, len(verrs))
	for _, e := range verrs {
		fields[e.Field()] = message(e)
	}
	return &ValidationError{Fields: fields}
}

func message(e validator.FieldError) string {
	msg, ok := fieldMessages[e.Tag()]
	if !ok {
		return "This value is not valid."
	}
	if strings.Contains(msg, "%s") {
		return fmt.Sprintf(msg, e.Param())
	}
	return msg
}
