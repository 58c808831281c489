package forms

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrInvalid         = errors.New("forms: invalid submission")
	ErrCaptchaRequired = errors.New("forms: human verification required")
	ErrCaptchaRejected = errors.New("forms: human verification failed")
	ErrDeliveryFailed  = errors.New("forms: delivery failed")
)

// ValidationError carries per-field messages keyed by the field's json name
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("%s: %s", ErrInvalid, strings.Join(keys, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}
