// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// ValidationError describes the first field of a request that failed
// validation. It unwraps to [ErrRequiredField] or [ErrInvalidField].
type ValidationError struct {
	field   string
	tag     string
	param   string
	message string
	base    error
}

// Field returns the JSON name of the failing field.
func (e *ValidationError) Field() string { return e.field }

// Tag returns the failing validation tag ("required", "max", ...).
func (e *ValidationError) Tag() string { return e.tag }

func (e *ValidationError) Error() string { return e.message }

func (e *ValidationError) Unwrap() error { return e.base }

// getValidator returns the process-wide validator. Field names in errors are
// taken from the json tag.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		_ = validate.RegisterValidation("maxbytes", maxBytes)
	})

	return validate
}

// maxBytes limits the byte length of a string field. max counts runes, which
// is not enough for bcrypt input.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil || fl.Field().Kind() != reflect.String {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// RequestValidator implements [Validator] on top of go-playground/validator.
type RequestValidator struct{}

// NewRequestValidator returns a [Validator] for the request DTOs in models.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate checks obj against its validate struct tags. When fields are
// given, only those struct fields (Go names) are checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	value := reflect.ValueOf(obj)
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ErrUnsupportedType
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = getValidator().StructPartialCtx(ctx, obj, fields...)
	} else {
		err = getValidator().StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidField, err)
	}

	return translateError(fieldErrors[0])
}

func translateError(fe validator.FieldError) *ValidationError {
	vErr := &ValidationError{
		field: fe.Field(),
		tag:   fe.Tag(),
		param: fe.Param(),
		base:  ErrInvalidField,
	}

	switch fe.Tag() {
	case "required":
		vErr.base = ErrRequiredField
		vErr.message = fmt.Sprintf("%s is required", fe.Field())
	case "max":
		vErr.message = fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
	case "maxbytes":
		vErr.message = fmt.Sprintf("%s must be at most %s bytes long", fe.Field(), fe.Param())
	case "email":
		vErr.message = fmt.Sprintf("%s must be a valid email address", fe.Field())
	default:
		vErr.message = fmt.Sprintf("%s is invalid", fe.Field())
	}

	return vErr
}
