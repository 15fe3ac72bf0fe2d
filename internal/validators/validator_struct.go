// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/curllabs/curllabs-client/models"
)

type StructValidator struct {
	validate *validator.Validate
}

func NewStructValidator() Validator {
	v := validator.New()

	v.RegisterTagNameFunc(jsonName)
	// Date embeds time.Time; validating the inner value lets "required"
	// reject the zero date.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(models.Date); ok {
			return d.Time
		}
		return nil
	}, models.Date{})

	return &StructValidator{validate: v}
}

func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	typ := reflect.TypeOf(obj)
	if typ != nil && typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ == nil || typ.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		names := make([]string, 0, len(fields))
		for _, f := range fields {
			name, ok := goFieldName(typ, f)
			if !ok {
				return fmt.Errorf("%w: %s", ErrUnknownField, f)
			}
			names = append(names, name)
		}
		err = v.validate.StructPartialCtx(ctx, obj, names...)
	}

	return describe(err)
}

func describe(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, message(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(messages, "; "))
}

func message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "url":
		return field + " must be a valid URL"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must not be below %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return strings.ToLower(field.Name)
	}
	return name
}

// goFieldName resolves a JSON field name to the Go name StructPartial wants.
func goFieldName(typ reflect.Type, name string) (string, bool) {
	for i := range typ.NumField() {
		f := typ.Field(i)
		if f.Name == name || jsonName(f) == name {
			return f.Name, true
		}
	}
	return "", false
}
