// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-campus-api/models"
)

const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// InputValidator checks that required fields are present. A value made only
// of whitespace counts as missing; values are never rewritten.
type InputValidator struct {
}

func NewInputValidator() Validator {
	return &InputValidator{}
}

// Validate supports [models.RegisterRequest], [models.LoginRequest],
// [models.Student] and [models.StudentUpdate], by value or pointer. All
// failing fields are reported, joined.
func (v *InputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	case models.Student:
		return v.validateStudent(value, fields...)
	case *models.Student:
		return v.validateStudent(*value, fields...)

	case models.StudentUpdate:
		return v.validateStudentUpdate(value, fields...)
	case *models.StudentUpdate:
		return v.validateStudentUpdate(*value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *InputValidator) validateRegisterRequest(req models.RegisterRequest, fields ...string) error {
	return check(map[string]error{
		FieldName:     required(req.Name, ErrEmptyName),
		FieldEmail:    required(req.Email, ErrEmptyEmail),
		FieldPassword: required(req.Password, ErrEmptyPassword),
	}, fields)
}

func (v *InputValidator) validateLoginRequest(req models.LoginRequest, fields ...string) error {
	return check(map[string]error{
		FieldEmail:    required(req.Email, ErrEmptyEmail),
		FieldPassword: required(req.Password, ErrEmptyPassword),
	}, fields)
}

func (v *InputValidator) validateStudent(student models.Student, fields ...string) error {
	return check(map[string]error{
		FieldName:  required(student.Name, ErrEmptyName),
		FieldEmail: required(student.Email, ErrEmptyEmail),
	}, fields)
}

// validateStudentUpdate only checks the fields that are present.
func (v *InputValidator) validateStudentUpdate(update models.StudentUpdate, fields ...string) error {
	results := map[string]error{
		FieldName:  nil,
		FieldEmail: nil,
	}
	if update.Name != nil {
		results[FieldName] = required(*update.Name, ErrEmptyName)
	}
	if update.Email != nil {
		results[FieldEmail] = required(*update.Email, ErrEmptyEmail)
	}
	return check(results, fields)
}

func required(value string, err error) error {
	if strings.TrimSpace(value) == "" {
		return err
	}
	return nil
}

// check returns the joined errors of the requested fields, or of all fields
// when none are requested. Fields are visited in a fixed order.
func check(results map[string]error, fields []string) error {
	if len(fields) == 0 {
		for _, f := range []string{FieldName, FieldEmail, FieldPassword} {
			if _, ok := results[f]; ok {
				fields = append(fields, f)
			}
		}
	}

	var errs []error
	for _, f := range fields {
		err, ok := results[f]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
