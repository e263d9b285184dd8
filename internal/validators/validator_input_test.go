// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-campus-api/models"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestInputValidator_Validate(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	tests := []struct {
		name     string
		obj      any
		fields   []string
		wantErrs []error
	}{
		{
			name: "valid register request",
			obj:  models.RegisterRequest{Name: "Alice", Email: "a@b.c", Password: "pw"},
		},
		{
			name:     "register request missing everything",
			obj:      &models.RegisterRequest{},
			wantErrs: []error{ErrEmptyName, ErrEmptyEmail, ErrEmptyPassword},
		},
		{
			name:     "whitespace counts as empty",
			obj:      models.RegisterRequest{Name: "  ", Email: "a@b.c", Password: "\t"},
			wantErrs: []error{ErrEmptyName, ErrEmptyPassword},
		},
		{
			name:   "field scoping skips other fields",
			obj:    models.RegisterRequest{Email: "a@b.c"},
			fields: []string{FieldEmail},
		},
		{
			name:     "login request missing password",
			obj:      models.LoginRequest{Email: "a@b.c"},
			wantErrs: []error{ErrEmptyPassword},
		},
		{
			name: "valid student",
			obj:  models.Student{Name: "Ann", Email: "ann@x.io"},
		},
		{
			name:     "student missing email",
			obj:      &models.Student{Name: "Ann"},
			wantErrs: []error{ErrEmptyEmail},
		},
		{
			name: "empty student update is valid",
			obj:  models.StudentUpdate{},
		},
		{
			name:     "student update with blank name",
			obj:      models.StudentUpdate{Name: strPtr(" "), Email: strPtr("ann@x.io")},
			wantErrs: []error{ErrEmptyName},
		},
		{
			name:     "password is not a student field",
			obj:      models.Student{Name: "Ann", Email: "ann@x.io"},
			fields:   []string{FieldPassword},
			wantErrs: []error{ErrUnknownField},
		},
		{
			name:     "unsupported type",
			obj:      42,
			wantErrs: []error{ErrUnsupportedType},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if len(tt.wantErrs) == 0 {
				assert.NoError(t, err)
				return
			}
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}
