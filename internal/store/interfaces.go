// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-campus-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists credential records.
type UserRepository interface {
	// CreateUser inserts user and returns it with the store-assigned id.
	// A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user whose email matches exactly, or
	// [ErrUserNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// ListUsers returns every user ordered by id.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// StudentRepository persists student records.
type StudentRepository interface {
	CreateStudent(ctx context.Context, student models.Student) (models.Student, error)
	ListStudents(ctx context.Context, opts models.ListOptions) ([]models.Student, error)
	GetStudent(ctx context.Context, id int64, includeCourse bool) (models.Student, error)
	UpdateStudent(ctx context.Context, id int64, update models.StudentUpdate, includeCourse bool) (models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}
