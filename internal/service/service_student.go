// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-campus-api/internal/logger"
	"github.com/MKhiriev/go-campus-api/internal/store"
	"github.com/MKhiriev/go-campus-api/internal/validators"
	"github.com/MKhiriev/go-campus-api/models"
)

type studentService struct {
	studentRepository store.StudentRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewStudentService(studentRepository store.StudentRepository, logger *logger.Logger) StudentService {
	return &studentService{
		studentRepository: studentRepository,
		validator:         validators.NewInputValidator(),
		logger:            logger,
	}
}

func (s *studentService) CreateStudent(ctx context.Context, student models.Student) (models.Student, error) {
	if err := s.validator.Validate(ctx, student); err != nil {
		return models.Student{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := s.studentRepository.CreateStudent(ctx, student)
	if err != nil {
		return models.Student{}, s.mapError(ctx, "*studentService.CreateStudent", err)
	}

	return created, nil
}

// ListStudents returns one page of students. Non-positive page or limit fall
// back to the defaults.
func (s *studentService) ListStudents(ctx context.Context, opts models.ListOptions) ([]models.Student, error) {
	if opts.Page < 1 {
		opts.Page = models.DefaultPage
	}
	if opts.Limit < 1 {
		opts.Limit = models.DefaultLimit
	}

	students, err := s.studentRepository.ListStudents(ctx, opts)
	if err != nil {
		return nil, s.mapError(ctx, "*studentService.ListStudents", err)
	}

	return students, nil
}

func (s *studentService) GetStudent(ctx context.Context, id int64, includeCourse bool) (models.Student, error) {
	student, err := s.studentRepository.GetStudent(ctx, id, includeCourse)
	if err != nil {
		return models.Student{}, s.mapError(ctx, "*studentService.GetStudent", err)
	}

	return student, nil
}

// UpdateStudent applies the non-nil fields of update. An empty update returns
// the student unchanged.
func (s *studentService) UpdateStudent(ctx context.Context, id int64, update models.StudentUpdate, includeCourse bool) (models.Student, error) {
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Student{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if update.IsEmpty() {
		return s.GetStudent(ctx, id, includeCourse)
	}

	student, err := s.studentRepository.UpdateStudent(ctx, id, update, includeCourse)
	if err != nil {
		return models.Student{}, s.mapError(ctx, "*studentService.UpdateStudent", err)
	}

	return student, nil
}

func (s *studentService) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.studentRepository.DeleteStudent(ctx, id); err != nil {
		return s.mapError(ctx, "*studentService.DeleteStudent", err)
	}

	return nil
}

// mapError translates store sentinels into service error kinds.
func (s *studentService) mapError(ctx context.Context, fn string, err error) error {
	switch {
	case errors.Is(err, store.ErrStudentNotFound):
		return ErrStudentNotFound
	case errors.Is(err, store.ErrCourseNotFound):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrCourseNotFound)
	default:
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("student storage error")
		return fmt.Errorf("student storage error: %w", err)
	}
}
