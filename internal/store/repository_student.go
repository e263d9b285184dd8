// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-campus-api/internal/logger"
	"github.com/MKhiriev/go-campus-api/models"
)

type studentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewStudentRepository constructs a [StudentRepository] over db.
func NewStudentRepository(db *DB, logger *logger.Logger) StudentRepository {
	logger.Debug().Msg("creating student repository")
	return &studentRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStudent(row rowScanner, includeCourse bool) (models.Student, error) {
	var (
		s           models.Student
		courseID    sql.NullInt64
		courseTitle sql.NullString
	)

	dest := []any{&s.ID, &s.Name, &s.Email, &s.CourseID, timestamp{&s.CreatedAt}, timestamp{&s.UpdatedAt}}
	if includeCourse {
		dest = append(dest, &courseID, &courseTitle)
	}
	if err := row.Scan(dest...); err != nil {
		return models.Student{}, err
	}

	if courseID.Valid {
		s.Course = &models.Course{ID: courseID.Int64, Title: courseTitle.String}
	}
	return s, nil
}

// CreateStudent inserts student. A course id that does not exist yields
// [ErrCourseNotFound].
func (r *studentRepository) CreateStudent(ctx context.Context, student models.Student) (models.Student, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertStudentQuery(r.db.builder, student)
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.CreateStudent").Msg("error building query")
		return models.Student{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanStudent(r.db.QueryRowContext(ctx, query, args...), false)
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.Student{}, ErrCourseNotFound
		}
		log.Err(err).Str("func", "*studentRepository.CreateStudent").Msg("error inserting student")
		return models.Student{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// ListStudents returns one page of students ordered by creation time.
func (r *studentRepository) ListStudents(ctx context.Context, opts models.ListOptions) ([]models.Student, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListStudentsQuery(r.db.builder, opts)
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.ListStudents").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.ListStudents").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	students := make([]models.Student, 0, opts.Limit)
	for rows.Next() {
		s, scanErr := scanStudent(rows, opts.IncludeCourse)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*studentRepository.ListStudents").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		students = append(students, s)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*studentRepository.ListStudents").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return students, nil
}

// GetStudent returns the student with id or [ErrStudentNotFound].
func (r *studentRepository) GetStudent(ctx context.Context, id int64, includeCourse bool) (models.Student, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetStudentQuery(r.db.builder, id, includeCourse)
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.GetStudent").Msg("error building query")
		return models.Student{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	student, err := scanStudent(r.db.QueryRowContext(ctx, query, args...), includeCourse)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Student{}, ErrStudentNotFound
		}
		log.Err(err).Str("func", "*studentRepository.GetStudent").Msg("error selecting student")
		return models.Student{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return student, nil
}

// UpdateStudent applies update to the student with id and returns the stored
// result. An empty update only refreshes updated_at.
func (r *studentRepository) UpdateStudent(ctx context.Context, id int64, update models.StudentUpdate, includeCourse bool) (models.Student, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateStudentQuery(r.db.builder, id, update)
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.UpdateStudent").Msg("error building query")
		return models.Student{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.Student{}, ErrCourseNotFound
		}
		log.Err(err).Str("func", "*studentRepository.UpdateStudent").Msg("error updating student")
		return models.Student{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Student{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return models.Student{}, ErrStudentNotFound
	}

	return r.GetStudent(ctx, id, includeCourse)
}

// DeleteStudent removes the student with id or returns [ErrStudentNotFound].
func (r *studentRepository) DeleteStudent(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteStudentQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.DeleteStudent").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.DeleteStudent").Msg("error deleting student")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrStudentNotFound
	}

	return nil
}
