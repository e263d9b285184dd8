// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-campus-api/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	studentRowColumns     = []string{"id", "name", "email", "course_id", "created_at", "updated_at"}
	studentCourseColumns  = append(append([]string{}, studentRowColumns...), "c_id", "c_title")
	selectStudentsPattern = regexp.QuoteMeta("SELECT s.id, s.name, s.email, s.course_id, s.created_at, s.updated_at")
)

func newTestStudentRepo(t *testing.T) (*studentRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &studentRepository{db: db, logger: db.logger}, mock
}

func TestCreateStudent(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock := newTestStudentRepo(t)
		now := time.Now()

		mock.ExpectQuery("INSERT INTO students").
			WithArgs("Kim", "kim@x.io", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(studentRowColumns).AddRow(5, "Kim", "kim@x.io", 2, now, now))

		created, err := repo.CreateStudent(context.Background(), models.Student{Name: "Kim", Email: "kim@x.io", CourseID: ptr(int64(2))})
		require.NoError(t, err)
		assert.Equal(t, int64(5), created.ID)
		require.NotNil(t, created.CourseID)
		assert.Equal(t, int64(2), *created.CourseID)
		assert.Nil(t, created.Course)
	})

	t.Run("null course", func(t *testing.T) {
		repo, mock := newTestStudentRepo(t)
		now := time.Now()

		mock.ExpectQuery("INSERT INTO students").
			WillReturnRows(sqlmock.NewRows(studentRowColumns).AddRow(6, "Lee", "lee@x.io", nil, now, now))

		created, err := repo.CreateStudent(context.Background(), models.Student{Name: "Lee", Email: "lee@x.io"})
		require.NoError(t, err)
		assert.Nil(t, created.CourseID)
	})

	t.Run("unknown course", func(t *testing.T) {
		repo, mock := newTestStudentRepo(t)

		mock.ExpectQuery("INSERT INTO students").
			WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

		_, err := repo.CreateStudent(context.Background(), models.Student{Name: "Kim", Email: "kim@x.io", CourseID: ptr(int64(99))})
		assert.ErrorIs(t, err, ErrCourseNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newTestStudentRepo(t)

		mock.ExpectQuery("INSERT INTO students").WillReturnError(errors.New("boom"))

		_, err := repo.CreateStudent(context.Background(), models.Student{Name: "Kim", Email: "kim@x.io"})
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestListStudents(t *testing.T) {
	t.Run("with course", func(t *testing.T) {
		repo, mock := newTestStudentRepo(t)
		now := time.Now()

		mock.ExpectQuery(selectStudentsPattern + ".*LEFT JOIN courses").
			WillReturnRows(sqlmock.NewRows(studentCourseColumns).
				AddRow(1, "A", "a@x.io", 3, now, now, 3, "Math").
				AddRow(2, "B", "b@x.io", nil, now, now, nil, nil))

		students, err := repo.ListStudents(context.Background(), models.ListOptions{Page: 1, Limit: 10, IncludeCourse: true})
		require.NoError(t, err)
		require.Len(t, students, 2)

		require.NotNil(t, students[0].Course)
		assert.Equal(t, "Math", students[0].Course.Title)
		assert.Nil(t, students[1].Course)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("without course", func(t *testing.T) {
		repo, mock := newTestStudentRepo(t)
		now := time.Now()

		mock.ExpectQuery(selectStudentsPattern + " FROM students s ORDER BY s.created_at DESC").
			WillReturnRows(sqlmock.NewRows(studentRowColumns).AddRow(1, "A", "a@x.io", 3, now, now))

		students, err := repo.ListStudents(context.Background(), models.ListOptions{Page: 1, Limit: 10, SortDesc: true})
		require.NoError(t, err)
		require.Len(t, students, 1)
		assert.Nil(t, students[0].Course)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestStudentRepo(t)

		mock.ExpectQuery(selectStudentsPattern).WillReturnError(errors.New("boom"))

		_, err := repo.ListStudents(context.Background(), models.ListOptions{Page: 1, Limit: 10})
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestGetStudent(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestStudentRepo(t)
		now := time.Now()

		mock.ExpectQuery(selectStudentsPattern).
			WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows(studentRowColumns).AddRow(4, "D", "d@x.io", nil, now, now))

		student, err := repo.GetStudent(context.Background(), 4, false)
		require.NoError(t, err)
		assert.Equal(t, "D", student.Name)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestStudentRepo(t)

		mock.ExpectQuery(selectStudentsPattern).
			WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows(studentRowColumns))

		_, err := repo.GetStudent(context.Background(), 4, false)
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})
}

func TestUpdateStudent(t *testing.T) {
	t.Run("updates and reloads", func(t *testing.T) {
		repo, mock := newTestStudentRepo(t)
		now := time.Now()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE students SET name = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2")).
			WithArgs("New", int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(selectStudentsPattern).
			WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows(studentCourseColumns).AddRow(4, "New", "d@x.io", 1, now, now, 1, "Art"))

		student, err := repo.UpdateStudent(context.Background(), 4, models.StudentUpdate{Name: ptr("New")}, true)
		require.NoError(t, err)
		assert.Equal(t, "New", student.Name)
		require.NotNil(t, student.Course)
		assert.Equal(t, "Art", student.Course.Title)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		repo, mock := newTestStudentRepo(t)

		mock.ExpectExec("UPDATE students").WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.UpdateStudent(context.Background(), 4, models.StudentUpdate{Name: ptr("New")}, false)
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})

	t.Run("unknown course", func(t *testing.T) {
		repo, mock := newTestStudentRepo(t)

		mock.ExpectExec("UPDATE students").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

		_, err := repo.UpdateStudent(context.Background(), 4, models.StudentUpdate{CourseID: ptr(int64(77))}, false)
		assert.ErrorIs(t, err, ErrCourseNotFound)
	})
}

func TestDeleteStudent(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo, mock := newTestStudentRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM students WHERE id = $1")).
			WithArgs(int64(8)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeleteStudent(context.Background(), 8))
	})

	t.Run("missing row", func(t *testing.T) {
		repo, mock := newTestStudentRepo(t)

		mock.ExpectExec("DELETE FROM students").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeleteStudent(context.Background(), 8), ErrStudentNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newTestStudentRepo(t)

		mock.ExpectExec("DELETE FROM students").WillReturnError(errors.New("boom"))

		assert.ErrorIs(t, repo.DeleteStudent(context.Background(), 8), ErrExecutingQuery)
	})
}
