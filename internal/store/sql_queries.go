// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/go-campus-api/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	userColumns    = []string{"id", "name", "email", "password_hash", "created_at"}
	studentColumns = []string{"s.id", "s.name", "s.email", "s.course_id", "s.created_at", "s.updated_at"}
	courseColumns  = []string{"c.id", "c.title"}
)

const studentReturning = "RETURNING id, name, email, course_id, created_at, updated_at"

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(models.User{}.TableName()).
		Columns("name", "email", "password_hash").
		Values(user.Name, user.Email, user.PasswordHash).
		Suffix("RETURNING id, name, email, password_hash, created_at").
		ToSql()
}

func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildListUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("id ASC").
		ToSql()
}

func buildInsertStudentQuery(b sq.StatementBuilderType, student models.Student) (string, []any, error) {
	return b.Insert(models.Student{}.TableName()).
		Columns("name", "email", "course_id").
		Values(student.Name, student.Email, student.CourseID).
		Suffix(studentReturning).
		ToSql()
}

// selectStudents is the shared projection of student reads. The course
// columns and the LEFT JOIN are added only when includeCourse is set.
func selectStudents(b sq.StatementBuilderType, includeCourse bool) sq.SelectBuilder {
	query := b.Select(studentColumns...).From("students s")
	if includeCourse {
		query = query.Columns(courseColumns...).LeftJoin("courses c ON c.id = s.course_id")
	}
	return query
}

func buildListStudentsQuery(b sq.StatementBuilderType, opts models.ListOptions) (string, []any, error) {
	direction := "ASC"
	if opts.SortDesc {
		direction = "DESC"
	}

	return selectStudents(b, opts.IncludeCourse).
		OrderBy(fmt.Sprintf("s.created_at %s", direction), fmt.Sprintf("s.id %s", direction)).
		Limit(uint64(opts.Limit)).
		Offset(uint64(opts.Offset())).
		ToSql()
}

func buildGetStudentQuery(b sq.StatementBuilderType, id int64, includeCourse bool) (string, []any, error) {
	return selectStudents(b, includeCourse).
		Where(sq.Eq{"s.id": id}).
		ToSql()
}

// buildUpdateStudentQuery writes only the fields present in update and always
// refreshes updated_at.
func buildUpdateStudentQuery(b sq.StatementBuilderType, id int64, update models.StudentUpdate) (string, []any, error) {
	values := make(map[string]any, 3)
	if update.Name != nil {
		values["name"] = *update.Name
	}
	if update.Email != nil {
		values["email"] = *update.Email
	}
	if update.CourseID != nil {
		values["course_id"] = *update.CourseID
	}

	return b.Update(models.Student{}.TableName()).
		SetMap(values).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteStudentQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(models.Student{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}
