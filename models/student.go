// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Student is a resource managed through the protected CRUD endpoints.
type Student struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	CourseID *int64 `json:"course_id"`

	// Course is populated only when the caller asked for it via ?populate=Course.
	Course *Course `json:"course,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Student model.
func (s Student) TableName() string {
	return "students"
}

// Course is the related entity a student may be enrolled in.
type Course struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// TableName returns the name of the database table
// associated with the Course model.
func (c Course) TableName() string {
	return "courses"
}

// StudentUpdate describes a partial update of a student.
// Only non-nil fields are written.
type StudentUpdate struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	CourseID *int64  `json:"course_id,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u StudentUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.CourseID == nil
}
