// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the JSON body of POST /api/auth/register. A field made
// only of whitespace is rejected as missing, not stored.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// StudentRequest is the JSON body of POST /students.
type StudentRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	CourseID *int64 `json:"course_id"`
}

// Student converts the request into a new, unsaved [Student].
func (r StudentRequest) Student() Student {
	return Student{
		Name:     r.Name,
		Email:    r.Email,
		CourseID: r.CourseID,
	}
}
