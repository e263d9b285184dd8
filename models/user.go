// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier assigned by the store.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login key. Compared case-sensitively, exactly as stored.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialised and never logged.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the projection of u that is safe to send to clients.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:    u.UserID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// PublicUser is the client-facing view of a [User]: identifier, name and
// email only. The password hash has no field here by construction.
type PublicUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PublicUsers converts a slice of users into their public projections.
func PublicUsers(users []User) []PublicUser {
	public := make([]PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}
	return public
}
