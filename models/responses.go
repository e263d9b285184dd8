// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterResponse is returned with 201 Created after a successful
// registration. It never contains the password or its hash.
type RegisterResponse struct {
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
}

// LoginResponse is returned with 200 OK after a successful login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// MessageResponse carries a plain informational message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform JSON error body. Error holds a generic,
// client-safe message; internal details stay in server logs.
type ErrorResponse struct {
	Error string `json:"error"`
}

// IdentityResponse echoes the caller's verified identity.
type IdentityResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}
