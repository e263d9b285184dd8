// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// campus API handlers and middleware.
//
// All Msg* constants are human-readable strings written into HTTP response
// bodies. Keeping them in one place keeps the wording consistent.
package app

const (
	// MsgUserRegistered accompanies the public user returned by a successful
	// registration.
	MsgUserRegistered = "User registered successfully."

	// MsgLoginSuccessful accompanies the token returned by a successful login.
	MsgLoginSuccessful = "Login successful."

	// MsgTokenRequired is returned when a protected route is called without
	// a bearer token.
	MsgTokenRequired = "Access token is required."

	// MsgTokenInvalidOrExpired is returned for any token that fails
	// verification. Expired and tampered tokens share it.
	MsgTokenInvalidOrExpired = "Invalid or expired token."

	// MsgInvalidCredentials is returned for both an unknown email and a wrong
	// password.
	MsgInvalidCredentials = "Invalid email or password."

	MsgUserAlreadyExists = "User already exists."

	MsgRegisterFieldsRequired = "Name, email, and password are required."
	MsgLoginFieldsRequired    = "Email and password are required."
	MsgStudentFieldsRequired  = "Name and email are required."

	MsgPasswordTooLong     = "Password is too long."
	MsgCourseDoesNotExist  = "Course does not exist."
	MsgInvalidJSON         = "Invalid JSON was passed."
	MsgInvalidGzip         = "Invalid gzip data."
	MsgInvalidID           = "Invalid id."
	MsgInvalidDataProvided = "Invalid data provided."

	MsgNotFound = "Not found."

	// MsgInternalServerError hides every unexpected failure. Details only go
	// to the log.
	MsgInternalServerError = "Internal server error."
)
