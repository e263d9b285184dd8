// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Error kinds returned by the services. The HTTP layer maps each of them to
// a status code; anything not listed here is an internal error.
var (
	// ErrInvalidDataProvided is returned when required input is missing or
	// malformed.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrEmailAlreadyExists is returned when registering an email that is
	// already taken, whether detected by the pre-check or by the store.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenRejected wraps every token verification failure.
	ErrTokenRejected = errors.New("token rejected")

	// ErrTokenInvalid marks a malformed token, a bad signature, a foreign
	// algorithm or issuer, or missing identity claims.
	ErrTokenInvalid = errors.New("token is invalid")

	// ErrTokenExpired marks a well-signed token whose expiry has passed.
	ErrTokenExpired = errors.New("token is expired")

	ErrTokenCreationFailed      = errors.New("token creation failed")
	ErrTokenSignKeyNotSpecified = errors.New("token sign key is not specified")

	// ErrStudentNotFound is returned when the requested student does not exist.
	ErrStudentNotFound = errors.New("student not found")

	// ErrCourseNotFound is returned when a student references an unknown course.
	// It is always wrapped together with ErrInvalidDataProvided.
	ErrCourseNotFound = errors.New("course not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
