// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the fixed bcrypt work factor for stored passwords.
const PasswordHashCost = 10

var (
	// ErrPasswordMismatch is returned by CheckPassword when the password does
	// not match the hash.
	ErrPasswordMismatch = errors.New("password does not match")

	// ErrPasswordTooLong is returned by HashPassword for passwords that bcrypt
	// cannot hash (longer than 72 bytes).
	ErrPasswordTooLong = errors.New("password is too long")
)

// HashPassword returns the bcrypt hash of password at [PasswordHashCost].
// Each call uses a fresh random salt, so equal passwords hash differently.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether password matches the bcrypt hash.
//
// It returns nil on a match, [ErrPasswordMismatch] on a mismatch and a
// wrapped error when hash is not a valid bcrypt hash.
func CheckPassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword), errors.Is(err, bcrypt.ErrPasswordTooLong):
		// a password bcrypt cannot hash was never stored, so it cannot match
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("error comparing password hash: %w", err)
	}
}
