// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AuthContext is the verified caller identity attached to a request by the
// authentication middleware. It is built once per request and never mutated;
// handlers read it from the request context.
type AuthContext struct {
	// Claims is the identity decoded from the caller's bearer token.
	Claims Claims

	// ExpiresAt is the expiry of the token the identity was taken from.
	ExpiresAt time.Time
}

// NewAuthContext builds an [AuthContext] from a verified token.
func NewAuthContext(token Token) AuthContext {
	return AuthContext{
		Claims:    token.Claims,
		ExpiresAt: token.ExpiresAt,
	}
}
