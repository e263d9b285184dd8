// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Claims is the identity snapshot embedded into every issued token.
type Claims struct {
	// UserID is the identifier of the authenticated user ("id" claim).
	UserID int64 `json:"id"`

	// Email is the login email of the user at issuance time ("email" claim).
	Email string `json:"email"`
}

// Token is a signed, self-contained session credential.
//
// Tokens are never persisted on the server: validity is decided purely from
// the signature and ExpiresAt, so a token cannot be revoked before it expires.
type Token struct {
	// Claims is the identity carried by the token.
	Claims Claims

	// IssuedAt is the moment the token was signed.
	IssuedAt time.Time

	// ExpiresAt is the moment after which the token is rejected.
	ExpiresAt time.Time

	// SignedString is the compact JWS representation
	// (base64url header.payload.signature) handed to the client.
	SignedString string
}
