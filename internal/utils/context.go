// Package utils provides general-purpose helpers used across the
// application: typed context keys, JWT issuing and validation, bcrypt
// password hashing and JSON response writing.
package utils

import (
	"context"

	"github.com/MKhiriev/go-campus-api/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AuthContextCtxKey is the key under which the verified caller identity is
// stored in a request context.
var AuthContextCtxKey = contextKey("authContext")

// WithAuthContext returns a copy of ctx carrying authCtx.
func WithAuthContext(ctx context.Context, authCtx models.AuthContext) context.Context {
	return context.WithValue(ctx, AuthContextCtxKey, authCtx)
}

// GetAuthContext retrieves the verified caller identity from ctx.
//
// ok is false when the request did not pass the authentication middleware.
//
// Example usage:
//
//	authCtx, ok := utils.GetAuthContext(r.Context())
//	if !ok {
//	    // route is not behind the auth gate
//	}
func GetAuthContext(ctx context.Context) (models.AuthContext, bool) {
	authCtx, ok := ctx.Value(AuthContextCtxKey).(models.AuthContext)
	return authCtx, ok
}
