// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for carrying the authenticated user in a context,
// password hashing, identifier generation, HTTP response writing
// and HTTP client initialization.
package utils

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key under which the authenticated models.User is stored
// by the authorization middleware.
var UserCtxKey = contextKey("user")

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
//
// ok is false when no user was stored or the value has an unexpected type:
//
//	user, ok := utils.GetUserFromContext(r.Context())
//	if !ok {
//	    // request did not pass through the authorization middleware
//	}
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}
