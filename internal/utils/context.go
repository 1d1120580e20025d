// Package utils provides general-purpose helper utilities
// used across different parts of the application: typed context keys,
// password hashing, JSON response writing, the HTTP client, JWT token
// generation and validation and trace ID generation.
package utils

import (
	"context"
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

var (
	// UserIDCtxKey is the key used to store the authenticated user's ID.
	UserIDCtxKey = contextKey("userID")

	// RoleIDCtxKey is the key used to store the authenticated user's role.
	RoleIDCtxKey = contextKey("roleID")
)

// WithIdentity returns a copy of ctx carrying the authenticated user's
// ID and role.
//
//	ctx = utils.WithIdentity(ctx, token.UserID, token.RoleID)
func WithIdentity(ctx context.Context, userID, roleID int64) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, RoleIDCtxKey, roleID)
}

// GetUserIDFromContext retrieves the user identifier from the context.
// ok is false when the value is missing or is not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetRoleIDFromContext retrieves the role identifier from the context.
func GetRoleIDFromContext(ctx context.Context) (int64, bool) {
	roleID, ok := ctx.Value(RoleIDCtxKey).(int64)
	return roleID, ok
}
