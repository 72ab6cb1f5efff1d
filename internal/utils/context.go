package utils

import (
	"context"
	"errors"
)

// Key type for context values
type contextKey string

const usernameKey contextKey = "username"

// GetUsernameFromContext extracts the authenticated username from the context
func GetUsernameFromContext(ctx context.Context) (string, error) {
	username, ok := ctx.Value(usernameKey).(string)
	if !ok || username == "" {
		return "", errors.New("username not found in context")
	}
	return username, nil
}

// SetUsernameToContext adds the authenticated username to the context
func SetUsernameToContext(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}
