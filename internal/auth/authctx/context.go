// Package authctx holds the request-context helpers for the authenticated
// user id. It lives in a leaf package so that packages the auth handlers
// depend on (e.g. users) can read the user id without importing auth.
package authctx

import (
	"context"
	"errors"
)

type contextKey struct{}

var userIDKey = contextKey{}

var ErrNoUserInContext = errors.New("no user id in request context")

func ContextWithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user id set by the auth middleware.
func UserIDFromContext(ctx context.Context) (int64, error) {
	userID, ok := ctx.Value(userIDKey).(int64)
	if !ok {
		return 0, ErrNoUserInContext
	}
	return userID, nil
}
