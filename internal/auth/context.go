package auth

import (
	"context"

	"github.com/fittrack/fittrack/internal/auth/authctx"
)

var ErrNoUserInContext = authctx.ErrNoUserInContext

func ContextWithUserID(ctx context.Context, userID int64) context.Context {
	return authctx.ContextWithUserID(ctx, userID)
}

// UserIDFromContext returns the authenticated user id set by the auth middleware.
func UserIDFromContext(ctx context.Context) (int64, error) {
	return authctx.UserIDFromContext(ctx)
}
