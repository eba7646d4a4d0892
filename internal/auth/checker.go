package auth

import "context"

var _ Checker = (*LoginChecker)(nil)

type Checker interface {
	LoggedUserID(ctx context.Context, token string) (int64, error)
}
