package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrNotLoggedIn = errors.New("not logged in")

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// LoggedUserID resolves the session token to the owning user id.
// Returns ErrNotLoggedIn for unknown or expired tokens.
func (c *LoginChecker) LoggedUserID(ctx context.Context, token string) (int64, error) {
	cmd := c.redisClient.Get(ctx, sessionKeyPrefix+token)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrNotLoggedIn
		}
		return 0, err
	}

	userID, err := strconv.ParseInt(cmd.Val(), 10, 64)
	if err != nil {
		return 0, err
	}

	// refresh the sliding expiration on every successful check
	c.redisClient.Expire(ctx, sessionKeyPrefix+token, c.ttl)

	return userID, nil
}
