package workouts

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
)

const currentSessionKeyPrefix = "fittrack-currentsession||"

// CurrentSession tracks the single active workout session per user in
// redis. It is a soft pointer: starting a new session simply replaces it,
// orphaning whatever open session it pointed to before.
type CurrentSession struct {
	rdb *redis.Client
}

func NewCurrentSession(rdb *redis.Client) *CurrentSession {
	return &CurrentSession{
		rdb: rdb,
	}
}

func currentSessionKey(userID int64) string {
	return currentSessionKeyPrefix + strconv.FormatInt(userID, 10)
}

func (c *CurrentSession) Set(ctx context.Context, userID int64, sessionID string) error {
	if err := c.rdb.Set(ctx, currentSessionKey(userID), sessionID, 0).Err(); err != nil {
		return fmt.Errorf("set current session: %w", err)
	}
	return nil
}

func (c *CurrentSession) Get(ctx context.Context, userID int64) (string, error) {
	sessionID, err := c.rdb.Get(ctx, currentSessionKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoActiveSession
	}
	if err != nil {
		return "", fmt.Errorf("get current session: %w", err)
	}
	return sessionID, nil
}

func (c *CurrentSession) Clear(ctx context.Context, userID int64) error {
	if err := c.rdb.Del(ctx, currentSessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("clear current session: %w", err)
	}
	return nil
}
