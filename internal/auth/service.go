package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/fittrack/fittrack/pkg"

	"github.com/go-redis/redis/v8"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "fittrack-session||"
	stateKeyPrefix   = "fittrack-authstate||"
	stateTTL         = 10 * time.Minute
)

// Service issues and revokes login session tokens, and keeps the short-lived
// OIDC state nonces. Everything lives in redis.
type Service struct {
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewService(ttl time.Duration, redisClient *redis.Client) *Service {
	return &Service{
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

// Login creates a new session token for the given user.
func (s *Service) Login(ctx context.Context, userID int64) (string, error) {
	token, err := s.RandStringFunc(35)
	if err != nil {
		return "", err
	}

	sessionKey := sessionKeyPrefix + token
	if err := s.redisClient.Set(ctx, sessionKey, userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return token, nil
}

// Logout removes the session token. Returns whether the token was known.
func (s *Service) Logout(ctx context.Context, token string) (bool, error) {
	removed, err := s.redisClient.Del(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return removed > 0, nil
}

// NewState stores a fresh OIDC state nonce, to be checked on callback.
func (s *Service) NewState(ctx context.Context) (string, error) {
	state, err := s.RandStringFunc(30)
	if err != nil {
		return "", err
	}
	if err := s.redisClient.Set(ctx, stateKeyPrefix+state, 1, stateTTL).Err(); err != nil {
		return "", fmt.Errorf("store auth state: %w", err)
	}
	return state, nil
}

// CheckState consumes the state nonce. A state can be used only once.
func (s *Service) CheckState(ctx context.Context, state string) (bool, error) {
	removed, err := s.redisClient.Del(ctx, stateKeyPrefix+state).Result()
	if err != nil {
		return false, err
	}
	return removed > 0, nil
}
