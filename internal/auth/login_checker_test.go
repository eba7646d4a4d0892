package auth

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginChecker_LoggedUserID(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	loginChecker := NewLoginChecker(time.Hour, db)
	require.NotNil(t, loginChecker)

	ctx := context.Background()

	mock.ExpectGet(sessionKeyPrefix + "invalid token").SetErr(redis.Nil)
	userID, err := loginChecker.LoggedUserID(ctx, "invalid token")
	require.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Zero(t, userID)

	mock.ExpectGet(sessionKeyPrefix + "invalid token").SetErr(redis.Nil)
	userID, err = loginChecker.LoggedUserID(ctx, "invalid token")
	require.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Zero(t, userID) // idempotent

	testToken := "test-token"
	sessionKey := sessionKeyPrefix + testToken

	mock.ExpectGet(sessionKey).SetVal("42")
	mock.ExpectExpire(sessionKey, time.Hour).SetVal(true)
	userID, err = loginChecker.LoggedUserID(ctx, testToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}
