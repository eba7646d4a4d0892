package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fittrack/fittrack/internal/auth"
	"github.com/fittrack/fittrack/internal/telemetry/metrics"
	"github.com/fittrack/fittrack/internal/users"
)

const (
	sessionKeyPrefix = "fittrack-session||"
	stateKeyPrefix   = "fittrack-authstate||"
)

func newTestHandler(t *testing.T) (
	*auth.Handler,
	*auth.Service,
	redismock.ClientMock,
	*MockoidcClient,
	*MockusersRepo,
) {
	t.Helper()
	ctrl := gomock.NewController(t)
	oidcMock := NewMockoidcClient(ctrl)
	repoMock := NewMockusersRepo(ctrl)

	rdb, redisMock := redismock.NewClientMock()
	t.Cleanup(func() {
		_ = rdb.Close()
	})

	service := auth.NewService(time.Hour, rdb)
	handler := auth.NewHandler(service, oidcMock, repoMock, metrics.NewTestManager())
	return handler, service, redisMock, oidcMock, repoMock
}

func TestHandler_HandleLogin(t *testing.T) {
	handler, service, redisMock, oidcMock, _ := newTestHandler(t)

	testState := "test-state"
	service.RandStringFunc = func(s int) (string, error) {
		return testState, nil
	}

	redisMock.ExpectSet(stateKeyPrefix+testState, 1, 10*time.Minute).SetVal("OK")
	oidcMock.EXPECT().
		AuthCodeURL(testState).
		Return("https://id.example.org/authorize?state=" + testState)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/auth/login", nil)
	require.NoError(t, err)

	handler.HandleLogin(rec, req)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://id.example.org/authorize?state="+testState, rec.Header().Get("Location"))
}

func TestHandler_HandleCallback(t *testing.T) {
	handler, service, redisMock, oidcMock, repoMock := newTestHandler(t)

	testToken := "test-token"
	service.RandStringFunc = func(s int) (string, error) {
		return testToken, nil
	}

	testUser := &users.User{
		ID:    42,
		Email: "mila@example.org",
	}

	redisMock.ExpectDel(stateKeyPrefix + "test-state").SetVal(1)
	oidcMock.EXPECT().
		Exchange(gomock.Any(), "test-code").
		Return(&auth.Identity{
			Subject: "subject-1",
			Email:   testUser.Email,
		}, nil)
	repoMock.EXPECT().
		FindOrCreate(gomock.Any(), "subject-1", testUser.Email).
		Return(testUser, nil)
	redisMock.ExpectSet(sessionKeyPrefix+testToken, int64(42), time.Hour).SetVal("OK")

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/auth/callback?state=test-state&code=test-code", nil)
	require.NoError(t, err)

	handler.HandleCallback(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var loginResp auth.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loginResp))
	assert.Equal(t, testToken, loginResp.Token)
	require.NotNil(t, loginResp.User)
	assert.Equal(t, testUser.ID, loginResp.User.ID)
	assert.Equal(t, testUser.Email, loginResp.User.Email)
}

func TestHandler_HandleCallback_invalidState(t *testing.T) {
	handler, _, redisMock, _, _ := newTestHandler(t)

	redisMock.ExpectDel(stateKeyPrefix + "forged-state").SetVal(0)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/auth/callback?state=forged-state&code=test-code", nil)
	require.NoError(t, err)

	handler.HandleCallback(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"invalid auth state"}`, rec.Body.String())
}

func TestHandler_HandleLogout(t *testing.T) {
	handler, _, redisMock, _, _ := newTestHandler(t)

	redisMock.ExpectDel(sessionKeyPrefix + "test-token").SetVal(1)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("POST", "/auth/logout", nil)
	require.NoError(t, err)
	req.Header.Set("X-FITTRACK-TOKEN", "test-token")

	handler.HandleLogout(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "logged out", rec.Body.String())

	// no token header
	rec = httptest.NewRecorder()
	req, err = http.NewRequest("POST", "/auth/logout", nil)
	require.NoError(t, err)
	handler.HandleLogout(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
