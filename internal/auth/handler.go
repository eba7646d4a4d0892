package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fittrack/fittrack/internal/telemetry/metrics"
	"github.com/fittrack/fittrack/internal/telemetry/tracing"
	"github.com/fittrack/fittrack/internal/users"
	"github.com/fittrack/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=auth_test

type usersRepo interface {
	FindOrCreate(ctx context.Context, subject, email string) (*users.User, error)
}

type oidcClient interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*Identity, error)
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  *users.User `json:"user"`
}

type Handler struct {
	service *Service
	oidc    oidcClient
	repo    usersRepo
	metrics *metrics.Manager
}

func NewHandler(
	service *Service,
	oidc oidcClient,
	repo usersRepo,
	metrics *metrics.Manager,
) *Handler {
	return &Handler{
		service: service,
		oidc:    oidc,
		repo:    repo,
		metrics: metrics,
	}
}

// HandleLogin starts the authorization code flow. The state nonce is stored
// server side and checked again on callback.
func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	state, err := handler.service.NewState(ctx)
	if err != nil {
		log.Errorf("login: failed to create auth state: %s", err)
		pkg.WriteError(w, "login failed", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, handler.oidc.AuthCodeURL(state), http.StatusFound)
}

func (handler *Handler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.callback")
	defer span.End()

	state := r.URL.Query().Get("state")
	if state == "" {
		pkg.WriteError(w, "auth state missing", http.StatusBadRequest)
		return
	}
	stateOK, err := handler.service.CheckState(ctx, state)
	if err != nil {
		log.Errorf("callback: failed to check auth state: %s", err)
		pkg.WriteError(w, "login failed", http.StatusInternalServerError)
		return
	}
	if !stateOK {
		pkg.WriteError(w, "invalid auth state", http.StatusForbidden)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		pkg.WriteError(w, "auth code missing", http.StatusBadRequest)
		return
	}

	identity, err := handler.oidc.Exchange(ctx, code)
	if err != nil {
		log.Errorf("callback: code exchange failed: %s", err)
		pkg.WriteError(w, "login failed", http.StatusUnauthorized)
		return
	}

	user, err := handler.repo.FindOrCreate(ctx, identity.Subject, identity.Email)
	if err != nil {
		log.Errorf("callback: find or create user [%s]: %s", identity.Email, err)
		pkg.WriteError(w, "login failed", http.StatusInternalServerError)
		return
	}

	token, err := handler.service.Login(ctx, user.ID)
	if err != nil {
		log.Errorf("callback: failed to create session for user %d: %s", user.ID, err)
		pkg.WriteError(w, "login failed", http.StatusInternalServerError)
		return
	}

	log.Tracef("user %d logged in", user.ID)
	handler.metrics.CounterLogins.Inc()

	respJson, err := json.Marshal(LoginResponse{Token: token, User: user})
	if err != nil {
		log.Errorf("callback: failed to marshal login response: %s", err)
		pkg.WriteError(w, "login failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	token := r.Header.Get("X-FITTRACK-TOKEN")
	if token == "" {
		pkg.WriteError(w, "token missing", http.StatusBadRequest)
		return
	}

	loggedOut, err := handler.service.Logout(ctx, token)
	if err != nil {
		log.Errorf("logout: %s", err)
		pkg.WriteError(w, "logout failed", http.StatusInternalServerError)
		return
	}
	if !loggedOut {
		pkg.WriteError(w, "not logged in", http.StatusBadRequest)
		return
	}

	pkg.WriteTextResponseOK(w, "logged out")
}
