package onboarding

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fittrack/fittrack/internal/auth"
	"github.com/fittrack/fittrack/internal/telemetry/tracing"
	"github.com/fittrack/fittrack/internal/users"
	"github.com/fittrack/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=gate_mocks_test.go -package=onboarding_test

type userGetter interface {
	Get(ctx context.Context, id int64) (*users.User, error)
}

type incompleteResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Step    users.OnboardingStep `json:"step"`
}

// Gate blocks requests from users that have not finished onboarding yet.
// The response names the step the client has to send the user to.
func Gate(repo userGetter) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.onboardingGate")
			defer span.End()

			userID, err := auth.UserIDFromContext(ctx)
			if err != nil {
				pkg.WriteError(w, "not logged in", http.StatusUnauthorized)
				return
			}

			user, err := repo.Get(ctx, userID)
			if err != nil {
				log.Errorf("onboarding gate: get user %d: %s", userID, err)
				pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
				return
			}

			if step := user.OnboardingStep(); step != users.OnboardingComplete {
				respJson, err := json.Marshal(incompleteResponse{
					Success: false,
					Message: "onboarding incomplete",
					Step:    step,
				})
				if err != nil {
					pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
					return
				}
				pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusConflict)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
