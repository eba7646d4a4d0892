package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fittrack/fittrack/internal/auth/authctx"
	"github.com/fittrack/fittrack/internal/telemetry/tracing"
	"github.com/fittrack/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=users_mocks_test.go -package=users_test

type usersRepo interface {
	Get(ctx context.Context, id int64) (*User, error)
	SetName(ctx context.Context, userID int64, name string) error
	SetCurrentWeight(ctx context.Context, userID int64, weight float64) error
	SetGoalWeight(ctx context.Context, userID int64, weight float64) error
	UpdateProfile(ctx context.Context, userID int64, update ProfileUpdate) error
}

type weightLogger interface {
	LogWeight(ctx context.Context, userID int64, weight float64, note string) error
}

type ProfileResponse struct {
	User           *User          `json:"user"`
	OnboardingStep OnboardingStep `json:"onboardingStep"`
}

type OnboardingStatusResponse struct {
	Step OnboardingStep `json:"step"`
}

type Handler struct {
	repo      usersRepo
	weightLog weightLogger
}

func NewHandler(repo usersRepo, weightLog weightLogger) *Handler {
	return &Handler{
		repo:      repo,
		weightLog: weightLog,
	}
}

func (handler *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.profile")
	defer span.End()

	userID, err := authctx.UserIDFromContext(ctx)
	if err != nil {
		pkg.WriteError(w, "not logged in", http.StatusUnauthorized)
		return
	}

	handler.writeProfile(ctx, w, userID)
}

func (handler *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.updateProfile")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		pkg.WriteError(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID, err := authctx.UserIDFromContext(ctx)
	if err != nil {
		pkg.WriteError(w, "not logged in", http.StatusUnauthorized)
		return
	}

	var update ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Tracef("update profile, unmarshal json params: %s", err)
		pkg.WriteError(w, "invalid profile data", http.StatusBadRequest)
		return
	}

	if update.Name == "" {
		pkg.WriteError(w, "name must not be empty", http.StatusBadRequest)
		return
	}
	if update.CurrentWeight != nil && *update.CurrentWeight <= 0 {
		pkg.WriteError(w, "current weight must be positive", http.StatusBadRequest)
		return
	}
	if update.GoalWeight != nil && *update.GoalWeight <= 0 {
		pkg.WriteError(w, "goal weight must be positive", http.StatusBadRequest)
		return
	}
	if update.WeeklyWorkouts != nil && *update.WeeklyWorkouts < 0 {
		pkg.WriteError(w, "weekly workouts must not be negative", http.StatusBadRequest)
		return
	}

	user, err := handler.repo.Get(ctx, userID)
	if err != nil {
		log.Errorf("update profile: get user %d: %s", userID, err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := handler.repo.UpdateProfile(ctx, userID, update); err != nil {
		log.Errorf("update profile for user %d: %s", userID, err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// a changed weight goes into the weight log too
	if update.CurrentWeight != nil &&
		(user.CurrentWeight == nil || *user.CurrentWeight != *update.CurrentWeight) {
		if err := handler.weightLog.LogWeight(
			ctx, userID, *update.CurrentWeight, "updated via profile",
		); err != nil {
			log.Errorf("update profile: log weight for user %d: %s", userID, err)
			pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
			return
		}
	}

	handler.writeProfile(ctx, w, userID)
}

func (handler *Handler) HandleOnboardingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.onboardingStatus")
	defer span.End()

	userID, err := authctx.UserIDFromContext(ctx)
	if err != nil {
		pkg.WriteError(w, "not logged in", http.StatusUnauthorized)
		return
	}

	handler.writeOnboardingStatus(ctx, w, userID)
}

func (handler *Handler) HandleOnboardingName(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.onboardingName")
	defer span.End()

	userID, err := authctx.UserIDFromContext(ctx)
	if err != nil {
		pkg.WriteError(w, "not logged in", http.StatusUnauthorized)
		return
	}

	var params struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		pkg.WriteError(w, "invalid name data", http.StatusBadRequest)
		return
	}
	if params.Name == "" {
		pkg.WriteError(w, "name must not be empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.SetName(ctx, userID, params.Name); err != nil {
		log.Errorf("onboarding: set name for user %d: %s", userID, err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	handler.writeOnboardingStatus(ctx, w, userID)
}

func (handler *Handler) HandleOnboardingCurrentWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.onboardingCurrentWeight")
	defer span.End()

	userID, err := authctx.UserIDFromContext(ctx)
	if err != nil {
		pkg.WriteError(w, "not logged in", http.StatusUnauthorized)
		return
	}

	var params struct {
		Weight float64 `json:"weight"`
	}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		pkg.WriteError(w, "invalid weight data", http.StatusBadRequest)
		return
	}
	if params.Weight <= 0 {
		pkg.WriteError(w, "weight must be positive", http.StatusBadRequest)
		return
	}

	if err := handler.repo.SetCurrentWeight(ctx, userID, params.Weight); err != nil {
		log.Errorf("onboarding: set current weight for user %d: %s", userID, err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	handler.writeOnboardingStatus(ctx, w, userID)
}

func (handler *Handler) HandleOnboardingGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.onboardingGoal")
	defer span.End()

	userID, err := authctx.UserIDFromContext(ctx)
	if err != nil {
		pkg.WriteError(w, "not logged in", http.StatusUnauthorized)
		return
	}

	var params struct {
		GoalWeight float64 `json:"goalWeight"`
	}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		pkg.WriteError(w, "invalid goal data", http.StatusBadRequest)
		return
	}
	if params.GoalWeight <= 0 {
		pkg.WriteError(w, "goal weight must be positive", http.StatusBadRequest)
		return
	}

	if err := handler.repo.SetGoalWeight(ctx, userID, params.GoalWeight); err != nil {
		log.Errorf("onboarding: set goal weight for user %d: %s", userID, err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	handler.writeOnboardingStatus(ctx, w, userID)
}

func (handler *Handler) writeProfile(ctx context.Context, w http.ResponseWriter, userID int64) {
	user, err := handler.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			pkg.WriteError(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("get user %d: %s", userID, err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ProfileResponse{
		User:           user,
		OnboardingStep: user.OnboardingStep(),
	})
	if err != nil {
		log.Errorf("marshal profile response: %s", err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) writeOnboardingStatus(ctx context.Context, w http.ResponseWriter, userID int64) {
	user, err := handler.repo.Get(ctx, userID)
	if err != nil {
		log.Errorf("get user %d: %s", userID, err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(OnboardingStatusResponse{
		Step: user.OnboardingStep(),
	})
	if err != nil {
		log.Errorf("marshal onboarding status response: %s", err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
