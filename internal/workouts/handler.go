package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/fittrack/fittrack/internal/auth"
	"github.com/fittrack/fittrack/internal/plans"
	"github.com/fittrack/fittrack/internal/telemetry/metrics"
	"github.com/fittrack/fittrack/internal/telemetry/tracing"
	"github.com/fittrack/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsService interface {
	Start(ctx context.Context, userID, planID int64) (*Session, error)
	SaveSet(ctx context.Context, userID int64, params SaveSetParams) (*SetLog, error)
	SaveWorkout(ctx context.Context, userID int64, params []SaveSetParams) (*SessionStats, error)
	CompleteAllSets(ctx context.Context, userID, planID, slotID int64) (*ExerciseLog, error)
	Complete(ctx context.Context, userID int64) (*Session, error)
	History(ctx context.Context, userID int64, page int) ([]Session, int, error)
	Detail(ctx context.Context, userID int64, sessionID string) (*SessionDetail, error)
	Progress(ctx context.Context, userID int64) (*Progress, error)
	Archive(ctx context.Context, userID int64, sessionID string) error
}

type HistoryResponse struct {
	Sessions []Session `json:"sessions"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
}

type Handler struct {
	service workoutsService
	metrics *metrics.Manager
}

func NewHandler(service workoutsService, metrics *metrics.Manager) *Handler {
	return &Handler{
		service: service,
		metrics: metrics,
	}
}

func (handler *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.start")
	defer span.End()

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		pkg.WriteError(w, "not logged in", http.StatusUnauthorized)
		return
	}

	var params struct {
		PlanID int64 `json:"planId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil || params.PlanID <= 0 {
		pkg.WriteError(w, "invalid plan id", http.StatusBadRequest)
		return
	}

	session, err := handler.service.Start(ctx, userID, params.PlanID)
	if err != nil {
		log.Errorf("start workout on plan %d for user %d: %s", params.PlanID, userID, err)
		writeWorkoutError(w, err)
		return
	}

	sessionJson, err := json.Marshal(session)
	if err != nil {
		log.Errorf("marshal session: %s", err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJson, http.StatusCreated)
}

func (handler *Handler) HandleSaveSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.saveSet")
	defer span.End()

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		pkg.WriteError(w, "not logged in", http.StatusUnauthorized)
		return
	}

	var params SaveSetParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		pkg.WriteError(w, "invalid set data", http.StatusBadRequest)
		return
	}
	if message, ok := validateSetParams(params); !ok {
		pkg.WriteError(w, message, http.StatusBadRequest)
		return
	}

	set, err := handler.service.SaveSet(ctx, userID, params)
	if err != nil {
		log.Errorf("save set %d for user %d: %s", params.SetNumber, userID, err)
		writeWorkoutError(w, err)
		return
	}
	handler.metrics.CounterSetsLogged.Inc()

	setJson, err := json.Marshal(set)
	if err != nil {
		log.Errorf("marshal set: %s", err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, setJson)
}

func (handler *Handler) HandleSaveWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.saveWorkout")
	defer span.End()

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		pkg.WriteError(w, "not logged in", http.StatusUnauthorized)
		return
	}

	var params struct {
		Sets []SaveSetParams `json:"sets"`
	}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		pkg.WriteError(w, "invalid workout data", http.StatusBadRequest)
		return
	}
	for _, setParams := range params.Sets {
		if message, ok := validateSetParams(setParams); !ok {
			pkg.WriteError(w, message, http.StatusBadRequest)
			return
		}
	}

	stats, err := handler.service.SaveWorkout(ctx, userID, params.Sets)
	if err != nil {
		log.Errorf("save workout for user %d: %s", userID, err)
		writeWorkoutError(w, err)
		return
	}

	statsJson, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("marshal stats: %s", err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, statsJson)
}

func (handler *Handler) HandleCompleteAllSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.completeAllSets")
	defer span.End()

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		pkg.WriteError(w, "not logged in", http.StatusUnauthorized)
		return
	}

	var params struct {
		PlanID int64 `json:"planId"`
		SlotID int64 `json:"slotId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil ||
		params.PlanID <= 0 || params.SlotID <= 0 {
		pkg.WriteError(w, "invalid exercise data", http.StatusBadRequest)
		return
	}

	exerciseLog, err := handler.service.CompleteAllSets(ctx, userID, params.PlanID, params.SlotID)
	if err != nil {
		log.Errorf(
			"complete all sets of slot %d, plan %d, user %d: %s",
			params.SlotID, params.PlanID, userID, err,
		)
		writeWorkoutError(w, err)
		return
	}
	handler.metrics.CounterSetsLogged.Inc()

	logJson, err := json.Marshal(exerciseLog)
	if err != nil {
		log.Errorf("marshal exercise log: %s", err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, logJson, http.StatusCreated)
}

func (handler *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.complete")
	defer span.End()

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		pkg.WriteError(w, "not logged in", http.StatusUnauthorized)
		return
	}

	session, err := handler.service.Complete(ctx, userID)
	if err != nil {
		log.Errorf("complete workout for user %d: %s", userID, err)
		writeWorkoutError(w, err)
		return
	}
	handler.metrics.CounterWorkoutsCompleted.Inc()

	sessionJson, err := json.Marshal(session)
	if err != nil {
		log.Errorf("marshal session: %s", err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, sessionJson)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.history")
	defer span.End()

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		pkg.WriteError(w, "not logged in", http.StatusUnauthorized)
		return
	}

	page := 1
	if pageParam := r.URL.Query().Get("page"); pageParam != "" {
		page, err = strconv.Atoi(pageParam)
		if err != nil || page < 1 {
			pkg.WriteError(w, "invalid page parameter", http.StatusBadRequest)
			return
		}
	}

	sessions, total, err := handler.service.History(ctx, userID, page)
	if err != nil {
		log.Errorf("workout history for user %d: %s", userID, err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(HistoryResponse{
		Sessions: sessions,
		Total:    total,
		Page:     page,
	})
	if err != nil {
		log.Errorf("marshal history: %s", err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.detail")
	defer span.End()

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		pkg.WriteError(w, "not logged in", http.StatusUnauthorized)
		return
	}
	sessionID := mux.Vars(r)["id"]
	if sessionID == "" {
		pkg.WriteError(w, "invalid session id", http.StatusBadRequest)
		return
	}

	detail, err := handler.service.Detail(ctx, userID, sessionID)
	if err != nil {
		log.Errorf("workout detail %s for user %d: %s", sessionID, userID, err)
		writeWorkoutError(w, err)
		return
	}

	detailJson, err := json.Marshal(detail)
	if err != nil {
		log.Errorf("marshal detail: %s", err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, detailJson)
}

func (handler *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.progress")
	defer span.End()

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		pkg.WriteError(w, "not logged in", http.StatusUnauthorized)
		return
	}

	progress, err := handler.service.Progress(ctx, userID)
	if err != nil {
		log.Errorf("workout progress for user %d: %s", userID, err)
		writeWorkoutError(w, err)
		return
	}

	progressJson, err := json.Marshal(progress)
	if err != nil {
		log.Errorf("marshal progress: %s", err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, progressJson)
}

func (handler *Handler) HandleArchive(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.archive")
	defer span.End()

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		pkg.WriteError(w, "not logged in", http.StatusUnauthorized)
		return
	}
	sessionID := mux.Vars(r)["id"]
	if sessionID == "" {
		pkg.WriteError(w, "invalid session id", http.StatusBadRequest)
		return
	}

	if err := handler.service.Archive(ctx, userID, sessionID); err != nil {
		log.Errorf("archive session %s for user %d: %s", sessionID, userID, err)
		writeWorkoutError(w, err)
		return
	}
	pkg.WriteTextResponseOK(w, "workout session archived")
}

func validateSetParams(params SaveSetParams) (message string, ok bool) {
	switch {
	case params.PlanExerciseID <= 0:
		return "invalid plan exercise id", false
	case params.SetNumber <= 0:
		return "invalid set number", false
	case params.Reps < 0:
		return "reps must not be negative", false
	case params.Weight < 0:
		return "weight must not be negative", false
	}
	return "", true
}

func writeWorkoutError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNoActiveSession):
		pkg.WriteError(w, "no active workout session", http.StatusBadRequest)
	case errors.Is(err, ErrSessionNotFound):
		pkg.WriteError(w, "workout session not found", http.StatusNotFound)
	case errors.Is(err, plans.ErrPlanNotFound):
		pkg.WriteError(w, "workout plan not found", http.StatusNotFound)
	case errors.Is(err, plans.ErrSlotNotFound):
		pkg.WriteError(w, "exercise not found in workout plan", http.StatusNotFound)
	case errors.Is(err, ErrSessionNotCompleted):
		pkg.WriteError(w, "only completed workout sessions can be archived", http.StatusBadRequest)
	case errors.Is(err, ErrForbidden), errors.Is(err, plans.ErrForbidden):
		pkg.WriteError(w, "unauthorized", http.StatusForbidden)
	default:
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
