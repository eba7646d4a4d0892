package weights

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fittrack/fittrack/internal/auth"
	"github.com/fittrack/fittrack/internal/telemetry/metrics"
	"github.com/fittrack/fittrack/internal/telemetry/tracing"
	"github.com/fittrack/fittrack/internal/users"
	"github.com/fittrack/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=weights_mocks_test.go -package=weights_test

const historyPageSize = 20

type weightsRepo interface {
	Add(ctx context.Context, entry *WeightLog) error
	List(ctx context.Context, userID int64) ([]WeightLog, error)
	History(ctx context.Context, userID int64, page, size int) ([]WeightLog, int, error)
}

type userGetter interface {
	Get(ctx context.Context, id int64) (*users.User, error)
}

type HistoryResponse struct {
	Entries []WeightLog `json:"entries"`
	Total   int         `json:"total"`
	Page    int         `json:"page"`
}

type Handler struct {
	repo    weightsRepo
	users   userGetter
	metrics *metrics.Manager
}

func NewHandler(repo weightsRepo, users userGetter, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		users:   users,
		metrics: metrics,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weights.add")
	defer span.End()

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		pkg.WriteError(w, "not logged in", http.StatusUnauthorized)
		return
	}

	var params struct {
		Weight float64 `json:"weight"`
		Notes  string  `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		pkg.WriteError(w, "invalid weight data", http.StatusBadRequest)
		return
	}
	if params.Weight <= 0 {
		pkg.WriteError(w, "weight must be positive", http.StatusBadRequest)
		return
	}

	entry := &WeightLog{
		UserID: userID,
		Weight: params.Weight,
	}
	if params.Notes != "" {
		entry.Notes = &params.Notes
	}
	if err := handler.repo.Add(ctx, entry); err != nil {
		log.Errorf("add weight entry for user %d: %s", userID, err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	handler.metrics.CounterWeightEntries.Inc()

	entryJson, err := json.Marshal(entry)
	if err != nil {
		log.Errorf("marshal weight entry: %s", err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entryJson, http.StatusCreated)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weights.stats")
	defer span.End()

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		pkg.WriteError(w, "not logged in", http.StatusUnauthorized)
		return
	}

	entries, err := handler.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("list weight entries for user %d: %s", userID, err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	stats, err := CalculateStats(entries, time.Now())
	if errors.Is(err, ErrNoEntries) {
		pkg.WriteError(w, "no weight entries", http.StatusNotFound)
		return
	}
	if err != nil {
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	statsJson, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("marshal weight stats: %s", err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, statsJson)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weights.history")
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

	entries, total, err := handler.repo.History(ctx, userID, page, historyPageSize)
	if err != nil {
		log.Errorf("weight history for user %d: %s", userID, err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(HistoryResponse{
		Entries: entries,
		Total:   total,
		Page:    page,
	})
	if err != nil {
		log.Errorf("marshal weight history: %s", err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weights.chart")
	defer span.End()

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		pkg.WriteError(w, "not logged in", http.StatusUnauthorized)
		return
	}

	user, err := handler.users.Get(ctx, userID)
	if err != nil {
		log.Errorf("get user %d: %s", userID, err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	entries, err := handler.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("list weight entries for user %d: %s", userID, err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var chartPNG bytes.Buffer
	if err := RenderChart(&chartPNG, entries, user.GoalWeight); err != nil {
		if errors.Is(err, ErrInsufficientData) {
			pkg.WriteError(w, "Insufficient data", http.StatusBadRequest)
			return
		}
		log.Errorf("render weight chart for user %d: %s", userID, err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.PNG, chartPNG.Bytes())
}
