package plans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/fittrack/fittrack/internal/auth"
	"github.com/fittrack/fittrack/internal/catalog"
	"github.com/fittrack/fittrack/internal/telemetry/tracing"
	"github.com/fittrack/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=plans_mocks_test.go -package=plans_test

type plansService interface {
	Create(ctx context.Context, userID int64, params CreatePlanParams) (*Plan, error)
	Get(ctx context.Context, userID, planID int64) (*Plan, error)
	List(ctx context.Context, userID int64, archived *bool) ([]Plan, error)
	Rename(ctx context.Context, userID, planID int64, name string) error
	AddExercise(ctx context.Context, userID, planID int64, exerciseID string) (*Slot, error)
	Reorder(ctx context.Context, userID, planID int64, orderedExerciseIDs []string) error
	RemoveSlot(ctx context.Context, userID, planID, slotID int64) error
	UpdateSlot(ctx context.Context, userID, planID, slotID int64, params UpdateSlotParams) error
	AddSet(ctx context.Context, userID, planID, slotID int64) error
	Archive(ctx context.Context, userID, planID int64) error
}

type ListResponse struct {
	Plans []Plan `json:"plans"`
}

type Handler struct {
	service plansService
}

func NewHandler(service plansService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.create")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		pkg.WriteError(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		pkg.WriteError(w, "not logged in", http.StatusUnauthorized)
		return
	}

	var params CreatePlanParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("create plan, unmarshal json params: %s", err)
		pkg.WriteError(w, "invalid plan data", http.StatusBadRequest)
		return
	}
	if params.Name == "" {
		pkg.WriteError(w, "plan name must not be empty", http.StatusBadRequest)
		return
	}

	plan, err := handler.service.Create(ctx, userID, params)
	if err != nil {
		log.Errorf("create plan for user %d: %s", userID, err)
		writePlanError(w, err)
		return
	}

	planJson, err := json.Marshal(plan)
	if err != nil {
		log.Errorf("marshal plan: %s", err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, planJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.list")
	defer span.End()

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		pkg.WriteError(w, "not logged in", http.StatusUnauthorized)
		return
	}

	// default to active plans, "all" lifts the filter
	var archived *bool
	switch r.URL.Query().Get("archived") {
	case "":
		archived = boolPtr(false)
	case "true":
		archived = boolPtr(true)
	case "false":
		archived = boolPtr(false)
	case "all":
		archived = nil
	default:
		pkg.WriteError(w, "invalid archived parameter", http.StatusBadRequest)
		return
	}

	plans, err := handler.service.List(ctx, userID, archived)
	if err != nil {
		log.Errorf("list plans for user %d: %s", userID, err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if plans == nil {
		plans = []Plan{}
	}

	respJson, err := json.Marshal(ListResponse{Plans: plans})
	if err != nil {
		log.Errorf("marshal plans: %s", err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.get")
	defer span.End()

	userID, planID, ok := handler.userAndPlanID(ctx, w, r)
	if !ok {
		return
	}

	plan, err := handler.service.Get(ctx, userID, planID)
	if err != nil {
		log.Errorf("get plan %d for user %d: %s", planID, userID, err)
		writePlanError(w, err)
		return
	}

	planJson, err := json.Marshal(plan)
	if err != nil {
		log.Errorf("marshal plan: %s", err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, planJson)
}

func (handler *Handler) HandleRename(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.rename")
	defer span.End()

	userID, planID, ok := handler.userAndPlanID(ctx, w, r)
	if !ok {
		return
	}

	var params struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		pkg.WriteError(w, "invalid plan data", http.StatusBadRequest)
		return
	}
	if params.Name == "" {
		pkg.WriteError(w, "plan name must not be empty", http.StatusBadRequest)
		return
	}

	if err := handler.service.Rename(ctx, userID, planID, params.Name); err != nil {
		log.Errorf("rename plan %d for user %d: %s", planID, userID, err)
		writePlanError(w, err)
		return
	}
	pkg.WriteTextResponseOK(w, "plan renamed")
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.addExercise")
	defer span.End()

	userID, planID, ok := handler.userAndPlanID(ctx, w, r)
	if !ok {
		return
	}

	var params struct {
		ExerciseID string `json:"exerciseId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		pkg.WriteError(w, "invalid exercise data", http.StatusBadRequest)
		return
	}
	if params.ExerciseID == "" {
		pkg.WriteError(w, "exercise id is required", http.StatusBadRequest)
		return
	}

	slot, err := handler.service.AddExercise(ctx, userID, planID, params.ExerciseID)
	if err != nil {
		log.Errorf(
			"add exercise %s to plan %d for user %d: %s",
			params.ExerciseID, planID, userID, err,
		)
		writePlanError(w, err)
		return
	}

	slotJson, err := json.Marshal(slot)
	if err != nil {
		log.Errorf("marshal slot: %s", err)
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, slotJson, http.StatusCreated)
}

func (handler *Handler) HandleReorder(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.reorder")
	defer span.End()

	userID, planID, ok := handler.userAndPlanID(ctx, w, r)
	if !ok {
		return
	}

	var params struct {
		ExerciseIDs []string `json:"exerciseIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		pkg.WriteError(w, "invalid exercise data", http.StatusBadRequest)
		return
	}
	if len(params.ExerciseIDs) == 0 {
		pkg.WriteError(w, "exercise ids are required", http.StatusBadRequest)
		return
	}

	if err := handler.service.Reorder(ctx, userID, planID, params.ExerciseIDs); err != nil {
		log.Errorf("reorder plan %d for user %d: %s", planID, userID, err)
		writePlanError(w, err)
		return
	}
	pkg.WriteTextResponseOK(w, "exercises reordered")
}

func (handler *Handler) HandleRemoveSlot(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.removeSlot")
	defer span.End()

	userID, planID, ok := handler.userAndPlanID(ctx, w, r)
	if !ok {
		return
	}
	slotID, ok := pathID(w, r, "slotId")
	if !ok {
		return
	}

	if err := handler.service.RemoveSlot(ctx, userID, planID, slotID); err != nil {
		log.Errorf("remove slot %d from plan %d for user %d: %s", slotID, planID, userID, err)
		writePlanError(w, err)
		return
	}
	pkg.WriteTextResponseOK(w, "exercise removed")
}

func (handler *Handler) HandleUpdateSlot(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.updateSlot")
	defer span.End()

	userID, planID, ok := handler.userAndPlanID(ctx, w, r)
	if !ok {
		return
	}
	slotID, ok := pathID(w, r, "slotId")
	if !ok {
		return
	}

	var params UpdateSlotParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		pkg.WriteError(w, "invalid exercise data", http.StatusBadRequest)
		return
	}
	if params.Sets == nil && params.Reps == nil && params.Weight == nil {
		pkg.WriteError(w, "nothing to update", http.StatusBadRequest)
		return
	}

	if err := handler.service.UpdateSlot(ctx, userID, planID, slotID, params); err != nil {
		log.Errorf("update slot %d of plan %d for user %d: %s", slotID, planID, userID, err)
		writePlanError(w, err)
		return
	}
	pkg.WriteTextResponseOK(w, "exercise updated")
}

func (handler *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.addSet")
	defer span.End()

	userID, planID, ok := handler.userAndPlanID(ctx, w, r)
	if !ok {
		return
	}
	slotID, ok := pathID(w, r, "slotId")
	if !ok {
		return
	}

	if err := handler.service.AddSet(ctx, userID, planID, slotID); err != nil {
		log.Errorf("add set to slot %d of plan %d for user %d: %s", slotID, planID, userID, err)
		writePlanError(w, err)
		return
	}
	pkg.WriteTextResponseOK(w, "set added")
}

func (handler *Handler) HandleArchive(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.archive")
	defer span.End()

	userID, planID, ok := handler.userAndPlanID(ctx, w, r)
	if !ok {
		return
	}

	if err := handler.service.Archive(ctx, userID, planID); err != nil {
		log.Errorf("archive plan %d for user %d: %s", planID, userID, err)
		writePlanError(w, err)
		return
	}
	pkg.WriteTextResponseOK(w, "plan archived")
}

func (handler *Handler) userAndPlanID(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
) (userID, planID int64, ok bool) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		pkg.WriteError(w, "not logged in", http.StatusUnauthorized)
		return 0, 0, false
	}
	planID, ok = pathID(w, r, "id")
	return userID, planID, ok
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		pkg.WriteError(w, "invalid "+name+" parameter", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writePlanError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrPlanNotFound):
		pkg.WriteError(w, "workout plan not found", http.StatusNotFound)
	case errors.Is(err, ErrSlotNotFound):
		pkg.WriteError(w, "exercise not found in workout plan", http.StatusNotFound)
	case errors.Is(err, catalog.ErrExerciseNotFound):
		pkg.WriteError(w, "exercise not found", http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		pkg.WriteError(w, "unauthorized", http.StatusForbidden)
	case errors.Is(err, ErrDuplicateExercise):
		pkg.WriteError(w, "Exercise already in workout plan", http.StatusBadRequest)
	default:
		pkg.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func boolPtr(b bool) *bool {
	return &b
}
