package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fittrack/fittrack/internal/plans"
	"github.com/fittrack/fittrack/internal/telemetry/tracing"

	"github.com/google/uuid"
)

const historyPageSize = 10

type planGetter interface {
	Get(ctx context.Context, planID int64) (*plans.Plan, error)
}

// Service runs the session lifecycle: start, log sets, complete, report.
// Ownership of the underlying plan or session is checked on every
// operation.
type Service struct {
	repo    *Repo
	plans   planGetter
	current *CurrentSession
}

func NewService(repo *Repo, plans planGetter, current *CurrentSession) *Service {
	return &Service{
		repo:    repo,
		plans:   plans,
		current: current,
	}
}

func (s *Service) ownedPlan(ctx context.Context, userID, planID int64) (*plans.Plan, error) {
	plan, err := s.plans.Get(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.UserID != userID {
		return nil, ErrForbidden
	}
	return plan, nil
}

func (s *Service) ownedSession(ctx context.Context, userID int64, sessionID string) (*Session, error) {
	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrForbidden
	}
	return session, nil
}

// activeSession resolves the user's current session pointer.
func (s *Service) activeSession(ctx context.Context, userID int64) (*Session, error) {
	sessionID, err := s.current.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.ownedSession(ctx, userID, sessionID)
}

// sessionPlan loads the plan a session was started from. The plan reference
// is nullable, it survives plan deletion as NULL.
func (s *Service) sessionPlan(ctx context.Context, session *Session) (*plans.Plan, error) {
	if session.PlanID == nil {
		return nil, plans.ErrPlanNotFound
	}
	return s.plans.Get(ctx, *session.PlanID)
}

func planSlot(plan *plans.Plan, slotID int64) (*plans.Slot, error) {
	for i := range plan.Exercises {
		if plan.Exercises[i].ID == slotID {
			return &plan.Exercises[i], nil
		}
	}
	return nil, plans.ErrSlotNotFound
}

// Start creates a new session for the plan and points the user's current
// session at it. A previously open session is simply orphaned, not closed.
func (s *Service) Start(ctx context.Context, userID, planID int64) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.ownedPlan(ctx, userID, planID); err != nil {
		return nil, err
	}

	session := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		PlanID:    &planID,
		StartedAt: time.Now(),
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	if err := s.current.Set(ctx, userID, session.ID); err != nil {
		return nil, err
	}
	return session, nil
}

// SaveSet upserts one set log of the active session.
func (s *Service) SaveSet(ctx context.Context, userID int64, params SaveSetParams) (_ *SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.saveSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session, err := s.activeSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	if session.Completed {
		return nil, ErrNoActiveSession
	}
	plan, err := s.sessionPlan(ctx, session)
	if err != nil {
		return nil, err
	}
	slot, err := planSlot(plan, params.PlanExerciseID)
	if err != nil {
		return nil, err
	}

	set := &SetLog{
		UserID:         userID,
		PlanID:         session.PlanID,
		ExerciseID:     slot.ExerciseID,
		PlanExerciseID: &slot.ID,
		SessionID:      session.ID,
		SetNumber:      params.SetNumber,
		Reps:           params.Reps,
		Weight:         params.Weight,
		Completed:      params.Completed,
	}
	if params.Completed {
		now := time.Now()
		set.CompletedAt = &now
	}
	if err := s.repo.SaveSet(ctx, set); err != nil {
		return nil, err
	}
	return set, nil
}

// SaveWorkout rewrites all set logs of the active session from the full
// payload and recomputes the session totals.
func (s *Service) SaveWorkout(ctx context.Context, userID int64, params []SaveSetParams) (_ *SessionStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.saveWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session, err := s.activeSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	if session.Completed {
		return nil, ErrNoActiveSession
	}
	plan, err := s.sessionPlan(ctx, session)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sets := make([]SetLog, 0, len(params))
	for _, setParams := range params {
		slot, err := planSlot(plan, setParams.PlanExerciseID)
		if err != nil {
			return nil, err
		}
		set := SetLog{
			UserID:         userID,
			PlanID:         session.PlanID,
			ExerciseID:     slot.ExerciseID,
			PlanExerciseID: &slot.ID,
			SessionID:      session.ID,
			SetNumber:      setParams.SetNumber,
			Reps:           setParams.Reps,
			Weight:         setParams.Weight,
			Completed:      setParams.Completed,
		}
		if setParams.Completed {
			set.CompletedAt = &now
		}
		sets = append(sets, set)
	}

	if err := s.repo.ReplaceSessionSets(ctx, session.ID, sets); err != nil {
		return nil, err
	}

	stats := CalculateStatistics(sets, session.StartedAt, session.CompletedAt)
	if err := s.repo.UpdateStats(ctx, session.ID, stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// CompleteAllSets logs a whole exercise as done straight from its
// prescription in the plan, without individual set logs.
func (s *Service) CompleteAllSets(ctx context.Context, userID, planID, slotID int64) (_ *ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.completeAllSets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	plan, err := s.ownedPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}
	slot, err := planSlot(plan, slotID)
	if err != nil {
		return nil, err
	}

	exerciseLog := &ExerciseLog{
		UserID:      userID,
		ExerciseID:  slot.ExerciseID,
		PlanID:      &planID,
		Completed:   true,
		Sets:        slot.Sets,
		Reps:        float64(slot.Reps),
		Weight:      slot.Weight,
		CompletedAt: time.Now(),
	}
	if sessionID, err := s.current.Get(ctx, userID); err == nil {
		exerciseLog.SessionID = &sessionID
	} else if !errors.Is(err, ErrNoActiveSession) {
		return nil, err
	}

	if err := s.repo.AddExerciseLog(ctx, exerciseLog); err != nil {
		return nil, err
	}
	return exerciseLog, nil
}

// Complete closes the current session: recomputes the totals from its
// completed sets, writes one exercise log per exercise with at least one
// completed set, and clears the current session pointer. Completing an
// already completed session recomputes the same values again.
func (s *Service) Complete(ctx context.Context, userID int64) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session, err := s.activeSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	sets, err := s.repo.SessionSets(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session.Completed = true
	session.CompletedAt = &now

	stats := CalculateStatistics(sets, session.StartedAt, session.CompletedAt)
	session.TotalSets = stats.TotalSets
	session.TotalReps = stats.TotalReps
	session.TotalWeight = stats.TotalWeight
	session.DurationMinutes = stats.DurationMinutes

	logs := AggregateExerciseLogs(sets)
	for i := range logs {
		logs[i].UserID = userID
		logs[i].PlanID = session.PlanID
		logs[i].SessionID = &session.ID
		logs[i].CompletedAt = now
	}

	if err := s.repo.CompleteSession(ctx, session, logs); err != nil {
		return nil, err
	}
	if err := s.current.Clear(ctx, userID); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Service) History(ctx context.Context, userID int64, page int) (_ []Session, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.History(ctx, userID, page, historyPageSize)
}

func (s *Service) Detail(ctx context.Context, userID int64, sessionID string) (_ *SessionDetail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.detail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	sets, err := s.repo.SessionSets(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &SessionDetail{
		Session:   session,
		Exercises: SummarizeSets(sets),
		Sets:      sets,
	}, nil
}

// Progress reports completed vs. planned sets of the active session.
func (s *Service) Progress(ctx context.Context, userID int64) (_ *Progress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session, err := s.activeSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	plan, err := s.sessionPlan(ctx, session)
	if err != nil {
		return nil, err
	}
	sets, err := s.repo.SessionSets(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	var plannedSets int
	for _, slot := range plan.Exercises {
		plannedSets += slot.Sets
	}
	var completedSets int
	for _, set := range sets {
		if set.Completed {
			completedSets++
		}
	}

	return &Progress{
		SessionID:      session.ID,
		CompletedSets:  completedSets,
		PlannedSets:    plannedSets,
		Percent:        ProgressPercent(completedSets, plannedSets),
		ElapsedMinutes: int(time.Since(session.StartedAt).Minutes()),
	}, nil
}

func (s *Service) Archive(ctx context.Context, userID int64, sessionID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.archive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return err
	}
	// only finished sessions go to the archive, open ones get completed first
	if !session.Completed {
		return ErrSessionNotCompleted
	}
	return s.repo.ArchiveSession(ctx, sessionID)
}
