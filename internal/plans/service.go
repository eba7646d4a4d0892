package plans

import (
	"context"
	"fmt"

	"github.com/fittrack/fittrack/internal/catalog"
	"github.com/fittrack/fittrack/internal/telemetry/tracing"
)

type exerciseGetter interface {
	Get(ctx context.Context, id string) (*catalog.Exercise, error)
}

// Service wraps the repo with ownership checks. Every operation on a plan
// first verifies the plan belongs to the calling user.
type Service struct {
	repo    *Repo
	catalog exerciseGetter
}

func NewService(repo *Repo, catalog exerciseGetter) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
	}
}

func (s *Service) ownedPlan(ctx context.Context, userID, planID int64) (*Plan, error) {
	plan, err := s.repo.Get(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.UserID != userID {
		return nil, ErrForbidden
	}
	return plan, nil
}

func (s *Service) Create(ctx context.Context, userID int64, params CreatePlanParams) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	for _, slot := range params.Exercises {
		if _, err := s.catalog.Get(ctx, slot.ExerciseID); err != nil {
			return nil, fmt.Errorf("check exercise %s: %w", slot.ExerciseID, err)
		}
	}

	plan, err := s.repo.Create(ctx, userID, params)
	if err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}
	return plan, nil
}

func (s *Service) Get(ctx context.Context, userID, planID int64) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.ownedPlan(ctx, userID, planID)
}

func (s *Service) List(ctx context.Context, userID int64, archived *bool) (_ []Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	plans, err := s.repo.List(ctx, userID, archived)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return plans, nil
}

func (s *Service) Rename(ctx context.Context, userID, planID int64, name string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.rename")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.ownedPlan(ctx, userID, planID); err != nil {
		return err
	}
	return s.repo.Rename(ctx, planID, name)
}

// AddExercise appends the exercise to the plan with default targets.
func (s *Service) AddExercise(ctx context.Context, userID, planID int64, exerciseID string) (_ *Slot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.addExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.ownedPlan(ctx, userID, planID); err != nil {
		return nil, err
	}
	if _, err := s.catalog.Get(ctx, exerciseID); err != nil {
		return nil, fmt.Errorf("check exercise %s: %w", exerciseID, err)
	}

	slot, err := s.repo.AddSlot(ctx, planID, exerciseID)
	if err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *Service) RemoveSlot(ctx context.Context, userID, planID, slotID int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.removeSlot")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.ownedPlan(ctx, userID, planID); err != nil {
		return err
	}
	return s.repo.RemoveSlot(ctx, planID, slotID)
}

// Reorder applies the submitted exercise order to the plan. Slots left out
// of the list keep their current position.
func (s *Service) Reorder(ctx context.Context, userID, planID int64, orderedExerciseIDs []string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.reorder")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.ownedPlan(ctx, userID, planID); err != nil {
		return err
	}
	return s.repo.ReorderSlots(ctx, planID, orderedExerciseIDs)
}

func (s *Service) UpdateSlot(ctx context.Context, userID, planID, slotID int64, params UpdateSlotParams) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.updateSlot")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.ownedPlan(ctx, userID, planID); err != nil {
		return err
	}
	return s.repo.UpdateSlot(ctx, planID, slotID, params)
}

func (s *Service) AddSet(ctx context.Context, userID, planID, slotID int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.addSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.ownedPlan(ctx, userID, planID); err != nil {
		return err
	}
	return s.repo.IncrementSets(ctx, planID, slotID)
}

func (s *Service) Archive(ctx context.Context, userID, planID int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.archive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.ownedPlan(ctx, userID, planID); err != nil {
		return err
	}
	return s.repo.Archive(ctx, planID)
}
