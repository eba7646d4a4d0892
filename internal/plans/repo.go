package plans

import (
	"context"
	"errors"
	"fmt"

	"github.com/fittrack/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) withTx(ctx context.Context, fn func(tx pgx.Tx) error) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				err = errors.Join(err, rollbackErr)
			}
			return
		}
		err = tx.Commit(ctx)
	}()
	return fn(tx)
}

func (r *Repo) Create(ctx context.Context, userID int64, params CreatePlanParams) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	plan := &Plan{
		UserID:    userID,
		Name:      params.Name,
		Exercises: []Slot{},
	}
	err = r.withTx(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, `
			INSERT INTO workout_plan (user_id, name)
			VALUES ($1, $2)
			RETURNING id, created_at;`,
			userID, params.Name,
		).Scan(&plan.ID, &plan.CreatedAt); err != nil {
			return fmt.Errorf("insert plan: %w", err)
		}

		for position, slotParams := range params.Exercises {
			slot := Slot{
				PlanID:     plan.ID,
				ExerciseID: slotParams.ExerciseID,
				Sets:       slotParams.Sets,
				Reps:       slotParams.Reps,
				Weight:     slotParams.Weight,
				Position:   position,
			}
			if slot.Sets <= 0 {
				slot.Sets = DefaultSets
			}
			if slot.Reps <= 0 {
				slot.Reps = DefaultReps
			}
			if err := tx.QueryRow(ctx, `
				INSERT INTO workout_plan_exercise (plan_id, exercise_id, sets, reps, weight, position)
				VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING id;`,
				plan.ID, slot.ExerciseID, slot.Sets, slot.Reps, slot.Weight, slot.Position,
			).Scan(&slot.ID); err != nil {
				return fmt.Errorf("insert plan exercise %s: %w", slot.ExerciseID, err)
			}
			plan.Exercises = append(plan.Exercises, slot)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

func (r *Repo) Get(ctx context.Context, planID int64) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("plan.id", planID))

	var plan Plan
	err = r.db.QueryRow(ctx, `
		SELECT id, user_id, name, archived, created_at
		FROM workout_plan
		WHERE id = $1;`,
		planID,
	).Scan(&plan.ID, &plan.UserID, &plan.Name, &plan.Archived, &plan.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}

	if plan.Exercises, err = r.planSlots(ctx, planID); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *Repo) planSlots(ctx context.Context, planID int64) ([]Slot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, plan_id, exercise_id, sets, reps, weight, position
		FROM workout_plan_exercise
		WHERE plan_id = $1
		ORDER BY position;`,
		planID,
	)
	if err != nil {
		return nil, err
	}
	return rows2Slots(rows)
}

// List returns the plans of a user, newest first. A nil archived filter
// returns all of them.
func (r *Repo) List(ctx context.Context, userID int64, archived *bool) (_ []Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := `
		SELECT id, user_id, name, archived, created_at
		FROM workout_plan
		WHERE user_id = $1`
	args := []any{userID}
	if archived != nil {
		query += ` AND archived = $2`
		args = append(args, *archived)
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []Plan
	for rows.Next() {
		var plan Plan
		if err := rows.Scan(
			&plan.ID, &plan.UserID, &plan.Name, &plan.Archived, &plan.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range plans {
		if plans[i].Exercises, err = r.planSlots(ctx, plans[i].ID); err != nil {
			return nil, err
		}
	}
	return plans, nil
}

func (r *Repo) Rename(ctx context.Context, planID int64, name string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.rename")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx,
		`UPDATE workout_plan SET name = $1 WHERE id = $2;`, name, planID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}
	return nil
}

// AddSlot appends the exercise at the end of the plan. An exercise can be
// in a plan only once.
func (r *Repo) AddSlot(ctx context.Context, planID int64, exerciseID string) (_ *Slot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.addSlot")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int64("plan.id", planID),
		attribute.String("exercise.id", exerciseID),
	)

	slot := &Slot{
		PlanID:     planID,
		ExerciseID: exerciseID,
		Sets:       DefaultSets,
		Reps:       DefaultReps,
		Weight:     DefaultWeight,
	}
	err = r.withTx(ctx, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM workout_plan_exercise
				WHERE plan_id = $1 AND exercise_id = $2
			);`,
			planID, exerciseID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check duplicate: %w", err)
		}
		if exists {
			return ErrDuplicateExercise
		}

		if err := tx.QueryRow(ctx, `
			SELECT COALESCE(MAX(position), -1) + 1
			FROM workout_plan_exercise
			WHERE plan_id = $1;`,
			planID,
		).Scan(&slot.Position); err != nil {
			return fmt.Errorf("next position: %w", err)
		}

		if err := tx.QueryRow(ctx, `
			INSERT INTO workout_plan_exercise (plan_id, exercise_id, sets, reps, weight, position)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
			planID, exerciseID, slot.Sets, slot.Reps, slot.Weight, slot.Position,
		).Scan(&slot.ID); err != nil {
			return fmt.Errorf("insert slot: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return slot, nil
}

// RemoveSlot deletes the slot and renumbers the remaining ones, keeping
// positions dense and zero based.
func (r *Repo) RemoveSlot(ctx context.Context, planID, slotID int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.removeSlot")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.withTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`DELETE FROM workout_plan_exercise WHERE id = $1 AND plan_id = $2;`,
			slotID, planID,
		)
		if err != nil {
			return fmt.Errorf("delete slot: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrSlotNotFound
		}

		if _, err := tx.Exec(ctx, `
			UPDATE workout_plan_exercise wpe
			SET position = seq.rn - 1
			FROM (
				SELECT id, ROW_NUMBER() OVER (ORDER BY position) AS rn
				FROM workout_plan_exercise
				WHERE plan_id = $1
			) seq
			WHERE wpe.id = seq.id AND wpe.position <> seq.rn - 1;`,
			planID,
		); err != nil {
			return fmt.Errorf("renumber slots: %w", err)
		}
		return nil
	})
}

// ReorderSlots moves each listed exercise's slot to its index in the list.
// Exercises missing from the list, or listed but not in the plan, are left
// where they are. No completeness check against the full slot set.
func (r *Repo) ReorderSlots(ctx context.Context, planID int64, orderedExerciseIDs []string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.reorderSlots")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("plan.id", planID))

	return r.withTx(ctx, func(tx pgx.Tx) error {
		for position, exerciseID := range orderedExerciseIDs {
			if _, err := tx.Exec(ctx, `
				UPDATE workout_plan_exercise
				SET position = $1
				WHERE plan_id = $2 AND exercise_id = $3;`,
				position, planID, exerciseID,
			); err != nil {
				return fmt.Errorf("reorder slot %s: %w", exerciseID, err)
			}
		}
		return nil
	})
}

func (r *Repo) UpdateSlot(ctx context.Context, planID, slotID int64, params UpdateSlotParams) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.updateSlot")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE workout_plan_exercise
		SET
			sets = COALESCE($1, sets),
			reps = COALESCE($2, reps),
			weight = COALESCE($3, weight)
		WHERE id = $4 AND plan_id = $5;`,
		params.Sets, params.Reps, params.Weight, slotID, planID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSlotNotFound
	}
	return nil
}

// IncrementSets adds one planned set to the slot.
func (r *Repo) IncrementSets(ctx context.Context, planID, slotID int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.incrementSets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE workout_plan_exercise
		SET sets = sets + 1
		WHERE id = $1 AND plan_id = $2;`,
		slotID, planID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSlotNotFound
	}
	return nil
}

func (r *Repo) Archive(ctx context.Context, planID int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.archive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx,
		`UPDATE workout_plan SET archived = TRUE WHERE id = $1;`, planID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func rows2Slots(rows pgx.Rows) ([]Slot, error) {
	defer rows.Close()

	slots := []Slot{}
	for rows.Next() {
		var slot Slot
		if err := rows.Scan(
			&slot.ID, &slot.PlanID, &slot.ExerciseID,
			&slot.Sets, &slot.Reps, &slot.Weight, &slot.Position,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return slots, nil
}
