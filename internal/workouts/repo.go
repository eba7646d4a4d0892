package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/fittrack/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const sessionColumns = `
	id, user_id, plan_id, started_at, completed_at, completed, archived,
	total_sets, total_reps, total_weight, duration_minutes`

const setLogColumns = `
	id, user_id, plan_id, exercise_id, plan_exercise_id, session_id,
	set_number, reps, weight, completed, created_at, completed_at`

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

func (r *Repo) CreateSession(ctx context.Context, session *Session) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.createSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", session.ID))

	_, err = r.db.Exec(ctx, `
		INSERT INTO workout_session (id, user_id, plan_id, started_at)
		VALUES ($1, $2, $3, $4);`,
		session.ID, session.UserID, session.PlanID, session.StartedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *Repo) GetSession(ctx context.Context, sessionID string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", sessionID))

	var session Session
	err = r.db.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM workout_session WHERE id = $1;`,
		sessionID,
	).Scan(
		&session.ID, &session.UserID, &session.PlanID,
		&session.StartedAt, &session.CompletedAt,
		&session.Completed, &session.Archived,
		&session.TotalSets, &session.TotalReps, &session.TotalWeight,
		&session.DurationMinutes,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *Repo) SessionSets(ctx context.Context, sessionID string) (_ []SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sessionSets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT `+setLogColumns+`
		FROM set_log
		WHERE session_id = $1
		ORDER BY id;`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	return rows2SetLogs(rows)
}

// SaveSet inserts the set log, or updates it in place when one with the
// same (plan exercise, set number, session) key already exists.
func (r *Repo) SaveSet(ctx context.Context, set *SetLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.saveSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("session.id", set.SessionID),
		attribute.Int("set.number", set.SetNumber),
	)

	err = r.db.QueryRow(ctx, `
		INSERT INTO set_log (
			user_id, plan_id, exercise_id, plan_exercise_id, session_id,
			set_number, reps, weight, completed, completed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (plan_exercise_id, set_number, session_id) DO UPDATE SET
			reps = EXCLUDED.reps,
			weight = EXCLUDED.weight,
			completed = EXCLUDED.completed,
			completed_at = EXCLUDED.completed_at
		RETURNING id, created_at;`,
		set.UserID, set.PlanID, set.ExerciseID, set.PlanExerciseID, set.SessionID,
		set.SetNumber, set.Reps, set.Weight, set.Completed, set.CompletedAt,
	).Scan(&set.ID, &set.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert set log: %w", err)
	}
	return nil
}

// ReplaceSessionSets rewrites all set logs of the session from the given
// list, in one transaction.
func (r *Repo) ReplaceSessionSets(ctx context.Context, sessionID string, sets []SetLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.replaceSessionSets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", sessionID))

	return r.withTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM set_log WHERE session_id = $1;`, sessionID,
		); err != nil {
			return fmt.Errorf("delete session sets: %w", err)
		}
		for i := range sets {
			set := &sets[i]
			if err := tx.QueryRow(ctx, `
				INSERT INTO set_log (
					user_id, plan_id, exercise_id, plan_exercise_id, session_id,
					set_number, reps, weight, completed, completed_at
				)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
				RETURNING id, created_at;`,
				set.UserID, set.PlanID, set.ExerciseID, set.PlanExerciseID, set.SessionID,
				set.SetNumber, set.Reps, set.Weight, set.Completed, set.CompletedAt,
			).Scan(&set.ID, &set.CreatedAt); err != nil {
				return fmt.Errorf("insert set log %d: %w", set.SetNumber, err)
			}
		}
		return nil
	})
}

func (r *Repo) UpdateStats(ctx context.Context, sessionID string, stats SessionStats) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.updateStats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE workout_session
		SET
			total_sets = $1,
			total_reps = $2,
			total_weight = $3,
			duration_minutes = $4
		WHERE id = $5;`,
		stats.TotalSets, stats.TotalReps, stats.TotalWeight, stats.DurationMinutes,
		sessionID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// CompleteSession marks the session completed and swaps its exercise logs
// for the freshly aggregated ones. Completing again recomputes, it never
// duplicates log rows.
func (r *Repo) CompleteSession(ctx context.Context, session *Session, logs []ExerciseLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.completeSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", session.ID))

	return r.withTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE workout_session
			SET
				completed = TRUE,
				completed_at = $1,
				total_sets = $2,
				total_reps = $3,
				total_weight = $4,
				duration_minutes = $5
			WHERE id = $6;`,
			session.CompletedAt,
			session.TotalSets, session.TotalReps, session.TotalWeight,
			session.DurationMinutes,
			session.ID,
		)
		if err != nil {
			return fmt.Errorf("update session: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrSessionNotFound
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM exercise_log WHERE session_id = $1;`, session.ID,
		); err != nil {
			return fmt.Errorf("delete exercise logs: %w", err)
		}
		for i := range logs {
			exerciseLog := &logs[i]
			if err := tx.QueryRow(ctx, `
				INSERT INTO exercise_log (
					user_id, exercise_id, plan_id, session_id,
					sets, reps, weight, completed_at
				)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
				RETURNING id;`,
				exerciseLog.UserID, exerciseLog.ExerciseID, exerciseLog.PlanID,
				exerciseLog.SessionID, exerciseLog.Sets, exerciseLog.Reps,
				exerciseLog.Weight, exerciseLog.CompletedAt,
			).Scan(&exerciseLog.ID); err != nil {
				return fmt.Errorf("insert exercise log %s: %w", exerciseLog.ExerciseID, err)
			}
		}
		return nil
	})
}

func (r *Repo) AddExerciseLog(ctx context.Context, exerciseLog *ExerciseLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addExerciseLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(ctx, `
		INSERT INTO exercise_log (
			user_id, exercise_id, plan_id, session_id,
			sets, reps, weight, notes, completed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;`,
		exerciseLog.UserID, exerciseLog.ExerciseID, exerciseLog.PlanID,
		exerciseLog.SessionID, exerciseLog.Sets, exerciseLog.Reps,
		exerciseLog.Weight, exerciseLog.Notes, exerciseLog.CompletedAt,
	).Scan(&exerciseLog.ID)
	if err != nil {
		return fmt.Errorf("insert exercise log: %w", err)
	}
	return nil
}

// History returns the completed, non archived sessions of a user, newest
// first, along with the total count for paging.
func (r *Repo) History(ctx context.Context, userID int64, page, size int) (_ []Session, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM workout_session
		WHERE user_id = $1 AND completed AND NOT archived;`,
		userID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []Session{}, 0, nil
	}

	limit := size
	offset := (page - 1) * size
	if offset >= total {
		offset = total - size
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+sessionColumns+`
		FROM workout_session
		WHERE user_id = $1 AND completed AND NOT archived
		ORDER BY started_at DESC
		LIMIT $2 OFFSET $3;`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	sessions := []Session{}
	for rows.Next() {
		var session Session
		if err := rows.Scan(
			&session.ID, &session.UserID, &session.PlanID,
			&session.StartedAt, &session.CompletedAt,
			&session.Completed, &session.Archived,
			&session.TotalSets, &session.TotalReps, &session.TotalWeight,
			&session.DurationMinutes,
		); err != nil {
			return nil, 0, fmt.Errorf("rows scan: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return sessions, total, nil
}

func (r *Repo) ArchiveSession(ctx context.Context, sessionID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.archiveSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx,
		`UPDATE workout_session SET archived = TRUE WHERE id = $1;`, sessionID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func rows2SetLogs(rows pgx.Rows) ([]SetLog, error) {
	defer rows.Close()

	sets := []SetLog{}
	for rows.Next() {
		var set SetLog
		if err := rows.Scan(
			&set.ID, &set.UserID, &set.PlanID, &set.ExerciseID,
			&set.PlanExerciseID, &set.SessionID, &set.SetNumber,
			&set.Reps, &set.Weight, &set.Completed,
			&set.CreatedAt, &set.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sets = append(sets, set)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sets, nil
}
