package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/fittrack/fittrack/internal/telemetry/tracing"
	"github.com/fittrack/fittrack/pkg"

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

func (r *Repo) Get(ctx context.Context, id int64) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("id", id))

	return r.scanOne(r.db.QueryRow(ctx, `
		SELECT id, subject, email, name, current_weight, goal_weight, weekly_workouts, created_at, last_seen_at
		FROM users
		WHERE id = $1;`,
		id,
	))
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.scanOne(r.db.QueryRow(ctx, `
		SELECT id, subject, email, name, current_weight, goal_weight, weekly_workouts, created_at, last_seen_at
		FROM users
		WHERE email = $1;`,
		email,
	))
}

// FindOrCreate looks the user up by email and creates the row on first login.
func (r *Repo) FindOrCreate(ctx context.Context, subject, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.findOrCreate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := r.GetByEmail(ctx, email)
	if err == nil {
		if _, err := r.db.Exec(ctx,
			`UPDATE users SET last_seen_at = NOW() WHERE id = $1;`, user.ID,
		); err != nil {
			return nil, fmt.Errorf("touch last seen: %w", err)
		}
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	user, err = r.scanOne(r.db.QueryRow(ctx, `
		INSERT INTO users (subject, email)
		VALUES ($1, $2)
		RETURNING id, subject, email, name, current_weight, goal_weight, weekly_workouts, created_at, last_seen_at;`,
		subject, email,
	))
	if err != nil && pkg.IsUniqueViolationError(err) {
		// two callbacks for the same first login raced, the other one won
		return r.GetByEmail(ctx, email)
	}
	return user, err
}

func (r *Repo) SetName(ctx context.Context, userID int64, name string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.setName")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.exec(ctx, `UPDATE users SET name = $1 WHERE id = $2;`, name, userID)
}

func (r *Repo) SetCurrentWeight(ctx context.Context, userID int64, weight float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.setCurrentWeight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.exec(ctx, `UPDATE users SET current_weight = $1 WHERE id = $2;`, weight, userID)
}

func (r *Repo) SetGoalWeight(ctx context.Context, userID int64, weight float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.setGoalWeight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.exec(ctx, `UPDATE users SET goal_weight = $1 WHERE id = $2;`, weight, userID)
}

func (r *Repo) UpdateProfile(ctx context.Context, userID int64, update ProfileUpdate) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updateProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.exec(ctx, `
		UPDATE users
		SET name = $1, current_weight = $2, goal_weight = $3, weekly_workouts = $4
		WHERE id = $5;`,
		update.Name, update.CurrentWeight, update.GoalWeight, update.WeeklyWorkouts, userID,
	)
}

func (r *Repo) exec(ctx context.Context, sql string, args ...any) error {
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *Repo) scanOne(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.Subject, &u.Email, &u.Name,
		&u.CurrentWeight, &u.GoalWeight, &u.WeeklyWorkouts,
		&u.CreatedAt, &u.LastSeenAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
