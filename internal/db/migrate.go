package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the schema if not present. Statements are idempotent, so
// running this on every service start is safe.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			subject TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			name TEXT,
			current_weight DOUBLE PRECISION,
			goal_weight DOUBLE PRECISION,
			weekly_workouts INT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			last_seen_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS exercise (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			force TEXT,
			level TEXT,
			mechanic TEXT,
			equipment TEXT,
			category TEXT,
			instructions JSONB NOT NULL DEFAULT '[]',
			images JSONB NOT NULL DEFAULT '[]'
		)`,
		`CREATE TABLE IF NOT EXISTS exercise_muscle (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS exercise_muscle_link (
			exercise_id TEXT NOT NULL REFERENCES exercise (id) ON DELETE CASCADE,
			muscle_id BIGINT NOT NULL REFERENCES exercise_muscle (id) ON DELETE CASCADE,
			is_primary BOOLEAN NOT NULL,
			PRIMARY KEY (exercise_id, muscle_id, is_primary)
		)`,
		`CREATE TABLE IF NOT EXISTS workout_plan (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			archived BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS workout_plan_exercise (
			id BIGSERIAL PRIMARY KEY,
			plan_id BIGINT NOT NULL REFERENCES workout_plan (id) ON DELETE CASCADE,
			exercise_id TEXT NOT NULL REFERENCES exercise (id),
			sets INT NOT NULL DEFAULT 3,
			reps INT NOT NULL DEFAULT 10,
			weight DOUBLE PRECISION NOT NULL DEFAULT 0,
			position INT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS workout_session (
			id TEXT PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			plan_id BIGINT REFERENCES workout_plan (id) ON DELETE SET NULL,
			started_at TIMESTAMPTZ NOT NULL,
			completed_at TIMESTAMPTZ,
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			archived BOOLEAN NOT NULL DEFAULT FALSE,
			total_sets INT NOT NULL DEFAULT 0,
			total_reps INT NOT NULL DEFAULT 0,
			total_weight DOUBLE PRECISION NOT NULL DEFAULT 0,
			duration_minutes INT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS set_log (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			plan_id BIGINT REFERENCES workout_plan (id) ON DELETE SET NULL,
			exercise_id TEXT NOT NULL REFERENCES exercise (id),
			plan_exercise_id BIGINT REFERENCES workout_plan_exercise (id) ON DELETE SET NULL,
			session_id TEXT NOT NULL REFERENCES workout_session (id) ON DELETE CASCADE,
			set_number INT NOT NULL,
			reps INT NOT NULL,
			weight DOUBLE PRECISION NOT NULL DEFAULT 0,
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			completed_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS exercise_log (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			exercise_id TEXT NOT NULL REFERENCES exercise (id),
			plan_id BIGINT REFERENCES workout_plan (id) ON DELETE SET NULL,
			session_id TEXT REFERENCES workout_session (id) ON DELETE CASCADE,
			completed BOOLEAN NOT NULL DEFAULT TRUE,
			sets INT NOT NULL,
			reps DOUBLE PRECISION NOT NULL,
			weight DOUBLE PRECISION NOT NULL,
			duration_minutes INT,
			notes TEXT,
			completed_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS weight_log (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			weight DOUBLE PRECISION NOT NULL,
			logged_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			notes TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_workout_plan_user ON workout_plan (user_id, archived)`,
		`CREATE INDEX IF NOT EXISTS idx_plan_exercise_plan ON workout_plan_exercise (plan_id, position)`,
		`CREATE INDEX IF NOT EXISTS idx_workout_session_user ON workout_session (user_id, completed, archived)`,
		`CREATE INDEX IF NOT EXISTS idx_set_log_session ON set_log (session_id, completed)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_set_log_natural_key
			ON set_log (plan_exercise_id, set_number, session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_weight_log_user ON weight_log (user_id, logged_at)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
