package weights

import (
	"context"
	"fmt"
	"time"

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

func (r *Repo) Add(ctx context.Context, entry *WeightLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weights.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", entry.UserID))

	if entry.LoggedAt.IsZero() {
		entry.LoggedAt = time.Now()
	}
	err = r.db.QueryRow(ctx, `
		INSERT INTO weight_log (user_id, weight, logged_at, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id;`,
		entry.UserID, entry.Weight, entry.LoggedAt, entry.Notes,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("insert weight log: %w", err)
	}
	return nil
}

// LogWeight appends an entry with a note, used by the profile update flow
// to keep the weight history in sync with the denormalized current weight.
func (r *Repo) LogWeight(ctx context.Context, userID int64, weight float64, note string) error {
	entry := &WeightLog{
		UserID: userID,
		Weight: weight,
	}
	if note != "" {
		entry.Notes = &note
	}
	return r.Add(ctx, entry)
}

// List returns the full history of a user, oldest first, the order the
// stats and chart functions expect.
func (r *Repo) List(ctx context.Context, userID int64) (_ []WeightLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weights.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, weight, logged_at, notes
		FROM weight_log
		WHERE user_id = $1
		ORDER BY logged_at;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return rows2WeightLogs(rows)
}

// History returns one page of entries, newest first, with the total count.
func (r *Repo) History(ctx context.Context, userID int64, page, size int) (_ []WeightLog, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weights.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM weight_log WHERE user_id = $1;`, userID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []WeightLog{}, 0, nil
	}

	offset := (page - 1) * size
	if offset >= total {
		offset = total - size
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, weight, logged_at, notes
		FROM weight_log
		WHERE user_id = $1
		ORDER BY logged_at DESC
		LIMIT $2 OFFSET $3;`,
		userID, size, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	entries, err := rows2WeightLogs(rows)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func rows2WeightLogs(rows pgx.Rows) ([]WeightLog, error) {
	defer rows.Close()

	entries := []WeightLog{}
	for rows.Next() {
		var entry WeightLog
		if err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.Weight, &entry.LoggedAt, &entry.Notes,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
