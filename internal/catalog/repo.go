package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

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

const exerciseSelect = `
	SELECT
		e.id, e.name, e.force, e.level, e.mechanic, e.equipment, e.category,
		e.instructions, e.images,
		COALESCE(array_agg(DISTINCT m.name) FILTER (WHERE l.is_primary), '{}') AS primary_muscles,
		COALESCE(array_agg(DISTINCT m.name) FILTER (WHERE NOT l.is_primary), '{}') AS secondary_muscles
	FROM exercise e
	LEFT JOIN exercise_muscle_link l ON l.exercise_id = e.id
	LEFT JOIN exercise_muscle m ON m.id = l.muscle_id`

func (r *Repo) Get(ctx context.Context, id string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", id))

	rows, err := r.db.Query(ctx, exerciseSelect+`
		WHERE e.id = $1
		GROUP BY e.id;`,
		id,
	)
	if err != nil {
		return nil, err
	}

	exercises, err := rows2Exercises(rows)
	if err != nil {
		return nil, err
	}
	if len(exercises) == 0 {
		return nil, ErrExerciseNotFound
	}
	return &exercises[0], nil
}

// Search pages through the catalog. The term matches the name case
// insensitively, the other params are exact filters.
func (r *Repo) Search(ctx context.Context, params SearchParams) (_ []Exercise, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.search")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	where, args := searchFilter(params)

	if err := r.db.QueryRow(
		ctx, `SELECT COUNT(*) FROM exercise e`+where+`;`, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count exercises: %w", err)
	}
	if total == 0 {
		return []Exercise{}, 0, nil
	}

	limit := params.Size
	offset := (params.Page - 1) * params.Size
	if offset >= total {
		offset = total - limit
	}
	if offset < 0 {
		offset = 0
	}

	args = append(args, limit, offset)
	rows, err := r.db.Query(ctx, exerciseSelect+where+fmt.Sprintf(`
		GROUP BY e.id
		ORDER BY e.name
		LIMIT $%d OFFSET $%d;`, len(args)-1, len(args)),
		args...,
	)
	if err != nil {
		return nil, 0, err
	}

	exercises, err := rows2Exercises(rows)
	if err != nil {
		return nil, 0, err
	}
	return exercises, total, nil
}

func searchFilter(params SearchParams) (string, []any) {
	var conditions []string
	var args []any
	addCondition := func(cond string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if params.Term != "" {
		addCondition("e.name ILIKE $%d", "%"+params.Term+"%")
	}
	if params.Level != "" {
		addCondition("e.level = $%d", params.Level)
	}
	if params.Mechanic != "" {
		addCondition("e.mechanic = $%d", params.Mechanic)
	}
	if params.Equipment != "" {
		addCondition("e.equipment = $%d", params.Equipment)
	}
	if params.Category != "" {
		addCondition("e.category = $%d", params.Category)
	}
	if params.Muscle != "" {
		addCondition(`EXISTS (
			SELECT 1 FROM exercise_muscle_link ml
			JOIN exercise_muscle em ON em.id = ml.muscle_id
			WHERE ml.exercise_id = e.id AND em.name = $%d
		)`, params.Muscle)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// DistinctFilters returns the filter values present in the catalog, for
// the search form dropdowns.
func (r *Repo) DistinctFilters(ctx context.Context) (_ *Filters, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.distinctFilters")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	filters := &Filters{}
	for column, dest := range map[string]*[]string{
		"level":     &filters.Levels,
		"mechanic":  &filters.Mechanics,
		"equipment": &filters.Equipment,
		"category":  &filters.Categories,
	} {
		values, err := r.distinctValues(ctx, column)
		if err != nil {
			return nil, fmt.Errorf("distinct %s: %w", column, err)
		}
		*dest = values
	}

	muscles, err := r.muscleNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("distinct muscles: %w", err)
	}
	filters.Muscles = muscles
	return filters, nil
}

func (r *Repo) muscleNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT name FROM exercise_muscle ORDER BY name;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *Repo) distinctValues(ctx context.Context, column string) ([]string, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT DISTINCT %s FROM exercise
		WHERE %s IS NOT NULL AND %s <> ''
		ORDER BY %s;`, column, column, column, column),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// Add inserts an exercise with its muscle links. Used by the catalog seeder,
// existing exercises are replaced.
func (r *Repo) Add(ctx context.Context, exercise Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

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

	if _, err = tx.Exec(ctx, `
		INSERT INTO exercise (id, name, force, level, mechanic, equipment, category, instructions, images)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			force = EXCLUDED.force,
			level = EXCLUDED.level,
			mechanic = EXCLUDED.mechanic,
			equipment = EXCLUDED.equipment,
			category = EXCLUDED.category,
			instructions = EXCLUDED.instructions,
			images = EXCLUDED.images;`,
		exercise.ID, exercise.Name, exercise.Force, exercise.Level,
		exercise.Mechanic, exercise.Equipment, exercise.Category,
		exercise.Instructions, exercise.Images,
	); err != nil {
		return fmt.Errorf("insert exercise: %w", err)
	}

	if _, err = tx.Exec(ctx,
		`DELETE FROM exercise_muscle_link WHERE exercise_id = $1;`, exercise.ID,
	); err != nil {
		return fmt.Errorf("clear muscle links: %w", err)
	}

	if err = linkMuscles(ctx, tx, exercise.ID, exercise.PrimaryMuscles, true); err != nil {
		return err
	}
	if err = linkMuscles(ctx, tx, exercise.ID, exercise.SecondaryMuscles, false); err != nil {
		return err
	}
	return nil
}

func linkMuscles(ctx context.Context, tx pgx.Tx, exerciseID string, muscles []string, isPrimary bool) error {
	for _, muscle := range muscles {
		var muscleID int64
		if err := tx.QueryRow(ctx, `
			INSERT INTO exercise_muscle (name)
			VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id;`,
			muscle,
		).Scan(&muscleID); err != nil {
			return fmt.Errorf("upsert muscle %q: %w", muscle, err)
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO exercise_muscle_link (exercise_id, muscle_id, is_primary)
			VALUES ($1, $2, $3)
			ON CONFLICT DO NOTHING;`,
			exerciseID, muscleID, isPrimary,
		); err != nil {
			return fmt.Errorf("link muscle %q: %w", muscle, err)
		}
	}
	return nil
}

func rows2Exercises(rows pgx.Rows) ([]Exercise, error) {
	defer rows.Close()

	var exercises []Exercise
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Force, &e.Level, &e.Mechanic, &e.Equipment,
			&e.Category, &e.Instructions, &e.Images,
			&e.PrimaryMuscles, &e.SecondaryMuscles,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return exercises, nil
}
