package routines

import (
	"context"
	"errors"
	"fmt"

	"github.com/jcmateus/kalisfit/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrRoutineNotFound = errors.New("routine not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Query lists routine headers (no exercises attached). At most one
// predicate is pushed to the server: case-insensitive membership of
// levelFilter in the recommended levels; all other criteria are applied
// in memory by Match.
func (r *Repo) Query(ctx context.Context, levelFilter string) (_ []Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.query")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("filter.level", levelFilter))

	rows, err := r.db.Query(
		ctx,
		`SELECT
				id, name, description, image_url,
				recommended_levels, goals, locations
			FROM routine
			WHERE ($1::text = '' OR lower($1) = ANY(SELECT lower(unnest(recommended_levels))))
			ORDER BY name ASC;`,
		levelFilter,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return r.rows2routines(rows)
}

// GetHeader fetches one routine document without its exercise list.
func (r *Repo) GetHeader(ctx context.Context, id string) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.getHeader")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine.id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT
				id, name, description, image_url,
				recommended_levels, goals, locations
			FROM routine
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	routines, err := r.rows2routines(rows)
	if err != nil {
		return nil, err
	}
	if len(routines) != 1 {
		return nil, ErrRoutineNotFound
	}

	return &routines[0], nil
}

// ListExercises returns the routine's exercises ordered by their explicit
// ordering index. Unknown muscle group tags are dropped while mapping.
func (r *Repo) ListExercises(ctx context.Context, routineID string) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.listExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine.id", routineID))

	rows, err := r.db.Query(
		ctx,
		`SELECT
				id, name, description, image_url, duration_seconds, reps, sets,
				muscle_groups, equipment, locations, order_index
			FROM exercise
			WHERE routine_id = $1
			ORDER BY order_index ASC;`,
		routineID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	exercises := make([]Exercise, 0)
	for rows.Next() {
		var (
			e            Exercise
			muscleGroups []string
		)
		err := rows.Scan(
			&e.ID, &e.Name, &e.Description, &e.ImageURL, &e.DurationSeconds,
			&e.Reps, &e.Sets, &muscleGroups, &e.Equipment, &e.Locations,
			&e.OrderIndex,
		)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}

		e.MuscleGroups = ParseMuscleGroups(muscleGroups)
		if e.Equipment == nil {
			e.Equipment = []string{}
		}
		if e.Locations == nil {
			e.Locations = []string{}
		}

		exercises = append(exercises, e)
	}

	return exercises, nil
}

// Upsert writes the routine header and replaces its exercise list in a
// single transaction. Missing ids are generated.
func (r *Repo) Upsert(ctx context.Context, routine Routine) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if routine.ID == "" {
		routine.ID = uuid.NewString()
	}
	span.SetAttributes(attribute.String("routine.id", routine.ID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	_, err = tx.Exec(
		ctx,
		`INSERT INTO routine
				(id, name, description, image_url, recommended_levels, goals, locations)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				description = EXCLUDED.description,
				image_url = EXCLUDED.image_url,
				recommended_levels = EXCLUDED.recommended_levels,
				goals = EXCLUDED.goals,
				locations = EXCLUDED.locations;`,
		routine.ID, routine.Name, routine.Description, routine.ImageURL,
		routine.RecommendedLevels, routine.Goals, routine.Locations,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert routine: %w", err)
	}

	_, err = tx.Exec(ctx, `DELETE FROM exercise WHERE routine_id = $1;`, routine.ID)
	if err != nil {
		return nil, fmt.Errorf("delete exercises: %w", err)
	}

	for i := range routine.Exercises {
		e := &routine.Exercises[i]
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		muscleGroups := make([]string, 0, len(e.MuscleGroups))
		for _, mg := range e.MuscleGroups {
			muscleGroups = append(muscleGroups, string(mg))
		}
		_, err = tx.Exec(
			ctx,
			`INSERT INTO exercise
					(id, routine_id, name, description, image_url, duration_seconds,
					reps, sets, muscle_groups, equipment, locations, order_index)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`,
			e.ID, routine.ID, e.Name, e.Description, e.ImageURL, e.DurationSeconds,
			e.Reps, e.Sets, muscleGroups, e.Equipment, e.Locations, e.OrderIndex,
		)
		if err != nil {
			return nil, fmt.Errorf("insert exercise [%s]: %w", e.Name, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return &routine, nil
}

func (r *Repo) rows2routines(rows pgx.Rows) ([]Routine, error) {
	routines := make([]Routine, 0)
	for rows.Next() {
		var routine Routine
		err := rows.Scan(
			&routine.ID, &routine.Name, &routine.Description, &routine.ImageURL,
			&routine.RecommendedLevels, &routine.Goals, &routine.Locations,
		)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}

		if routine.RecommendedLevels == nil {
			routine.RecommendedLevels = []string{}
		}
		if routine.Goals == nil {
			routine.Goals = []string{}
		}
		if routine.Locations == nil {
			routine.Locations = []string{}
		}

		routines = append(routines, routine)
	}
	return routines, nil
}
