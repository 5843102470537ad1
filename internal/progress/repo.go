package progress

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jcmateus/kalisfit/internal/telemetry/tracing"

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

// Add appends one record to the user's progress collection. Records are
// never updated or merged afterwards.
func (r *Repo) Add(ctx context.Context, userUID string, record Record) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.uid", userUID))

	exercisesJson, err := json.Marshal(record.Exercises)
	if err != nil {
		return fmt.Errorf("marshal exercises: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO progress_record
				(id, user_uid, date, level, goals, exercises, total_seconds)
			VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		record.ID, userUID, record.Date, record.Level, record.Goals,
		exercisesJson, record.TotalSeconds,
	)
	if err != nil {
		return fmt.Errorf("insert progress record: %w", err)
	}

	return nil
}

// List returns the user's full progress history, newest first.
func (r *Repo) List(ctx context.Context, userUID string) (_ []Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.uid", userUID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, date, level, goals, exercises, total_seconds
			FROM progress_record
			WHERE user_uid = $1
			ORDER BY date DESC;`,
		userUID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	records := make([]Record, 0)
	for rows.Next() {
		var (
			record        Record
			exercisesJson []byte
		)
		err := rows.Scan(
			&record.ID, &record.Date, &record.Level, &record.Goals,
			&exercisesJson, &record.TotalSeconds,
		)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}

		if err := json.Unmarshal(exercisesJson, &record.Exercises); err != nil {
			return nil, fmt.Errorf("unmarshal exercises: %w", err)
		}
		if record.Goals == nil {
			record.Goals = []string{}
		}
		if record.Exercises == nil {
			record.Exercises = []ExerciseDone{}
		}

		records = append(records, record)
	}

	return records, nil
}
