package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jcmateus/kalisfit/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrProfileNotFound = errors.New("profile not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Create(ctx context.Context, profile UserProfile, passwordHash string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.uid", profile.UID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO user_profile
				(uid, name, email, password_hash, registered_at, level, goals,
				weight_kilos, height_centimeters, age, sex, weekly_frequency,
				training_locations, badges, completed_routines)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`,
		profile.UID, profile.Name, profile.Email, passwordHash, profile.RegisteredAt,
		profile.Level, profile.Goals,
		profile.WeightKilos, profile.HeightCentimeters, profile.Age, profile.Sex,
		profile.WeeklyFrequency, profile.TrainingLocations, profile.Badges,
		profile.CompletedRoutines,
	)
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}

	return nil
}

func (r *Repo) Get(ctx context.Context, uid string) (_ *UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.uid", uid))

	rows, err := r.db.Query(
		ctx,
		`SELECT
				uid, name, email, registered_at, level, goals,
				weight_kilos, height_centimeters, age, sex, weekly_frequency,
				training_locations, badges, completed_routines
			FROM user_profile
			WHERE uid = $1;`,
		uid,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	profiles, err := r.rows2profiles(rows)
	if err != nil {
		return nil, err
	}
	if len(profiles) != 1 {
		return nil, ErrProfileNotFound
	}

	return &profiles[0], nil
}

// GetWithCredentials returns the profile and stored password hash for the
// given email. Used at login only.
func (r *Repo) GetWithCredentials(ctx context.Context, email string) (_ *UserProfile, passwordHash string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getWithCredentials")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT
				uid, name, email, registered_at, level, goals,
				weight_kilos, height_centimeters, age, sex, weekly_frequency,
				training_locations, badges, completed_routines, password_hash
			FROM user_profile
			WHERE email = $1;`,
		email,
	)
	if err != nil {
		return nil, "", err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, "", err
	}

	if !rows.Next() {
		return nil, "", ErrProfileNotFound
	}

	profile, hash, err := scanProfile(rows, true)
	if err != nil {
		return nil, "", fmt.Errorf("scan profile: %w", err)
	}

	return profile, hash, nil
}

func (r *Repo) Update(ctx context.Context, uid string, update ProfileUpdate) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.uid", uid))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE user_profile SET
				name = $1, level = $2, goals = $3, weight_kilos = $4,
				height_centimeters = $5, age = $6, sex = $7,
				weekly_frequency = $8, training_locations = $9
			WHERE uid = $10;`,
		update.Name, update.Level, update.Goals, update.WeightKilos,
		update.HeightCentimeters, update.Age, update.Sex,
		update.WeeklyFrequency, update.TrainingLocations,
		uid,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}

	return nil
}

// IncrementCompletedRoutines bumps the completed-routine counter and
// returns the new count.
func (r *Repo) IncrementCompletedRoutines(ctx context.Context, uid string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.incrementCompletedRoutines")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.uid", uid))

	rows, err := r.db.Query(
		ctx,
		`UPDATE user_profile SET completed_routines = completed_routines + 1
			WHERE uid = $1
			RETURNING completed_routines;`,
		uid,
	)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return 0, err
	}

	if !rows.Next() {
		return 0, ErrProfileNotFound
	}

	var count int
	if err := rows.Scan(&count); err != nil {
		return 0, fmt.Errorf("rows scan: %w", err)
	}

	return count, nil
}

// AddBadge appends a badge unless the user already has it.
func (r *Repo) AddBadge(ctx context.Context, uid, badge string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.addBadge")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.uid", uid))
	span.SetAttributes(attribute.String("badge", badge))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE user_profile SET badges = array_append(badges, $1)
			WHERE uid = $2 AND NOT ($1 = ANY(badges));`,
		badge, uid,
	)
	if err != nil {
		return err
	}

	// zero rows affected: either unknown user or badge already awarded
	_ = tag

	return nil
}

func (r *Repo) rows2profiles(rows pgx.Rows) ([]UserProfile, error) {
	var profiles []UserProfile
	for rows.Next() {
		profile, _, err := scanProfile(rows, false)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, *profile)
	}

	if profiles == nil {
		profiles = make([]UserProfile, 0)
	}

	return profiles, nil
}

func scanProfile(rows pgx.Rows, withPasswordHash bool) (*UserProfile, string, error) {
	var (
		p            UserProfile
		registeredAt time.Time
		passwordHash string
	)

	dest := []any{
		&p.UID, &p.Name, &p.Email, &registeredAt, &p.Level, &p.Goals,
		&p.WeightKilos, &p.HeightCentimeters, &p.Age, &p.Sex, &p.WeeklyFrequency,
		&p.TrainingLocations, &p.Badges, &p.CompletedRoutines,
	}
	if withPasswordHash {
		dest = append(dest, &passwordHash)
	}

	if err := rows.Scan(dest...); err != nil {
		return nil, "", err
	}

	p.RegisteredAt = registeredAt
	if p.Goals == nil {
		p.Goals = []string{}
	}
	if p.TrainingLocations == nil {
		p.TrainingLocations = []string{}
	}
	if p.Badges == nil {
		p.Badges = []string{}
	}

	return &p, passwordHash, nil
}
