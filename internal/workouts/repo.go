package workouts

import (
	"context"
	"errors"

	"github.com/fitgpt/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutNotFound = errors.New("workout not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, workout, muscle_groups, created_at
			FROM user_workouts
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

	workouts, err := r.rows2workouts(rows)
	if err != nil {
		return nil, err
	}

	if len(workouts) != 1 {
		return nil, ErrWorkoutNotFound
	}

	return &workouts[0], nil
}

func (r *Repo) Exists(ctx context.Context, id string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT 1 FROM user_workouts WHERE id = $1;`,
		id,
	)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return false, err
	}

	return rows.Next(), nil
}

// CreateIfAbsent inserts the workout unless one already exists for its key.
// Returns whether the row was actually created. This is the atomic
// conditional create that keeps the one-workout-per-user-per-day invariant
// even when two generation paths race.
func (r *Repo) CreateIfAbsent(ctx context.Context, workout Workout) (created bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.createIfAbsent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", workout.ID))

	muscleGroups := workout.MuscleGroups
	if muscleGroups == nil {
		muscleGroups = []string{}
	}

	tag, err := r.db.Exec(
		ctx,
		`INSERT INTO user_workouts (id, user_id, workout, muscle_groups, created_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO NOTHING;`,
		workout.ID, workout.UserID, workout.Workout, muscleGroups, workout.CreatedAt,
	)
	if err != nil {
		return false, err
	}

	created = tag.RowsAffected() == 1
	span.SetAttributes(attribute.Bool("created", created))
	return created, nil
}

func (r *Repo) rows2workouts(rows pgx.Rows) ([]Workout, error) {
	var workouts []Workout
	for rows.Next() {
		var w Workout
		if err := rows.Scan(&w.ID, &w.UserID, &w.Workout, &w.MuscleGroups, &w.CreatedAt); err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}

	if workouts == nil {
		workouts = make([]Workout, 0)
	}

	return workouts, nil
}
