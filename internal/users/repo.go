package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitgpt/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrUserNotFound = errors.New("user not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, id string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT
			id, gender, age_range, height, weight, fitness_level,
			fitness_goals, training_spot, time_block, last_muscle_groups,
			last_login, created_at
		FROM users
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

	users, err := r.rows2users(rows)
	if err != nil {
		return nil, err
	}

	if len(users) != 1 {
		return nil, ErrUserNotFound
	}

	return &users[0], nil
}

// ListByTimeBlock returns all users whose assigned time block matches.
func (r *Repo) ListByTimeBlock(ctx context.Context, timeBlock int) (_ []User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.listByTimeBlock")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("time_block", timeBlock))

	rows, err := r.db.Query(
		ctx,
		`SELECT
			id, gender, age_range, height, weight, fitness_level,
			fitness_goals, training_spot, time_block, last_muscle_groups,
			last_login, created_at
		FROM users
		WHERE time_block = $1
		ORDER BY created_at;`,
		timeBlock,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2users(rows)
}

// CountAssigned returns the number of users that already have a time block.
func (r *Repo) CountAssigned(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.countAssigned")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT COUNT(*) FROM users WHERE time_block >= 0;`)
	if err != nil {
		return -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return -1, err
	}

	if rows.Next() {
		var count int
		if err := rows.Scan(&count); err == nil {
			return count, nil
		}
	}

	return -1, errors.New("unexpected error, failed to get users count")
}

func (r *Repo) SetTimeBlock(ctx context.Context, id string, timeBlock int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.setTimeBlock")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", id))
	span.SetAttributes(attribute.Int("time_block", timeBlock))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE users SET time_block = $1 WHERE id = $2;`,
		timeBlock, id,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// SetLastMuscleGroups writes the muscle groups of the latest generated
// workout back onto the profile, for the next day's prompt.
func (r *Repo) SetLastMuscleGroups(ctx context.Context, id string, muscleGroups []string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.setLastMuscleGroups")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", id))

	if muscleGroups == nil {
		muscleGroups = []string{}
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE users SET last_muscle_groups = $1 WHERE id = $2;`,
		muscleGroups, id,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *Repo) rows2users(rows pgx.Rows) ([]User, error) {
	var users []User
	for rows.Next() {
		var u User
		var lastLogin *time.Time
		if err := rows.Scan(
			&u.ID, &u.Gender, &u.AgeRange, &u.Height, &u.Weight, &u.FitnessLevel,
			&u.FitnessGoals, &u.TrainingSpot, &u.TimeBlock, &u.LastMuscleGroups,
			&lastLogin, &u.CreatedAt,
		); err != nil {
			return nil, err
		}
		u.LastLogin = lastLogin
		users = append(users, u)
	}

	if users == nil {
		users = make([]User, 0)
	}

	return users, nil
}
