package queue

import (
	"context"
	"errors"

	"github.com/fitgpt/backend/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var errUnexpectedNoRows = errors.New("unexpected error [no rows next]")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Enqueue adds one generation task. No dedup here: duplicate tasks for the
// same (user, day) are tolerated, the generator short-circuits them.
func (r *Repo) Enqueue(ctx context.Context, task Task) (_ *Task, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.queue.enqueue")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", task.UserID))

	if task.ID == "" {
		task.ID = uuid.NewString()
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workouts_queue (id, user_id, prompt, conversation_key)
			VALUES ($1, $2, $3, $4)
		RETURNING created_at;`,
		task.ID, task.UserID, task.Prompt, task.ConversationKey,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errUnexpectedNoRows
	}

	if err := rows.Scan(&task.CreatedAt); err != nil {
		return nil, err
	}

	return &task, nil
}

// Claim removes up to limit tasks from the queue and returns them. The
// delete-first shape means a task is consumed at most once and is gone even
// when its generation later fails: failed generations are not retried.
func (r *Repo) Claim(ctx context.Context, limit int) (_ []Task, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.queue.claim")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(
		ctx,
		`DELETE FROM workouts_queue
			WHERE id IN (
				SELECT id FROM workouts_queue
				ORDER BY created_at
				LIMIT $1
				FOR UPDATE SKIP LOCKED
			)
		RETURNING id, user_id, prompt, conversation_key, created_at;`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var tasks []Task
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Prompt, &t.ConversationKey, &t.CreatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	if tasks == nil {
		tasks = make([]Task, 0)
	}

	span.SetAttributes(attribute.Int("claimed", len(tasks)))
	return tasks, nil
}
