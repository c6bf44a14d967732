package queue

import (
	"context"
	"errors"
	"time"

	"github.com/fitgpt/backend/internal/db"
	"github.com/fitgpt/backend/internal/telemetry/metrics"
	"github.com/fitgpt/backend/internal/telemetry/tracing"
	"github.com/fitgpt/backend/internal/workouts"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=consumer_mocks_test.go -package=queue_test

// notifications channel populated by the workouts_queue table trigger
const queueTasksChannel = "queue_tasks"

type taskClaimer interface {
	Claim(ctx context.Context, limit int) ([]Task, error)
}

type workoutGenerator interface {
	GenerateOrReuse(ctx context.Context, userID, conversationKey, prompt string) (*workouts.Workout, bool, error)
}

// Consumer drains the workouts queue. It polls on an interval and is woken
// early by a Postgres notification whenever a task is enqueued. A claimed
// task is gone from the queue whether or not its generation succeeds, so a
// failed generation means no workout for that user that day.
type Consumer struct {
	pool      *pgxpool.Pool
	tasks     taskClaimer
	generator workoutGenerator
	metrics   *metrics.Manager

	pollInterval time.Duration
	batchSize    int
}

type NewConsumerParams struct {
	Pool           *pgxpool.Pool
	Tasks          taskClaimer
	Generator      workoutGenerator
	MetricsManager *metrics.Manager
	PollInterval   time.Duration
	BatchSize      int
}

func NewConsumer(params NewConsumerParams) *Consumer {
	return &Consumer{
		pool:         params.Pool,
		tasks:        params.Tasks,
		generator:    params.Generator,
		metrics:      params.MetricsManager,
		pollInterval: params.PollInterval,
		batchSize:    params.BatchSize,
	}
}

// Run blocks until ctx is done.
func (c *Consumer) Run(ctx context.Context) {
	wake := make(chan struct{}, 1)

	go db.Listen(ctx, c.pool, queueTasksChannel, func(string) {
		select {
		case wake <- struct{}{}:
		default:
		}
	})

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		c.DrainOnce(ctx)

		select {
		case <-ctx.Done():
			return
		case <-wake:
		case <-ticker.C:
		}
	}
}

// DrainOnce claims and processes tasks until the queue is empty.
func (c *Consumer) DrainOnce(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		tasks, err := c.tasks.Claim(ctx, c.batchSize)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				log.Errorf("claim queue tasks: %s", err)
			}
			return
		}
		if len(tasks) == 0 {
			return
		}

		for _, task := range tasks {
			c.metrics.CounterTasksConsumed.Inc()
			c.processTask(ctx, task)
		}
	}
}

func (c *Consumer) processTask(ctx context.Context, task Task) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "queue.processTask")
	defer span.End()
	span.SetAttributes(attribute.String("task.id", task.ID))
	span.SetAttributes(attribute.String("user.id", task.UserID))

	_, created, err := c.generator.GenerateOrReuse(ctx, task.UserID, task.ConversationKey, task.Prompt)
	switch {
	case errors.Is(err, workouts.ErrGenerationInFlight):
		log.Debugf("task %s: generation for user %s already in flight", task.ID, task.UserID)
	case err != nil:
		// the task is already deleted: no retry, the user simply gets
		// no workout today
		log.Errorf("task %s: generate workout for user %s: %s", task.ID, task.UserID, err)
	case created:
		log.Debugf("task %s: workout generated for user %s", task.ID, task.UserID)
	default:
		log.Debugf("task %s: workout for user %s already exists", task.ID, task.UserID)
	}
}
