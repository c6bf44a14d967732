package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/fitgpt/backend/internal/telemetry/metrics"
	"github.com/fitgpt/backend/internal/telemetry/tracing"
	"github.com/fitgpt/backend/internal/users"
	"github.com/fitgpt/backend/internal/workouts"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=populator_mocks_test.go -package=queue_test

var nowFunc = time.Now

type usersByBlockLister interface {
	ListByTimeBlock(ctx context.Context, timeBlock int) ([]users.User, error)
}

type taskEnqueuer interface {
	Enqueue(ctx context.Context, task Task) (*Task, error)
}

// Populator enqueues one generation task per user, once per day, one cron
// entry per time block so the completion API load is spread out after
// midnight instead of arriving all at once.
type Populator struct {
	users      usersByBlockLister
	tasks      taskEnqueuer
	metrics    *metrics.Manager
	timeBlocks int
	cron       *cron.Cron
}

type NewPopulatorParams struct {
	Users          usersByBlockLister
	Tasks          taskEnqueuer
	MetricsManager *metrics.Manager
	TimeBlocks     int
}

func NewPopulator(params NewPopulatorParams) *Populator {
	return &Populator{
		users:      params.Users,
		tasks:      params.Tasks,
		metrics:    params.MetricsManager,
		timeBlocks: params.TimeBlocks,
		cron:       cron.New(),
	}
}

// Start registers one cron entry per time block and starts the scheduler.
func (p *Populator) Start(ctx context.Context) error {
	for block := 0; block < p.timeBlocks; block++ {
		block := block
		spec := blockCronSpec(block)
		if _, err := p.cron.AddFunc(spec, func() {
			p.PopulateBlock(ctx, block)
		}); err != nil {
			return fmt.Errorf("add cron entry for block %d: %w", block, err)
		}
	}

	p.cron.Start()
	log.Debugf("queue populator started with %d time blocks", p.timeBlocks)
	return nil
}

// Stop stops the scheduler and waits for a running entry to finish.
func (p *Populator) Stop() {
	stopCtx := p.cron.Stop()
	<-stopCtx.Done()
}

// PopulateBlock enqueues one task for every user in the given time block.
// Invoked by cron; exported so a run can also be forced by hand.
func (p *Populator) PopulateBlock(ctx context.Context, timeBlock int) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "queue.populateBlock")
	defer span.End()
	span.SetAttributes(attribute.Int("time_block", timeBlock))

	blockUsers, err := p.users.ListByTimeBlock(ctx, timeBlock)
	if err != nil {
		log.Errorf("populate block %d, list users: %s", timeBlock, err)
		return
	}

	log.Debugf("populating block %d: %d users", timeBlock, len(blockUsers))

	conversationKey := workouts.ConversationKey(nowFunc())
	for _, user := range blockUsers {
		prompt := workouts.BuildPrompt(user, user.LastMuscleGroups)
		if _, err := p.tasks.Enqueue(ctx, Task{
			UserID:          user.ID,
			Prompt:          prompt,
			ConversationKey: conversationKey,
		}); err != nil {
			log.Errorf("enqueue task for user %s: %s", user.ID, err)
			continue
		}
		p.metrics.CounterTasksEnqueued.Inc()
	}
}

// blockCronSpec spreads block runs three minutes apart starting at
// midnight, the same cadence the scheduled generation has always used.
func blockCronSpec(block int) string {
	totalMinutes := block * 3
	return fmt.Sprintf("%d %d * * *", totalMinutes%60, totalMinutes/60)
}
