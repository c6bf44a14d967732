package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitgpt/backend/internal/completion"
	"github.com/fitgpt/backend/internal/telemetry/metrics"
	"github.com/fitgpt/backend/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=generator_mocks_test.go -package=workouts_test

type completionClient interface {
	GenerateWorkout(ctx context.Context, prompt, userID string) (*completion.GeneratedWorkout, error)
}

type workoutsRepo interface {
	Get(ctx context.Context, id string) (*Workout, error)
	Exists(ctx context.Context, id string) (bool, error)
	CreateIfAbsent(ctx context.Context, workout Workout) (bool, error)
}

type profileWriter interface {
	SetLastMuscleGroups(ctx context.Context, id string, muscleGroups []string) error
}

type genLocker interface {
	Acquire(ctx context.Context, workoutID string) (bool, error)
	Release(ctx context.Context, workoutID string)
}

// ErrGenerationInFlight means another path (queue consumer vs login
// trigger) holds the day lock for this user right now.
var ErrGenerationInFlight = errors.New("workout generation already in flight")

// Generator is the single generate-or-reuse path shared by the queue
// consumer and the registration/login trigger.
type Generator struct {
	repo     workoutsRepo
	profiles profileWriter
	client   completionClient
	lock     genLocker
	metrics  *metrics.Manager
	nowFunc  func() time.Time
}

type NewGeneratorParams struct {
	Repo           workoutsRepo
	Profiles       profileWriter
	Client         completionClient
	Lock           genLocker
	MetricsManager *metrics.Manager
}

func NewGenerator(params NewGeneratorParams) *Generator {
	return &Generator{
		repo:     params.Repo,
		profiles: params.Profiles,
		client:   params.Client,
		lock:     params.Lock,
		metrics:  params.MetricsManager,
		nowFunc:  time.Now,
	}
}

// GenerateOrReuse returns the workout for (userID, conversationKey),
// generating and persisting it when absent. The existence check makes a
// second invocation for the same day perform zero completion calls; the
// conditional create keeps the at-most-one-per-day invariant even when two
// invocations race past the check.
func (g *Generator) GenerateOrReuse(
	ctx context.Context,
	userID, conversationKey, prompt string,
) (_ *Workout, created bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.generateOrReuse")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))
	span.SetAttributes(attribute.String("conversation.key", conversationKey))

	workoutID := WorkoutID(userID, conversationKey)

	exists, err := g.repo.Exists(ctx, workoutID)
	if err != nil {
		return nil, false, fmt.Errorf("check workout exists: %w", err)
	}
	if exists {
		g.metrics.CounterWorkoutsReused.Inc()
		log.Debugf("workout %s already exists, reusing", workoutID)
		existing, err := g.repo.Get(ctx, workoutID)
		if err != nil {
			return nil, false, fmt.Errorf("get existing workout: %w", err)
		}
		return existing, false, nil
	}

	locked, err := g.lock.Acquire(ctx, workoutID)
	if err != nil {
		// lock is an optimization against double completion spend,
		// not a correctness requirement
		log.Errorf("acquire generation lock for %s: %s", workoutID, err)
	} else if !locked {
		return nil, false, ErrGenerationInFlight
	}
	if locked {
		defer g.lock.Release(ctx, workoutID)
	}

	generated, err := g.client.GenerateWorkout(ctx, prompt, userID)
	if err != nil {
		g.metrics.CounterGenerationFailures.Inc()
		return nil, false, fmt.Errorf("generate workout: %w", err)
	}

	workout := Workout{
		ID:           workoutID,
		UserID:       userID,
		Workout:      generated.Workout,
		MuscleGroups: generated.MuscleGroups,
		CreatedAt:    g.nowFunc(),
	}

	created, err = g.repo.CreateIfAbsent(ctx, workout)
	if err != nil {
		g.metrics.CounterGenerationFailures.Inc()
		return nil, false, fmt.Errorf("persist workout: %w", err)
	}
	if !created {
		// lost the race to a concurrent generation, the other result won
		g.metrics.CounterWorkoutsReused.Inc()
		log.Warnf("workout %s created concurrently, dropping this generation", workoutID)
		existing, err := g.repo.Get(ctx, workoutID)
		if err != nil {
			return nil, false, fmt.Errorf("get concurrently created workout: %w", err)
		}
		return existing, false, nil
	}

	g.metrics.CounterWorkoutsGenerated.Inc()

	// source of truth for tomorrow's avoid-clause lives on the profile
	if err := g.profiles.SetLastMuscleGroups(ctx, userID, workout.MuscleGroups); err != nil {
		log.Errorf("set last muscle groups for user %s: %s", userID, err)
	}

	log.Infof("workout %s generated, muscle groups: %v", workoutID, workout.MuscleGroups)

	return &workout, true, nil
}
