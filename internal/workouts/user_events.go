package workouts

import (
	"context"
	"errors"
	"time"

	"github.com/fitgpt/backend/internal/telemetry/metrics"
	"github.com/fitgpt/backend/internal/telemetry/tracing"
	"github.com/fitgpt/backend/internal/users"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=user_events_mocks_test.go -package=workouts_test

type profileReader interface {
	Get(ctx context.Context, id string) (*users.User, error)
}

type blockAssigner interface {
	Assign(ctx context.Context, userID string) (int, error)
}

type dayWorkoutGenerator interface {
	GenerateOrReuse(ctx context.Context, userID, conversationKey, prompt string) (*Workout, bool, error)
}

// UserEventsHandler is the registration/login trigger: it reacts to user
// created and last-login-changed events with the same idempotent
// generate-or-reuse path the queue consumer uses. It is a terminal
// handler, every failure is logged and swallowed.
type UserEventsHandler struct {
	profiles  profileReader
	assigner  blockAssigner
	generator dayWorkoutGenerator
	metrics   *metrics.Manager
	nowFunc   func() time.Time
}

type NewUserEventsHandlerParams struct {
	Profiles       profileReader
	Assigner       blockAssigner
	Generator      dayWorkoutGenerator
	MetricsManager *metrics.Manager
}

func NewUserEventsHandler(params NewUserEventsHandlerParams) *UserEventsHandler {
	return &UserEventsHandler{
		profiles:  params.Profiles,
		assigner:  params.Assigner,
		generator: params.Generator,
		metrics:   params.MetricsManager,
		nowFunc:   time.Now,
	}
}

func (h *UserEventsHandler) OnUserCreated(ctx context.Context, userID string) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.onUserCreated")
	defer span.End()
	span.SetAttributes(attribute.String("user.id", userID))

	h.metrics.CounterUserEvents.WithLabelValues(users.EventUserCreated).Inc()

	if _, err := h.assigner.Assign(ctx, userID); err != nil {
		// the user keeps the unassigned block and is picked up by no
		// populator run; the login trigger still covers them
		log.Errorf("assign time block for user %s: %s", userID, err)
	}

	h.generateForToday(ctx, userID)
}

func (h *UserEventsHandler) OnUserLogin(ctx context.Context, userID string) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.onUserLogin")
	defer span.End()
	span.SetAttributes(attribute.String("user.id", userID))

	h.metrics.CounterUserEvents.WithLabelValues(users.EventUserLogin).Inc()

	h.generateForToday(ctx, userID)
}

func (h *UserEventsHandler) generateForToday(ctx context.Context, userID string) {
	user, err := h.profiles.Get(ctx, userID)
	if err != nil {
		log.Errorf("get user %s: %s", userID, err)
		return
	}

	conversationKey := ConversationKey(h.nowFunc())
	prompt := BuildPrompt(*user, user.LastMuscleGroups)

	_, created, err := h.generator.GenerateOrReuse(ctx, userID, conversationKey, prompt)
	switch {
	case errors.Is(err, ErrGenerationInFlight):
		log.Debugf("workout generation for user %s already in flight", userID)
	case err != nil:
		log.Errorf("generate workout for user %s: %s", userID, err)
	case created:
		log.Infof("workout generated for user %s", userID)
	default:
		log.Debugf("workout for user %s already exists for today", userID)
	}
}
