package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fitgpt/backend/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// notifications channel populated by the users table trigger
const userEventsChannel = "user_events"

const (
	EventUserCreated = "created"
	EventUserLogin   = "login"
)

// ChangeHandler receives user change events. Implementations must be safe
// to invoke zero, one, or more than once for the same logical event; the
// platform gives no exactly-once guarantee.
type ChangeHandler interface {
	OnUserCreated(ctx context.Context, userID string)
	OnUserLogin(ctx context.Context, userID string)
}

// Watcher consumes user change notifications and dispatches them to the
// registration/login trigger logic.
type Watcher struct {
	pool    *pgxpool.Pool
	handler ChangeHandler
}

func NewWatcher(pool *pgxpool.Pool, handler ChangeHandler) *Watcher {
	return &Watcher{
		pool:    pool,
		handler: handler,
	}
}

// Run blocks until ctx is done.
func (w *Watcher) Run(ctx context.Context) {
	db.Listen(ctx, w.pool, userEventsChannel, func(payload string) {
		event, userID, err := parseUserEvent(payload)
		if err != nil {
			log.Errorf("user events watcher: %s", err)
			return
		}

		switch event {
		case EventUserCreated:
			w.handler.OnUserCreated(ctx, userID)
		case EventUserLogin:
			w.handler.OnUserLogin(ctx, userID)
		}
	})
}

func parseUserEvent(payload string) (event, userID string, err error) {
	event, userID, found := strings.Cut(payload, ":")
	if !found {
		return "", "", fmt.Errorf("malformed user event payload: %q", payload)
	}
	if event != EventUserCreated && event != EventUserLogin {
		return "", "", fmt.Errorf("unknown user event %q", event)
	}
	if userID == "" {
		return "", "", errors.New("user event with empty user id")
	}
	return event, userID, nil
}
