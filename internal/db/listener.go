package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

const listenRetryDelay = 5 * time.Second

// Listen blocks on a Postgres LISTEN channel and invokes onPayload for every
// received notification. The dedicated connection is re-acquired on failure.
// Returns when ctx is done.
func Listen(ctx context.Context, pool *pgxpool.Pool, channel string, onPayload func(payload string)) {
	for {
		if ctx.Err() != nil {
			return
		}

		if err := listenOnce(ctx, pool, channel, onPayload); err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Errorf("listen on [%s]: %s; retrying in %s", channel, err, listenRetryDelay)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(listenRetryDelay):
		}
	}
}

func listenOnce(ctx context.Context, pool *pgxpool.Pool, channel string, onPayload func(payload string)) error {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+channel); err != nil {
		return err
	}

	log.Debugf("listening on channel [%s]", channel)

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}
		onPayload(notification.Payload)
	}
}
