package workouts

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const dayLockKeyPrefix = "workoutgen::"

// DayLock is a best-effort Redis lock around one (user, day) generation,
// guarding against paying for the same completion twice when the queued
// task and a login trigger race. Correctness does not depend on it; the
// conditional create in the workouts repo does.
type DayLock struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDayLock(rdb *redis.Client, ttl time.Duration) *DayLock {
	return &DayLock{
		rdb: rdb,
		ttl: ttl,
	}
}

// Acquire returns true when this caller now holds the lock for workoutID.
func (l *DayLock) Acquire(ctx context.Context, workoutID string) (bool, error) {
	return l.rdb.SetNX(ctx, dayLockKeyPrefix+workoutID, 1, l.ttl).Result()
}

func (l *DayLock) Release(ctx context.Context, workoutID string) {
	if err := l.rdb.Del(ctx, dayLockKeyPrefix+workoutID).Err(); err != nil {
		log.Errorf("release generation lock for %s: %s", workoutID, err)
	}
}
