package users

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=timeblock_mocks_test.go -package=users_test

type timeBlockRepo interface {
	CountAssigned(ctx context.Context) (int, error)
	SetTimeBlock(ctx context.Context, id string, timeBlock int) error
}

// TimeBlockAssigner spreads users across the day by giving each new user a
// bucket index, block = assignedUsersCount mod modulus. This is a coarse
// load-spreading heuristic: two concurrent registrations can read the same
// count, so only approximate spread is guaranteed.
type TimeBlockAssigner struct {
	repo    timeBlockRepo
	modulus int
}

func NewTimeBlockAssigner(repo timeBlockRepo, modulus int) *TimeBlockAssigner {
	if modulus <= 0 {
		modulus = 10
	}
	return &TimeBlockAssigner{
		repo:    repo,
		modulus: modulus,
	}
}

func (a *TimeBlockAssigner) Assign(ctx context.Context, userID string) (int, error) {
	count, err := a.repo.CountAssigned(ctx)
	if err != nil {
		return -1, fmt.Errorf("count users: %w", err)
	}

	timeBlock := count % a.modulus
	if err := a.repo.SetTimeBlock(ctx, userID, timeBlock); err != nil {
		return -1, fmt.Errorf("set time block: %w", err)
	}

	log.Debugf("user %s assigned to time block %d", userID, timeBlock)

	return timeBlock, nil
}
