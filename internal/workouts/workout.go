package workouts

import (
	"fmt"
	"time"
)

// Workout is one generated daily workout, at most one per user per day.
type Workout struct {
	ID           string    `json:"id"` // <userID>-<conversationKey>
	UserID       string    `json:"userId"`
	Workout      string    `json:"workout"` // HTML content
	MuscleGroups []string  `json:"muscleGroups"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ConversationKey returns the day-scoped key for a calendar date,
// e.g. "2026.8.29-workout". Months and days are not zero padded.
func ConversationKey(t time.Time) string {
	return fmt.Sprintf("%d.%d.%d-workout", t.Year(), int(t.Month()), t.Day())
}

// WorkoutID is the result document key, unique per (user, day).
func WorkoutID(userID, conversationKey string) string {
	return userID + "-" + conversationKey
}
