package queue

import "time"

// Task is one pending workout generation, created by the populator and
// consumed (and removed) by the consumer. Ephemeral: it lives for the few
// seconds between enqueue and claim.
type Task struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	Prompt          string    `json:"prompt"`
	ConversationKey string    `json:"conversationKey"`
	CreatedAt       time.Time `json:"createdAt"`
}
