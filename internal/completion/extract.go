package completion

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoJSONPayload = errors.New("no JSON payload found in completion output")
	ErrEmptyWorkout  = errors.New("completion payload has an empty workout")
)

// GeneratedWorkout is the JSON envelope the model is instructed to return.
type GeneratedWorkout struct {
	MuscleGroups []string `json:"muscleGroups"`
	Workout      string   `json:"workout"`
}

// ExtractEnvelope scrapes the first { ... last } substring out of the
// model's free-form reply and parses it. The model is told to return strict
// JSON, but in practice the envelope comes wrapped in prose.
func ExtractEnvelope(raw string) (*GeneratedWorkout, error) {
	firstIndex := strings.Index(raw, "{")
	lastIndex := strings.LastIndex(raw, "}")
	if firstIndex == -1 || lastIndex == -1 || lastIndex < firstIndex {
		return nil, ErrNoJSONPayload
	}

	var envelope GeneratedWorkout
	if err := json.Unmarshal([]byte(raw[firstIndex:lastIndex+1]), &envelope); err != nil {
		return nil, fmt.Errorf("unmarshal completion payload: %w", err)
	}

	if envelope.Workout == "" {
		return nil, ErrEmptyWorkout
	}
	if envelope.MuscleGroups == nil {
		envelope.MuscleGroups = []string{}
	}

	return &envelope, nil
}
