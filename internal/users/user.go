package users

import "time"

// TimeBlockUnassigned marks a freshly registered user that the time block
// assigner has not yet seen.
const TimeBlockUnassigned = -1

type User struct {
	ID               string     `json:"id"`
	Gender           string     `json:"gender"`
	AgeRange         string     `json:"ageRange"`
	Height           int        `json:"height"`
	Weight           int        `json:"weight"`
	FitnessLevel     string     `json:"fitnessLevel"`
	FitnessGoals     []string   `json:"fitnessGoals"`
	TrainingSpot     string     `json:"trainingSpot"`
	TimeBlock        int        `json:"timeBlock"`
	LastMuscleGroups []string   `json:"lastMuscleGroups"`
	LastLogin        *time.Time `json:"lastLogin,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}
