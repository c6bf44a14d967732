package workouts

import (
	"fmt"
	"strings"

	"github.com/fitgpt/backend/internal/users"
)

// AllMuscleGroups is the canonical vocabulary the model is told to pick from.
var AllMuscleGroups = []string{
	"chest", "shoulders", "back", "lower back", "biceps", "triceps",
	"hamstrings", "quadriceps", "abs", "glutes", "calves", "forearms",
	"trapezius", "neck", "abductors", "adductors",
}

// BuildPrompt renders the user-turn prompt for one daily workout. Pure
// function, no I/O. lastMuscleGroups are the groups trained the previous
// day; when empty, the avoid-clause is replaced with plain phrasing.
func BuildPrompt(user users.User, lastMuscleGroups []string) string {
	var muscleGroupPrompt string
	if len(lastMuscleGroups) > 0 {
		muscleGroupPrompt = fmt.Sprintf(
			"Please make sure to target four different muscles, and the workout should not include the following muscle groups: %s that I have already trained yesterday.",
			strings.Join(lastMuscleGroups, ", "),
		)
	} else {
		muscleGroupPrompt = "Please make sure to target four different muscles."
	}

	return fmt.Sprintf(`Hello, FitGPT. I am a %s in the age range of %s, with a height of %d cm and a weight of %d kg and my fitness level is %s.
My fitness goals are to %s and I usually train at the %s.
I need a detailed new workout routine of 90 minutes for today. %s
Please include a suggested warm up, exercises, reps, sets and a cool down.

Please provide the workout as a HTML content with heading, subheading, bullet points, and bold.
Also, provide the muscle groups that will be trained in this workout, make sure to use the following muscle groups: %s.

The output should be in JSON format like this:
{
  "muscleGroups": ["group1", "group2", ...],
  "workout": "<html><body><h1>Workout Title</h1> ..."
}`,
		user.Gender, user.AgeRange, user.Height, user.Weight, user.FitnessLevel,
		strings.Join(user.FitnessGoals, ", "), user.TrainingSpot,
		muscleGroupPrompt,
		strings.Join(AllMuscleGroups, ", "),
	)
}
