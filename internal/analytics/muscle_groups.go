package analytics

import (
	"github.com/2beens/gymdash/internal/workouts"
)

// OtherMuscleGroup collects exercises the lookup does not know about.
const OtherMuscleGroup = "Other"

type MuscleGroupLookup interface {
	MuscleGroup(exerciseName string) (string, bool)
}

// MapLookup is a plain exercise name -> muscle group table.
type MapLookup map[string]string

func (m MapLookup) MuscleGroup(exerciseName string) (string, bool) {
	group, ok := m[exerciseName]
	return group, ok
}

// ComputeMuscleGroupDistribution counts exercise entries per muscle group.
// A nil lookup puts everything under OtherMuscleGroup.
func ComputeMuscleGroupDistribution(ws []workouts.Workout, lookup MuscleGroupLookup) map[string]int {
	distribution := make(map[string]int)
	for _, w := range ws {
		for _, e := range w.Exercises {
			group := OtherMuscleGroup
			if lookup != nil {
				if g, ok := lookup.MuscleGroup(e.ExerciseName); ok && g != "" {
					group = g
				}
			}
			distribution[group]++
		}
	}
	return distribution
}
