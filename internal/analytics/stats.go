package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/2beens/gymdash/internal/workouts"
)

type Stats struct {
	TotalWorkouts          int            `json:"totalWorkouts"`
	TotalDurationMinutes   int            `json:"totalDurationMinutes"`
	AverageDurationMinutes int            `json:"averageDurationMinutes"`
	ExerciseFrequency      map[string]int `json:"exerciseFrequency"`
}

// ComputeStats totals the given workouts. Exercise names are counted
// exactly as logged, without any normalization.
func ComputeStats(ws []workouts.Workout) Stats {
	stats := Stats{
		TotalWorkouts:     len(ws),
		ExerciseFrequency: make(map[string]int),
	}

	for _, w := range ws {
		stats.TotalDurationMinutes += w.DurationMinutes
		for _, e := range w.Exercises {
			stats.ExerciseFrequency[e.ExerciseName]++
		}
	}

	if stats.TotalWorkouts > 0 {
		stats.AverageDurationMinutes = int(math.Round(
			float64(stats.TotalDurationMinutes) / float64(stats.TotalWorkouts),
		))
	}

	return stats
}

// TotalVolume sums the volume of every exercise entry.
func TotalVolume(ws []workouts.Workout) float64 {
	var total float64
	for _, w := range ws {
		total += w.Volume()
	}
	return total
}

// WorkoutsSince counts the workouts started at or after since.
func WorkoutsSince(ws []workouts.Workout, since time.Time) int {
	count := 0
	for _, w := range ws {
		if !w.StartTime.Before(since) {
			count++
		}
	}
	return count
}

type ExerciseSummary struct {
	Name        string  `json:"name"`
	Count       int     `json:"count"`
	TotalVolume float64 `json:"totalVolume"`
}

// ComputeExerciseSummaries returns one summary per distinct exercise name,
// most frequent first, ties ordered by name.
func ComputeExerciseSummaries(ws []workouts.Workout) []ExerciseSummary {
	byName := make(map[string]*ExerciseSummary)
	for _, w := range ws {
		for _, e := range w.Exercises {
			s, ok := byName[e.ExerciseName]
			if !ok {
				s = &ExerciseSummary{Name: e.ExerciseName}
				byName[e.ExerciseName] = s
			}
			s.Count++
			s.TotalVolume += e.Volume()
		}
	}

	summaries := make([]ExerciseSummary, 0, len(byName))
	for _, s := range byName {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Count != summaries[j].Count {
			return summaries[i].Count > summaries[j].Count
		}
		return summaries[i].Name < summaries[j].Name
	})
	return summaries
}
