package testing

import (
	"sort"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/2beens/gymdash/internal/workouts"
)

var ExerciseNames = []string{
	"Bench Press",
	"Squats",
	"Deadlifts",
	"Pull-ups",
	"Overhead Press",
	"Rows",
	"Incline Press",
	"Dips",
}

// RandomWorkouts generates n completed workouts started within the 90 days
// before now, ordered most recent first the same way the store keeps them.
func RandomWorkouts(faker *gofakeit.Faker, n int, now time.Time) []workouts.Workout {
	ws := make([]workouts.Workout, 0, n)
	for i := 0; i < n; i++ {
		start := faker.DateRange(now.AddDate(0, 0, -90), now)
		duration := faker.Number(0, 180)
		end := start.Add(time.Duration(duration) * time.Minute)

		exercises := make([]workouts.ExerciseEntry, faker.Number(0, 6))
		for j := range exercises {
			exercises[j] = RandomExerciseEntry(faker)
		}

		ws = append(ws, workouts.Workout{
			ID:              faker.UUID(),
			StartTime:       start,
			EndTime:         &end,
			DurationMinutes: duration,
			Exercises:       exercises,
		})
	}

	SortMostRecentFirst(ws)
	return ws
}

func RandomExerciseEntry(faker *gofakeit.Faker) workouts.ExerciseEntry {
	return workouts.ExerciseEntry{
		ExerciseName:    faker.RandomString(ExerciseNames),
		Sets:            faker.Number(1, 6),
		Reps:            faker.Number(1, 15),
		Weight:          float64(faker.Number(0, 80)) * 2.5,
		RestTimeSeconds: workouts.RestTime(faker.Number(30, 180)),
	}
}

func SortMostRecentFirst(ws []workouts.Workout) {
	sort.SliceStable(ws, func(i, j int) bool {
		return ws[i].StartTime.After(ws[j].StartTime)
	})
}

// CompletedWorkout builds a completed workout for table tests.
func CompletedWorkout(id string, start time.Time, durationMinutes int, exercises ...workouts.ExerciseEntry) workouts.Workout {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	if exercises == nil {
		exercises = make([]workouts.ExerciseEntry, 0)
	}
	return workouts.Workout{
		ID:              id,
		StartTime:       start,
		EndTime:         &end,
		DurationMinutes: durationMinutes,
		Exercises:       exercises,
	}
}

func Entry(name string, sets, reps int, weight float64) workouts.ExerciseEntry {
	return workouts.ExerciseEntry{
		ExerciseName:    name,
		Sets:            sets,
		Reps:            reps,
		Weight:          weight,
		RestTimeSeconds: workouts.RestTime(workouts.DefaultRestTimeSeconds),
	}
}

// BenchPressScenario is three workouts (90, 75 and 105 minutes) with Bench
// Press at 185, 195 and 195, returned most recent first.
func BenchPressScenario(now time.Time) []workouts.Workout {
	return []workouts.Workout{
		CompletedWorkout("bp-3", now.AddDate(0, 0, -1), 105, Entry("Bench Press", 3, 8, 195)),
		CompletedWorkout("bp-2", now.AddDate(0, 0, -3), 75, Entry("Bench Press", 3, 8, 195)),
		CompletedWorkout("bp-1", now.AddDate(0, 0, -5), 90, Entry("Bench Press", 3, 8, 185)),
	}
}
