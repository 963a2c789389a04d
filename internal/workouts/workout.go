package workouts

import (
	"sort"
	"strings"
	"time"
)

// DefaultRestTimeSeconds is used for entries logged without an explicit rest time.
const DefaultRestTimeSeconds = 60

// ExerciseEntry is one exercise performed within a workout.
// Weight 0 means bodyweight / unloaded. A nil RestTimeSeconds was not
// supplied and gets DefaultRestTimeSeconds; an explicit 0 is kept.
type ExerciseEntry struct {
	ExerciseName    string  `json:"exerciseName"`
	Sets            int     `json:"sets"`
	Reps            int     `json:"reps"`
	Weight          float64 `json:"weight"`
	RestTimeSeconds *int    `json:"restTimeSeconds,omitempty"`
}

// RestTime returns a rest time value for ExerciseEntry.RestTimeSeconds.
func RestTime(seconds int) *int {
	return &seconds
}

// RestSeconds returns the rest time, DefaultRestTimeSeconds when unset.
func (e ExerciseEntry) RestSeconds() int {
	if e.RestTimeSeconds == nil {
		return DefaultRestTimeSeconds
	}
	return *e.RestTimeSeconds
}

// Volume returns sets * reps * weight.
func (e ExerciseEntry) Volume() float64 {
	return float64(e.Sets) * float64(e.Reps) * e.Weight
}

// Validate checks the entry constraints. Index is reported in the returned
// error so callers validating a batch know which entry failed.
func (e ExerciseEntry) Validate(index int) error {
	switch {
	case strings.TrimSpace(e.ExerciseName) == "":
		return newValidationError(index, "exerciseName", "must not be empty")
	case e.Sets < 1:
		return newValidationError(index, "sets", "must be at least 1")
	case e.Reps < 1:
		return newValidationError(index, "reps", "must be at least 1")
	case e.Weight < 0:
		return newValidationError(index, "weight", "must not be negative")
	case e.RestTimeSeconds != nil && *e.RestTimeSeconds < 0:
		return newValidationError(index, "restTimeSeconds", "must not be negative")
	}
	return nil
}

func (e ExerciseEntry) withDefaults() ExerciseEntry {
	e.RestTimeSeconds = RestTime(e.RestSeconds())
	return e
}

// Workout is a single training session. EndTime is nil only while
// the workout is the store's active (in-progress) workout.
type Workout struct {
	ID              string          `json:"id"`
	StartTime       time.Time       `json:"startTime"`
	EndTime         *time.Time      `json:"endTime,omitempty"`
	DurationMinutes int             `json:"durationMinutes"`
	Exercises       []ExerciseEntry `json:"exercises"`
	Notes           string          `json:"notes,omitempty"`
}

// Volume is the summed volume of all exercises in the workout.
func (w Workout) Volume() float64 {
	var total float64
	for _, e := range w.Exercises {
		total += e.Volume()
	}
	return total
}

// InProgress reports whether the workout has not been completed yet.
func (w Workout) InProgress() bool {
	return w.EndTime == nil
}

// Clone returns a deep copy, so the store never hands out its own memory.
func (w Workout) Clone() Workout {
	c := w
	if w.EndTime != nil {
		end := *w.EndTime
		c.EndTime = &end
	}
	c.Exercises = make([]ExerciseEntry, len(w.Exercises))
	for i, e := range w.Exercises {
		if e.RestTimeSeconds != nil {
			e.RestTimeSeconds = RestTime(*e.RestTimeSeconds)
		}
		c.Exercises[i] = e
	}
	return c
}

// CloneAll deep copies a list of workouts.
func CloneAll(workouts []Workout) []Workout {
	res := make([]Workout, len(workouts))
	for i := range workouts {
		res[i] = workouts[i].Clone()
	}
	return res
}

// Chronological returns a copy of the workouts ordered oldest first. Input
// is expected in store order (most recent first); it is reversed before the
// stable sort, so workouts sharing a start time end up in insertion order.
func Chronological(workouts []Workout) []Workout {
	sorted := make([]Workout, len(workouts))
	for i := range workouts {
		sorted[len(workouts)-1-i] = workouts[i]
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})
	return sorted
}

// durationMinutes rounds the elapsed time to whole minutes, never below zero.
func durationMinutes(start, end time.Time) int {
	d := end.Sub(start)
	if d < 0 {
		return 0
	}
	return int(d.Round(time.Minute) / time.Minute)
}
