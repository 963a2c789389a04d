package progress

import (
	"sort"
	"time"

	"github.com/2beens/gymdash/internal/workouts"
)

type RecordEvent struct {
	ExerciseName   string        `json:"exerciseName"`
	Point          ProgressPoint `json:"point"`
	PreviousRecord float64       `json:"previousRecord"`
	FirstEntry     bool          `json:"firstEntry"`
}

// RecordsSince lists the personal records set on or after since. An entry
// sets a record when its weight is strictly above every earlier entry of
// that exercise; the first ever entry of an exercise always does.
// Events are ordered by date, then exercise name.
func RecordsSince(ws []workouts.Workout, since time.Time) []RecordEvent {
	events := make([]RecordEvent, 0)
	for name, points := range BuildProgressSeries(ws) {
		best := 0.0
		for i, p := range points {
			if i > 0 && p.Weight <= best {
				continue
			}
			previous := best
			best = p.Weight
			if p.Date.Before(since) {
				continue
			}
			events = append(events, RecordEvent{
				ExerciseName:   name,
				Point:          p,
				PreviousRecord: previous,
				FirstEntry:     i == 0,
			})
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].Point.Date.Equal(events[j].Point.Date) {
			return events[i].Point.Date.Before(events[j].Point.Date)
		}
		return events[i].ExerciseName < events[j].ExerciseName
	})
	return events
}

type StrengthProgress struct {
	ExerciseName string  `json:"exerciseName"`
	Current      float64 `json:"current"`
	Previous     float64 `json:"previous"`
	Improvement  float64 `json:"improvement"`
	Trend        Trend   `json:"trend"`
	Max          float64 `json:"max"`
	Entries      int     `json:"entries"`
}

// Strength summarizes every exercise's latest change in weight, sorted by
// exercise name. With a single entry Previous equals Current.
func Strength(ws []workouts.Workout) []StrengthProgress {
	series := BuildProgressSeries(ws)
	res := make([]StrengthProgress, 0, len(series))
	for name, points := range series {
		current := points[len(points)-1].Weight
		previous := current
		if len(points) > 1 {
			previous = points[len(points)-2].Weight
		}
		pr, _ := maxPoint(points)
		res = append(res, StrengthProgress{
			ExerciseName: name,
			Current:      current,
			Previous:     previous,
			Improvement:  current - previous,
			Trend:        ClassifyChange(current - previous),
			Max:          pr.Weight,
			Entries:      len(points),
		})
	}

	sort.Slice(res, func(i, j int) bool {
		return res[i].ExerciseName < res[j].ExerciseName
	})
	return res
}
