package progress

import (
	"time"

	"github.com/2beens/gymdash/internal/workouts"
)

type ProgressPoint struct {
	Date      time.Time `json:"date"`
	WorkoutID string    `json:"workoutId"`
	Weight    float64   `json:"weight"`
	Volume    float64   `json:"volume"`
}

type Trend string

const (
	TrendGain     Trend = "gain"
	TrendLoss     Trend = "loss"
	TrendNoChange Trend = "no_change"
)

// ClassifyChange maps a weight delta onto a trend; only an exact zero is
// no change.
func ClassifyChange(delta float64) Trend {
	switch {
	case delta > 0:
		return TrendGain
	case delta < 0:
		return TrendLoss
	default:
		return TrendNoChange
	}
}

// BuildProgressSeries returns, per exercise name, one point for every
// logged entry, oldest first. Entries from the same workout share a date;
// nothing is aggregated.
func BuildProgressSeries(ws []workouts.Workout) map[string][]ProgressPoint {
	series := make(map[string][]ProgressPoint)
	for _, w := range workouts.Chronological(ws) {
		for _, e := range w.Exercises {
			series[e.ExerciseName] = append(series[e.ExerciseName], ProgressPoint{
				Date:      w.StartTime,
				WorkoutID: w.ID,
				Weight:    e.Weight,
				Volume:    e.Volume(),
			})
		}
	}
	return series
}

func exerciseSeries(exerciseName string, ws []workouts.Workout) []ProgressPoint {
	var points []ProgressPoint
	for _, w := range workouts.Chronological(ws) {
		for _, e := range w.Exercises {
			if e.ExerciseName != exerciseName {
				continue
			}
			points = append(points, ProgressPoint{
				Date:      w.StartTime,
				WorkoutID: w.ID,
				Weight:    e.Weight,
				Volume:    e.Volume(),
			})
		}
	}
	return points
}

// maxPoint returns the heaviest point, the earliest one on ties.
func maxPoint(points []ProgressPoint) (ProgressPoint, bool) {
	if len(points) == 0 {
		return ProgressPoint{}, false
	}
	best := points[0]
	for _, p := range points[1:] {
		if p.Weight > best.Weight {
			best = p
		}
	}
	return best, true
}

// PersonalRecord returns the entry with the maximum weight ever logged for
// the exercise. The bool is false when the exercise was never logged.
func PersonalRecord(exerciseName string, ws []workouts.Workout) (ProgressPoint, bool) {
	return maxPoint(exerciseSeries(exerciseName, ws))
}

// RecentImprovement is the latest logged weight minus the one before it,
// 0 with fewer than two entries.
func RecentImprovement(exerciseName string, ws []workouts.Workout) float64 {
	points := exerciseSeries(exerciseName, ws)
	if len(points) < 2 {
		return 0
	}
	return points[len(points)-1].Weight - points[len(points)-2].Weight
}

// PersonalRecords returns the personal record of every logged exercise.
func PersonalRecords(ws []workouts.Workout) map[string]ProgressPoint {
	records := make(map[string]ProgressPoint)
	for name, points := range BuildProgressSeries(ws) {
		if pr, ok := maxPoint(points); ok {
			records[name] = pr
		}
	}
	return records
}
