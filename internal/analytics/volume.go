package analytics

import (
	"time"

	"github.com/2beens/gymdash/internal/workouts"
)

type VolumePoint struct {
	Date   time.Time `json:"date"`
	Volume float64   `json:"volume"`
}

// ComputeVolumeSeries returns one point per workout, in the order of the
// input. Callers wanting a chronological chart reverse the store order.
func ComputeVolumeSeries(ws []workouts.Workout) []VolumePoint {
	series := make([]VolumePoint, 0, len(ws))
	for _, w := range ws {
		series = append(series, VolumePoint{
			Date:   w.StartTime,
			Volume: w.Volume(),
		})
	}
	return series
}
